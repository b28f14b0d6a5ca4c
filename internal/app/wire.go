//go:build wireinject
// +build wireinject

package app

import (
	"io"

	"github.com/google/wire"
	"go.uber.org/zap"

	"wlanprofiles/internal/domain"
	"wlanprofiles/internal/infra/locale"
	"wlanprofiles/internal/infra/process"
)

func InitializeProgram(cfg domain.Config, env locale.Environment, runner process.Runner, diag io.Writer, logger *zap.Logger) (*Program, error) {
	wire.Build(ProgramSet)
	return nil, nil
}
