//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"wlanprofiles/internal/domain"
	"wlanprofiles/internal/infra/netsh"
	"wlanprofiles/internal/infra/store"
)

var SourceSet = wire.NewSet(
	NewGate,
	NewLocaleProfile,
	NewExtractor,
	wire.Bind(new(domain.ProfileSource), new(*netsh.Extractor)),
)

var ProgramSet = wire.NewSet(
	SourceSet,
	store.New,
	NewProgram,
)
