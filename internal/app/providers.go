package app

import (
	"go.uber.org/zap"

	"wlanprofiles/internal/domain"
	"wlanprofiles/internal/infra/locale"
	"wlanprofiles/internal/infra/netsh"
	"wlanprofiles/internal/infra/process"
)

func NewGate(cfg domain.Config, env locale.Environment, logger *zap.Logger) *locale.Gate {
	return locale.NewGate(locale.GateOptions{
		Environment: env,
		Table:       cfg.Locales,
		Override:    cfg.Locale,
		Logger:      logger,
	})
}

// NewLocaleProfile resolves the host markers, failing before any command runs
// when the host is unsupported.
func NewLocaleProfile(gate *locale.Gate) (domain.LocaleProfile, error) {
	return gate.Check()
}

func NewExtractor(cfg domain.Config, profile domain.LocaleProfile, runner process.Runner, logger *zap.Logger) (*netsh.Extractor, error) {
	return netsh.NewExtractor(netsh.Options{
		Command: cfg.NetshCommand,
		Locale:  profile,
		Runner:  runner,
		Logger:  logger,
	})
}
