package locale

import (
	"fmt"
	"runtime"
	"strings"

	golocale "github.com/jeandeaual/go-locale"
	"go.uber.org/zap"

	"wlanprofiles/internal/domain"
	"wlanprofiles/internal/infra/telemetry"
)

// Environment exposes the host facts the gate depends on.
type Environment interface {
	GOOS() string
	Locale() (string, error)
}

// SystemEnvironment reads the running host.
type SystemEnvironment struct{}

func (SystemEnvironment) GOOS() string {
	return runtime.GOOS
}

func (SystemEnvironment) Locale() (string, error) {
	return golocale.GetLocale()
}

type GateOptions struct {
	Environment Environment
	Table       domain.LocaleTable
	// Override replaces the detected locale when set.
	Override string
	Logger   *zap.Logger
}

// Gate rejects hosts whose OS or locale the netsh parser cannot handle.
type Gate struct {
	env      Environment
	table    domain.LocaleTable
	override string
	logger   *zap.Logger
}

func NewGate(opts GateOptions) *Gate {
	env := opts.Environment
	if env == nil {
		env = SystemEnvironment{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{
		env:      env,
		table:    opts.Table,
		override: strings.TrimSpace(opts.Override),
		logger:   logger.Named("locale"),
	}
}

// Check returns the markers for the host locale, or a FAILED_PRECONDITION
// error when the OS or the locale is unsupported.
func (g *Gate) Check() (domain.LocaleProfile, error) {
	const op = "locale.Check"

	goos := g.env.GOOS()
	if goos != domain.SupportedGOOS {
		g.logger.Debug("host rejected", telemetry.EventField(telemetry.EventGateRejected), zap.String(telemetry.FieldGOOS, goos))
		return domain.LocaleProfile{}, domain.E(domain.CodeFailedPrecond, op,
			fmt.Sprintf("Your OS is not supported. Windows only. (%s)", goos), domain.ErrUnsupportedOS)
	}

	raw := g.override
	if raw == "" {
		detected, err := g.env.Locale()
		if err != nil {
			return domain.LocaleProfile{}, domain.E(domain.CodeFailedPrecond, op,
				fmt.Sprintf("Your OS Language is not supported (%v)", err), fmt.Errorf("%w: %w", domain.ErrUnsupportedLocale, err))
		}
		raw = detected
	}

	tag, err := NormalizeTag(raw)
	if err != nil {
		tag = raw
	}
	profile, ok := g.table.Lookup(tag)
	if !ok {
		g.logger.Debug("locale rejected", telemetry.EventField(telemetry.EventGateRejected), zap.String(telemetry.FieldLocale, raw), zap.Strings("supported", g.table.Tags()))
		return domain.LocaleProfile{}, domain.E(domain.CodeFailedPrecond, op,
			fmt.Sprintf("Your OS Language is not supported (%s)", tag), domain.ErrUnsupportedLocale)
	}
	g.logger.Debug("locale accepted", zap.String(telemetry.FieldLocale, tag))
	return profile, nil
}
