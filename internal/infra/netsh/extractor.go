package netsh

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"wlanprofiles/internal/domain"
	"wlanprofiles/internal/infra/process"
	"wlanprofiles/internal/infra/telemetry"
)

// Options configures an Extractor.
type Options struct {
	Command string
	Locale  domain.LocaleProfile
	Runner  process.Runner
	Logger  *zap.Logger
}

// Extractor reads saved WLAN profiles from the netsh text output.
type Extractor struct {
	command string
	locale  domain.LocaleProfile
	decoder Decoder
	runner  process.Runner
	logger  *zap.Logger
}

var _ domain.ProfileSource = (*Extractor)(nil)

func NewExtractor(opts Options) (*Extractor, error) {
	if strings.TrimSpace(opts.Locale.ProfilesMarker) == "" || strings.TrimSpace(opts.Locale.KeyMarker) == "" {
		return nil, domain.E(domain.CodeInvalidArgument, "netsh.NewExtractor", "locale "+opts.Locale.Tag+" has empty markers", nil)
	}
	decoder, err := NewDecoder(opts.Locale.CodePage)
	if err != nil {
		return nil, domain.E(domain.CodeInvalidArgument, "netsh.NewExtractor", "", err)
	}
	command := strings.TrimSpace(opts.Command)
	if command == "" {
		command = domain.DefaultNetshCommand
	}
	runner := opts.Runner
	if runner == nil {
		runner = process.Exec
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		command: command,
		locale:  opts.Locale,
		decoder: decoder,
		runner:  runner,
		logger:  logger.Named("netsh").With(zap.String(telemetry.FieldLocale, opts.Locale.Tag)),
	}, nil
}

// ListProfiles runs "wlan show profiles" and returns the profile names in
// output order.
func (e *Extractor) ListProfiles(ctx context.Context) ([]string, error) {
	const op = "netsh.ListProfiles"
	text, err := e.run(ctx, "wlan", "show", "profiles")
	if err != nil {
		return nil, e.commandError(op, err)
	}
	names, err := ParseProfileNames(text, e.locale.ProfilesMarker)
	if err != nil {
		return nil, domain.Wrap(domain.CodeInvalidArgument, op, err)
	}
	if len(names) == 0 {
		return nil, domain.E(domain.CodeNotFound, op, fmt.Sprintf("no line contains %q", e.locale.ProfilesMarker), domain.ErrNoProfiles)
	}
	e.logger.Debug("profiles listed", zap.Int(telemetry.FieldProfiles, len(names)))
	return names, nil
}

// GetPassword runs "wlan show profile <name> key=clear" and returns the
// stored key, or an empty string when the profile has none.
func (e *Extractor) GetPassword(ctx context.Context, name string) (string, error) {
	const op = "netsh.GetPassword"
	text, err := e.run(ctx, "wlan", "show", "profile", name, "key=clear")
	if err != nil {
		if errors.Is(err, process.ErrNonZeroExit) {
			return "", domain.E(domain.CodeUnavailable, op, err.Error(), fmt.Errorf("%w: %w", domain.ErrProfileCommandFailed, err))
		}
		return "", e.commandError(op, err)
	}
	key, found, err := ParseKey(text, e.locale.KeyMarker)
	if err != nil {
		return "", domain.Wrap(domain.CodeInvalidArgument, op, err)
	}
	e.logger.Debug("profile read", zap.String(telemetry.FieldProfile, name), zap.Bool(telemetry.FieldKeyFound, found))
	return key, nil
}

func (e *Extractor) run(ctx context.Context, args ...string) (string, error) {
	e.logger.Debug("running command", zap.String(telemetry.FieldCommand, e.command), zap.Strings(telemetry.FieldArgs, args))
	result, err := e.runner(ctx, e.command, args...)
	if err != nil {
		return "", err
	}
	return e.decoder.Decode(result.Output), nil
}

func (e *Extractor) commandError(op string, err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return domain.E(domain.CodeCanceled, op, "", err)
	case errors.Is(err, process.ErrStart):
		return domain.E(domain.CodeUnavailable, op, err.Error(), fmt.Errorf("%w: %w", domain.ErrCommandUnavailable, err))
	default:
		return domain.E(domain.CodeUnavailable, op, err.Error(), err)
	}
}
