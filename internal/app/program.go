package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"wlanprofiles/internal/domain"
	"wlanprofiles/internal/infra/store"
	"wlanprofiles/internal/infra/telemetry"
)

// Program runs one extraction and presents its result. Each Program owns a
// single store.
type Program struct {
	source    domain.ProfileSource
	store     *store.ProfileStore
	outputDir string
	diag      io.Writer
	logger    *zap.Logger
}

func NewProgram(source domain.ProfileSource, profiles *store.ProfileStore, cfg domain.Config, diag io.Writer, logger *zap.Logger) *Program {
	if profiles == nil {
		profiles = store.New()
	}
	if diag == nil {
		diag = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Program{
		source:    source,
		store:     profiles,
		outputDir: cfg.OutputDir,
		diag:      diag,
		logger:    logger.Named("program"),
	}
}

// Run lists every profile, fetches its key and merges the result into the
// store. Profiles whose lookup fails are reported and left out.
func (p *Program) Run(ctx context.Context) error {
	started := time.Now()
	records, err := domain.CollectPasswords(ctx, p.source, p.reportSkip)
	if err != nil {
		return domain.Wrap(domain.CodeInternal, "app.Run", err)
	}
	p.store.Merge(records...)
	p.logger.Info("extraction finished",
		telemetry.EventField(telemetry.EventRunComplete),
		zap.Int(telemetry.FieldProfiles, len(records)),
		telemetry.DurationField(time.Since(started)),
	)
	return nil
}

// Export renders the store for cli and writes a file for every other mode.
// For file modes the returned string is the written path.
func (p *Program) Export(mode domain.OutputMode) (string, error) {
	if mode == domain.OutputCLI {
		return p.store.Render(), nil
	}
	path, err := p.store.Export(domain.ExportFormat(mode), p.outputDir)
	if err != nil {
		p.logger.Error("export failed", telemetry.EventField(telemetry.EventExportFailure), zap.String(telemetry.FieldOutputMode, string(mode)), zap.Error(err))
		return "", err
	}
	p.logger.Info("export written", telemetry.EventField(telemetry.EventExportSuccess), zap.String(telemetry.FieldOutputMode, string(mode)), zap.String(telemetry.FieldPath, path))
	return path, nil
}

// Store exposes the collected profiles.
func (p *Program) Store() *store.ProfileStore {
	return p.store
}

func (p *Program) reportSkip(name string, err error) {
	fmt.Fprintln(p.diag, store.FormatLine(name, domain.SkippedProfileMarker))
	p.logger.Warn("profile skipped", telemetry.EventField(telemetry.EventProfileSkipped), telemetry.ProfileField(name), zap.Error(err))
}
