package telemetry

import (
	"time"

	"go.uber.org/zap"
)

const (
	FieldEvent      = "event"
	FieldLocale     = "locale"
	FieldGOOS       = "goos"
	FieldProfile    = "profile"
	FieldProfiles   = "profiles"
	FieldKeyFound   = "key_found"
	FieldCommand    = "command"
	FieldArgs       = "args"
	FieldOutputMode = "output"
	FieldPath       = "path"
	FieldDurationMs = "duration_ms"
)

const (
	EventGateRejected   = "gate_rejected"
	EventProfileSkipped = "profile_skipped"
	EventRunComplete    = "run_complete"
	EventExportSuccess  = "export_success"
	EventExportFailure  = "export_failure"
)

func EventField(event string) zap.Field {
	return zap.String(FieldEvent, event)
}

func ProfileField(name string) zap.Field {
	return zap.String(FieldProfile, name)
}

func DurationField(duration time.Duration) zap.Field {
	return zap.Int64(FieldDurationMs, duration.Milliseconds())
}
