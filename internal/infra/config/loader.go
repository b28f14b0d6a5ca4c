package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wlanprofiles/internal/domain"
	"wlanprofiles/internal/infra/locale"
)

const (
	// EnvPrefix prefixes every environment override, e.g. WLANPROFILES_OUTPUT.
	EnvPrefix = "WLANPROFILES"
	// EnvConfigPath names an explicit config file.
	EnvConfigPath = EnvPrefix + "_CONFIG"
	// FileName is the config file base name searched for without extension.
	FileName = "wlanprofiles"
)

type Loader struct {
	logger *zap.Logger
}

// Options selects where configuration comes from.
type Options struct {
	// Path is an explicit config file; it must exist when set.
	Path string
	// SearchDirs are probed for FileName.{yaml,yml,toml,json} when Path is empty.
	SearchDirs []string
	// Flags are bound over the file and environment values.
	Flags *pflag.FlagSet
}

type rawConfig struct {
	Output    string         `mapstructure:"output"`
	OutputDir string         `mapstructure:"outputDir"`
	Locale    string         `mapstructure:"locale"`
	Netsh     rawNetshConfig `mapstructure:"netsh"`
	Log       rawLogConfig   `mapstructure:"log"`
	Locales   []rawLocale    `mapstructure:"locales"`
}

type rawNetshConfig struct {
	Command string `mapstructure:"command"`
}

type rawLogConfig struct {
	Level string `mapstructure:"level"`
}

type rawLocale struct {
	Tag            string `mapstructure:"tag"`
	ProfilesMarker string `mapstructure:"profilesMarker"`
	KeyMarker      string `mapstructure:"keyMarker"`
	CodePage       string `mapstructure:"codePage"`
}

func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		return &Loader{logger: zap.NewNop()}
	}
	return &Loader{logger: logger.Named("config")}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	defaults := domain.DefaultConfig()
	v.SetDefault("output", string(defaults.Output))
	v.SetDefault("outputDir", defaults.OutputDir)
	v.SetDefault("locale", "")
	v.SetDefault("netsh.command", defaults.NetshCommand)
	v.SetDefault("log.level", defaults.LogLevel)
}

// DefaultSearchDirs returns the working directory and the per-user config
// directory.
func DefaultSearchDirs() []string {
	dirs := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, FileName))
	}
	return dirs
}

// Load merges defaults, the optional config file, environment overrides and
// bound flags into a normalized Config.
func (l *Loader) Load(ctx context.Context, opts Options) (domain.Config, error) {
	v := newViper()

	if opts.Flags != nil {
		if flag := opts.Flags.Lookup("output"); flag != nil {
			if err := v.BindPFlag("output", flag); err != nil {
				return domain.Config{}, fmt.Errorf("bind output flag: %w", err)
			}
		}
	}

	path := strings.TrimSpace(opts.Path)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfigPath))
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return domain.Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName(FileName)
		for _, dir := range opts.SearchDirs {
			v.AddConfigPath(dir)
		}
		if len(opts.SearchDirs) > 0 {
			if err := v.ReadInConfig(); err != nil {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					return domain.Config{}, fmt.Errorf("read config: %w", err)
				}
			}
		}
	}
	if used := v.ConfigFileUsed(); used != "" {
		l.logger.Debug("config file loaded", zap.String("path", used))
	}

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return domain.Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg, errs := normalizeConfig(raw)
	if len(errs) > 0 {
		return domain.Config{}, errors.New(strings.Join(errs, "; "))
	}
	return cfg, ctx.Err()
}

func normalizeConfig(raw rawConfig) (domain.Config, []string) {
	cfg := domain.DefaultConfig()
	var errs []string

	mode, err := domain.ParseOutputMode(strings.TrimSpace(raw.Output))
	if err != nil {
		errs = append(errs, fmt.Sprintf("output must be one of %s", joinModes()))
	} else {
		cfg.Output = mode
	}

	if dir := strings.TrimSpace(raw.OutputDir); dir != "" {
		cfg.OutputDir = dir
	}

	if value := strings.TrimSpace(raw.Locale); value != "" {
		tag, err := locale.NormalizeTag(value)
		if err != nil {
			errs = append(errs, fmt.Sprintf("locale: %v", err))
		} else {
			cfg.Locale = tag
		}
	}

	if command := strings.TrimSpace(raw.Netsh.Command); command != "" {
		cfg.NetshCommand = command
	}

	level := strings.TrimSpace(raw.Log.Level)
	if _, err := zapcore.ParseLevel(level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level %q is invalid", level))
	} else {
		cfg.LogLevel = level
	}

	extra := make([]domain.LocaleProfile, 0, len(raw.Locales))
	for i, entry := range raw.Locales {
		profile, entryErrs := normalizeLocale(entry)
		for _, msg := range entryErrs {
			errs = append(errs, fmt.Sprintf("locales[%d]: %s", i, msg))
		}
		if len(entryErrs) == 0 {
			extra = append(extra, profile)
		}
	}
	cfg.Locales = cfg.Locales.With(extra...)

	return cfg, errs
}

func normalizeLocale(raw rawLocale) (domain.LocaleProfile, []string) {
	var errs []string
	tag, err := locale.NormalizeTag(raw.Tag)
	if err != nil {
		errs = append(errs, err.Error())
	}
	if raw.ProfilesMarker == "" {
		errs = append(errs, "profilesMarker is required")
	}
	if raw.KeyMarker == "" {
		errs = append(errs, "keyMarker is required")
	}
	return domain.LocaleProfile{
		Tag:            tag,
		ProfilesMarker: raw.ProfilesMarker,
		KeyMarker:      raw.KeyMarker,
		CodePage:       strings.TrimSpace(raw.CodePage),
	}, errs
}

func joinModes() string {
	names := make([]string, 0, len(domain.OutputModes))
	for _, mode := range domain.OutputModes {
		names = append(names, string(mode))
	}
	return strings.Join(names, ", ")
}
