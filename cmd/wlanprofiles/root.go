package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wlanprofiles/internal/app"
	"wlanprofiles/internal/domain"
	"wlanprofiles/internal/infra/config"
	"wlanprofiles/internal/infra/locale"
	"wlanprofiles/internal/infra/process"
)

type rootDeps struct {
	env        locale.Environment
	runner     process.Runner
	searchDirs []string
	// logPaths overrides the logger outputs; tests point it at a file.
	logPaths []string
}

func defaultDeps() rootDeps {
	return rootDeps{
		env:        locale.SystemEnvironment{},
		runner:     process.Exec,
		searchDirs: config.DefaultSearchDirs(),
	}
}

type cliOptions struct {
	output outputValue
}

func newRootCommand(deps rootDeps) *cobra.Command {
	opts := cliOptions{output: outputValue(domain.DefaultOutputMode)}

	root := &cobra.Command{
		Use:           "wlanprofiles",
		Short:         "Get all WLAN profiles and passwords stored on the OS (MS Windows only)",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signalAwareContext(cmd.Context())
			defer cancel()
			return run(ctx, cmd, deps)
		},
	}
	root.Flags().VarP(&opts.output, "output", "o", "output options (cli, json, txt)")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return exitError{code: exitUsage, message: fmt.Sprintf("%v\n%s", err, cmd.UsageString())}
	})
	root.CompletionOptions.DisableDefaultCmd = true

	return root
}

func run(ctx context.Context, cmd *cobra.Command, deps rootDeps) error {
	cfg, err := config.NewLoader(nil).Load(ctx, config.Options{
		SearchDirs: deps.searchDirs,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return exitWith(exitFailure, err)
	}

	logger, err := app.NewLogger(app.LoggingConfig{Level: cfg.LogLevel, OutputPaths: deps.logPaths})
	if err != nil {
		return exitWith(exitFailure, err)
	}
	defer func() { _ = logger.Sync() }()

	program, err := app.InitializeProgram(cfg, deps.env, deps.runner, cmd.OutOrStdout(), logger)
	if err != nil {
		return exitWith(exitFailure, err)
	}
	if err := program.Run(ctx); err != nil {
		logger.Error("extraction failed", zap.Error(err))
		return exitWith(exitFailure, err)
	}

	result, err := program.Export(cfg.Output)
	if err != nil {
		return exitWith(exitFailure, err)
	}
	printResult(cmd.OutOrStdout(), result)
	return nil
}

func signalAwareContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
