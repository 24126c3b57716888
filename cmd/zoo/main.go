package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/zeusync/zoo/internal/config"
	"github.com/zeusync/zoo/internal/core/observability/log"
	"github.com/zeusync/zoo/internal/injector"
	"github.com/zeusync/zoo/internal/scenario"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "zoo:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("zoo", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	scenarioPath := flags.String("scenario", "", "path to a YAML scenario, overrides the config")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *scenarioPath != "" {
		cfg.Scenario = *scenarioPath
	}

	app, err := injector.InitializeApp(cfg, stdout)
	if err != nil {
		return err
	}
	defer func() { _ = app.Logger.Sync() }()
	defer func() { _ = app.Journal.Close() }()

	logger := app.Logger.With(log.String("run_id", uuid.NewString()))

	s := scenario.Tour()
	if cfg.Scenario != "" {
		if s, err = scenario.LoadFile(cfg.Scenario); err != nil {
			return err
		}
	}

	report, err := app.Runner.Run(ctx, s)
	if err != nil {
		fields := []log.Field{log.String("scenario", s.Name), log.Int("steps", report.Steps), log.Error(err)}
		var stepErr *scenario.StepError
		if errors.As(err, &stepErr) {
			fields = append(fields, log.Int("failed_step", stepErr.Index))
		}
		logger.Error("scenario failed", fields...)
		return err
	}

	logger.Info("scenario finished",
		log.String("scenario", report.Scenario),
		log.Int("steps", report.Steps),
		log.Int("caught", report.Caught),
		log.Int("entities", app.Zoo.Issued()),
		log.Int("journal_entries", len(app.Journal.Entries())),
	)
	for _, st := range app.Zoo.Stats() {
		logger.Debug("keeper",
			log.Stringer("species", st.Species),
			log.Int("adopted", st.Adopted),
			log.Int("grown", st.Grown),
			log.Int("rejected", st.Rejected),
		)
	}
	return nil
}
