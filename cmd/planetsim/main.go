package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-hclog"

	"planet-sim/internal/analysis"
	"planet-sim/internal/config"
	"planet-sim/internal/scenario"
	"planet-sim/internal/simulation"
	"planet-sim/internal/telemetry"
	"planet-sim/internal/terminal"
	"planet-sim/internal/visualization"
)

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger := cfg.Logger()
	if err := run(cfg, logger); err != nil {
		logger.Error("simulation aborted", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger hclog.Logger) error {
	// --- Scenario ---
	scn := scenario.SolarSystem()
	if cfg.Scenario != "" {
		loaded, err := scenario.Load(cfg.Scenario)
		if err != nil {
			return err
		}
		scn = loaded
	}
	if n := scn.CentralCount(); n != 1 {
		logger.Warn("scenario should have exactly one central body", "scenario", scn.Name, "central", n)
	}

	bodies, err := scn.Build(cfg.TrailCap)
	if err != nil {
		return fmt.Errorf("building scenario %q: %w", scn.Name, err)
	}

	// --- Simulation ---
	scheme, err := simulation.ParseScheme(cfg.Scheme)
	if err != nil {
		return err
	}
	opts := []simulation.Option{
		simulation.WithLogger(logger.Named("sim")),
		simulation.WithScheme(scheme),
		simulation.WithDistanceFloor(cfg.MinDistance),
	}

	if cfg.RedisAddr != "" {
		client, err := telemetry.Dial(context.Background(), cfg.RedisAddr)
		if err != nil {
			return err
		}
		defer client.Close()
		obs := telemetry.NewRedisObserver(client, cfg.RedisChannel, cfg.PublishEvery, logger.Named("telemetry"))
		opts = append(opts, simulation.WithObserver(obs))
		logger.Info("publishing step telemetry", "addr", cfg.RedisAddr, "channel", cfg.RedisChannel)
	}

	sim, err := simulation.NewSimulation(bodies, opts...)
	if err != nil {
		return err
	}
	logger.Info("scenario loaded", "scenario", scn.Name, "bodies", len(bodies), "frontend", cfg.Frontend)

	// --- Front-end ---
	switch cfg.Frontend {
	case config.FrontendTerminal:
		return runTerminal(cfg, sim, logger)

	case config.FrontendHeadless:
		rec := analysis.NewRecorder(sim.Bodies(), cfg.SampleEvery)
		sim.AddObserver(rec)
		if err := sim.Run(cfg.Steps); err != nil {
			return err
		}
		sim.LogState()
		return rec.WriteReport(os.Stdout, sim)

	default:
		return visualization.NewRenderer(sim, logger.Named("render")).Run()
	}
}

func runTerminal(cfg config.Config, sim *simulation.Simulation, logger hclog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return terminal.NewTerminal(sim, screen, logger.Named("terminal")).Run(ctx, cfg.FrameInterval)
}
