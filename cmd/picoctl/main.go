package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/picoscope-go/picoscope"
	"github.com/picoscope-go/picoscope/internal/adapters/archive"
	"github.com/picoscope-go/picoscope/internal/adapters/observability"
	"github.com/picoscope-go/picoscope/internal/adapters/sim"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	var err error

	switch cmd {
	case "capture":
		err = captureCommand(os.Args[2:])
	case "validate":
		err = validateCommand(os.Args[2:])
	case "info":
		err = infoCommand(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		printUsage()
		err = fmt.Errorf("unknown command %q", cmd)
	}

	if err != nil {
		log.Fatalf("picoctl %s: %v", cmd, err)
	}
}

func captureCommand(args []string) error {
	fs := flag.NewFlagSet("capture", flag.ExitOnError)
	cfgPath := fs.String("config", "./data/config.yaml", "Path to rig configuration file")
	count := fs.Int("count", 1, "Number of block captures to run")
	serveMetrics := fs.Bool("metrics", false, "Serve Prometheus metrics while capturing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := picoscope.LoadConfig(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	reg := prometheus.NewRegistry()
	obs := observability.New(logger, reg)

	if *serveMetrics {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				logger.Error().Err(err).Msg("metrics endpoint exited")
			}
		}()
	}

	var opts []picoscope.RigOption
	if cfg.Archive.ConnString != "" {
		db, err := sql.Open("postgres", cfg.Archive.ConnString)
		if err != nil {
			return fmt.Errorf("open archive: %w", err)
		}
		defer db.Close()
		opts = append(opts, picoscope.WithArchive(archive.NewPostgresArchive(db, cfg.Archive.Table)))
	}

	rig, err := picoscope.NewRig(cfg, sim.New(), obs, opts...)
	if err != nil {
		return fmt.Errorf("assemble rig: %w", err)
	}
	defer rig.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for i := 0; i < *count; i++ {
		set, err := rig.Capture(ctx)
		if err != nil {
			return fmt.Errorf("capture %d: %w", i+1, err)
		}
		fmt.Printf("capture %s: %d samples at %.2f ns/sample across %d channels\n",
			set.CaptureID, set.Samples, set.IntervalNS, len(set.Records))
		if set.Overflow.Any() {
			fmt.Printf("  overflow mask: %#04x\n", uint16(set.Overflow))
		}
	}
	return nil
}

func validateCommand(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	cfgPath := fs.String("config", "./data/config.yaml", "Path to configuration file to validate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := picoscope.LoadConfig(*cfgPath); err != nil {
		return err
	}
	fmt.Printf("config %s looks good\n", *cfgPath)
	return nil
}

func infoCommand(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	cfgPath := fs.String("config", "./data/config.yaml", "Path to rig configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := picoscope.LoadConfig(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	rig, err := picoscope.NewRig(cfg, sim.New(), nil)
	if err != nil {
		return fmt.Errorf("assemble rig: %w", err)
	}
	defer rig.Close()

	variant, err := rig.UnitInfo(picoscope.InfoVariant)
	if err != nil {
		return err
	}
	min, max := rig.ADCLimits()
	fmt.Printf("variant:    %s\n", variant)
	fmt.Printf("serial:     %s\n", rig.Serial())
	fmt.Printf("generation: %s\n", rig.Generation())
	fmt.Printf("resolution: %s\n", cfg.Device.Resolution)
	fmt.Printf("adc limits: [%d, %d]\n", min, max)
	fmt.Printf("channels:   %v\n", rig.EnabledChannels())
	return nil
}

func printUsage() {
	fmt.Printf(`picoctl

Usage:
  picoctl <command> [flags]

Commands:
  capture    Run one or more block captures against the simulated unit
  validate   Load and validate a config file without opening a device
  info       Open the unit and print its identity and ADC limits

Examples:
  picoctl capture -config ./data/config.yaml -count 3 -metrics
  picoctl validate -config ./data/config.yaml
  picoctl info -config ./data/config.yaml
`)
}
