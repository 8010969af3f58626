package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/andareed/popviz/animation"
	"github.com/andareed/popviz/dashboard"
	"github.com/andareed/popviz/fetch"
	"github.com/andareed/popviz/logging"
	"github.com/andareed/popviz/selection"
	"github.com/andareed/popviz/server"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

const defaultSource = "http://localhost:8080"

var (
	logFile      string
	tickInterval time.Duration
	topN         int
	boundaryPath string

	serveAddr string
	serveData string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "popviz [source]",
		Short: "Explore world population data in the terminal",
		Long: `popviz loads a population dataset from a popviz server URL or a JSON
payload file and shows it as line, pie, bar and map views.`,
		Args:    cobra.MaximumNArgs(1),
		Version: Version,
		RunE:    runTUI,
	}
	rootCmd.Flags().StringVar(&logFile, "debug", "", "Write debug logs to file")
	rootCmd.Flags().DurationVar(&tickInterval, "tick", animation.DefaultInterval, "Playback step interval")
	rootCmd.Flags().IntVar(&topN, "top", selection.DefaultTopN, "Countries selected on first load")
	rootCmd.Flags().StringVar(&boundaryPath, "boundaries", "", "GeoJSON country boundaries used by map exports")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a population dataset over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&serveData, "data", "", "Dataset file (.json payload or long-format .csv)")
	serveCmd.Flags().StringVar(&logFile, "debug", "", "Write debug logs to file")
	_ = serveCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cleanup, err := logging.SetupLogging(logFile)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer cleanup()

	location := defaultSource
	if len(args) == 1 {
		location = args[0]
	}
	log.Printf("popviz: started, source %s", location)

	var boundaries []byte
	if boundaryPath != "" {
		boundaries, err = os.ReadFile(boundaryPath)
		if err != nil {
			return fmt.Errorf("read boundaries: %w", err)
		}
	}

	m := newModel(fetch.New(location), dashboard.Options{
		Interval: tickInterval,
		TopN:     topN,
	})
	m.boundaries = boundaries

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Printf("Tea program error: %v", err)
		return err
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	if logFile == "" {
		logging.SetupServerLogging(os.Stderr)
	} else {
		cleanup, err := logging.SetupLogging(logFile)
		if err != nil {
			return fmt.Errorf("failed to setup logging: %w", err)
		}
		defer cleanup()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(os.Stderr)
	fmt.Fprintf(cmd.OutOrStdout(), "popviz: serving %s on %s\n", serveData, serveAddr)
	return srv.Run(ctx, serveAddr, server.Load(serveData))
}
