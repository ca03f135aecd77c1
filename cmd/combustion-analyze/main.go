package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/d21d3q/gocombustion/internal/config"
	"github.com/d21d3q/gocombustion/pkg/gocombustion"
)

var (
	rootCmd = &cobra.Command{
		Use:   "combustion-analyze [hex]",
		Short: "Decode temperature probe advertisement packets",
		Long:  "combustion-analyze decodes probe advertisement packets using the gocombustion library.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if len(args) == 0 {
				return runInteractive(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), settings)
			}
			return runAnalyze(ctx, cmd.OutOrStdout(), settings, args[0])
		},
	}

	configPath string
	serialHex  string
	format     string
	logLevel   string
)

type settings struct {
	opts   gocombustion.AnalyzeOptions
	format gocombustion.Format
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default ./combustion.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&serialHex, "serial", "", "only accept packets from this serial number (8 hex digits)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format: json, yaml or cbor")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

// resolveSettings merges the config file and environment with flags; flags win.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return settings{}, err
	}
	flags := cmd.PersistentFlags()
	if flags.Changed("serial") {
		cfg.Serial = serialHex
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return settings{}, fmt.Errorf("log level: %w", err)
	}
	logrus.SetLevel(level)

	f, err := gocombustion.ParseFormat(cfg.Output.Format)
	if err != nil {
		return settings{}, err
	}
	logrus.WithFields(logrus.Fields{
		"format": f,
		"serial": cfg.Serial,
	}).Debug("analyzer configured")
	return settings{opts: gocombustion.AnalyzeOptions{Serial: cfg.Serial}, format: f}, nil
}

func runInteractive(ctx context.Context, in io.Reader, out io.Writer, s settings) error {
	scanner := bufio.NewScanner(in)
	logrus.Info("combustion analyze mode. Paste a hex packet and press Enter (Ctrl+D to exit).")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runAnalyze(ctx, out, s, line); err != nil {
			logrus.WithError(err).Error("failed to decode packet")
		}
	}
	return scanner.Err()
}

func runAnalyze(ctx context.Context, out io.Writer, s settings, hex string) error {
	result, err := gocombustion.AnalyzeHexWithOptions(ctx, hex, s.opts)
	if err != nil {
		return err
	}
	rendered, err := result.Render(s.format)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, rendered)
	return nil
}
