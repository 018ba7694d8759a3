// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the svgpages CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/svgpages/internal/ctxlog"
	"github.com/pdiddy/svgpages/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd exports a drawing when given an input file.
var rootCmd = &cobra.Command{
	Use:   "svgpages <inputFile>",
	Short: "Export the page groups of an Inkscape SVG to one PDF",
	Long: `svgpages renders every group whose id starts with the page prefix
(default "page_") inside the layers of an Inkscape drawing as a separate PDF
page, and merges the pages in identifier order into <inputDir>/<name>.pdf.

Each page is rendered on its own: the other page groups are removed and the
page's transform is cleared so it lands at the document origin. Rendering
uses inkscape; merging uses pdfunite or the built-in pdfcpu backend.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := ctxlog.ParseLevel(viper.GetString("log-level"))
		if err != nil {
			return err
		}
		logger := ctxlog.New(cmd.ErrOrStderr(), level)
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Without an input file print usage and exit successfully.
		if len(args) == 0 {
			if cmd.Flags().NFlag() > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No SVG file given")
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return err
		}
		return runExport(cmd, args[0])
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./svgpages.yaml or ~/.config/svgpages/svgpages.yaml)")
	pf.String("prefix", types.DefaultPrefix, "group id prefix that marks a page")
	pf.String("log-level", "info", "log level: debug, info, warn, or error")

	for _, key := range []string{"prefix", "log-level"} {
		_ = viper.BindPFlag(key, pf.Lookup(key))
	}
	viper.SetDefault("prefix", types.DefaultPrefix)
	viper.SetDefault("log-level", "info")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("svgpages")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "svgpages"))
		}
	}

	viper.SetEnvPrefix("SVGPAGES")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
