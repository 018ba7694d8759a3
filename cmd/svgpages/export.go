// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/svgpages/internal/convert"
	"github.com/pdiddy/svgpages/internal/pdf"
	"github.com/pdiddy/svgpages/internal/toolchain"
	"github.com/pdiddy/svgpages/pkg/types"
)

// exportFlags are bound to viper keys of the same name.
var exportFlags = []string{"tmp-dir", "output", "inkscape", "merger", "pdfunite", "keep-temp", "verify"}

func init() {
	defaults := types.DefaultExportConfig()

	f := rootCmd.Flags()
	f.String("tmp-dir", defaults.TempDir, "directory for the temporary SVG and per-page PDFs")
	f.StringP("output", "o", "", "merged PDF path (default: <inputDir>/<name>.pdf)")
	f.String("inkscape", defaults.Inkscape, "inkscape binary")
	f.String("merger", string(defaults.Merger), "merge backend: pdfunite or pdfcpu")
	f.String("pdfunite", defaults.Pdfunite, "pdfunite binary")
	f.Bool("keep-temp", false, "keep the temporary SVG and per-page PDFs")
	f.Bool("verify", false, "check the page count of the merged PDF")

	for _, key := range exportFlags {
		_ = viper.BindPFlag(key, f.Lookup(key))
	}
	viper.SetDefault("tmp-dir", defaults.TempDir)
	viper.SetDefault("inkscape", defaults.Inkscape)
	viper.SetDefault("merger", string(defaults.Merger))
	viper.SetDefault("pdfunite", defaults.Pdfunite)
}

// exportConfig assembles the export configuration from flags, environment
// and config file.
func exportConfig() types.ExportConfig {
	return types.ExportConfig{
		Prefix:   viper.GetString("prefix"),
		TempDir:  viper.GetString("tmp-dir"),
		Output:   viper.GetString("output"),
		Inkscape: viper.GetString("inkscape"),
		Merger:   types.MergeBackend(viper.GetString("merger")),
		Pdfunite: viper.GetString("pdfunite"),
		KeepTemp: viper.GetBool("keep-temp"),
		Verify:   viper.GetBool("verify"),
	}
}

func newMerger(cfg types.ExportConfig) (convert.Merger, error) {
	switch cfg.Merger {
	case types.MergePdfcpu:
		return pdf.NewMerger(), nil
	case types.MergePdfunite:
		return toolchain.NewPdfunite(cfg.Pdfunite)
	default:
		return nil, fmt.Errorf("unknown merger %q", cfg.Merger)
	}
}

func runExport(cmd *cobra.Command, input string) error {
	cfg := exportConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	inkscape, err := toolchain.DetectInkscape(ctx, cfg.Inkscape)
	if err != nil {
		return err
	}
	merger, err := newMerger(cfg)
	if err != nil {
		return err
	}

	exp, err := convert.NewExporter(cfg, inkscape, merger, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if cfg.Verify {
		exp.CountPages = pdf.PageCount
	}

	res, err := exp.Export(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", res.Output)
	return nil
}
