// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/svgpages/internal/svgdoc"
	"github.com/pdiddy/svgpages/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list <inputFile>",
	Short: "List the layers and pages of a drawing without rendering",
	Long: `List parses the drawing and prints its layers and the pages that an
export would render, in export order. Nothing is written to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

// listing is the structured output of list.
type listing struct {
	Input  string        `json:"input" yaml:"input"`
	Prefix string        `json:"prefix" yaml:"prefix"`
	Layers []types.Layer `json:"layers" yaml:"layers"`
	Pages  []types.Page  `json:"pages" yaml:"pages"`
}

func runList(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	prefix := viper.GetString("prefix")

	doc, err := svgdoc.Load(args[0])
	if err != nil {
		return err
	}
	pages, err := doc.Pages(prefix)
	if err != nil {
		return err
	}

	l := listing{Input: args[0], Prefix: prefix, Layers: doc.Layers(), Pages: pages}
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(l)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(l); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		writeListing(out, l)
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml or json", format)
	}
}

func writeListing(w io.Writer, l listing) {
	fmt.Fprintf(w, "Layers (%d):\n", len(l.Layers))
	for _, layer := range l.Layers {
		fmt.Fprintf(w, "  %s\n", layer.Label)
	}
	fmt.Fprintf(w, "Pages (%d, prefix %q):\n", len(l.Pages), l.Prefix)
	for i, p := range l.Pages {
		fmt.Fprintf(w, "  %3d  %-30s  %s\n", i+1, p.ID, p.Layer)
	}
}

func init() {
	listCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(listCmd)
}
