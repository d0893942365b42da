package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/odvcencio/furry-state/state"
)

type dump struct {
	Title  *state.Value[string]       `json:"title" yaml:"title"`
	Items  *state.List[string]        `json:"items" yaml:"items"`
	Events []state.ListChange[string] `json:"events" yaml:"events"`
}

func dumpCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print a serialized value, list and recorded change events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDump(cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: json or yaml")
	return cmd
}

func runDump(w io.Writer, format string) error {
	d := dump{Title: state.NewValue(state.WithValue("inbox"))}
	d.Items = state.NewList(state.WithOnListChange(func(change state.ListChange[string]) {
		d.Events = append(d.Events, change)
	}))
	d.Items.AppendAll("a", "b")
	d.Items.Remove("a")

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
