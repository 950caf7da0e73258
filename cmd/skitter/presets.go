package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/oomph-ac/skitter/terrain"
	"github.com/spf13/cobra"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the environment presets and the biome each one walks on",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tBIOME")
			for _, p := range terrain.Presets {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, p.Biome)
			}
			return w.Flush()
		},
	}
}
