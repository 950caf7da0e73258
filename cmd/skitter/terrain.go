package main

import (
	"io"
	"os"

	json "github.com/json-iterator/go"
	"github.com/oomph-ac/skitter/terrain"
	"github.com/spf13/cobra"
)

func newTerrainCmd() *cobra.Command {
	var (
		out      string
		size     float64
		segments int
	)
	cmd := &cobra.Command{
		Use:   "terrain",
		Short: "Sample the configured biome into a heightfield and write it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			biome, err := app.settings.Scene.Ground()
			if err != nil {
				return err
			}
			app.log.Infof("sampling %s terrain (size=%.0f segments=%d)", biome, size, segments)
			field := terrain.Sample(biome, size, segments)

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return json.NewEncoder(w).Encode(field)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().Float64Var(&size, "size", terrain.DefaultFieldSize, "edge length of the sampled square")
	cmd.Flags().IntVar(&segments, "segments", terrain.DefaultFieldSegments, "cells per edge")
	cmd.Flags().String("biome", "", "biome to sample, overrides the preset")
	cmd.Flags().String("preset", "", "environment preset")
	return cmd
}
