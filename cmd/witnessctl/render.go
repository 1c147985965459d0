package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/witnesspath/geom"
	"github.com/katalvlaran/witnesspath/ingest"
	"github.com/katalvlaran/witnesspath/render"
)

var (
	renderPuzzlePath string
	renderOut        string
	renderPath       string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Rasterise a puzzle, and optionally a path, to SVG",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderPuzzlePath, "puzzle", "p", "", "path to a JSON puzzle file (required)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "out.svg", "SVG output path")
	renderCmd.Flags().StringVar(&renderPath, "path", "", `solution path to overlay, e.g. "(0,0) UR"`)
	_ = renderCmd.MarkFlagRequired("puzzle")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	p, err := ingest.LoadPuzzle(renderPuzzlePath)
	if err != nil {
		return err
	}

	var path geom.Path
	if renderPath != "" {
		path, err = geom.ParsePath(renderPath)
		if err != nil {
			return err
		}
	}

	if err := render.SaveSVG(p, path, renderOut, render.DefaultSVGOptions()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", renderOut)
	return nil
}
