package main

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/witnesspath/ingest"
	"github.com/katalvlaran/witnesspath/render"
	"github.com/katalvlaran/witnesspath/solve"
)

const maxSolutionsPrinted = 5

var (
	solvePuzzlePath   string
	solveConfigPath   string
	solveMaxSolutions int
	solveSVGOut       string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Enumerate solutions for a puzzle and print a summary",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solvePuzzlePath, "puzzle", "p", "", "path to a JSON puzzle file")
	solveCmd.Flags().StringVarP(&solveConfigPath, "config", "c", "", "path to a YAML run configuration (overrides --puzzle defaults)")
	solveCmd.Flags().IntVar(&solveMaxSolutions, "max-solutions", 0, "cap the number of solutions collected (0 = unlimited)")
	solveCmd.Flags().StringVar(&solveSVGOut, "svg-out", "", "write an SVG render of the first solution to this path")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := solve.DefaultConfig()
	puzzlePath := solvePuzzlePath
	svgOut := solveSVGOut

	if solveConfigPath != "" {
		rc, err := ingest.LoadRunConfig(solveConfigPath)
		if err != nil {
			return err
		}
		puzzlePath = rc.PuzzlePath
		cfg = rc.Solve
		if rc.Output == ingest.OutputSVG && svgOut == "" {
			svgOut = rc.SVGPath
		}
	}
	if puzzlePath == "" {
		return fmt.Errorf("witnessctl solve: --puzzle or --config is required")
	}
	if cmd.Flags().Changed("max-solutions") {
		cfg.MaxSolutions = solveMaxSolutions
	}

	p, err := ingest.LoadPuzzle(puzzlePath)
	if err != nil {
		return err
	}

	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	sp.Suffix = " solving..."
	if !verbose {
		sp.Start()
	}
	start := time.Now()
	res := solve.Solve(p, cfg)
	elapsed := time.Since(start)
	sp.Stop()

	if len(res.Solutions) > 0 {
		color.New(color.FgGreen, color.Bold).Println("SOLVED")
	} else {
		color.New(color.FgRed, color.Bold).Println("UNSOLVED")
	}
	fmt.Println(render.FormatSummary(len(res.Solutions), res.StatesVisited, res.Truncated, res.Warning))
	fmt.Printf("elapsed: %v\n", elapsed)

	for i, sol := range res.Solutions {
		if i >= maxSolutionsPrinted {
			fmt.Printf("... and %d more\n", len(res.Solutions)-maxSolutionsPrinted)
			break
		}
		fmt.Println(render.FormatPath(sol))
	}

	if svgOut != "" && len(res.Solutions) > 0 {
		if err := render.SaveSVG(p, res.Solutions[0], svgOut, render.DefaultSVGOptions()); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}

	return nil
}
