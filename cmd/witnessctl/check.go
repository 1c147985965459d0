package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/witnesspath/geom"
	"github.com/katalvlaran/witnesspath/ingest"
	"github.com/katalvlaran/witnesspath/validate"
)

var (
	checkPuzzlePath string
	checkPathStr    string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether a given path solves a puzzle",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkPuzzlePath, "puzzle", "p", "", "path to a JSON puzzle file (required)")
	checkCmd.Flags().StringVar(&checkPathStr, "path", "", `candidate path, e.g. "(0,0) UR" (required)`)
	_ = checkCmd.MarkFlagRequired("puzzle")
	_ = checkCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, err := ingest.LoadPuzzle(checkPuzzlePath)
	if err != nil {
		return err
	}

	path, err := geom.ParsePath(checkPathStr)
	if err != nil {
		return err
	}

	if validate.IsSolution(p, path) {
		color.New(color.FgGreen, color.Bold).Println("OK: this path solves the puzzle")
		return nil
	}
	color.New(color.FgRed, color.Bold).Println("FAIL: this path does not solve the puzzle")
	return fmt.Errorf("witnessctl check: path does not solve puzzle")
}
