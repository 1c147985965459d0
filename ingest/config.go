package ingest

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/witnesspath/solve"
)

// OutputFormat selects how a solved puzzle is rendered by the CLI.
type OutputFormat string

const (
	// OutputText prints paths as start-vertex-plus-letters.
	OutputText OutputFormat = "text"
	// OutputSVG rasterizes the puzzle and its first solution to SVG.
	OutputSVG OutputFormat = "svg"
)

// RunConfig is the thing a solver run actually reads from a -config flag:
// which puzzle to load, which pruners to enable, and how to print the
// result. A tagged struct carrying both yaml and json tags so the same
// type round-trips through either format.
type RunConfig struct {
	// PuzzlePath is the JSON puzzle file to load.
	PuzzlePath string `yaml:"puzzlePath" json:"puzzlePath"`

	// Solve holds the enumerator's pruner toggles and solution cap.
	Solve solve.Config `yaml:"solve" json:"solve"`

	// Output selects text or SVG rendering of the result.
	Output OutputFormat `yaml:"output" json:"output"`

	// SVGPath is where the SVG render is written, when Output is
	// OutputSVG. Ignored otherwise.
	SVGPath string `yaml:"svgPath,omitempty" json:"svgPath,omitempty"`
}

// LoadRunConfig reads and parses a YAML run configuration file.
func LoadRunConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, errf(err, "reading run config %q", path)
	}

	cfg := RunConfig{Solve: solve.DefaultConfig(), Output: OutputText}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, errf(err, "parsing run config YAML")
	}
	if cfg.PuzzlePath == "" {
		return RunConfig{}, errf(nil, "run config missing puzzlePath")
	}
	return cfg, nil
}
