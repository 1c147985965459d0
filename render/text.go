package render

import (
	"fmt"

	"github.com/katalvlaran/witnesspath/geom"
)

// FormatPath renders p as its start vertex followed by one direction
// letter per step.
func FormatPath(p geom.Path) string {
	return p.Format()
}

// FormatSummary renders a one-line human summary of a solve run: solution
// count, states visited, and (if truncated) the safety-bound warning.
func FormatSummary(solutionCount, statesVisited int, truncated bool, warning string) string {
	s := fmt.Sprintf("%d solution(s), %d states visited", solutionCount, statesVisited)
	if truncated {
		s += fmt.Sprintf(" (%s)", warning)
	}
	return s
}
