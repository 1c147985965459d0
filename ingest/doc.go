// Package ingest reads puzzles and run configuration from the outside
// world: an interleaved-grid JSON schema, and a YAML run configuration
// that pairs a puzzle file with a solve.Config.
//
// JSON decoding reaches for nothing but encoding/json. Run configuration
// is a tagged struct loaded with gopkg.in/yaml.v3.
package ingest
