package solver

import (
	"encoding/json"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"

	errs "github.com/limaJavier/regroup/pkg/errors"
)

// Input describes one problem instance: n entities, the minimum group size
// and the pairs that must never be grouped together (already grouped in the
// past, or incompatible). Labels are optional entity names used only for
// rendering; when present there must be exactly one per entity.
type Input struct {
	Entities     int      `mapstructure:"entities" toml:"entities"`
	MinGroupSize int      `mapstructure:"minGroupSize" toml:"min-group-size"`
	Conflicts    [][2]int `mapstructure:"conflicts" toml:"conflicts"`
	Labels       []string `mapstructure:"labels" toml:"labels"`
}

// InputFromJSON reads a problem instance from a JSON file.
func InputFromJSON(file string) (Input, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Input{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "cannot read instance file %v", file)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Input{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "cannot parse instance file %v", file)
	}

	var input Input
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return Input{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "cannot decode instance file %v", file)
	}

	return input, nil
}

// InputFromTOML reads a problem instance from a TOML file.
func InputFromTOML(file string) (Input, error) {
	var input Input
	if _, err := toml.DecodeFile(file, &input); err != nil {
		return Input{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "cannot decode instance file %v", file)
	}
	return input, nil
}

// validate rejects parameter combinations before any search work starts.
// Conflict well-formedness is checked by graph.New at state construction.
func (input Input) validate() error {
	if input.MinGroupSize < 2 {
		return errs.New(errs.ErrCodeInvalidParameter, "minimum group size must be at least 2, got %d", input.MinGroupSize)
	}
	if input.Entities < input.MinGroupSize {
		return errs.New(errs.ErrCodeInvalidParameter, "entity count %d is smaller than the minimum group size %d", input.Entities, input.MinGroupSize)
	}
	if len(input.Labels) > 0 && len(input.Labels) != input.Entities {
		return errs.New(errs.ErrCodeInvalidParameter, "expected %d labels, got %d", input.Entities, len(input.Labels))
	}
	return nil
}
