package solver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/limaJavier/regroup/pkg/errors"
)

func writeInstanceFile(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	require.Nil(t, os.WriteFile(file, []byte(content), 0644))
	return file
}

func TestInputFromJSON(t *testing.T) {
	t.Run("Complete instance", func(t *testing.T) {
		file := writeInstanceFile(t, "instance.json", `{
			"entities": 5,
			"minGroupSize": 2,
			"conflicts": [[0, 1], [2, 3]],
			"labels": ["ana", "ben", "carla", "dani", "eva"]
		}`)

		input, err := InputFromJSON(file)

		require.Nil(t, err)
		assert.Equal(t, Input{
			Entities:     5,
			MinGroupSize: 2,
			Conflicts:    [][2]int{{0, 1}, {2, 3}},
			Labels:       []string{"ana", "ben", "carla", "dani", "eva"},
		}, input)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := InputFromJSON(filepath.Join(t.TempDir(), "nope.json"))

		require.NotNil(t, err)
		assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput))
	})

	t.Run("Malformed json", func(t *testing.T) {
		file := writeInstanceFile(t, "broken.json", `{"entities": `)

		_, err := InputFromJSON(file)

		require.NotNil(t, err)
		assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput))
	})
}

func TestInputFromTOML(t *testing.T) {
	t.Run("Complete instance", func(t *testing.T) {
		file := writeInstanceFile(t, "instance.toml", `
entities = 4
min-group-size = 2
conflicts = [[0, 1]]
labels = ["ana", "ben", "carla", "dani"]
`)

		input, err := InputFromTOML(file)

		require.Nil(t, err)
		assert.Equal(t, Input{
			Entities:     4,
			MinGroupSize: 2,
			Conflicts:    [][2]int{{0, 1}},
			Labels:       []string{"ana", "ben", "carla", "dani"},
		}, input)
	})

	t.Run("Malformed toml", func(t *testing.T) {
		file := writeInstanceFile(t, "broken.toml", `entities = = 4`)

		_, err := InputFromTOML(file)

		require.NotNil(t, err)
		assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput))
	})
}

func TestInputValidate(t *testing.T) {
	scenarios := []struct {
		name  string
		input Input
		code  errs.Code
	}{
		{"valid", Input{Entities: 4, MinGroupSize: 2}, ""},
		{"valid with labels", Input{Entities: 2, MinGroupSize: 2, Labels: []string{"a", "b"}}, ""},
		{"group size below two", Input{Entities: 4, MinGroupSize: 0}, errs.ErrCodeInvalidParameter},
		{"not enough entities", Input{Entities: 1, MinGroupSize: 2}, errs.ErrCodeInvalidParameter},
		{"label mismatch", Input{Entities: 4, MinGroupSize: 2, Labels: []string{"a"}}, errs.ErrCodeInvalidParameter},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			err := scenario.input.validate()

			if scenario.code == "" {
				assert.Nil(t, err)
			} else {
				assert.Equal(t, scenario.code, errs.GetCode(err))
			}
		})
	}
}
