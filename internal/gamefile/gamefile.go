// Package gamefile loads numbers-game runs described in YAML and
// executes them against the engine. A game file carries the structural
// matrix, the starting position and an optional firing list:
//
//	name: a4 demo
//	matrix:
//	  - [1, 3, 2, 2]
//	  - [3, 1, 3, 2]
//	  - [2, 3, 1, 3]
//	  - [2, 2, 3, 1]
//	position: [1, 1, 1, 1]
//	fire: [0, 2, 3]
//
// An absent or empty fire list runs the identity. Domain validation
// (matrix shape, entry domain, node ranges) is deferred to Run so parse
// errors and game errors stay distinguishable.
package gamefile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/coxeter/coxmat"
	"github.com/katalvlaran/coxeter/numgame"
)

// Game is the YAML shape of one numbers-game run.
type Game struct {
	// Name optionally labels the run; cosmetic only.
	Name string `yaml:"name,omitempty"`

	// Matrix holds the structural (Coxeter) matrix rows.
	Matrix [][]int `yaml:"matrix"`

	// Position is the starting chamber state, one value per generator.
	Position []int64 `yaml:"position"`

	// Fire lists node indices to fire left to right; empty means identity.
	Fire []int `yaml:"fire,omitempty"`
}

// Parse decodes a YAML game description. Only YAML-level failures are
// reported here; domain validation happens in Run.
func Parse(data []byte) (*Game, error) {
	var g Game
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("gamefile: parse: %w", err)
	}

	return &g, nil
}

// Load reads and parses the game file at path.
func Load(path string) (*Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gamefile: read %s: %w", path, err)
	}

	return Parse(data)
}

// Run builds the structural matrix and applies the firing list to the
// starting position. Engine sentinels (coxmat.*, numgame.*) propagate
// unchanged so callers can match them with errors.Is.
func (g *Game) Run() (numgame.Position, error) {
	m, err := coxmat.New(g.Matrix)
	if err != nil {
		return nil, err
	}

	return numgame.FireSequence(m, numgame.Sequence(g.Fire...), numgame.Position(g.Position))
}

// RunNode fires a single node on the starting position, ignoring the
// file's firing list.
func (g *Game) RunNode(node int) (numgame.Position, error) {
	m, err := coxmat.New(g.Matrix)
	if err != nil {
		return nil, err
	}

	return numgame.FireNode(m, node, numgame.Position(g.Position))
}
