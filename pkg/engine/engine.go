// Package engine names the layout algorithms and abstracts how graph source
// reaches them. The [Runtime] interface carries DOT text across the engine
// boundary; [Graphviz] executes it in-process and [Exec] shells out to a
// locally installed binary.
package engine

import (
	"strings"

	"github.com/matzehuels/vizier/pkg/errors"
)

// Engine identifies a layout algorithm.
type Engine string

const (
	Dot       Engine = "dot"
	Neato     Engine = "neato"
	FDP       Engine = "fdp"
	SFDP      Engine = "sfdp"
	Twopi     Engine = "twopi"
	Circo     Engine = "circo"
	Osage     Engine = "osage"
	Patchwork Engine = "patchwork"
)

// Engines returns every known engine in display order.
func Engines() []Engine {
	return []Engine{Dot, Neato, FDP, SFDP, Twopi, Circo, Osage, Patchwork}
}

// ParseEngine resolves a name to an engine, ignoring case. Unknown names
// fail with INVALID_ENGINE.
func ParseEngine(s string) (Engine, error) {
	name := Engine(strings.ToLower(strings.TrimSpace(s)))
	for _, e := range Engines() {
		if e == name {
			return e, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidEngine, "unknown layout engine %q", s)
}

func (e Engine) String() string {
	return string(e)
}

// Description returns a one-line summary of what the engine is for.
func (e Engine) Description() string {
	switch e {
	case Dot:
		return "hierarchical layouts of directed graphs"
	case Neato:
		return "spring-model layouts"
	case FDP:
		return "force-directed placement"
	case SFDP:
		return "multiscale force-directed placement for large graphs"
	case Twopi:
		return "radial layouts"
	case Circo:
		return "circular layouts"
	case Osage:
		return "clustered array layouts"
	case Patchwork:
		return "squarified treemaps"
	default:
		return ""
	}
}
