package deploy

import (
	"os"
	"path/filepath"

	"github.com/mizuki0629/rrcm/pkg/errors"
	"github.com/mizuki0629/rrcm/pkg/logging"
	"github.com/mizuki0629/rrcm/pkg/platform"
)

// Unit is one deployment unit: an immediate child of a source target
// directory, linked as a whole into the destination root under its own
// name.
type Unit struct {
	Name   string
	Source string
	Dest   string
}

// PlannedUnit is a unit with its classification. Err carries a per-unit
// planning failure; such units are reported but never abort the plan.
type PlannedUnit struct {
	Unit
	State LinkState
	Cause string
	Err   error
}

// Plan is the ordered classification of every unit of one deployment
// target. It is rebuilt from scratch on every invocation and never
// persisted.
type Plan struct {
	Target    string
	SourceDir string
	DestRoot  string
	Units     []PlannedUnit
}

// Conflicts returns the units classified as conflicting.
func (p *Plan) Conflicts() []PlannedUnit {
	var out []PlannedUnit
	for _, u := range p.Units {
		if u.State == StateConflict {
			out = append(out, u)
		}
	}
	return out
}

// Planner builds deployment plans. Classification is read-only.
type Planner struct {
	caseFold bool
}

// NewPlanner returns a planner comparing link targets with the case
// sensitivity of the given OS's default filesystem.
func NewPlanner(osName platform.OS) *Planner {
	return &Planner{caseFold: osName.CaseInsensitiveFS()}
}

// Plan enumerates the immediate children of sourceDir and classifies each
// against destRoot. Descendants are never visited; a subdirectory is one
// unit. The error return is reserved for failures reading sourceDir
// itself.
func (p *Planner) Plan(target, sourceDir, destRoot string) (*Plan, error) {
	logger := logging.GetLogger("planner")

	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPlanning, "cannot absolutize %s", sourceDir)
	}

	entries, err := os.ReadDir(absSource)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPlanning, "cannot read source directory %s", absSource)
	}

	plan := &Plan{
		Target:    target,
		SourceDir: absSource,
		DestRoot:  destRoot,
	}

	for _, entry := range entries {
		unit := Unit{
			Name:   entry.Name(),
			Source: filepath.Join(absSource, entry.Name()),
			Dest:   filepath.Join(destRoot, entry.Name()),
		}

		state, cause, err := classify(unit.Source, unit.Dest, p.caseFold)
		if err != nil {
			logger.Warn().Err(err).Str("unit", unit.Name).Msg("Failed to classify unit")
		}
		plan.Units = append(plan.Units, PlannedUnit{
			Unit:  unit,
			State: state,
			Cause: cause,
			Err:   err,
		})
	}

	logger.Debug().
		Str("target", target).
		Str("source", absSource).
		Str("dest", destRoot).
		Int("units", len(plan.Units)).
		Msg("Plan built")

	return plan, nil
}
