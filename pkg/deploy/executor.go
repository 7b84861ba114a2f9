package deploy

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mizuki0629/rrcm/pkg/errors"
	"github.com/mizuki0629/rrcm/pkg/logging"
	"github.com/mizuki0629/rrcm/pkg/trash"
)

// Outcome is the result of executing one planned unit.
type Outcome int

const (
	// OutcomeLinked means a new symlink was created.
	OutcomeLinked Outcome = iota

	// OutcomeSkipped means the destination was already correct.
	OutcomeSkipped

	// OutcomeReplaced means a conflicting entry was moved to the trash
	// and the symlink was created in its place.
	OutcomeReplaced

	// OutcomeUnlinked means a deployed symlink was removed.
	OutcomeUnlinked

	// OutcomeFailed means the unit could not be processed. Siblings are
	// unaffected.
	OutcomeFailed
)

// String implements fmt.Stringer
func (o Outcome) String() string {
	switch o {
	case OutcomeLinked:
		return "Linked"
	case OutcomeSkipped:
		return "Skipped"
	case OutcomeReplaced:
		return "Replaced"
	case OutcomeUnlinked:
		return "Unlinked"
	case OutcomeFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the outcome for one unit.
type Result struct {
	PlannedUnit
	Outcome   Outcome
	TrashedTo string
	Err       error
}

// Report collects the per-unit results of applying one plan. The batch
// always runs to completion; failures are collected, not propagated.
type Report struct {
	Target  string
	Results []Result
}

// Failed reports whether any unit failed.
func (r *Report) Failed() bool {
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailed {
			return true
		}
	}
	return false
}

// Executor applies deployment plans to the filesystem.
type Executor struct {
	trash *trash.Trash
	force bool
}

// NewExecutor returns an executor. Conflicting destination entries are
// displaced into tr only when force is set; otherwise a conflict is a
// per-unit failure. Nothing is ever overwritten in place.
func NewExecutor(tr *trash.Trash, force bool) *Executor {
	return &Executor{trash: tr, force: force}
}

// Apply executes every unit of the plan in order, independently. A
// failing unit never blocks the remaining ones.
func (e *Executor) Apply(plan *Plan) *Report {
	logger := logging.GetLogger("executor")
	report := &Report{Target: plan.Target}

	for _, unit := range plan.Units {
		result := e.applyUnit(unit)
		if result.Err != nil {
			logger.Warn().Err(result.Err).Str("unit", unit.Name).Msg("Unit failed")
		} else {
			logger.Debug().
				Str("unit", unit.Name).
				Str("outcome", result.Outcome.String()).
				Msg("Unit processed")
		}
		report.Results = append(report.Results, result)
	}

	return report
}

func (e *Executor) applyUnit(unit PlannedUnit) Result {
	if unit.Err != nil {
		return Result{PlannedUnit: unit, Outcome: OutcomeFailed, Err: unit.Err}
	}

	switch unit.State {
	case StateDeployed:
		return Result{PlannedUnit: unit, Outcome: OutcomeSkipped}

	case StateUndeployed:
		if err := e.link(unit); err != nil {
			return Result{PlannedUnit: unit, Outcome: OutcomeFailed, Err: err}
		}
		return Result{PlannedUnit: unit, Outcome: OutcomeLinked}

	case StateConflict:
		if !e.force {
			err := errors.Newf(errors.ErrConflict, "%s: %s (use --force to move it to the trash)", unit.Dest, unit.Cause)
			return Result{PlannedUnit: unit, Outcome: OutcomeFailed, Err: err}
		}
		trashedTo, err := e.trash.Put(unit.Dest)
		if err != nil {
			// Never overwrite in place: the conflicting entry stays
			// where it is and the symlink is not created.
			return Result{PlannedUnit: unit, Outcome: OutcomeFailed, Err: err}
		}
		if err := e.link(unit); err != nil {
			return Result{PlannedUnit: unit, Outcome: OutcomeFailed, TrashedTo: trashedTo, Err: err}
		}
		return Result{PlannedUnit: unit, Outcome: OutcomeReplaced, TrashedTo: trashedTo}

	default:
		return Result{
			PlannedUnit: unit,
			Outcome:     OutcomeFailed,
			Err:         errors.Newf(errors.ErrInternal, "unknown state %v", unit.State),
		}
	}
}

// link creates the symlink for a unit, creating destination parents as
// needed. Parent creation is non-destructive: it fails when a component
// exists as a non-directory.
func (e *Executor) link(unit PlannedUnit) error {
	if err := os.MkdirAll(filepath.Dir(unit.Dest), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent directory for %s", unit.Dest)
	}

	if err := os.Symlink(unit.Source, unit.Dest); err != nil {
		if os.IsPermission(err) {
			msg := "cannot create symlink %s"
			if runtime.GOOS == "windows" {
				msg = "cannot create symlink %s (directory symlinks on Windows require elevation)"
			}
			return errors.Wrapf(err, errors.ErrPermission, msg, unit.Dest)
		}
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot create symlink %s", unit.Dest)
	}
	return nil
}

// Unlink removes the symlinks of units classified as deployed. Anything
// not deployed is left untouched and reported as skipped.
func (e *Executor) Unlink(plan *Plan) *Report {
	logger := logging.GetLogger("executor")
	report := &Report{Target: plan.Target}

	for _, unit := range plan.Units {
		result := Result{PlannedUnit: unit}
		switch {
		case unit.Err != nil:
			result.Outcome = OutcomeFailed
			result.Err = unit.Err
		case unit.State == StateDeployed:
			if err := os.Remove(unit.Dest); err != nil {
				result.Outcome = OutcomeFailed
				result.Err = errors.Wrapf(err, errors.ErrFileAccess, "cannot remove %s", unit.Dest)
			} else {
				result.Outcome = OutcomeUnlinked
				logger.Debug().Str("unit", unit.Name).Msg("Removed symlink")
			}
		default:
			result.Outcome = OutcomeSkipped
		}
		report.Results = append(report.Results, result)
	}

	return report
}
