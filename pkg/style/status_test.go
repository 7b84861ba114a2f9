package style

import (
	"testing"

	"github.com/mizuki0629/rrcm/pkg/deploy"
	"github.com/mizuki0629/rrcm/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func unit(name string, state deploy.LinkState, cause string) deploy.PlannedUnit {
	return deploy.PlannedUnit{
		Unit:  deploy.Unit{Name: name, Source: "/repo/config/" + name, Dest: "/home/u/.config/" + name},
		State: state,
		Cause: cause,
	}
}

func TestRenderUnitStatus(t *testing.T) {
	line := RenderUnitStatus(unit("tmux", deploy.StateDeployed, ""))
	assert.Contains(t, line, "Deployed")
	assert.Contains(t, line, "tmux")
}

func TestRenderUnitStatusConflictShowsCause(t *testing.T) {
	line := RenderUnitStatus(unit("nvim", deploy.StateConflict, "other file exists"))
	assert.Contains(t, line, "Conflict")
	assert.Contains(t, line, "other file exists")
}

func TestRenderPlan(t *testing.T) {
	plan := &deploy.Plan{
		Target:   "config",
		DestRoot: "/home/u/.config",
		Units: []deploy.PlannedUnit{
			unit("tmux", deploy.StateDeployed, ""),
			unit("nvim", deploy.StateUndeployed, ""),
		},
	}
	out := RenderPlan("main", plan)
	assert.Contains(t, out, "main/config")
	assert.Contains(t, out, "/home/u/.config")
	assert.Contains(t, out, "tmux")
	assert.Contains(t, out, "UnDeployed")
}

func TestRenderPlanEmpty(t *testing.T) {
	plan := &deploy.Plan{Target: "config", DestRoot: "/home/u/.config"}
	assert.Contains(t, RenderPlan("main", plan), "(empty)")
}

func TestRenderResult(t *testing.T) {
	r := deploy.Result{
		PlannedUnit: unit("tmux", deploy.StateUndeployed, ""),
		Outcome:     deploy.OutcomeLinked,
	}
	assert.Contains(t, RenderResult(r), "Linked")

	r.Outcome = deploy.OutcomeFailed
	r.Err = errors.New(errors.ErrConflict, "nvim already exists")
	assert.Contains(t, RenderResult(r), "already exists")
}

func TestRenderReport(t *testing.T) {
	rep := &deploy.Report{
		Target: "config",
		Results: []deploy.Result{
			{PlannedUnit: unit("tmux", deploy.StateUndeployed, ""), Outcome: deploy.OutcomeLinked},
		},
	}
	out := RenderReport("main", rep)
	assert.Contains(t, out, "main/config")
	assert.Contains(t, out, "tmux")
}
