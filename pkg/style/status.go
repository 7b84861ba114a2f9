package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/mizuki0629/rrcm/pkg/deploy"
)

// StateStyle returns the pterm style for a link state.
func StateStyle(state deploy.LinkState) *pterm.Style {
	switch state {
	case deploy.StateDeployed:
		return pterm.NewStyle(pterm.FgGreen)
	case deploy.StateUndeployed:
		return pterm.NewStyle(pterm.FgYellow)
	case deploy.StateConflict:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// OutcomeStyle returns the pterm style for an execution outcome.
func OutcomeStyle(outcome deploy.Outcome) *pterm.Style {
	switch outcome {
	case deploy.OutcomeLinked, deploy.OutcomeReplaced, deploy.OutcomeUnlinked:
		return pterm.NewStyle(pterm.FgGreen)
	case deploy.OutcomeSkipped:
		return pterm.NewStyle(pterm.FgGray)
	case deploy.OutcomeFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// RenderUnitStatus renders one planned unit as a status line, with the
// conflict cause as a trailing annotation when there is one.
func RenderUnitStatus(u deploy.PlannedUnit) string {
	state := fmt.Sprintf("%-10s", u.State.String())
	line := fmt.Sprintf("    %s : %s", StateStyle(u.State).Sprint(state), u.Name)
	if u.State == deploy.StateConflict && u.Cause != "" {
		line += " " + MutedStyle.Render("("+u.Cause+")")
	}
	if u.Err != nil {
		line += " " + ConflictStyle.Render(u.Err.Error())
	}
	return line
}

// RenderPlan renders a whole target plan: a header naming the target and
// its destination, followed by one line per unit.
func RenderPlan(repo string, p *deploy.Plan) string {
	var b strings.Builder

	header := fmt.Sprintf("%s/%s", repo, p.Target)
	b.WriteString(TitleStyle.Render(header))
	b.WriteString(" " + MutedStyle.Render("=> "+p.DestRoot))
	b.WriteString("\n")

	if len(p.Units) == 0 {
		b.WriteString(MutedStyle.Render("    (empty)"))
		return b.String()
	}
	for _, u := range p.Units {
		b.WriteString(RenderUnitStatus(u))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderResult renders one execution result line.
func RenderResult(r deploy.Result) string {
	outcome := fmt.Sprintf("%-10s", r.Outcome.String())
	line := fmt.Sprintf("    %s : %s", OutcomeStyle(r.Outcome).Sprint(outcome), r.Name)
	switch {
	case r.Err != nil:
		line += " " + ConflictStyle.Render(r.Err.Error())
	case r.Outcome == deploy.OutcomeReplaced && r.TrashedTo != "":
		line += " " + MutedStyle.Render("(previous entry moved to "+r.TrashedTo+")")
	}
	return line
}

// RenderReport renders a whole execution report for one target.
func RenderReport(repo string, rep *deploy.Report) string {
	var b strings.Builder

	header := fmt.Sprintf("%s/%s", repo, rep.Target)
	b.WriteString(TitleStyle.Render(header))
	b.WriteString("\n")
	for _, r := range rep.Results {
		b.WriteString(RenderResult(r))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
