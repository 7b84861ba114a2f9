// Package core orchestrates deployment across the configured repositories:
// it resolves each deployment target for the current OS, plans the link
// state of every unit and hands the plans to the executor or the status
// display. Failures are scoped: an unresolvable target never aborts its
// siblings, and a failing unit never blocks the batch.
package core

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mizuki0629/rrcm/pkg/config"
	"github.com/mizuki0629/rrcm/pkg/deploy"
	"github.com/mizuki0629/rrcm/pkg/errors"
	"github.com/mizuki0629/rrcm/pkg/logging"
	"github.com/mizuki0629/rrcm/pkg/platform"
	"github.com/mizuki0629/rrcm/pkg/repos"
	"github.com/mizuki0629/rrcm/pkg/trash"
)

// Options carries the resolved configuration shared by every operation.
type Options struct {
	Config   *config.AppConfig
	Resolver platform.Resolver

	// RepoFilter limits processing to one repository name when set.
	RepoFilter string
}

// TargetPlan is the planning result for one deployment target of one
// repository. Err records a target-level failure (a defined destination
// that does not resolve); the other targets proceed regardless.
type TargetPlan struct {
	Repo   string
	Target string
	Plan   *deploy.Plan
	Err    error
}

// TargetReport is the execution result for one deployment target.
type TargetReport struct {
	Repo   string
	Target string
	Report *deploy.Report
	Err    error
}

// UpdateResult records the acquisition outcome for one repository.
type UpdateResult struct {
	Repo   string
	Action repos.Action
	Err    error
}

// Failed reports whether any target or unit failed.
func Failed(reports []TargetReport) bool {
	for _, tr := range reports {
		if tr.Err != nil || (tr.Report != nil && tr.Report.Failed()) {
			return true
		}
	}
	return false
}

// selectRepos applies the repository filter.
func selectRepos(opts Options) ([]*config.Repository, error) {
	if opts.RepoFilter == "" {
		out := make([]*config.Repository, 0, len(opts.Config.Repos))
		for i := range opts.Config.Repos {
			out = append(out, &opts.Config.Repos[i])
		}
		return out, nil
	}
	repo := opts.Config.FindRepo(opts.RepoFilter)
	if repo == nil {
		return nil, errors.Newf(errors.ErrNotFound, "repository %q is not configured", opts.RepoFilter)
	}
	return []*config.Repository{repo}, nil
}

// planTargets builds a plan per target for every selected repository. A
// target is silently skipped when it has no destination for this OS or no
// source directory in the checkout; a defined destination that fails to
// resolve is collected as a target-level error.
func planTargets(opts Options) ([]TargetPlan, error) {
	logger := logging.GetLogger("core")

	dotfilesRoot, err := opts.Config.DotfilesRoot(opts.Resolver)
	if err != nil {
		return nil, err
	}

	selected, err := selectRepos(opts)
	if err != nil {
		return nil, err
	}

	planner := deploy.NewPlanner(opts.Resolver.OS())
	var out []TargetPlan

	for _, repo := range selected {
		repoDir := repos.Path(dotfilesRoot, repo)
		for _, name := range repo.TargetNames() {
			osPath := repo.Deploy[name]

			destRoot, ok, err := osPath.Resolved(opts.Resolver)
			if err != nil {
				out = append(out, TargetPlan{Repo: repo.Name, Target: name, Err: err})
				continue
			}
			if !ok {
				logger.Debug().
					Str("repo", repo.Name).
					Str("target", name).
					Msg("Target has no destination on this OS, skipping")
				continue
			}

			sourceDir := filepath.Join(repoDir, name)
			if fi, err := os.Stat(sourceDir); err != nil || !fi.IsDir() {
				logger.Debug().
					Str("repo", repo.Name).
					Str("target", name).
					Msg("No source directory in checkout, skipping")
				continue
			}

			plan, err := planner.Plan(name, sourceDir, destRoot)
			if err != nil {
				out = append(out, TargetPlan{Repo: repo.Name, Target: name, Err: err})
				continue
			}
			out = append(out, TargetPlan{Repo: repo.Name, Target: name, Plan: plan})
		}
	}

	return out, nil
}

// Status plans every target without touching the filesystem.
func Status(opts Options) ([]TargetPlan, error) {
	return planTargets(opts)
}

// Deploy plans and applies every target. Conflicting entries are moved to
// the trash before linking only when force is set.
func Deploy(opts Options, tr *trash.Trash, force bool) ([]TargetReport, error) {
	plans, err := planTargets(opts)
	if err != nil {
		return nil, err
	}

	executor := deploy.NewExecutor(tr, force)
	var out []TargetReport
	for _, tp := range plans {
		if tp.Err != nil {
			out = append(out, TargetReport{Repo: tp.Repo, Target: tp.Target, Err: tp.Err})
			continue
		}
		out = append(out, TargetReport{
			Repo:   tp.Repo,
			Target: tp.Target,
			Report: executor.Apply(tp.Plan),
		})
	}
	return out, nil
}

// Undeploy removes the symlinks of every deployed unit.
func Undeploy(opts Options) ([]TargetReport, error) {
	plans, err := planTargets(opts)
	if err != nil {
		return nil, err
	}

	executor := deploy.NewExecutor(nil, false)
	var out []TargetReport
	for _, tp := range plans {
		if tp.Err != nil {
			out = append(out, TargetReport{Repo: tp.Repo, Target: tp.Target, Err: tp.Err})
			continue
		}
		out = append(out, TargetReport{
			Repo:   tp.Repo,
			Target: tp.Target,
			Report: executor.Unlink(tp.Plan),
		})
	}
	return out, nil
}

// Update clones or pulls every selected repository, then deploys it.
func Update(ctx context.Context, opts Options, tr *trash.Trash, force bool) ([]UpdateResult, []TargetReport, error) {
	dotfilesRoot, err := opts.Config.DotfilesRoot(opts.Resolver)
	if err != nil {
		return nil, nil, err
	}

	selected, err := selectRepos(opts)
	if err != nil {
		return nil, nil, err
	}

	var updates []UpdateResult
	for _, repo := range selected {
		action, err := repos.Update(ctx, dotfilesRoot, repo)
		updates = append(updates, UpdateResult{Repo: repo.Name, Action: action, Err: err})
	}

	reports, err := Deploy(opts, tr, force)
	if err != nil {
		return updates, nil, err
	}
	return updates, reports, nil
}
