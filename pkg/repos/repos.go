// Package repos acquires the configured dotfiles repositories by shelling
// out to git. The engine itself never writes inside a repository tree;
// this package only clones what is missing and pulls what is present.
package repos

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mizuki0629/rrcm/pkg/config"
	"github.com/mizuki0629/rrcm/pkg/errors"
	"github.com/mizuki0629/rrcm/pkg/logging"
)

// Action describes what Update did for one repository.
type Action string

const (
	ActionCloned Action = "cloned"
	ActionPulled Action = "pulled"
)

// Path returns the local checkout directory for a repository.
func Path(dotfilesRoot string, repo *config.Repository) string {
	return filepath.Join(dotfilesRoot, repo.Name)
}

// Update clones the repository under dotfilesRoot when it is absent and
// pulls it otherwise.
func Update(ctx context.Context, dotfilesRoot string, repo *config.Repository) (Action, error) {
	logger := logging.GetLogger("repos")
	dir := Path(dotfilesRoot, repo)

	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		if err := runGit(ctx, logger, dir, "pull", "--ff-only"); err != nil {
			return "", errors.Wrapf(err, errors.ErrRepoUpdate, "failed to pull %s", repo.Name)
		}
		return ActionPulled, nil
	}

	if err := os.MkdirAll(dotfilesRoot, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create dotfiles root %s", dotfilesRoot)
	}
	if err := runGit(ctx, logger, dotfilesRoot, "clone", repo.URL, dir); err != nil {
		return "", errors.Wrapf(err, errors.ErrRepoUpdate, "failed to clone %s", repo.URL)
	}
	return ActionCloned, nil
}

func runGit(ctx context.Context, logger zerolog.Logger, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	logger.Debug().
		Str("dir", dir).
		Strs("args", args).
		Str("output", strings.TrimSpace(string(output))).
		Msg("git finished")
	if err != nil {
		return errors.Wrapf(err, errors.ErrRepoUpdate, "git %s: %s", strings.Join(args, " "), strings.TrimSpace(string(output)))
	}
	return nil
}
