package rrcm

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "A cross-platform dotfiles deployment tool"
	MsgRootLong = `rrcm deploys your dotfiles repositories by symlinking their contents
into the right places for the machine it runs on. Destination paths are
written once, per OS, using tokens like ${XDG_CONFIG_HOME} or
%FOLDERID_RoamingAppData%, and the same configuration file works on
Linux, macOS and Windows.`

	MsgInitShort = "Create a starter configuration file"
	MsgInitLong = `Init writes a configuration file with a commented starter layout.
With a URL argument the configuration is downloaded from there instead,
which is handy for setting up a new machine from an existing dotfiles
setup. Init never overwrites an existing configuration.`

	MsgStatusShort = "Show the deployment state of every target"
	MsgStatusLong = `Status inspects the destination of every deployment target and reports
each entry as Deployed, UnDeployed or Conflict. Nothing is modified;
status is safe to run at any time.`

	MsgDeployShort = "Symlink dotfiles into their destinations"
	MsgDeployLong = `Deploy creates one symlink per entry of every deployment target. Entries
already linked correctly are skipped, so deploy is safe to re-run.
Conflicting entries fail unless --force is given, in which case the
existing entry is moved to the trash before linking. Nothing is ever
overwritten in place.`

	MsgUndeployShort = "Remove the symlinks created by deploy"
	MsgUndeployLong = `Undeploy removes the symlinks that point into the dotfiles repositories.
Entries that are not correctly-deployed symlinks are left untouched.`

	MsgUpdateShort = "Clone or pull repositories, then deploy"
	MsgUpdateLong = `Update brings every configured repository up to date, cloning the ones
that are missing and pulling the ones already present, and then runs a
deploy.`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/rrcm/config.yaml)"
	MsgFlagForce   = "Move conflicting entries to the trash before linking"
	MsgFlagRepo    = "Limit to one repository"

	// Status messages
	MsgConfigCreated    = "Created %s\n"
	MsgConfigDownloaded = "Downloaded %s from %s\n"
	MsgEditHint         = "Edit it to add your repositories, then run \"rrcm update\".\n"
	MsgNothingToShow    = "No deployment targets for this machine."
	MsgConflictHint     = "Run \"rrcm deploy --force\" to move conflicting entries to the trash."
	MsgDeployFailures   = "some entries could not be deployed"
	MsgUndeployFailures = "some entries could not be removed"
	MsgUpdateFailures   = "some repositories could not be updated"
	MsgRepoUpdated      = "%s: %s\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrSnapshot   = "failed to inspect the environment: %w"
	MsgErrTrash      = "failed to locate the trash directory: %w"
)
