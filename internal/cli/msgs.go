package cli

// Command descriptions
const (
	MsgRootShort = "Keep your dotfiles in a git repository, symlinked into $HOME"
	MsgRootLong  = `dotfiles moves configuration files from your home directory into a
version-controlled repository (by default $XDG_DATA_HOME/dotfiles) and
replaces them with relative symlinks. The repository's "home" directory
mirrors your home directory: setup links every file in it back into place,
and sync keeps it in step with a git remote.`

	MsgAddShort    = "Add files as dotfiles"
	MsgAddLong     = "Move PATHS into the dotfiles repository and create a symlink back at each original path."
	MsgRmShort     = "Remove files from dotfiles"
	MsgRmLong      = "Move PATHS from the dotfiles repository back to their original location, replacing the symlink."
	MsgSetupShort  = "Set up dotfiles in the home directory"
	MsgSetupLong   = "Create a symlink for every file in the repository and remove broken symlinks from the home directory."
	MsgMvShort     = "Rename a dotfile from SRC to DEST"
	MsgSyncShort   = "Update dotfiles from the repository, then push local changes"
	MsgUpdateShort = "Update dotfiles from the repository and run setup"
	MsgPushShort   = "Push modified dotfiles to the repository"
	MsgDiffShort   = "Print differences between local and pushed dotfiles"
	MsgConfigShort = "Print the resolved configuration"

	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"
)

// Flag descriptions
const (
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Log filesystem changes and git commands without performing them"
	MsgFlagConfig   = "Config file (default is $XDG_CONFIG_HOME/dotfiles/config.toml)"
	MsgFlagDataRoot = "Directory holding the dotfiles repository (default is $XDG_DATA_HOME)"
)

// Output
const (
	MsgAdding       = "Moving %s to dotfiles ..."
	MsgAdded        = "%s -> %s"
	MsgRemoving     = "Removing %s from dotfiles ..."
	MsgRemoved      = "%s <- %s"
	MsgSkipping     = "Skipping %s: %s"
	MsgMvNotice     = "mv is not implemented yet, nothing was changed"
	MsgDryRunNotice = "DRY RUN MODE - No changes were made"

	MsgVersionFormat = "dotfiles version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
)

// Errors
const (
	MsgErrorFormat  = "Error: %v"
	MsgErrorDetail  = "  %s: %v"
	MsgErrorCodeKey = "code"
)
