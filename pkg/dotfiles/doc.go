// Package dotfiles implements the dotfiles manager: adopting home files
// into the version-controlled mirror tree, evicting them back, reconciling
// the home directory's symlinks with the mirror and syncing the repository
// with its remote.
//
// The mirror tree lives at <data_root>/<repo_name>/<mirror_name>. Every
// file in it has a relative symlink at the corresponding home path:
//
//	~/.bashrc -> ../.local/share/dotfiles/home/.bashrc
//
// Per-path operations return a types.Outcome. Expected conditions, like a
// path that is already managed, are Skipped outcomes and never errors;
// errors are reserved for conditions that must abort the command.
package dotfiles
