// Package paths provides the mapping between the mirror tree and the home
// directory.
//
// Every operation that needs to know "where does this file live on the
// other side" goes through this package:
//
//	mirror:  <data_root>/dotfiles/home/.config/app/conf
//	home:    $HOME/.config/app/conf
//
// ToHome and ToMirror are mutual inverses. Paths outside their anchor, or
// that pass through an ignored entry (such as .git), are rejected with an
// OUTSIDE_ROOT error rather than mapped to something surprising.
//
// Symlinks are stored relative to the link's own directory (LinkTarget)
// so the mirror tree can be relocated together with the home directory.
// Callers pass physical directories; see filesystem.Physical.
package paths
