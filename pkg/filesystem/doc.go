// Package filesystem provides filesystem implementations for dotfiles.
//
// This package contains implementations of the types.FS interface (the
// OS filesystem and a dry-run wrapper that only logs mutations) and the
// top-down tree walk shared by reconciliation and the broken link sweep.
package filesystem
