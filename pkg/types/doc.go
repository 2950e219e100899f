// Package types defines the interfaces and value types shared by the
// dotfiles packages: the filesystem abstraction every operation goes
// through, and the Outcome returned by adoption and eviction.
package types
