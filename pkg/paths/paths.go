package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotfiles/pkg/errors"
)

// Default directory names
const (
	// DefaultRepoName is the repository directory under the data root
	DefaultRepoName = "dotfiles"

	// DefaultMirrorName is the mirror root inside the repository
	DefaultMirrorName = "home"
)

// Options describes the two anchors of the mapping
type Options struct {
	// HomeDir is the live home directory
	HomeDir string

	// RepoRoot is the version-controlled repository, e.g. ~/.local/share/dotfiles
	RepoRoot string

	// MirrorRoot is the subtree of RepoRoot mirroring HomeDir
	MirrorRoot string

	// Ignore lists entry names excluded from every walk
	Ignore []string
}

// Paths maps between mirror paths and home paths
type Paths struct {
	home       string
	repoRoot   string
	mirrorRoot string
	ignore     map[string]bool
}

// New validates the anchors and returns a Paths instance
func New(opts Options) (*Paths, error) {
	p := &Paths{ignore: make(map[string]bool, len(opts.Ignore))}

	for _, anchor := range []struct {
		name  string
		value string
		dest  *string
	}{
		{"home directory", opts.HomeDir, &p.home},
		{"repository root", opts.RepoRoot, &p.repoRoot},
		{"mirror root", opts.MirrorRoot, &p.mirrorRoot},
	} {
		if anchor.value == "" {
			return nil, errors.Newf(errors.ErrConfigValid, "%s is not configured", anchor.name)
		}
		if !filepath.IsAbs(anchor.value) {
			return nil, errors.Newf(errors.ErrConfigValid, "%s must be absolute: %s", anchor.name, anchor.value)
		}
		*anchor.dest = filepath.Clean(anchor.value)
	}

	if !ContainsPath(p.repoRoot, p.mirrorRoot) || p.repoRoot == p.mirrorRoot {
		return nil, errors.Newf(errors.ErrConfigValid,
			"mirror root %s must be inside repository root %s", p.mirrorRoot, p.repoRoot)
	}

	for _, name := range opts.Ignore {
		p.ignore[name] = true
	}

	return p, nil
}

// Home returns the home directory anchor
func (p *Paths) Home() string {
	return p.home
}

// RepoRoot returns the repository root
func (p *Paths) RepoRoot() string {
	return p.repoRoot
}

// MirrorRoot returns the mirror root
func (p *Paths) MirrorRoot() string {
	return p.mirrorRoot
}

// IsIgnored reports whether an entry name is excluded from walks
func (p *Paths) IsIgnored(name string) bool {
	return p.ignore[name]
}

// ToHome maps a mirror path to its home counterpart
func (p *Paths) ToHome(mirrorPath string) (string, error) {
	rel, err := p.relativeTo(p.mirrorRoot, mirrorPath, "mirror root")
	if err != nil {
		return "", err
	}
	return filepath.Join(p.home, rel), nil
}

// ToMirror maps a home path to its mirror counterpart. Paths inside the
// repository tree have no counterpart even when the repository lives under
// the home directory.
func (p *Paths) ToMirror(homePath string) (string, error) {
	clean := filepath.Clean(homePath)
	if ContainsPath(p.repoRoot, clean) {
		return "", errors.Newf(errors.ErrOutsideRoot, "%s is inside the dotfiles repository", homePath).
			WithDetail("path", homePath)
	}

	rel, err := p.relativeTo(p.home, clean, "home directory")
	if err != nil {
		return "", err
	}
	return filepath.Join(p.mirrorRoot, rel), nil
}

// LinkTarget returns the target to store in a symlink living in linkDir so
// that it points at dest: dest relative to linkDir. The kernel resolves a
// relative target from the link's physical directory, so linkDir and dest
// must not pass through symlinked directories.
func LinkTarget(linkDir, dest string) (string, error) {
	rel, err := filepath.Rel(filepath.Clean(linkDir), filepath.Clean(dest))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "cannot relate %s to %s", dest, linkDir)
	}
	return rel, nil
}

// ResolveLink resolves a stored symlink target against the directory the
// link lives in. The result is lexical; it does not touch the filesystem.
func ResolveLink(linkPath, target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(filepath.Dir(linkPath), target)
}

// Absolute turns a user supplied path into a clean absolute path. A leading
// ~ expands to the configured home directory; other relative paths are
// resolved against the working directory. The final element is not
// resolved, so a symlink stays a symlink.
func (p *Paths) Absolute(path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}

	path = p.ExpandHome(path)
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}
	return filepath.Clean(abs), nil
}

// ExpandHome expands ~ and ~/ to the configured home directory
func (p *Paths) ExpandHome(path string) string {
	if path == "~" {
		return p.home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(p.home, path[2:])
	}
	return path
}

// relativeTo computes path relative to root, rejecting escapes and paths
// that pass through ignored entries.
func (p *Paths) relativeTo(root, path, rootName string) (string, error) {
	clean := filepath.Clean(path)
	if !filepath.IsAbs(clean) || !ContainsPath(root, clean) {
		return "", errors.Newf(errors.ErrOutsideRoot, "%s is outside the %s %s", path, rootName, root).
			WithDetail("path", path)
	}

	rel, err := filepath.Rel(root, clean)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrOutsideRoot, "%s is outside the %s %s", path, rootName, root)
	}

	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		if p.ignore[part] {
			return "", errors.Newf(errors.ErrOutsideRoot, "%s passes through ignored entry %q", path, part).
				WithDetail("path", path)
		}
	}
	return rel, nil
}
