// Package destination resolves where an uploaded file is written.
//
// Two destination shapes are supported: a flat root directory, or a volume
// addressed by a catalog.schema.volume identifier which lives under a fixed
// namespace root (for example /Volumes/main/default/uploads).
package destination

import (
	"file-intake/internal/core/domain"
	"fmt"
	"path"
	"strings"
	"unicode"
)

// DefaultNamespaceRoot is where volumes are mounted when no other root is configured
const DefaultNamespaceRoot = "/Volumes"

// Volume is a cataloged storage location
type Volume struct {
	Catalog string
	Schema  string
	Name    string
}

// String returns the dotted identifier
func (v Volume) String() string {
	return v.Catalog + "." + v.Schema + "." + v.Name
}

// ParseVolume parses a catalog.schema.volume identifier
func ParseVolume(identifier string) (Volume, error) {
	segments := strings.Split(strings.TrimSpace(identifier), ".")
	if len(segments) != 3 {
		return Volume{}, fmt.Errorf("%w: expected catalog.schema.volume, got %q", domain.ErrInvalidDestinationFormat, identifier)
	}

	for i, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" || strings.ContainsAny(segment, `/\`) || hasControl(segment) {
			return Volume{}, fmt.Errorf("%w: invalid segment %d in %q", domain.ErrInvalidDestinationFormat, i+1, identifier)
		}
		segments[i] = segment
	}

	return Volume{Catalog: segments[0], Schema: segments[1], Name: segments[2]}, nil
}

// Spec describes a destination before it is combined with a filename.
// Volume takes precedence over Root when both are set.
type Spec struct {
	Root      string
	Volume    string
	Subfolder string
}

// Structured reports whether s addresses a volume
func (s Spec) Structured() bool {
	return strings.TrimSpace(s.Volume) != ""
}

// Resolver combines a Spec with a filename
type Resolver struct {
	namespaceRoot string
}

// NewResolver creates a Resolver; an empty namespaceRoot falls back to DefaultNamespaceRoot
func NewResolver(namespaceRoot string) *Resolver {
	namespaceRoot = strings.TrimSpace(namespaceRoot)
	if namespaceRoot == "" {
		namespaceRoot = DefaultNamespaceRoot
	}
	return &Resolver{namespaceRoot: path.Clean("/" + strings.Trim(namespaceRoot, "/"))}
}

// NamespaceRoot returns the root under which volumes are addressed
func (r *Resolver) NamespaceRoot() string {
	return r.namespaceRoot
}

// Resolve returns the full path of filename at spec. filename must already be normalized.
func (r *Resolver) Resolve(spec Spec, filename string) (string, error) {
	if filename == "" || strings.ContainsAny(filename, `/\`) || filename == "." || filename == ".." {
		return "", fmt.Errorf("%w: filename %q is not a single path segment", domain.ErrInvalidDestinationFormat, filename)
	}

	dir, err := r.Dir(spec)
	if err != nil {
		return "", err
	}
	return path.Join(dir, filename), nil
}

// Dir returns the directory addressed by spec
func (r *Resolver) Dir(spec Spec) (string, error) {
	subfolder, err := cleanSubfolder(spec.Subfolder)
	if err != nil {
		return "", err
	}

	if spec.Structured() {
		volume, err := ParseVolume(spec.Volume)
		if err != nil {
			return "", err
		}
		return path.Join(r.namespaceRoot, volume.Catalog, volume.Schema, volume.Name, subfolder), nil
	}

	root := strings.TrimSpace(spec.Root)
	if root == "" {
		return "", fmt.Errorf("%w: no root or volume configured", domain.ErrInvalidDestinationFormat)
	}
	return path.Join(root, subfolder), nil
}

// cleanSubfolder trims surrounding slashes; an empty subfolder stays empty and adds no segment
func cleanSubfolder(subfolder string) (string, error) {
	subfolder = strings.Trim(strings.TrimSpace(subfolder), "/")
	if subfolder == "" {
		return "", nil
	}

	if strings.Contains(subfolder, `\`) {
		return "", fmt.Errorf("%w: subfolder %q contains a backslash", domain.ErrInvalidDestinationFormat, subfolder)
	}
	if hasControl(subfolder) {
		return "", fmt.Errorf("%w: subfolder %q contains control characters", domain.ErrInvalidDestinationFormat, subfolder)
	}
	for _, segment := range strings.Split(subfolder, "/") {
		if segment == ".." {
			return "", fmt.Errorf("%w: subfolder %q escapes its volume", domain.ErrInvalidDestinationFormat, subfolder)
		}
	}
	return subfolder, nil
}

// hasControl reports whether s holds NUL or any other control character
func hasControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) != -1
}
