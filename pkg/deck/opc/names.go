package opc

import (
	"fmt"
	"path"
	"strings"
)

// ValidatePartName checks that name can be stored as a part: a non-empty,
// forward-slash path relative to the package root without empty, "." or ".."
// segments. The manifest and relationship files are reserved.
func ValidatePartName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPartName)
	}
	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return fmt.Errorf("%w: %q must be relative and name a file", ErrInvalidPartName, name)
	}
	if strings.Contains(name, `\`) {
		return fmt.Errorf("%w: %q contains a backslash", ErrInvalidPartName, name)
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return fmt.Errorf("%w: %q has an empty or dot segment", ErrInvalidPartName, name)
		}
	}
	if name == ContentTypesPath {
		return fmt.Errorf("%w: %q is reserved for the content type manifest", ErrInvalidPartName, name)
	}
	if _, ok := SourceOfRelationships(name); ok {
		return fmt.Errorf("%w: %q is a relationship scope", ErrInvalidPartName, name)
	}
	return nil
}

// RelationshipsPath returns where the relationship scope of source is stored.
// The empty source denotes the package root.
// e.g., "ppt/presentation.xml" -> "ppt/_rels/presentation.xml.rels"
func RelationshipsPath(source string) string {
	if source == "" {
		return "_rels/.rels"
	}
	dir, base := path.Split(source)
	return dir + "_rels/" + base + ".rels"
}

// SourceOfRelationships is the inverse of RelationshipsPath. It reports false
// for names that are not relationship scopes.
func SourceOfRelationships(relsPath string) (string, bool) {
	if !strings.HasSuffix(relsPath, ".rels") {
		return "", false
	}
	dir, base := path.Split(relsPath)
	if dir != "_rels/" && !strings.HasSuffix(dir, "/_rels/") {
		return "", false
	}
	sourceBase := strings.TrimSuffix(base, ".rels")
	sourceDir := strings.TrimSuffix(dir, "_rels/")
	if sourceBase == "" {
		if sourceDir != "" {
			return "", false
		}
		return "", true
	}
	return sourceDir + sourceBase, true
}

// ResolveTarget turns a relationship target, relative to the directory of
// source, into a part name. Absolute targets are taken from the package root.
// Targets escaping the root keep their leading "../" and never match a part.
func ResolveTarget(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Join(path.Dir(source), target)
}

// RelativeTarget is the inverse of ResolveTarget: the shortest target that
// reaches the part named target from the directory of source.
func RelativeTarget(source, target string) string {
	var base []string
	if dir := path.Dir(source); dir != "." {
		base = strings.Split(dir, "/")
	}
	segs := strings.Split(target, "/")

	common := 0
	for common < len(base) && common < len(segs)-1 && base[common] == segs[common] {
		common++
	}

	rel := make([]string, 0, len(base)-common+len(segs)-common)
	for i := common; i < len(base); i++ {
		rel = append(rel, "..")
	}
	rel = append(rel, segs[common:]...)
	return strings.Join(rel, "/")
}

// Extension returns the lower-cased extension of name without the dot.
func Extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}
