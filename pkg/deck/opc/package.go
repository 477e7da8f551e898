package opc

import (
	"fmt"
	"strconv"
)

// Part is one named, typed unit of content inside the package.
type Part struct {
	Name        string
	ContentType string
	Data        []byte

	// rels is nil until the part becomes a relationship source.
	rels *Relationships
}

// Relationships returns the outgoing relationships of the part in id order.
func (p *Part) Relationships() []Relationship {
	if p.rels == nil {
		return nil
	}
	return p.rels.Relationship
}

// HasScope reports whether the part owns a relationship scope, even an empty one.
func (p *Part) HasScope() bool {
	return p.rels != nil
}

// Package is the in-memory form of an OPC container.
type Package struct {
	parts    []*Part
	byName   map[string]*Part
	rootRels *Relationships
	defaults []ContentTypeDefault

	// issues found while reading an archive that cannot be represented in
	// the model itself (e.g. an Override naming a missing part).
	issues Issues
}

// New creates an empty package.
func New() *Package {
	return &Package{
		byName:   make(map[string]*Part),
		rootRels: newRelationships(),
	}
}

func newRelationships() *Relationships {
	return &Relationships{
		Namespace:    RelationshipsNamespace,
		Relationship: []Relationship{},
	}
}

// RegisterDefault maps an extension to a package-wide content type. Parts
// with that extension and the same content type need no Override entry.
// Registering an extension twice keeps the first mapping.
func (pkg *Package) RegisterDefault(extension, contentType string) {
	for _, def := range pkg.defaults {
		if def.Extension == extension {
			return
		}
	}
	pkg.defaults = append(pkg.defaults, ContentTypeDefault{
		Extension:   extension,
		ContentType: contentType,
	})
}

// DefaultContentType returns the Default mapping for an extension.
func (pkg *Package) DefaultContentType(extension string) (string, bool) {
	for _, def := range pkg.defaults {
		if def.Extension == extension {
			return def.ContentType, true
		}
	}
	return "", false
}

// AddPart stores a new part. Names must be unique and valid.
func (pkg *Package) AddPart(name, contentType string, data []byte) (*Part, error) {
	if err := ValidatePartName(name); err != nil {
		return nil, &InvariantError{Kind: ErrInvalidPartName, Scope: "package", Detail: err.Error()}
	}
	if _, exists := pkg.byName[name]; exists {
		return nil, newInvariantError(ErrDuplicatePart, "package", "%s", name)
	}
	part := &Part{
		Name:        name,
		ContentType: contentType,
		Data:        data,
	}
	pkg.parts = append(pkg.parts, part)
	pkg.byName[name] = part
	return part, nil
}

// Part looks up a part by name.
func (pkg *Package) Part(name string) (*Part, bool) {
	part, ok := pkg.byName[name]
	return part, ok
}

// Parts returns the parts in insertion order.
func (pkg *Package) Parts() []*Part {
	out := make([]*Part, len(pkg.parts))
	copy(out, pkg.parts)
	return out
}

// RootRelationships returns the package-level relationships.
func (pkg *Package) RootRelationships() []Relationship {
	return pkg.rootRels.Relationship
}

// DeclareScope gives part an (initially empty) relationship scope so that
// its .rels file is written even when nothing is related from it.
func (pkg *Package) DeclareScope(part *Part) {
	if part.rels == nil {
		part.rels = newRelationships()
	}
}

// Relate adds a relationship from source (nil for the package root) to
// target and returns the allocated id. Both parts must belong to pkg.
func (pkg *Package) Relate(source *Part, relType string, target *Part) (string, error) {
	scope := pkg.scopeName(source)
	if target == nil || pkg.byName[target.Name] != target {
		return "", newInvariantError(ErrDanglingRelationship, scope, "%s target was never added", shortType(relType))
	}
	if source != nil && pkg.byName[source.Name] != source {
		return "", newInvariantError(ErrDanglingRelationship, scope, "source part was never added")
	}

	sourceName := ""
	if source != nil {
		sourceName = source.Name
	}
	return pkg.appendRelationship(source, Relationship{
		Type:   relType,
		Target: RelativeTarget(sourceName, target.Name),
	})
}

func (pkg *Package) appendRelationship(source *Part, rel Relationship) (string, error) {
	rels := pkg.rootRels
	if source != nil {
		pkg.DeclareScope(source)
		rels = source.rels
	}

	rel.ID = "rId" + strconv.Itoa(len(rels.Relationship)+1)
	for _, existing := range rels.Relationship {
		if existing.ID == rel.ID {
			return "", newInvariantError(ErrDuplicateRelationshipID, pkg.scopeName(source), "%s", rel.ID)
		}
	}
	rels.Relationship = append(rels.Relationship, rel)
	return rel.ID, nil
}

// scopeName names the .rels file of source for error messages.
func (pkg *Package) scopeName(source *Part) string {
	if source == nil {
		return RelationshipsPath("")
	}
	return RelationshipsPath(source.Name)
}

// ContentTypes builds the manifest: every registered Default, then one
// Override per part whose content type its extension's Default cannot express.
func (pkg *Package) ContentTypes() *ContentTypes {
	ct := &ContentTypes{
		Namespace: ContentTypesNamespace,
		Defaults:  append([]ContentTypeDefault(nil), pkg.defaults...),
	}
	for _, part := range pkg.parts {
		if def, ok := pkg.DefaultContentType(Extension(part.Name)); ok && def == part.ContentType {
			continue
		}
		ct.Overrides = append(ct.Overrides, ContentTypeOverride{
			PartName:    "/" + part.Name,
			ContentType: part.ContentType,
		})
	}
	return ct
}

// PartsOfType returns the parts with the given content type in insertion order.
func (pkg *Package) PartsOfType(contentType string) []*Part {
	var out []*Part
	for _, part := range pkg.parts {
		if part.ContentType == contentType {
			out = append(out, part)
		}
	}
	return out
}

func shortType(relType string) string {
	for i := len(relType) - 1; i >= 0; i-- {
		if relType[i] == '/' {
			return relType[i+1:]
		}
	}
	return fmt.Sprintf("%q", relType)
}
