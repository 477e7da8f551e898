package opc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Validate checks the structural rules a consumer relies on to open the
// package:
//   - every part name is valid and every part has an effective content type
//   - every part with an XML content type is a well-formed document
//   - relationship ids are unique within each scope
//   - every internal relationship target resolves to a part in the package
//
// All violations are returned together as Issues; nil means the package is
// consistent.
func (pkg *Package) Validate() error {
	issues := append(Issues(nil), pkg.issues...)

	for _, part := range pkg.parts {
		if err := ValidatePartName(part.Name); err != nil {
			issues = append(issues, &InvariantError{Kind: ErrInvalidPartName, Scope: "package", Detail: err.Error()})
		}
		if part.ContentType == "" {
			issues = append(issues, newInvariantError(ErrUncoveredPart, ContentTypesPath, "/%s", part.Name))
		}
		if isXMLContentType(part.ContentType) {
			if err := checkWellFormed(part.Data); err != nil {
				issues = append(issues, newInvariantError(ErrMalformedPart, "/"+part.Name, "%v", err))
			}
		}
	}

	issues = append(issues, pkg.checkScope("", pkg.rootRels)...)
	for _, part := range pkg.parts {
		if part.rels != nil {
			issues = append(issues, pkg.checkScope(part.Name, part.rels)...)
		}
	}

	return issues.Err()
}

func (pkg *Package) checkScope(source string, rels *Relationships) Issues {
	var issues Issues
	scope := RelationshipsPath(source)
	seen := make(map[string]bool, len(rels.Relationship))

	for _, rel := range rels.Relationship {
		if seen[rel.ID] {
			issues = append(issues, newInvariantError(ErrDuplicateRelationshipID, scope, "%s", rel.ID))
		}
		seen[rel.ID] = true

		if rel.IsExternal() {
			continue
		}
		resolved := ResolveTarget(source, rel.Target)
		if _, ok := pkg.byName[resolved]; !ok {
			issues = append(issues, newInvariantError(ErrDanglingRelationship, scope, "%s -> %s", rel.ID, rel.Target))
		}
	}
	return issues
}

// isXMLContentType matches application/xml and the +xml structured suffix.
func isXMLContentType(contentType string) bool {
	return strings.HasSuffix(contentType, "/xml") || strings.HasSuffix(contentType, "+xml")
}

// checkWellFormed reads data as a complete XML document with exactly one
// root element.
func checkWellFormed(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	roots := 0
	depth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		switch tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	if roots != 1 {
		return errors.New("document must have exactly one root element")
	}
	return nil
}
