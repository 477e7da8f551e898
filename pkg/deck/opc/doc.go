// Package opc models an Open Packaging Conventions container: the zip-based
// format shared by PPTX, DOCX and XLSX files.
//
// A package is a set of named parts plus a graph of relationships between
// them. Each part that can reference other parts owns a relationship scope,
// serialized next to it as "<dir>/_rels/<name>.rels"; the package itself owns
// the root scope "_rels/.rels". The content-type manifest
// "[Content_Types].xml" maps every part to a media type, either through a
// Default entry keyed by file extension or through an Override entry keyed by
// part name.
//
// # Structure Organization
//
//   - types.go: XML documents for relationships and content types
//   - names.go: part-name rules and relative target resolution
//   - package.go: the in-memory Package, Part and relationship allocation
//   - validate.go: structural checks (dangling targets, duplicate ids, coverage)
//   - writer.go: deterministic zip serialization
//   - reader.go: rebuilding a Package from an existing archive
//
// # Usage
//
//	pkg := opc.New()
//	pkg.RegisterDefault("rels", opc.ContentTypeRelationships)
//	pkg.RegisterDefault("xml", opc.ContentTypeXML)
//
//	doc, _ := pkg.AddPart("ppt/presentation.xml", presentationType, body)
//	if _, err := pkg.Relate(nil, opc.RelTypeOfficeDocument, doc); err != nil {
//	    return err
//	}
//	if _, err := pkg.WriteTo(w); err != nil {
//	    return err
//	}
//
// Relationship ids are allocated contiguously per scope ("rId1", "rId2", ...)
// in call order, so building the same package twice yields identical bytes.
package opc
