package opc

import (
	"encoding/xml"
)

const (
	// ContentTypesPath is the fixed location of the content-type manifest.
	ContentTypesPath = "[Content_Types].xml"

	RelationshipsNamespace = "http://schemas.openxmlformats.org/package/2006/relationships"
	ContentTypesNamespace  = "http://schemas.openxmlformats.org/package/2006/content-types"

	ContentTypeRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ContentTypeXML           = "application/xml"

	// TargetModeExternal marks relationships that point outside the package.
	TargetModeExternal = "External"

	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"
)

// Relationship types used at package level.
const (
	RelTypeOfficeDocument     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeCoreProperties     = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelTypeExtendedProperties = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
)

// Relationship represents a relationship in the package
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// IsExternal reports whether the target lives outside the package.
func (r Relationship) IsExternal() bool {
	return r.TargetMode == TargetModeExternal
}

// Relationships represents the collection of relationships of one scope
type Relationships struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Namespace    string         `xml:"xmlns,attr"`
	Relationship []Relationship `xml:"Relationship"`
}

// ContentTypeDefault maps a file extension to a media type.
type ContentTypeDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentTypeOverride maps a single part name (with leading slash) to a media type.
type ContentTypeOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentTypes is the [Content_Types].xml document.
type ContentTypes struct {
	XMLName   xml.Name              `xml:"Types"`
	Namespace string                `xml:"xmlns,attr"`
	Defaults  []ContentTypeDefault  `xml:"Default"`
	Overrides []ContentTypeOverride `xml:"Override"`
}

// marshalDocument encodes v compactly behind the standalone XML declaration
// Office applications expect.
func marshalDocument(v interface{}) ([]byte, error) {
	output, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xmlHeader), output...), nil
}
