package opc

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadPackage rebuilds a Package from a zip archive. Only unreadable input
// is an error here: structural problems (overrides naming missing parts,
// scopes without a source, parts without a content type) are retained and
// reported by Validate.
func ReadPackage(r io.ReaderAt, size int64) (*Package, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	var manifestFile *zip.File
	for _, file := range zipReader.File {
		if file.Name == ContentTypesPath {
			manifestFile = file
			break
		}
	}
	if manifestFile == nil {
		return nil, fmt.Errorf("not a valid package: missing %s", ContentTypesPath)
	}

	content, err := readZipFile(manifestFile)
	if err != nil {
		return nil, err
	}
	var manifest ContentTypes
	if err := xml.Unmarshal(content, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ContentTypesPath, err)
	}

	pkg := New()
	for _, def := range manifest.Defaults {
		ext := strings.ToLower(def.Extension)
		if _, dup := pkg.DefaultContentType(ext); dup {
			pkg.issues = append(pkg.issues, newInvariantError(ErrInvalidContentTypes, ContentTypesPath, "duplicate Default for %q", ext))
			continue
		}
		pkg.RegisterDefault(ext, def.ContentType)
	}

	overrides := make(map[string]string, len(manifest.Overrides))
	for _, o := range manifest.Overrides {
		name := strings.TrimPrefix(o.PartName, "/")
		if _, dup := overrides[name]; dup {
			pkg.issues = append(pkg.issues, newInvariantError(ErrInvalidContentTypes, ContentTypesPath, "duplicate Override for %s", o.PartName))
			continue
		}
		overrides[name] = o.ContentType
	}

	// Parts first so scopes can be attached to them afterwards.
	var scopes []*zip.File
	for _, file := range zipReader.File {
		if file.Name == ContentTypesPath || strings.HasSuffix(file.Name, "/") {
			continue
		}
		if _, ok := SourceOfRelationships(file.Name); ok {
			scopes = append(scopes, file)
			continue
		}

		data, err := readZipFile(file)
		if err != nil {
			return nil, err
		}
		contentType, ok := overrides[file.Name]
		if !ok {
			contentType, _ = pkg.DefaultContentType(Extension(file.Name))
		}
		if _, err := pkg.AddPart(file.Name, contentType, data); err != nil {
			if ie, ok := err.(*InvariantError); ok {
				pkg.issues = append(pkg.issues, ie)
				continue
			}
			return nil, err
		}
	}

	reported := make(map[string]bool)
	for _, o := range manifest.Overrides {
		name := strings.TrimPrefix(o.PartName, "/")
		if _, ok := pkg.byName[name]; ok || reported[name] {
			continue
		}
		reported[name] = true
		pkg.issues = append(pkg.issues, newInvariantError(ErrInvalidContentTypes, ContentTypesPath, "Override for missing part /%s", name))
	}

	for _, file := range scopes {
		source, _ := SourceOfRelationships(file.Name)
		content, err := readZipFile(file)
		if err != nil {
			return nil, err
		}
		rels := newRelationships()
		if err := xml.Unmarshal(content, rels); err != nil {
			return nil, fmt.Errorf("failed to parse relationships %s: %w", file.Name, err)
		}

		if source == "" {
			pkg.rootRels = rels
			continue
		}
		part, ok := pkg.byName[source]
		if !ok {
			pkg.issues = append(pkg.issues, newInvariantError(ErrDanglingRelationship, file.Name, "scope belongs to missing part %s", source))
			continue
		}
		part.rels = rels
	}

	return pkg, nil
}

// ReadFile rebuilds a Package from an archive on disk.
func ReadFile(path string) (*Package, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ReadPackage(bytes.NewReader(content), int64(len(content)))
}

func readZipFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", file.Name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file.Name, err)
	}
	return content, nil
}
