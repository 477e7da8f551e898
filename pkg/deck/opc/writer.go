package opc

import (
	"archive/zip"
	"compress/flate"
	"fmt"
	"io"
	"time"
)

// FixedModTime is stamped on every entry so that identical packages
// serialize to identical bytes. It is the earliest time a zip header can hold.
var FixedModTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// WriteOptions tunes archive serialization.
type WriteOptions struct {
	// Store writes entries uncompressed instead of deflated.
	Store bool
	// Level is the flate level used when deflating; 0 selects flate.DefaultCompression.
	Level int
	// Modified overrides FixedModTime.
	Modified time.Time
}

// Entry is one file of the serialized archive.
type Entry struct {
	Name string
	Data []byte
}

// Entries returns every archive entry in write order: the manifest, the root
// scope, then each part followed by its own scope.
func (pkg *Package) Entries() ([]Entry, error) {
	entries := make([]Entry, 0, 2+2*len(pkg.parts))

	manifest, err := marshalDocument(pkg.ContentTypes())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", ContentTypesPath, err)
	}
	entries = append(entries, Entry{Name: ContentTypesPath, Data: manifest})

	rootRels, err := marshalDocument(pkg.rootRels)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal root relationships: %w", err)
	}
	entries = append(entries, Entry{Name: RelationshipsPath(""), Data: rootRels})

	for _, part := range pkg.parts {
		entries = append(entries, Entry{Name: part.Name, Data: part.Data})
		if part.rels == nil {
			continue
		}
		rels, err := marshalDocument(part.rels)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal relationships of %s: %w", part.Name, err)
		}
		entries = append(entries, Entry{Name: RelationshipsPath(part.Name), Data: rels})
	}
	return entries, nil
}

// WriteTo validates the package and writes it as a zip archive with default
// options. It implements io.WriterTo.
func (pkg *Package) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := pkg.Write(cw, WriteOptions{})
	return cw.n, err
}

// Write validates the package and writes it as a zip archive. Nothing is
// written when validation fails.
func (pkg *Package) Write(w io.Writer, opts WriteOptions) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	entries, err := pkg.Entries()
	if err != nil {
		return err
	}

	method := zip.Deflate
	if opts.Store {
		method = zip.Store
	}
	modified := opts.Modified
	if modified.IsZero() {
		modified = FixedModTime
	}

	zw := zip.NewWriter(w)
	if method == zip.Deflate && opts.Level != 0 {
		level := opts.Level
		zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(out, level)
		})
	}

	for _, entry := range entries {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     entry.Name,
			Method:   method,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", entry.Name, err)
		}
		if _, err := fw.Write(entry.Data); err != nil {
			return fmt.Errorf("failed to write %s: %w", entry.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to close zip writer: %w", err)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
