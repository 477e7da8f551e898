package deck

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Result describes a written presentation.
type Result struct {
	Path   string
	Slides int
	Bytes  int64
}

// Write composes slides and writes the archive to w. Nothing is written when
// composition fails.
func Write(w io.Writer, slides []SlideSpec, opts ...Option) error {
	config, err := resolveConfig(opts)
	if err != nil {
		return NewStageError(StageCompose, "", err)
	}
	pkg, err := compose(slides, config)
	if err != nil {
		return err
	}
	if err := pkg.Write(w, config.writeOptions()); err != nil {
		return NewStageError(StageWrite, "", err)
	}
	return nil
}

// Bytes composes slides and returns the archive in memory.
func Bytes(slides []SlideSpec, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, slides, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile composes slides and writes the archive to path. The file is
// written next to its destination and renamed into place, so path either
// holds the previous content or the complete new archive.
func WriteFile(path string, slides []SlideSpec, opts ...Option) (*Result, error) {
	data, err := Bytes(slides, opts...)
	if err != nil {
		return nil, err
	}

	if err := writeFileAtomic(path, data); err != nil {
		return nil, NewStageError(StageWrite, path, err)
	}

	WithFields(Fields{"slides": len(slides), "bytes": len(data)}).Info("wrote %s", path)
	return &Result{Path: path, Slides: len(slides), Bytes: int64(len(data))}, nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
