package deck

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.pptx")

	result, err := WriteFile(path, sampleSlides(3))
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if result.Path != path || result.Slides != 3 {
		t.Errorf("result = %+v, want path %s with 3 slides", result, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() != result.Bytes {
		t.Errorf("file has %d bytes, result reports %d", info.Size(), result.Bytes)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("file mode = %v, want 0644", info.Mode().Perm())
	}
	if diff := cmp.Diff([]string{"deck.pptx"}, dirNames(t, dir)); diff != "" {
		t.Errorf("directory contents mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFileEntryOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	if _, err := WriteFile(path, sampleSlides(2)); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("zip.OpenReader() error = %v", err)
	}
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
		if f.Method != zip.Deflate {
			t.Errorf("%s is not deflated", f.Name)
		}
	}
	want := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideMasters/_rels/slideMaster1.xml.rels",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		"ppt/theme/theme1.xml",
		"ppt/theme/_rels/theme1.xml.rels",
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide2.xml.rels",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("archive entries mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFileReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(path, []byte("stale"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := WriteFile(path, sampleSlides(1)); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Bytes(sampleSlides(1))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Error("file content does not match the composed archive")
	}
}

func TestWriteFileFailures(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "deck.pptx")
		_, err := WriteFile(path, sampleSlides(1))
		if stage, ok := StageOf(err); !ok || stage != StageWrite {
			t.Fatalf("WriteFile() error = %v, want a write-stage error", err)
		}
	})

	t.Run("destination is a directory", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "deck.pptx")
		if err := os.Mkdir(path, 0755); err != nil {
			t.Fatal(err)
		}

		_, err := WriteFile(path, sampleSlides(1))
		if stage, ok := StageOf(err); !ok || stage != StageWrite {
			t.Fatalf("WriteFile() error = %v, want a write-stage error", err)
		}
		if diff := cmp.Diff([]string{"deck.pptx"}, dirNames(t, dir)); diff != "" {
			t.Errorf("temp file left behind (-want +got):\n%s", diff)
		}
	})

	t.Run("composition failure writes nothing", func(t *testing.T) {
		dir := t.TempDir()
		_, err := WriteFile(filepath.Join(dir, "deck.pptx"), sampleSlides(1), WithSlideSize(1, 1))
		if err == nil {
			t.Fatal("WriteFile() = nil error")
		}
		if names := dirNames(t, dir); len(names) != 0 {
			t.Errorf("directory should stay empty, has %v", names)
		}
	})
}
