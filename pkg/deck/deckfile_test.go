package deck

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleTOML = `
title = "Release Management System"
creator = "CS544"

[[slides]]
title = "Real-Time Release Management System"
subtitle = "Project Presentation"

[[slides]]
title = "Kafka Events"
bullets = [
  "task-events: assigned, hotfix, stale, completed",
  "system-events: error",
]

[[slides]]
title = "Thank You"
subtitle = "Questions?"
`

const sampleJSON = `{
  "title": "Release Management System",
  "slides": [
    {"title": "Overview", "bullets": ["Kafka", "SSE & AI"]},
    {"title": "Thank You", "subtitle": "Questions?"}
  ]
}`

// captureLogs routes the global logger into a buffer for the test.
func captureLogs(t *testing.T, level LogLevel) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := GetLogger()
	SetLogger(NewLogger(&buf, level))
	t.Cleanup(func() { SetLogger(previous) })
	return &buf
}

func TestParseDeckTOML(t *testing.T) {
	d, err := ParseDeck([]byte(sampleTOML), FormatTOML)
	if err != nil {
		t.Fatalf("ParseDeck() error = %v", err)
	}
	if d.Title != "Release Management System" || d.Creator != "CS544" {
		t.Errorf("metadata = %q/%q", d.Title, d.Creator)
	}

	want := []SlideSpec{
		TitleSlide("Real-Time Release Management System", "Project Presentation"),
		BulletSlide("Kafka Events", "task-events: assigned, hotfix, stale, completed", "system-events: error"),
		TitleSlide("Thank You", "Questions?"),
	}
	if diff := cmp.Diff(want, d.Specs()); diff != "" {
		t.Errorf("Specs() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDeckJSON(t *testing.T) {
	d, err := ParseDeck([]byte(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatalf("ParseDeck() error = %v", err)
	}
	want := []SlideSpec{
		BulletSlide("Overview", "Kafka", "SSE & AI"),
		TitleSlide("Thank You", "Questions?"),
	}
	if diff := cmp.Diff(want, d.Specs()); diff != "" {
		t.Errorf("Specs() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDeckErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"malformed toml", "title = ", FormatTOML},
		{"malformed json", `{"slides": [`, FormatJSON},
		{"wrong type", `slides = "not a table"`, FormatTOML},
		{"unknown format", "title = 'x'", Format("yaml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDeck([]byte(tt.data), tt.format); err == nil {
				t.Error("ParseDeck() = nil error")
			}
		})
	}
}

func TestSpecsRecoversAmbiguousSlides(t *testing.T) {
	logs := captureLogs(t, LogWarn)

	subtitle := "sub"
	d := &Deck{Slides: []DeckSlide{
		{Title: "Both", Subtitle: &subtitle, Bullets: []string{"x"}},
		{Title: "Neither"},
		{Title: "Empty list", Bullets: []string{}},
	}}

	want := []SlideSpec{
		{Title: "Both", Body: BulletBody{}},
		{Title: "Neither", Body: BulletBody{}},
		{Title: "Empty list", Body: BulletBody{Lines: []string{}}},
	}
	if diff := cmp.Diff(want, d.Specs()); diff != "" {
		t.Errorf("Specs() mismatch (-want +got):\n%s", diff)
	}

	out := logs.String()
	for _, want := range []string{"[WARN]", "both subtitle and bullets", "no subtitle or bullets", "slide=1", "slide=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "slide=3") {
		t.Errorf("an explicit empty bullet list is not ambiguous:\n%s", out)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"deck.toml":      FormatTOML,
		"deck.json":      FormatJSON,
		"DECK.JSON":      FormatJSON,
		"deck":           FormatTOML,
		"dir.json/deck":  FormatTOML,
		"slides.v2.json": FormatJSON,
	}
	for path, want := range tests {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestLoadDeckFile(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "deck.toml")
	jsonPath := filepath.Join(dir, "deck.json")
	if err := os.WriteFile(tomlPath, []byte(sampleTOML), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(jsonPath, []byte(sampleJSON), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadDeckFile(tomlPath)
	if err != nil {
		t.Fatalf("LoadDeckFile(toml) error = %v", err)
	}
	if len(d.Slides) != 3 {
		t.Errorf("toml deck has %d slides, want 3", len(d.Slides))
	}

	d, err = LoadDeckFile(jsonPath)
	if err != nil {
		t.Fatalf("LoadDeckFile(json) error = %v", err)
	}
	if len(d.Slides) != 2 {
		t.Errorf("json deck has %d slides, want 2", len(d.Slides))
	}

	_, err = LoadDeckFile(filepath.Join(dir, "missing.toml"))
	if stage, ok := StageOf(err); !ok || stage != StageLoad {
		t.Errorf("LoadDeckFile(missing) error = %v, want a load-stage error", err)
	}

	badPath := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(badPath, []byte("[[slides]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadDeckFile(badPath)
	if stage, ok := StageOf(err); !ok || stage != StageLoad {
		t.Errorf("LoadDeckFile(bad) error = %v, want a load-stage error", err)
	}
}

func TestBuildFile(t *testing.T) {
	dir := t.TempDir()
	deckPath := filepath.Join(dir, "deck.toml")
	outPath := filepath.Join(dir, "out.pptx")
	if err := os.WriteFile(deckPath, []byte(sampleTOML), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := BuildFile(deckPath, outPath)
	if err != nil {
		t.Fatalf("BuildFile() error = %v", err)
	}
	if result.Slides != 3 {
		t.Errorf("result.Slides = %d, want 3", result.Slides)
	}

	report, err := VerifyFile(outPath)
	if err != nil {
		t.Fatalf("VerifyFile() error = %v", err)
	}
	if !report.OK() || report.Slides != 3 {
		t.Errorf("report = %+v, want 3 slides and no issues", report)
	}
}

func TestDeckOptions(t *testing.T) {
	d := &Deck{Title: "Quarterly", Creator: "Ops"}
	pkg := mustCompose(t, sampleSlides(1), d.Options()...)

	core := partData(t, pkg, PartCoreProperties)
	for _, want := range []string{"<dc:title>Quarterly</dc:title>", "<dc:creator>Ops</dc:creator>"} {
		if !strings.Contains(core, want) {
			t.Errorf("core.xml does not contain %s", want)
		}
	}

	if opts := (&Deck{}).Options(); len(opts) != 0 {
		t.Errorf("empty metadata produced %d options", len(opts))
	}
}
