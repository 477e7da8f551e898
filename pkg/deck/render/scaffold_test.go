package render

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScaffoldPartsAreWellFormed(t *testing.T) {
	parts := map[string][]byte{
		"presentation":       Presentation("rId1", []SlideRef{{ID: 256, RelID: "rId2"}}, 9144000, 6858000),
		"empty presentation": Presentation("rId1", nil, 9144000, 6858000),
		"master":             SlideMaster("rId1"),
		"layout":             SlideLayout(),
		"theme":              Theme(`Corp "Blue" & Co`),
		"core":               CoreProperties("Q&A <draft>", "O'Brien"),
		"app":                AppProperties("go-deck", 12),
	}

	for name, data := range parts {
		t.Run(name, func(t *testing.T) {
			if !bytes.HasPrefix(data, []byte(xmlHeader)) {
				t.Error("missing XML declaration")
			}
			if err := wellFormed(data); err != nil {
				t.Errorf("not well-formed: %v\n%s", err, data)
			}
		})
	}
}

func TestPresentationSlideList(t *testing.T) {
	refs := []SlideRef{{ID: 256, RelID: "rId2"}, {ID: 257, RelID: "rId3"}, {ID: 258, RelID: "rId4"}}
	data := Presentation("rId1", refs, 12192000, 6858000)

	want := []string{
		`<p:sldMasterId id="2147483648" r:id="rId1"/>`,
		`<p:sldId id="256" r:id="rId2"/>`,
		`<p:sldId id="257" r:id="rId3"/>`,
		`<p:sldId id="258" r:id="rId4"/>`,
		`<p:sldSz cx="12192000" cy="6858000"/>`,
	}
	last := -1
	for _, w := range want {
		i := bytes.Index(data, []byte(w))
		if i < 0 {
			t.Fatalf("presentation does not contain %s:\n%s", w, data)
		}
		if i < last {
			t.Errorf("%s is out of order", w)
		}
		last = i
	}
}

func TestEmptyPresentationHasEmptySlideList(t *testing.T) {
	data := Presentation("rId1", nil, 9144000, 6858000)
	if !bytes.Contains(data, []byte("<p:sldIdLst></p:sldIdLst>")) {
		t.Errorf("expected an empty p:sldIdLst in:\n%s", data)
	}
}

func TestDocumentProperties(t *testing.T) {
	type core struct {
		Title          string `xml:"title"`
		Creator        string `xml:"creator"`
		LastModifiedBy string `xml:"lastModifiedBy"`
	}
	var c core
	if err := xml.Unmarshal(CoreProperties("Q&A <draft>", "O'Brien"), &c); err != nil {
		t.Fatalf("Unmarshal(core) error = %v", err)
	}
	want := core{Title: "Q&A <draft>", Creator: "O'Brien", LastModifiedBy: "O'Brien"}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("core properties mismatch (-want +got):\n%s", diff)
	}

	type app struct {
		Application string `xml:"Application"`
		Slides      int    `xml:"Slides"`
	}
	var a app
	if err := xml.Unmarshal(AppProperties("go-deck", 12), &a); err != nil {
		t.Fatalf("Unmarshal(app) error = %v", err)
	}
	if a.Application != "go-deck" || a.Slides != 12 {
		t.Errorf("app properties = %+v, want go-deck with 12 slides", a)
	}
}

func TestSlideMasterListsLayout(t *testing.T) {
	data := SlideMaster("rId7")
	if !bytes.Contains(data, []byte(`<p:sldLayoutId id="2147483649" r:id="rId7"/>`)) {
		t.Errorf("master does not list its layout:\n%s", data)
	}
}
