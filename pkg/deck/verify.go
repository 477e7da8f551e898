package deck

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benjaminschreck/go-deck/pkg/deck/opc"
)

// ErrNoPresentation is reported when the root scope does not point at a
// presentation part.
var ErrNoPresentation = errors.New("package has no presentation part")

// Report summarizes a structural check of an existing archive.
type Report struct {
	Path   string   `json:"path,omitempty"`
	Parts  int      `json:"parts"`
	Slides int      `json:"slides"`
	Issues []string `json:"issues"`
}

// OK reports whether no issues were found.
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

// Verify reads an archive back and checks its structure. An error is only
// returned for input that cannot be read as a package at all; structural
// problems are listed in the report.
func Verify(r io.ReaderAt, size int64) (*Report, error) {
	pkg, err := opc.ReadPackage(r, size)
	if err != nil {
		return nil, NewStageError(StageLoad, "", err)
	}

	report := &Report{
		Parts:  len(pkg.Parts()),
		Slides: len(pkg.PartsOfType(ContentTypeSlide)),
		Issues: []string{},
	}

	if err := pkg.Validate(); err != nil {
		var issues opc.Issues
		if errors.As(err, &issues) {
			for _, issue := range issues {
				report.Issues = append(report.Issues, issue.Error())
			}
		} else {
			report.Issues = append(report.Issues, err.Error())
		}
	}

	if !hasPresentation(pkg) {
		report.Issues = append(report.Issues, fmt.Sprintf("%v: no %s relationship in %s", ErrNoPresentation, "officeDocument", opc.RelationshipsPath("")))
	}

	return report, nil
}

// VerifyFile runs Verify on the archive at path.
func VerifyFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewStageError(StageLoad, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, NewStageError(StageLoad, path, err)
	}

	report, err := Verify(f, info.Size())
	if err != nil {
		return nil, NewStageError(StageLoad, path, errors.Unwrap(err))
	}
	report.Path = path
	return report, nil
}

func hasPresentation(pkg *opc.Package) bool {
	for _, rel := range pkg.RootRelationships() {
		if rel.Type != opc.RelTypeOfficeDocument {
			continue
		}
		part, ok := pkg.Part(opc.ResolveTarget("", rel.Target))
		return ok && part.ContentType == ContentTypePresentation
	}
	return false
}
