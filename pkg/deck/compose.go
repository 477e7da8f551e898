package deck

import (
	"fmt"

	"github.com/benjaminschreck/go-deck/pkg/deck/opc"
	"github.com/benjaminschreck/go-deck/pkg/deck/render"
)

// Part names of the fixed scaffold.
const (
	PartCoreProperties = "docProps/core.xml"
	PartAppProperties  = "docProps/app.xml"
	PartPresentation   = "ppt/presentation.xml"
	PartSlideMaster    = "ppt/slideMasters/slideMaster1.xml"
	PartSlideLayout    = "ppt/slideLayouts/slideLayout1.xml"
	PartTheme          = "ppt/theme/theme1.xml"
)

// Content types of PresentationML parts.
const (
	ContentTypePresentation       = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ContentTypeSlide              = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ContentTypeSlideMaster        = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ContentTypeSlideLayout        = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ContentTypeTheme              = "application/vnd.openxmlformats-officedocument.theme+xml"
	ContentTypeCoreProperties     = "application/vnd.openxmlformats-package.core-properties+xml"
	ContentTypeExtendedProperties = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// Relationship types between PresentationML parts.
const (
	RelTypeSlide       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	RelTypeSlideMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	RelTypeSlideLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	RelTypeTheme       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
)

// ScaffoldEntries is the number of archive entries present regardless of the
// slide count: the manifest, the root scope, six scaffold parts and the
// scopes of the presentation, master, layout and theme.
const ScaffoldEntries = 12

// SlidePartName returns the part name of the slide at 1-based index.
func SlidePartName(index int) string {
	return fmt.Sprintf("ppt/slides/slide%d.xml", index)
}

// Compose builds the complete package for slides. The result is fully wired
// and validated; composing the same input twice yields identical packages.
func Compose(slides []SlideSpec, opts ...Option) (*opc.Package, error) {
	config, err := resolveConfig(opts)
	if err != nil {
		return nil, NewStageError(StageCompose, "", err)
	}
	return compose(slides, config)
}

// composer records the first failure so that allocation reads as a straight
// sequence of steps.
type composer struct {
	pkg *opc.Package
	err error
}

func (c *composer) add(name, contentType string, data []byte) *opc.Part {
	if c.err != nil {
		return nil
	}
	part, err := c.pkg.AddPart(name, contentType, data)
	if err != nil {
		c.err = err
	}
	return part
}

func (c *composer) relate(source *opc.Part, relType string, target *opc.Part) string {
	if c.err != nil {
		return ""
	}
	id, err := c.pkg.Relate(source, relType, target)
	if err != nil {
		c.err = err
	}
	return id
}

func compose(slides []SlideSpec, config *Config) (pkg *opc.Package, err error) {
	log := GetLogger().WithField("slides", len(slides))

	pkg = opc.New()
	pkg.RegisterDefault("rels", opc.ContentTypeRelationships)
	pkg.RegisterDefault("xml", opc.ContentTypeXML)
	c := &composer{pkg: pkg}

	core := c.add(PartCoreProperties, ContentTypeCoreProperties, render.CoreProperties(config.Title, config.Creator))
	app := c.add(PartAppProperties, ContentTypeExtendedProperties, render.AppProperties(config.Application, len(slides)))
	presentation := c.add(PartPresentation, ContentTypePresentation, nil)
	master := c.add(PartSlideMaster, ContentTypeSlideMaster, nil)
	layout := c.add(PartSlideLayout, ContentTypeSlideLayout, render.SlideLayout())
	theme := c.add(PartTheme, ContentTypeTheme, render.Theme(config.ThemeName))

	c.relate(nil, opc.RelTypeOfficeDocument, presentation)
	c.relate(nil, opc.RelTypeCoreProperties, core)
	c.relate(nil, opc.RelTypeExtendedProperties, app)

	layoutRelID := c.relate(master, RelTypeSlideLayout, layout)
	c.relate(master, RelTypeTheme, theme)
	c.relate(layout, RelTypeSlideMaster, master)
	if c.err == nil {
		master.Data = render.SlideMaster(layoutRelID)
		pkg.DeclareScope(theme)
	}

	masterRelID := c.relate(presentation, RelTypeSlideMaster, master)

	refs := make([]render.SlideRef, 0, len(slides))
	for i, spec := range slides {
		index := i + 1
		body, err := renderSafely(spec, index)
		if err != nil {
			return nil, NewStageError(StageRender, SlidePartName(index), err)
		}

		slide := c.add(SlidePartName(index), ContentTypeSlide, body)
		c.relate(slide, RelTypeSlideLayout, layout)
		relID := c.relate(presentation, RelTypeSlide, slide)
		refs = append(refs, render.SlideRef{ID: render.FirstSlideID + i, RelID: relID})

		log.WithFields(Fields{"index": index, "rel": relID}).Debug("allocated %s (%s layout)", SlidePartName(index), spec.Layout())
	}
	c.relate(presentation, RelTypeTheme, theme)

	if c.err != nil {
		return nil, NewStageError(StageCompose, "", c.err)
	}
	presentation.Data = render.Presentation(masterRelID, refs, config.SlideWidth, config.SlideHeight)

	if err := pkg.Validate(); err != nil {
		return nil, NewStageError(StageCompose, "", err)
	}

	log.Debug("composed %d parts", len(pkg.Parts()))
	return pkg, nil
}

// renderSafely turns a renderer panic into an error so that a bad slide
// aborts composition instead of the process.
func renderSafely(spec SlideSpec, index int) (body []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = RecoverError(r)
		}
	}()
	return RenderSlide(spec, index), nil
}
