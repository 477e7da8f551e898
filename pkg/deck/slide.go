package deck

import (
	"github.com/benjaminschreck/go-deck/pkg/deck/render"
)

// Body is the content under a slide title: either a TitleBody or a BulletBody.
type Body interface {
	isBody()
}

// TitleBody is a single subtitle line, used for opening and closing slides.
type TitleBody struct {
	Subtitle string
}

// BulletBody is an ordered list of lines, used for content slides.
type BulletBody struct {
	Lines []string
}

func (TitleBody) isBody()  {}
func (BulletBody) isBody() {}

// SlideSpec describes one slide. A nil Body renders a title-only slide.
type SlideSpec struct {
	Title string
	Body  Body
}

// TitleSlide creates a slide with a subtitle.
func TitleSlide(title, subtitle string) SlideSpec {
	return SlideSpec{Title: title, Body: TitleBody{Subtitle: subtitle}}
}

// BulletSlide creates a slide with bullet lines in the given order.
func BulletSlide(title string, lines ...string) SlideSpec {
	return SlideSpec{Title: title, Body: BulletBody{Lines: lines}}
}

// Layout returns the layout the slide renders with.
func (s SlideSpec) Layout() render.Layout {
	switch s.Body.(type) {
	case TitleBody, *TitleBody:
		return render.LayoutTitle
	default:
		return render.LayoutContent
	}
}

// Lines returns the body paragraphs that follow the title.
func (s SlideSpec) Lines() []string {
	switch b := s.Body.(type) {
	case TitleBody:
		return []string{b.Subtitle}
	case *TitleBody:
		if b == nil {
			return []string{""}
		}
		return []string{b.Subtitle}
	case BulletBody:
		return b.Lines
	case *BulletBody:
		if b == nil {
			return nil
		}
		return b.Lines
	default:
		return nil
	}
}

// RenderSlide renders the slide part for spec at the 1-based position index.
// It never fails: empty strings and empty bullet lists render as empty
// paragraphs and a title-only text box respectively.
func RenderSlide(spec SlideSpec, index int) []byte {
	return render.Slide(index, spec.Layout(), render.DefaultFrame, spec.Title, spec.Lines())
}
