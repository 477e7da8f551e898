package render

import (
	"fmt"
	"strings"
)

const (
	NamespacePresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	NamespaceDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	NamespaceRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

	// EMUPerInch converts inches to English Metric Units.
	EMUPerInch = 914400
)

// Layout selects font sizes for the text box of a slide.
type Layout int

const (
	// LayoutTitle is used for opening and closing slides: title plus subtitle.
	LayoutTitle Layout = iota
	// LayoutContent is used for a title followed by bullet lines.
	LayoutContent
)

func (l Layout) String() string {
	switch l {
	case LayoutTitle:
		return "title"
	case LayoutContent:
		return "content"
	default:
		return "unknown"
	}
}

// FontSizes returns the title and body sizes in hundredths of a point.
func (l Layout) FontSizes() (title, body int) {
	if l == LayoutTitle {
		return 4400, 3200
	}
	return 3600, 2800
}

// Frame is the position and size of the text box, in EMU.
type Frame struct {
	X, Y   int64
	Width  int64
	Height int64
}

// DefaultFrame anchors the text box one inch from the top-left corner.
var DefaultFrame = Frame{
	X:      EMUPerInch,
	Y:      EMUPerInch,
	Width:  8 * EMUPerInch,
	Height: EMUPerInch,
}

// Slide renders a complete p:sld document. The text box holds the title
// paragraph followed by one paragraph per line, in order. index is the
// 1-based slide position and only names the shape.
func Slide(index int, layout Layout, frame Frame, title string, lines []string) []byte {
	titleSize, bodySize := layout.FontSizes()

	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, NamespaceDrawingML, NamespaceRelationships, NamespacePresentationML)
	b.WriteString(`<p:cSld>`)
	b.WriteString(`<p:bg><p:bgPr><a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`)
	b.WriteString(`<p:spTree>`)
	writeGroupProperties(&b)

	b.WriteString(`<p:sp>`)
	fmt.Fprintf(&b, `<p:nvSpPr><p:cNvPr id="2" name="TextBox %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, index)
	fmt.Fprintf(&b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`,
		frame.X, frame.Y, frame.Width, frame.Height)
	b.WriteString(`<p:txBody><a:bodyPr wrap="square" rtlCol="0"><a:spAutoFit/></a:bodyPr><a:lstStyle/>`)

	writeParagraph(&b, title, titleSize)
	for _, line := range lines {
		writeParagraph(&b, line, bodySize)
	}

	b.WriteString(`</p:txBody></p:sp>`)
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sld>`)
	return []byte(b.String())
}

// writeGroupProperties writes the mandatory root group of a shape tree.
func writeGroupProperties(b *strings.Builder) {
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)
}

// writeParagraph writes one single-run paragraph. Runs carry only a size;
// weight and colour come from the master's text styles.
func writeParagraph(b *strings.Builder, text string, size int) {
	b.WriteString(`<a:p><a:r>`)
	fmt.Fprintf(b, `<a:rPr lang="en-US" sz="%d" dirty="0"/>`, size)
	b.WriteString(`<a:t>`)
	b.WriteString(Escape(text))
	b.WriteString(`</a:t></a:r>`)
	fmt.Fprintf(b, `<a:endParaRPr lang="en-US" sz="%d" dirty="0"/>`, size)
	b.WriteString(`</a:p>`)
}
