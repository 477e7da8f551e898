package render

import (
	"fmt"
	"strings"
)

const (
	// FirstSlideID is the lowest id PowerPoint accepts in p:sldIdLst.
	FirstSlideID = 256

	// MasterID identifies the single slide master; layout ids follow it.
	MasterID int64 = 2147483648
	LayoutID       = MasterID + 1

	namespaceCoreProperties     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	namespaceDublinCore         = "http://purl.org/dc/elements/1.1/"
	namespaceExtendedProperties = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
)

// SlideRef is one entry of the presentation's slide list.
type SlideRef struct {
	ID    int
	RelID string
}

// Presentation renders ppt/presentation.xml. Slides appear in the given order;
// an empty list yields an empty p:sldIdLst.
func Presentation(masterRelID string, slides []SlideRef, width, height int64) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s" saveSubsetFonts="1">`,
		NamespaceDrawingML, NamespaceRelationships, NamespacePresentationML)
	fmt.Fprintf(&b, `<p:sldMasterIdLst><p:sldMasterId id="%d" r:id="%s"/></p:sldMasterIdLst>`, MasterID, masterRelID)
	b.WriteString(`<p:sldIdLst>`)
	for _, s := range slides {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="%s"/>`, s.ID, s.RelID)
	}
	b.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, width, height)
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)
	return []byte(b.String())
}

// SlideMaster renders the single slide master, listing its layout under layoutRelID.
func SlideMaster(layoutRelID string) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sldMaster xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, NamespaceDrawingML, NamespaceRelationships, NamespacePresentationML)
	b.WriteString(`<p:cSld><p:bg><p:bgPr><a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill><a:effectLst/></p:bgPr></p:bg><p:spTree>`)
	writeGroupProperties(&b)
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>`)
	fmt.Fprintf(&b, `<p:sldLayoutIdLst><p:sldLayoutId id="%d" r:id="%s"/></p:sldLayoutIdLst>`, LayoutID, layoutRelID)
	b.WriteString(`</p:sldMaster>`)
	return []byte(b.String())
}

// SlideLayout renders the blank layout every slide uses.
func SlideLayout() []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sldLayout xmlns:a="%s" xmlns:r="%s" xmlns:p="%s" type="blank" preserve="1">`, NamespaceDrawingML, NamespaceRelationships, NamespacePresentationML)
	b.WriteString(`<p:cSld name="Blank"><p:spTree>`)
	writeGroupProperties(&b)
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sldLayout>`)
	return []byte(b.String())
}

// Theme renders a minimal complete theme: colour, font and format schemes.
func Theme(name string) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<a:theme xmlns:a="%s" name="%s">`, NamespaceDrawingML, Escape(name))
	b.WriteString(`<a:themeElements>`)

	b.WriteString(`<a:clrScheme name="Office">`)
	b.WriteString(`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>`)
	b.WriteString(`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>`)
	for _, c := range themeColors {
		fmt.Fprintf(&b, `<a:%s><a:srgbClr val="%s"/></a:%s>`, c.slot, c.rgb, c.slot)
	}
	b.WriteString(`</a:clrScheme>`)

	b.WriteString(`<a:fontScheme name="Office">`)
	b.WriteString(`<a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>`)
	b.WriteString(`<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>`)
	b.WriteString(`</a:fontScheme>`)

	b.WriteString(`<a:fmtScheme name="Office"><a:fillStyleLst>`)
	b.WriteString(strings.Repeat(`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>`, 3))
	b.WriteString(`</a:fillStyleLst><a:lnStyleLst>`)
	for _, w := range []int{6350, 12700, 19050} {
		fmt.Fprintf(&b, `<a:ln w="%d" cap="flat" cmpd="sng" algn="ctr"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:prstDash val="solid"/><a:miter lim="800000"/></a:ln>`, w)
	}
	b.WriteString(`</a:lnStyleLst><a:effectStyleLst>`)
	b.WriteString(strings.Repeat(`<a:effectStyle><a:effectLst/></a:effectStyle>`, 3))
	b.WriteString(`</a:effectStyleLst><a:bgFillStyleLst>`)
	b.WriteString(strings.Repeat(`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>`, 3))
	b.WriteString(`</a:bgFillStyleLst></a:fmtScheme>`)

	b.WriteString(`</a:themeElements><a:objectDefaults/><a:extraClrSchemeLst/></a:theme>`)
	return []byte(b.String())
}

var themeColors = []struct{ slot, rgb string }{
	{"dk2", "44546A"},
	{"lt2", "E7E6E6"},
	{"accent1", "4472C4"},
	{"accent2", "ED7D31"},
	{"accent3", "A5A5A5"},
	{"accent4", "FFC000"},
	{"accent5", "5B9BD5"},
	{"accent6", "70AD47"},
	{"hlink", "0563C1"},
	{"folHlink", "954F72"},
}

// CoreProperties renders docProps/core.xml with title and creator metadata.
func CoreProperties(title, creator string) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<cp:coreProperties xmlns:cp="%s" xmlns:dc="%s">`, namespaceCoreProperties, namespaceDublinCore)
	fmt.Fprintf(&b, `<dc:title>%s</dc:title>`, Escape(title))
	fmt.Fprintf(&b, `<dc:creator>%s</dc:creator>`, Escape(creator))
	fmt.Fprintf(&b, `<cp:lastModifiedBy>%s</cp:lastModifiedBy>`, Escape(creator))
	b.WriteString(`</cp:coreProperties>`)
	return []byte(b.String())
}

// AppProperties renders docProps/app.xml carrying the slide count.
func AppProperties(application string, slides int) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<Properties xmlns="%s">`, namespaceExtendedProperties)
	fmt.Fprintf(&b, `<Application>%s</Application>`, Escape(application))
	fmt.Fprintf(&b, `<Slides>%d</Slides>`, slides)
	b.WriteString(`</Properties>`)
	return []byte(b.String())
}
