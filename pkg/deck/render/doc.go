// Package render produces the XML bodies of the parts of a PresentationML
// package.
//
// This package knows nothing about part names or relationship wiring; it
// turns already-decided values (slide text, relationship ids, slide ids) into
// markup. Composition lives in the deck package.
//
// # Structure Organization
//
//   - escape.go: Escape, the single text-to-markup conversion
//   - slide.go: one slide with a single text box, in title or content layout
//   - scaffold.go: presentation, slide master, slide layout, theme and
//     document-property bodies
//
// # Design Principles
//
// Bodies are built by string templating over a fixed, small subset of
// PresentationML. Every piece of caller-supplied text passes through Escape
// exactly once, at the point where it is embedded; structural markup is
// never escaped.
package render
