// Package deck builds PowerPoint presentations (PPTX) from an ordered list of
// slide descriptions.
//
// Each slide is a title followed either by a single subtitle line or by a
// list of bullet lines. The package takes care of everything a presentation
// consumer needs to open the result: part naming, relationship wiring,
// content-type registration, the slide master/layout/theme scaffold and the
// document properties.
//
// # Quick Start
//
//	slides := []deck.SlideSpec{
//	    deck.TitleSlide("Release Management", "Project Presentation"),
//	    deck.BulletSlide("Overview", "Event-driven", "Real-time collaboration"),
//	    deck.TitleSlide("Thank You", "Questions?"),
//	}
//
//	result, err := deck.WriteFile("out.pptx", slides, deck.WithTitle("Release Management"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wrote %d slides to %s\n", result.Slides, result.Path)
//
// Decks can also be described in TOML (or JSON) and loaded with LoadDeckFile:
//
//	title = "Release Management"
//
//	[[slides]]
//	title = "Overview"
//	bullets = ["Event-driven", "Real-time collaboration"]
//
//	[[slides]]
//	title = "Thank You"
//	subtitle = "Questions?"
//
// # Architecture
//
//   - opc: the generic package model (parts, relationships, content types),
//     structural validation, deterministic zip writing and reading
//   - render: XML bodies for slides and the fixed scaffold parts
//
// The main package provides:
//   - Slide descriptions (SlideSpec, TitleBody, BulletBody)
//   - Composition (Compose) and output (Write, Bytes, WriteFile)
//   - Deck files (LoadDeckFile, ParseDeck)
//   - Verification of existing archives (Verify, VerifyFile)
//   - Configuration and logging
//
// # Determinism
//
// Composition allocates every id with a counter and every archive entry
// carries the same modification time, so the same slides and options always
// produce byte-identical output.
//
// # Configuration
//
// Defaults can be overridden with environment variables:
//
//	DECK_LOG_LEVEL          debug, info, warn, error or off
//	DECK_TITLE              document title (default "Presentation")
//	DECK_CREATOR            document author (default "go-deck")
//	DECK_APPLICATION        application name in docProps/app.xml
//	DECK_THEME_NAME         name of the generated theme
//	DECK_SLIDE_WIDTH        slide width in EMU
//	DECK_SLIDE_HEIGHT       slide height in EMU
//	DECK_COMPRESSION_LEVEL  flate level for archive entries
//	DECK_STORE              write entries uncompressed
//
// or per call with Options:
//
//	deck.Compose(slides, deck.WithCreator("CS544"), deck.WithSlideSize(12192000, 6858000))
//
// # Error Handling
//
// I/O failures are returned as *StageError naming the failing stage (load,
// render, compose or write). Structural problems are reported as
// *InvariantError values whose Kind can be matched with errors.Is:
//
//	if errors.Is(err, deck.ErrDanglingRelationship) {
//	    // a relationship points at a part that was never added
//	}
package deck
