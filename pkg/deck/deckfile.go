package deck

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Format is the encoding of a deck file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatForPath picks the deck format from a file extension. Anything that
// is not .json is read as TOML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatTOML
}

// Deck is the on-disk description of a presentation.
//
//	title = "Release Management System"
//	creator = "CS544"
//
//	[[slides]]
//	title = "Project Overview"
//	bullets = ["Event-driven architecture", "Real-time collaboration"]
type Deck struct {
	Title   string      `toml:"title,omitempty" json:"title,omitempty"`
	Creator string      `toml:"creator,omitempty" json:"creator,omitempty"`
	Slides  []DeckSlide `toml:"slides" json:"slides"`
}

// DeckSlide holds either a subtitle or a bullet list.
type DeckSlide struct {
	Title    string   `toml:"title" json:"title"`
	Subtitle *string  `toml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Bullets  []string `toml:"bullets,omitempty" json:"bullets,omitempty"`
}

// ParseDeck decodes a deck from data.
func ParseDeck(data []byte, format Format) (*Deck, error) {
	var d Deck
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parsing toml deck: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parsing json deck: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown deck format %q", format)
	}
	return &d, nil
}

// LoadDeckFile reads and decodes the deck at path.
func LoadDeckFile(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewStageError(StageLoad, path, err)
	}
	d, err := ParseDeck(data, FormatForPath(path))
	if err != nil {
		return nil, NewStageError(StageLoad, path, err)
	}
	Debug("loaded %d slides from %s", len(d.Slides), path)
	return d, nil
}

// Specs converts the deck to slide specs. A slide that sets both a subtitle
// and bullets, or neither, becomes a title-only slide and is logged.
func (d *Deck) Specs() []SlideSpec {
	specs := make([]SlideSpec, 0, len(d.Slides))
	for i, s := range d.Slides {
		log := WithFields(Fields{"slide": i + 1, "title": s.Title})
		switch {
		case s.Subtitle != nil && s.Bullets != nil:
			log.Warn("slide has both subtitle and bullets, rendering title only")
			specs = append(specs, SlideSpec{Title: s.Title, Body: BulletBody{}})
		case s.Subtitle != nil:
			specs = append(specs, TitleSlide(s.Title, *s.Subtitle))
		case s.Bullets != nil:
			specs = append(specs, BulletSlide(s.Title, s.Bullets...))
		default:
			log.Warn("slide has no subtitle or bullets, rendering title only")
			specs = append(specs, SlideSpec{Title: s.Title, Body: BulletBody{}})
		}
	}
	return specs
}

// Options returns the per-call options carried by the deck metadata.
func (d *Deck) Options() []Option {
	var opts []Option
	if d.Title != "" {
		opts = append(opts, WithTitle(d.Title))
	}
	if d.Creator != "" {
		opts = append(opts, WithCreator(d.Creator))
	}
	return opts
}

// BuildFile loads the deck at deckPath and writes the presentation to outPath.
// Options given here apply after the deck metadata.
func BuildFile(deckPath, outPath string, opts ...Option) (*Result, error) {
	d, err := LoadDeckFile(deckPath)
	if err != nil {
		return nil, err
	}
	return WriteFile(outPath, d.Specs(), append(d.Options(), opts...)...)
}
