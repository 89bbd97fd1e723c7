// Package deck loads slide decks from a directory of markdown files.
package deck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// NotesMarker separates a slide body from its speaker notes.
const NotesMarker = "## Speaker Notes"

// DefaultTitle is used for slides with an empty body.
const DefaultTitle = "Untitled"

// titleFile holds an optional deck title. Files starting with an
// underscore are never treated as slides.
const titleFile = "_title.md"

// ErrNoSlidesFound is returned when a directory holds no slide files.
var ErrNoSlidesFound = errors.New("no slides found")

// Slide is one parsed slide. It is never modified after loading.
type Slide struct {
	Filename string
	Title    string
	Body     string
	Notes    string
}

// Deck is an ordered, non-empty list of slides.
type Deck struct {
	Dir    string
	Title  string
	Slides []Slide
}

// Len returns the number of slides.
func (d Deck) Len() int { return len(d.Slides) }

// Last returns the index of the final slide.
func (d Deck) Last() int { return len(d.Slides) - 1 }

// Slide returns the slide at i, clamped into range.
func (d Deck) Slide(i int) Slide {
	if len(d.Slides) == 0 {
		return Slide{Title: DefaultTitle}
	}
	if i < 0 {
		i = 0
	}
	if i > d.Last() {
		i = d.Last()
	}
	return d.Slides[i]
}

// Load reads every *.md file in dir, sorted by filename, into a Deck.
func Load(dir string) (Deck, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return Deck{}, fmt.Errorf("failed to read slides directory: %w", err)
	}

	d := Deck{Dir: dir}

	if content, err := os.ReadFile(filepath.Join(dir, titleFile)); err == nil {
		d.Title = strings.TrimSpace(normalizeNewlines(string(content)))
	}

	var filenames []string
	for _, file := range files {
		if file.IsDir() || !IsSlideFile(file.Name()) {
			continue
		}
		filenames = append(filenames, file.Name())
	}
	sort.Strings(filenames)

	for _, name := range filenames {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return Deck{}, fmt.Errorf("failed to read slide %s: %w", name, err)
		}
		s := Parse(string(content))
		s.Filename = name
		d.Slides = append(d.Slides, s)
	}

	if len(d.Slides) == 0 {
		return Deck{}, fmt.Errorf("%w in %s", ErrNoSlidesFound, dir)
	}
	return d, nil
}

// IsSlideFile reports whether name looks like a slide file.
func IsSlideFile(name string) bool {
	return filepath.Ext(name) == ".md" && !strings.HasPrefix(name, "_")
}

// Parse splits raw slide text into body, notes and title.
func Parse(content string) Slide {
	content = normalizeNewlines(content)
	body, notes, _ := strings.Cut(content, NotesMarker)
	body = strings.TrimSpace(body)
	notes = strings.TrimSpace(notes)

	title := DefaultTitle
	if body != "" {
		first, _, _ := strings.Cut(body, "\n")
		title = strings.TrimPrefix(first, "# ")
	}

	return Slide{Title: title, Body: body, Notes: notes}
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
