package deck

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Field is one labelled value of a merchant or business table
type Field struct {
	Label string `mapstructure:"label" json:"label"`
	Value string `mapstructure:"value" json:"value"`
}

// Rows is an ordered label/value table. Display order is slice order.
type Rows []Field

// Labels returns the labels in display order
func (r Rows) Labels() []string {
	labels := make([]string, len(r))
	for i, f := range r {
		labels[i] = f.Label
	}
	return labels
}

// Get returns the value stored under label
func (r Rows) Get(label string) (string, bool) {
	for _, f := range r {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

// Duplicate returns the first label that appears more than once, or "".
func (r Rows) Duplicate() string {
	seen := make(map[string]struct{}, len(r))
	for _, f := range r {
		if _, ok := seen[f.Label]; ok {
			return f.Label
		}
		seen[f.Label] = struct{}{}
	}
	return ""
}

// SlideSpec describes one slide before rendering. It is implemented by
// Title, InfoTable and ScreenshotPlaceholder.
type SlideSpec interface {
	slideSpec()
}

// Title is a centred heading slide with an optional subheading
type Title struct {
	Heading    string
	Subheading string
}

// InfoTable is a header band followed by numbered label/value rows
type InfoTable struct {
	Heading string
	Rows    Rows
	Note    string
}

// ScreenshotPlaceholder reserves the slide body for a manual capture
type ScreenshotPlaceholder struct {
	Heading     string
	Instruction string
	Caption     string
}

func (Title) slideSpec()                 {}
func (InfoTable) slideSpec()             {}
func (ScreenshotPlaceholder) slideSpec() {}

// Role tells the writer how a shape is styled
type Role int

const (
	RoleBackground Role = iota
	RoleTitle
	RoleSubtitle
	RoleHeaderBand
	RoleHeading
	RoleInstruction
	RoleRowLabel
	RoleRowValue
	RoleNote
	RoleFrame
	RoleCaption
)

var roleNames = map[Role]string{
	RoleBackground:  "background",
	RoleTitle:       "title",
	RoleSubtitle:    "subtitle",
	RoleHeaderBand:  "header-band",
	RoleHeading:     "heading",
	RoleInstruction: "instruction",
	RoleRowLabel:    "row-label",
	RoleRowValue:    "row-value",
	RoleNote:        "note",
	RoleFrame:       "frame",
	RoleCaption:     "caption",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Box is a shape rectangle in inches from the top-left corner
type Box struct {
	X, Y, W, H float64
}

// Shape is one positioned element of a rendered slide
type Shape struct {
	Role Role
	Box  Box
	Text string
}

// Slide is a rendered slide: its shapes in drawing order
type Slide struct {
	Kind   string
	Shapes []Shape
}

// Texts returns the non-empty shape texts of the slide in drawing order
func (s Slide) Texts() []string {
	var texts []string
	for _, sh := range s.Shapes {
		if t := strings.TrimSpace(sh.Text); t != "" {
			texts = append(texts, t)
		}
	}
	return texts
}

// ShapesWithRole returns the shapes of the slide that have role r
func (s Slide) ShapesWithRole(r Role) []Shape {
	var out []Shape
	for _, sh := range s.Shapes {
		if sh.Role == r {
			out = append(out, sh)
		}
	}
	return out
}

// Deck is the ordered list of rendered slides plus page geometry
type Deck struct {
	Title  string
	Width  float64
	Height float64
	Slides []Slide
}

// Texts returns the text fingerprint of the deck, one entry per slide.
// Two decks with equal Texts render the same visible text.
func (d *Deck) Texts() [][]string {
	out := make([][]string, len(d.Slides))
	for i, s := range d.Slides {
		out[i] = s.Texts()
	}
	return out
}

// SlidesOfKind returns the indexes of slides rendered from the given kind
func (d *Deck) SlidesOfKind(kind string) []int {
	var idx []int
	for i, s := range d.Slides {
		if s.Kind == kind {
			idx = append(idx, i)
		}
	}
	return idx
}

// normalize puts slide text into NFC so Hangul compares equal whether it
// was typed composed or decomposed.
func normalize(s string) string {
	return norm.NFC.String(s)
}
