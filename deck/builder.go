package deck

import "fmt"

// Slide kinds, one per SlideSpec variant
const (
	KindTitle      = "title"
	KindInfo       = "info"
	KindScreenshot = "screenshot"
)

// DefaultCaption is used when a screenshot slide is given no caption
const DefaultCaption = "[스크린샷을 여기에 붙여넣으세요]"

// 4:3 page, inches
const (
	PageWidth  = 10.0
	PageHeight = 7.5

	marginX      = 0.5
	contentWidth = PageWidth - 2*marginX

	headerBandHeight = 1.2
	headingY         = 0.25
	headingHeight    = 0.5
	instructionY     = 0.8
	instructionH     = 0.3

	titleY         = 2.5
	titleHeight    = 1.0
	subtitleY      = 3.5
	subtitleHeight = 0.5

	rowStartY   = 1.8
	rowSpacing  = 0.5
	rowHeight   = 0.4
	labelX      = 1.0
	labelWidth  = 2.5
	valueX      = 3.8
	valueWidth  = 5.5
	noteY       = 6.5
	noteHeight  = 0.5
	frameY      = 1.5
	frameHeight = 5.5
	captionW    = 5.0
	captionH    = 0.5
)

// Builder renders slide specs into a Deck. Slides are appended in call order.
type Builder struct {
	deck *Deck
}

// NewBuilder returns a builder for an empty deck on the 10in x 7.5in page
func NewBuilder(title string) *Builder {
	return &Builder{deck: &Deck{
		Title:  normalize(title),
		Width:  PageWidth,
		Height: PageHeight,
	}}
}

// Deck returns the deck rendered so far
func (b *Builder) Deck() *Deck {
	return b.deck
}

// Render appends the slide described by spec. It reports false and
// appends nothing for a nil spec, including a typed nil pointer.
func (b *Builder) Render(spec SlideSpec) bool {
	switch s := spec.(type) {
	case Title:
		b.RenderTitleSlide(s.Heading, s.Subheading)
	case InfoTable:
		b.RenderInfoSlide(s.Heading, s.Rows, s.Note)
	case ScreenshotPlaceholder:
		b.RenderScreenshotSlide(s.Heading, s.Instruction, s.Caption)
	case *Title:
		return s != nil && b.Render(*s)
	case *InfoTable:
		return s != nil && b.Render(*s)
	case *ScreenshotPlaceholder:
		return s != nil && b.Render(*s)
	default:
		return false
	}
	return true
}

// RenderTitleSlide appends a white slide with a centred heading and an
// optional smaller gray subheading.
func (b *Builder) RenderTitleSlide(heading, subheading string) {
	slide := Slide{Kind: KindTitle}
	slide.add(RoleBackground, Box{0, 0, PageWidth, PageHeight}, "")
	slide.add(RoleTitle, Box{marginX, titleY, contentWidth, titleHeight}, heading)
	if subheading != "" {
		slide.add(RoleSubtitle, Box{marginX, subtitleY, contentWidth, subtitleHeight}, subheading)
	}
	b.append(slide)
}

// RenderInfoSlide appends a header band with heading and one numbered row
// per field: "(i) label" beside ": value", i counting from 1 in rows order.
func (b *Builder) RenderInfoSlide(heading string, rows Rows, note string) {
	slide := Slide{Kind: KindInfo}
	slide.addHeader(heading)

	y := rowStartY
	for i, f := range rows {
		slide.add(RoleRowLabel, Box{labelX, y, labelWidth, rowHeight}, RowLabel(i, f.Label))
		slide.add(RoleRowValue, Box{valueX, y, valueWidth, rowHeight}, RowValue(f.Value))
		y += rowSpacing
	}

	if note != "" {
		slide.add(RoleNote, Box{marginX, noteY, contentWidth, noteHeight}, note)
	}
	b.append(slide)
}

// RenderScreenshotSlide appends a header band with heading and instruction,
// and a dashed frame over the body holding the centred caption.
func (b *Builder) RenderScreenshotSlide(heading, instruction, caption string) {
	if caption == "" {
		caption = DefaultCaption
	}

	slide := Slide{Kind: KindScreenshot}
	slide.addHeader(heading)
	slide.add(RoleInstruction, Box{marginX, instructionY, contentWidth, instructionH}, instruction)

	frame := Box{marginX, frameY, contentWidth, frameHeight}
	slide.add(RoleFrame, frame, "")
	slide.add(RoleCaption, Box{
		X: (PageWidth - captionW) / 2,
		Y: frame.Y + (frame.H-captionH)/2,
		W: captionW,
		H: captionH,
	}, caption)
	b.append(slide)
}

func (b *Builder) append(s Slide) {
	b.deck.Slides = append(b.deck.Slides, s)
}

func (s *Slide) addHeader(heading string) {
	s.add(RoleHeaderBand, Box{0, 0, PageWidth, headerBandHeight}, "")
	s.add(RoleHeading, Box{marginX, headingY, contentWidth, headingHeight}, heading)
}

func (s *Slide) add(role Role, box Box, text string) {
	s.Shapes = append(s.Shapes, Shape{Role: role, Box: box, Text: normalize(text)})
}

// RowLabel formats the label cell of the i-th (zero-based) info row
func RowLabel(i int, label string) string {
	return fmt.Sprintf("(%d) %s", i+1, label)
}

// RowValue formats the value cell of an info row
func RowValue(value string) string {
	return ": " + value
}
