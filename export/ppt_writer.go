package export

import (
	"bytes"
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"

	"paymentdeck/deck"
)

const emuPerInch = 914400

// font sizes, pt
const (
	pptFontTitle       = 44
	pptFontSubtitle    = 20
	pptFontHeading     = 28
	pptFontRow         = 18
	pptFontCaption     = 16
	pptFontInstruction = 14
	pptFontNote        = 12
)

// ARGB colors
const (
	colorBrand      = "FF0052CC"
	colorBlack      = "FF000000"
	colorSubtitle   = "FF646464"
	colorMuted      = "FF969696"
	colorBackground = "FFFFFFFF"
	colorFrameFill  = "FFF5F5F5"
	colorFrameLine  = "FFC8C8C8"
)

// dashed frame border, inches
const (
	dashLength    = 0.2
	dashGap       = 0.12
	dashThickness = 0.02
)

// PPTWriter serializes a deck to PowerPoint using GoPPT
type PPTWriter struct {
	logger func(string)
}

// NewPPTWriter creates a writer. logger may be nil.
func NewPPTWriter(logger func(string)) *PPTWriter {
	return &PPTWriter{logger: logger}
}

func (w *PPTWriter) log(msg string) {
	if w.logger != nil {
		w.logger(msg)
	}
}

// helper: create a solid fill
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

func inch(v float64) int64 {
	return int64(v * emuPerInch)
}

// Encode renders d into PPTX bytes
func (w *PPTWriter) Encode(d *deck.Deck) ([]byte, error) {
	if d == nil || len(d.Slides) == 0 {
		return nil, fmt.Errorf("deck has no slides")
	}

	p := ppt.New()
	p.GetDocumentProperties().Title = d.Title
	p.GetDocumentProperties().Creator = "paymentdeck"
	if d.Width > 0 && d.Height > 0 {
		p.GetLayout().SetCustomLayout(inch(d.Width), inch(d.Height))
	}

	for i, s := range d.Slides {
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		for _, sh := range s.Shapes {
			w.addShape(slide, sh)
		}
		w.log(fmt.Sprintf("[PPT] slide %d (%s): %d shapes", i+1, s.Kind, len(s.Shapes)))
	}

	pw, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}

	var buf bytes.Buffer
	if err := pw.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}
	return buf.Bytes(), nil
}

// Save encodes d and writes it to path. Nothing is left at path when
// encoding or writing fails.
func (w *PPTWriter) Save(d *deck.Deck, path string) error {
	data, err := w.Encode(d)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return err
	}
	w.log(fmt.Sprintf("[PPT] wrote %s (%d bytes, %d slides)", path, len(data), len(d.Slides)))
	return nil
}

func (w *PPTWriter) addShape(slide *ppt.Slide, sh deck.Shape) {
	if sh.Role == deck.RoleFrame {
		addFrame(slide, sh.Box)
		return
	}

	rts := place(slide, sh.Box)
	switch sh.Role {
	case deck.RoleBackground:
		rts.SetFill(solidFill(colorBackground))
		return
	case deck.RoleHeaderBand:
		rts.SetFill(solidFill(colorBrand))
		return
	}
	if sh.Text == "" {
		return
	}

	tr := rts.CreateTextRun(sh.Text)
	font := tr.GetFont()
	switch sh.Role {
	case deck.RoleTitle:
		font.SetSize(pptFontTitle).SetBold(true).SetColor(ppt.NewColor(colorBlack))
		alignCenter(rts.GetActiveParagraph())
	case deck.RoleSubtitle:
		font.SetSize(pptFontSubtitle).SetColor(ppt.NewColor(colorSubtitle))
		alignCenter(rts.GetActiveParagraph())
	case deck.RoleHeading:
		font.SetSize(pptFontHeading).SetBold(true).SetColor(ppt.ColorWhite)
	case deck.RoleInstruction:
		font.SetSize(pptFontInstruction).SetColor(ppt.ColorWhite)
	case deck.RoleRowLabel:
		font.SetSize(pptFontRow).SetBold(true).SetColor(ppt.NewColor(colorBrand))
	case deck.RoleRowValue:
		font.SetSize(pptFontRow).SetColor(ppt.NewColor(colorBlack))
	case deck.RoleNote:
		font.SetSize(pptFontNote).SetColor(ppt.NewColor(colorMuted))
	case deck.RoleCaption:
		font.SetSize(pptFontCaption).SetColor(ppt.NewColor(colorMuted))
		alignCenter(rts.GetActiveParagraph())
	}
}

func place(slide *ppt.Slide, b deck.Box) *ppt.RichTextShape {
	rts := slide.CreateRichTextShape()
	rts.SetOffsetX(inch(b.X)).SetOffsetY(inch(b.Y))
	rts.SetWidth(inch(b.W)).SetHeight(inch(b.H))
	return rts
}

// addFrame draws the placeholder body: a light fill and a dashed outline
// made of thin bars.
func addFrame(slide *ppt.Slide, b deck.Box) {
	place(slide, b).SetFill(solidFill(colorFrameFill))
	for _, seg := range dashSegments(b) {
		place(slide, seg).SetFill(solidFill(colorFrameLine))
	}
}

// dashSegments splits the outline of b into dashes: top, right, bottom,
// left edge. Every dash lies on the outline and inside b.
func dashSegments(b deck.Box) []deck.Box {
	var segs []deck.Box
	step := dashLength + dashGap

	for x := b.X; x < b.X+b.W; x += step {
		l := min(dashLength, b.X+b.W-x)
		segs = append(segs, deck.Box{X: x, Y: b.Y, W: l, H: dashThickness})
	}
	for y := b.Y; y < b.Y+b.H; y += step {
		l := min(dashLength, b.Y+b.H-y)
		segs = append(segs, deck.Box{X: b.X + b.W - dashThickness, Y: y, W: dashThickness, H: l})
	}
	for x := b.X; x < b.X+b.W; x += step {
		l := min(dashLength, b.X+b.W-x)
		segs = append(segs, deck.Box{X: x, Y: b.Y + b.H - dashThickness, W: l, H: dashThickness})
	}
	for y := b.Y; y < b.Y+b.H; y += step {
		l := min(dashLength, b.Y+b.H-y)
		segs = append(segs, deck.Box{X: b.X, Y: y, W: dashThickness, H: l})
	}
	return segs
}
