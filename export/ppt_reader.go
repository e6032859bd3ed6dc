package export

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

// ReadSlideTexts opens a PPTX file and returns, per slide, the non-empty
// paragraph texts in shape order.
func ReadSlideTexts(path string) ([][]string, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPT file: %w", err)
	}

	slides := pres.GetAllSlides()
	out := make([][]string, len(slides))
	for i, slide := range slides {
		var texts []string
		for _, shape := range slide.GetShapes() {
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			for _, para := range rts.GetParagraphs() {
				var text string
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok {
						text += run.GetText()
					}
				}
				text = strings.TrimSpace(text)
				if text != "" {
					texts = append(texts, text)
				}
			}
		}
		out[i] = texts
	}
	return out, nil
}
