package export

import (
	"fmt"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"

	"paymentdeck/deck"
)

// BusinessSheetWriter renders the business information table as a Word
// document, for reviewers who ask for it outside the deck.
type BusinessSheetWriter struct{}

// NewBusinessSheetWriter creates a business sheet writer
func NewBusinessSheetWriter() *BusinessSheetWriter {
	return &BusinessSheetWriter{}
}

// Encode returns the business sheet as DOCX bytes
func (s *BusinessSheetWriter) Encode(title string, business deck.Rows) ([]byte, error) {
	if len(business) == 0 {
		return nil, fmt.Errorf("no business information to export")
	}

	doc := goword.New()
	doc.Properties.Title = title
	doc.Properties.Creator = "paymentdeck"

	sec := doc.AddSection()
	sec.AddTitle(title, 1)
	sec.AddText("사업자 정보",
		&style.FontStyle{Bold: true, Size: 14, Color: "0052CC"},
		nil)

	ts := &style.TableStyle{Width: 9000, Alignment: "center"}
	ts.SetAllBorders("single", 4, "D9D9D9")
	tbl := sec.AddTable(ts)
	tbl.Grid = []int{3000, 6000}

	for i, f := range business {
		row := tbl.AddRow(0, nil)
		row.AddCell(3000, &style.CellStyle{
			Shading: &style.Shading{Fill: "F5F5F5"},
		}).AddText(deck.RowLabel(i, f.Label), &style.FontStyle{Bold: true, Size: 10, Color: "0052CC"}, nil)
		row.AddCell(6000, nil).AddText(f.Value, &style.FontStyle{Size: 10}, nil)
	}

	data, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write Word file: %w", err)
	}
	return data, nil
}

// Save writes the business sheet to path
func (s *BusinessSheetWriter) Save(title string, business deck.Rows, path string) error {
	data, err := s.Encode(title, business)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}
