package export

import (
	"bytes"
	"fmt"

	gospreadsheet "github.com/VantageDataChat/GoExcel"

	"paymentdeck/deck"
)

// ChecklistColumns are the header cells of the capture checklist
var ChecklistColumns = []string{"번호", "슬라이드", "제목", "캡처 안내", "캡처 위치", "완료"}

// ChecklistItem is one screenshot the operator still has to capture
type ChecklistItem struct {
	Slide       int
	Heading     string
	Instruction string
	Caption     string
}

// ChecklistItems lists the screenshot slides of d in deck order
func ChecklistItems(d *deck.Deck) []ChecklistItem {
	var items []ChecklistItem
	for _, i := range d.SlidesOfKind(deck.KindScreenshot) {
		s := d.Slides[i]
		items = append(items, ChecklistItem{
			Slide:       i + 1,
			Heading:     firstText(s, deck.RoleHeading),
			Instruction: firstText(s, deck.RoleInstruction),
			Caption:     firstText(s, deck.RoleCaption),
		})
	}
	return items
}

func firstText(s deck.Slide, role deck.Role) string {
	if shapes := s.ShapesWithRole(role); len(shapes) > 0 {
		return shapes[0].Text
	}
	return ""
}

// ChecklistWriter renders the capture checklist workbook with GoExcel
type ChecklistWriter struct{}

// NewChecklistWriter creates a checklist writer
func NewChecklistWriter() *ChecklistWriter {
	return &ChecklistWriter{}
}

// Encode returns the checklist of d as XLSX bytes
func (c *ChecklistWriter) Encode(d *deck.Deck) ([]byte, error) {
	items := ChecklistItems(d)
	if len(items) == 0 {
		return nil, fmt.Errorf("deck has no screenshot slides")
	}

	wb := gospreadsheet.New()
	ws := wb.GetActiveSheet()
	ws.SetTitle("캡처 목록")

	headerStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
			Name:  "Malgun Gothic",
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: "0052CC",
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		})

	dataStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Size: 10,
			Name: "Malgun Gothic",
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
			WrapText:   true,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
		})

	widths := []float64{8, 10, 36, 60, 48, 8}
	for i, title := range ChecklistColumns {
		cellName, _ := gospreadsheet.CellName(0, i)
		ws.SetCellValue(cellName, title)
		ws.SetCellStyle(cellName, headerStyle)
		ws.SetColumnWidth(i, widths[i])
	}
	ws.SetRowHeight(0, 25)

	for n, item := range items {
		row := n + 1
		values := []interface{}{n + 1, item.Slide, item.Heading, item.Instruction, item.Caption, ""}
		for col, v := range values {
			cellName, _ := gospreadsheet.CellName(row, col)
			ws.SetCellValue(cellName, v)
			ws.SetCellStyle(cellName, dataStyle)
		}
		ws.SetRowHeight(row, 30)
	}

	ws.FreezePane("A2")

	wb.Properties.Title = d.Title + " 캡처 목록"
	wb.Properties.Creator = "paymentdeck"

	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the checklist of d to path
func (c *ChecklistWriter) Save(d *deck.Deck, path string) error {
	data, err := c.Encode(d)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}
