package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	gospreadsheet "github.com/VantageDataChat/GoExcel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paymentdeck/deck"
)

func TestChecklistItems(t *testing.T) {
	items := ChecklistItems(deck.Build(deck.DefaultContent()))

	require.Len(t, items, 8)
	for i, item := range items {
		assert.Equal(t, i+3, item.Slide)
		assert.NotEmpty(t, item.Heading)
		assert.NotEmpty(t, item.Instruction)
		assert.NotEmpty(t, item.Caption)
	}
	assert.Equal(t, "② 하단 정보 캡처", items[0].Heading)
	assert.Equal(t, "[카드사 인증 화면 스크린샷]", items[7].Caption)
}

func TestChecklistWriter_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checklist.xlsx")

	require.NoError(t, NewChecklistWriter().Save(deck.Build(deck.DefaultContent()), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))

	wb, err := gospreadsheet.OpenFile(path)
	require.NoError(t, err)
	ws := wb.GetActiveSheet()
	require.NotNil(t, ws)
	rows, err := ws.RowIterator()
	require.NoError(t, err)
	require.Len(t, rows, 9, "header plus one row per screenshot slide")

	cellText := func(row, col int) string {
		if col >= len(rows[row]) || rows[row][col] == nil {
			return ""
		}
		return rows[row][col].GetStringValue()
	}
	for col, title := range ChecklistColumns {
		assert.Equal(t, title, cellText(0, col))
	}
	assert.Equal(t, "② 하단 정보 캡처", cellText(1, 2))
	assert.Equal(t, "[카드사 인증 화면 스크린샷]", cellText(8, 4))
}

func TestChecklistWriter_NoScreenshots(t *testing.T) {
	b := deck.NewBuilder("only titles")
	b.RenderTitleSlide("t", "")

	_, err := NewChecklistWriter().Encode(b.Deck())
	assert.Error(t, err)
}
