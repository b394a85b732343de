package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestRead_HeadersAreCaseInsensitive(t *testing.T) {
	buf := workbook(t,
		[]interface{}{" Semester ", "SUBJECT  NAME"},
		[]interface{}{1, "Maths"},
		[]interface{}{"", ""},
		[]interface{}{2, " Physics "},
	)

	rows, err := Read(buf, "semester", "subject name")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, "1", rows[0].Get("semester"))
	assert.Equal(t, "Maths", rows[0].Get("Subject Name"))
	assert.Equal(t, 4, rows[1].Number)
	assert.Equal(t, "Physics", rows[1].Get("subject name"))
}

func TestRead_MissingColumn(t *testing.T) {
	buf := workbook(t, []interface{}{"semester"}, []interface{}{1})

	_, err := Read(buf, "semester", "subject name")
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestRead_ShortRowsLeaveCellsEmpty(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"name", "email", "number"},
		[]interface{}{"Lisa", "lisa@x.y"},
	)

	rows, err := Read(buf, "name", "email")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Get("number"))
}

func TestRead_EmptySheet(t *testing.T) {
	_, err := Read(workbook(t))
	assert.ErrorIs(t, err, ErrEmptyWorkbook)
}

func TestRead_NotAWorkbook(t *testing.T) {
	_, err := Read(strings.NewReader("semester,subject name\n1,Maths\n"))
	assert.Error(t, err)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "parents number", NormalizeHeader("  Parents   Number "))
}
