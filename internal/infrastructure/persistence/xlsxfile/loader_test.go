package xlsxfile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellName, &row))
	}

	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"ису", "фио", "факультет", "курс", "группа", "средний_балл"},
		{"312045", "Иванов Пётр Сергеевич", "ФСУиР", "2-й", "R3201", "4.53"},
		{"312046", "Сидорова Анна Петровна", "ФИТиП", "1-й", "M3101", "4.8"},
	})

	rs, err := NewLoader(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, rs.Len())
	assert.Equal(t, "Иванов", rs.Records()[0].Surname)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "нет.xlsx")).Load(context.Background())

	assert.Error(t, err)
}

func TestLoader_UnknownSheet(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"ису", "фио", "факультет", "курс", "группа", "средний_балл"},
	})

	_, err := NewLoader(path, WithSheet("нет такого листа")).Load(context.Background())

	assert.Error(t, err)
}
