package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
	"github.com/isu-hub/isu-roster-stats/internal/domain/shared"
)

var header = []string{"ису", "фио", "факультет", "курс", "группа", "средний_балл"}

func TestMapRows(t *testing.T) {
	rows := [][]string{
		header,
		{"312045", "Иванов Пётр Сергеевич", "ФСУиР", "2-й", "R3201", "4.53"},
		{"312046", "Петрова Анна", "ФИТиП", "1-й", "M3101", "4.1"},
	}

	records, err := NewMapper().MapRows(rows)

	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Иванов", records[0].Surname)
	assert.Equal(t, "Пётр", records[0].GivenName)
	assert.Equal(t, "Сергеевич", records[0].Patronymic)
	assert.Equal(t, roster.ISUNumber(312045), records[0].ISU)
	assert.InDelta(t, 4.53, float64(records[0].Grade), 1e-9)

	assert.False(t, records[1].HasPatronymic())
}

func TestMapRows_HeaderOrderIrrelevant(t *testing.T) {
	rows := [][]string{
		{"фио", "средний_балл", "ису", "группа", "факультет", "курс"},
		{"Иванов Пётр Сергеевич", "4.2", "100", "R3201", "ФСУиР", "2-й"},
	}

	records, err := NewMapper().MapRows(rows)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ФСУиР", records[0].Faculty)
}

func TestMapRows_SkipsEmptyRows(t *testing.T) {
	rows := [][]string{
		header,
		{"", "", "", "", "", ""},
		{"100", "Иванов Пётр Сергеевич", "ФСУиР", "2-й", "R3201", "4.2"},
	}

	records, err := NewMapper().MapRows(rows)

	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestMapRows_MissingColumnIsFatal(t *testing.T) {
	rows := [][]string{
		{"ису", "фио", "факультет", "курс", "группа"}, // нет среднего балла
		{"100", "Иванов Пётр Сергеевич", "ФСУиР", "2-й", "R3201"},
	}

	_, err := NewMapper().MapRows(rows)

	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrMissingColumn)
}

func TestMapRows_BadNumberIsFatal(t *testing.T) {
	rows := [][]string{
		header,
		{"не число", "Иванов Пётр Сергеевич", "ФСУиР", "2-й", "R3201", "4.2"},
	}

	_, err := NewMapper().MapRows(rows)

	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrInvalidFormat)
}

func TestMapRows_NoHeader(t *testing.T) {
	_, err := NewMapper().MapRows(nil)

	assert.Error(t, err)
}
