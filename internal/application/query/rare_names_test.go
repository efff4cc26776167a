package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRareNames(t *testing.T) {
	rs := makeRoster(t, []testRow{
		{"Иванов Павел Сергеевич", "А", "A1", "1-й", 1, 4.0},
		{"Петров Пётр Ильич", "А", "A1", "1-й", 2, 4.0},
		{"Смирнов Пётр Иванович", "Б", "B1", "2-й", 3, 4.0},
		{"Кузнецова Полина Андреевна", "Б", "B1", "2-й", 4, 4.0},
		{"Козлова Анна Петровна", "В", "V1", "3-й", 5, 4.0},
	})

	result, err := NewRareNamesHandler(rs).Handle(context.Background(), RareNamesQuery{Prefix: "П"})

	require.NoError(t, err)
	// "Пётр" встречается дважды и исключается; "Павел" и "Полина"
	// уникальны и начинаются на "П".
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "Иванов Павел Сергеевич", result.Rows[0].FullName)
	assert.Equal(t, "А", result.Rows[0].Faculty)
	assert.Equal(t, "Кузнецова Полина Андреевна", result.Rows[1].FullName)
	assert.Equal(t, "2-й", result.Rows[1].Course)
}

func TestRareNames_NoMatches(t *testing.T) {
	rs := makeRoster(t, []testRow{
		{"Иванов Олег Сергеевич", "А", "A1", "1-й", 1, 4.0},
	})

	result, err := NewRareNamesHandler(rs).Handle(context.Background(), RareNamesQuery{Prefix: "П"})

	require.NoError(t, err)
	assert.Empty(t, result.Rows)
}

func TestRareNames_RejectsNonCyrillicTail(t *testing.T) {
	rs := makeRoster(t, []testRow{
		{"Ли پётr Иванович", "А", "A1", "1-й", 1, 4.0},
	})

	result, err := NewRareNamesHandler(rs).Handle(context.Background(), RareNamesQuery{Prefix: "П"})

	require.NoError(t, err)
	assert.Empty(t, result.Rows)
}

func TestRareNames_ValidatesQuery(t *testing.T) {
	_, err := NewRareNamesHandler(emptyRoster(t)).Handle(context.Background(), RareNamesQuery{})

	assert.Error(t, err)
}
