package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacultySubset(t *testing.T) {
	rs := makeRoster(t, []testRow{
		{"Иванов Пётр Сергеевич", "ФСУиР", "R3201", "2-й", 1, 4.0},
		{"Петров Иван Ильич", "ФИТиП", "M3101", "1-й", 2, 4.2},
		{"Сидорова Анна Петровна", "ФСУиР", "R3202", "2-й", 3, 4.8},
		{"Кузнецов Олег Иванович", "ФСУиР", "R3201", "2-й", 4, 3.9},
	})

	result, err := NewFacultySubsetHandler(rs).Handle(context.Background(), FacultySubsetQuery{Faculty: "ФСУиР"})

	require.NoError(t, err)
	assert.Equal(t, 3, result.StudentCount)
	assert.Equal(t, 2, result.GroupCount)
	assert.Equal(t, 3, result.Subset.Len())
}

func TestFacultySubset_UnknownFacultyYieldsEmptySubset(t *testing.T) {
	rs := makeRoster(t, []testRow{
		{"Иванов Пётр Сергеевич", "ФСУиР", "R3201", "2-й", 1, 4.0},
	})

	result, err := NewFacultySubsetHandler(rs).Handle(context.Background(), FacultySubsetQuery{Faculty: "нет такого"})

	require.NoError(t, err)
	assert.Equal(t, 0, result.StudentCount)
	assert.Equal(t, 0, result.GroupCount)
}

func TestFacultySubset_ValidatesQuery(t *testing.T) {
	rs := emptyRoster(t)

	_, err := NewFacultySubsetHandler(rs).Handle(context.Background(), FacultySubsetQuery{})

	assert.Error(t, err)
}
