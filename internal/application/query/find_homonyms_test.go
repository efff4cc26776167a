package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindHomonyms(t *testing.T) {
	rs := makeRoster(t, []testRow{
		{"Иванов Пётр Сергеевич", "ФСУиР", "R3201", "2-й", 1, 4.0},
		{"Иванов Олег Ильич", "ФСУиР", "R3201", "2-й", 2, 4.1},
		{"Иванов Семён Петрович", "ФСУиР", "R3102", "1-й", 3, 4.2},
		{"Петров Иван Ильич", "ФСУиР", "R3102", "1-й", 4, 4.3},
		{"Сидорова Анна Петровна", "ФСУиР", "R3102", "1-й", 5, 4.8},
	})

	result, err := NewFindHomonymsHandler(rs).Handle(context.Background(), FindHomonymsQuery{})

	require.NoError(t, err)
	assert.True(t, result.HasHomonyms)
	// Три Ивановых делят фамилию друг с другом.
	assert.Equal(t, 3, result.TotalHomonyms)

	// На 1-м курсе Иванов один - однофамильцев внутри курса нет,
	// на 2-м курсе их двое.
	assert.Equal(t, []CourseHomonymsDTO{
		{Course: "1-й", Count: 0},
		{Course: "2-й", Count: 2},
	}, result.PerCourse)

	assert.Equal(t, "R3201", result.TopGroup)
	assert.Equal(t, 2, result.TopGroupCount)
}

func TestFindHomonyms_NoHomonyms(t *testing.T) {
	rs := makeRoster(t, []testRow{
		{"Иванов Пётр Сергеевич", "ФСУиР", "R3201", "2-й", 1, 4.0},
		{"Петров Иван Ильич", "ФСУиР", "R3202", "2-й", 2, 4.2},
	})

	result, err := NewFindHomonymsHandler(rs).Handle(context.Background(), FindHomonymsQuery{})

	require.NoError(t, err)
	assert.False(t, result.HasHomonyms)
	assert.Equal(t, 0, result.TotalHomonyms)
	// Однофамильцев нет нигде - берётся первая группа по алфавиту.
	assert.Equal(t, "R3201", result.TopGroup)
	assert.Equal(t, 0, result.TopGroupCount)
}

func TestFindHomonyms_EmptyRoster(t *testing.T) {
	result, err := NewFindHomonymsHandler(emptyRoster(t)).Handle(context.Background(), FindHomonymsQuery{})

	require.NoError(t, err)
	assert.False(t, result.HasHomonyms)
	assert.Empty(t, result.PerCourse)
	assert.Empty(t, result.TopGroup)
}
