package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacultyCourseExtremes(t *testing.T) {
	rs := makeRoster(t, []testRow{
		{"Иванов Пётр Сергеевич", "А", "A1", "1-й", 1, 4.0},
		{"Петров Иван Ильич", "А", "A1", "1-й", 2, 4.0},
		{"Смирнов Олег Иванович", "А", "A2", "2-й", 3, 4.0},
		{"Кузнецова Анна Петровна", "Б", "B1", "3-й", 4, 4.0},
	})

	result, err := NewFacultyCourseExtremesHandler(rs).Handle(context.Background(), FacultyCourseExtremesQuery{})

	require.NoError(t, err)
	assert.Equal(t, []FacultyCourseCountDTO{
		{Faculty: "А", Course: "1-й", StudentCount: 2},
		{Faculty: "А", Course: "2-й", StudentCount: 1},
		{Faculty: "Б", Course: "3-й", StudentCount: 1},
	}, result.CrossTab)

	require.Len(t, result.Extremes, 2)
	assert.Equal(t, FacultyExtremesDTO{
		Faculty:   "А",
		MaxCourse: "1-й", MaxCount: 2,
		MinCourse: "2-й", MinCount: 1,
	}, result.Extremes[0])
	assert.Equal(t, FacultyExtremesDTO{
		Faculty:   "Б",
		MaxCourse: "3-й", MaxCount: 1,
		MinCourse: "3-й", MinCount: 1,
	}, result.Extremes[1])
}

func TestFacultyCourseExtremes_TieGoesToLowestCourse(t *testing.T) {
	rs := makeRoster(t, []testRow{
		{"Иванов Пётр Сергеевич", "А", "A1", "2-й", 1, 4.0},
		{"Петров Иван Ильич", "А", "A2", "1-й", 2, 4.0},
	})

	result, err := NewFacultyCourseExtremesHandler(rs).Handle(context.Background(), FacultyCourseExtremesQuery{})

	require.NoError(t, err)
	require.Len(t, result.Extremes, 1)
	// Курсы перебираются по возрастанию, сравнение строгое:
	// при равенстве оба экстремума достаются младшему курсу.
	assert.Equal(t, "1-й", result.Extremes[0].MaxCourse)
	assert.Equal(t, "1-й", result.Extremes[0].MinCourse)
}

func TestFacultyCourseExtremes_EmptyRoster(t *testing.T) {
	result, err := NewFacultyCourseExtremesHandler(emptyRoster(t)).Handle(context.Background(), FacultyCourseExtremesQuery{})

	require.NoError(t, err)
	assert.Empty(t, result.CrossTab)
	assert.Empty(t, result.Extremes)
}
