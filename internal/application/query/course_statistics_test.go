package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseStatistics(t *testing.T) {
	rs := makeRoster(t, []testRow{
		// 1-й курс: А - 2 студента, Б - 1.
		{"Иванов Пётр Сергеевич", "А", "A1", "1-й", 1, 4.0},
		{"Петров Иван Ильич", "А", "A1", "1-й", 2, 4.0},
		{"Кузнецова Анна Петровна", "Б", "B1", "1-й", 3, 4.0},
		// 2-й курс: только Б - 3 студента.
		{"Попова Мария Ивановна", "Б", "B2", "2-й", 4, 4.0},
		{"Соколов Андрей Ильич", "Б", "B2", "2-й", 5, 4.0},
		{"Козлова Елена Сергеевна", "Б", "B2", "2-й", 6, 4.0},
	})

	result, err := NewCourseStatisticsHandler(rs).Handle(context.Background(), CourseStatisticsQuery{})

	require.NoError(t, err)
	require.Len(t, result.Rows, 2)

	assert.Equal(t, "1-й", result.Rows[0].Course)
	assert.InDelta(t, 1.5, result.Rows[0].MeanPerFaculty, 1e-9)
	assert.InDelta(t, 1.5, result.Rows[0].MedianPerFaculty, 1e-9)

	assert.Equal(t, "2-й", result.Rows[1].Course)
	assert.InDelta(t, 3.0, result.Rows[1].MeanPerFaculty, 1e-9)
	assert.InDelta(t, 3.0, result.Rows[1].MedianPerFaculty, 1e-9)
}

func TestCourseStatistics_EmptyRoster(t *testing.T) {
	result, err := NewCourseStatisticsHandler(emptyRoster(t)).Handle(context.Background(), CourseStatisticsQuery{})

	require.NoError(t, err)
	assert.Empty(t, result.Rows)
}
