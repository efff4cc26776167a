package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupSummary(t *testing.T) {
	rs := makeRoster(t, []testRow{
		{"Иванов Пётр Сергеевич", "А", "A1", "1-й", 1, 4.0},
		{"Петров Иван Ильич", "А", "A1", "1-й", 2, 4.0},
		{"Смирнов Олег Иванович", "А", "A2", "2-й", 3, 4.0},
		{"Кузнецова Анна Петровна", "Б", "B1", "1-й", 4, 4.0},
	})

	result, err := NewGroupSummaryHandler(rs).Handle(context.Background(), GroupSummaryQuery{})

	require.NoError(t, err)
	require.Len(t, result.Rows, 2)

	assert.Equal(t, "А", result.Rows[0].Faculty)
	assert.Equal(t, 2, result.Rows[0].GroupCount)
	assert.InDelta(t, 1.5, result.Rows[0].MeanStudentsPerGroup, 1e-9)

	assert.Equal(t, "Б", result.Rows[1].Faculty)
	assert.Equal(t, 1, result.Rows[1].GroupCount)
	assert.InDelta(t, 1.0, result.Rows[1].MeanStudentsPerGroup, 1e-9)
}

func TestGroupSummary_EmptyRoster(t *testing.T) {
	result, err := NewGroupSummaryHandler(emptyRoster(t)).Handle(context.Background(), GroupSummaryQuery{})

	require.NoError(t, err)
	assert.Empty(t, result.Rows)
}
