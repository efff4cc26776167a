package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
)

// testRow - компактное описание записи для тестовых реестров.
type testRow struct {
	fullName string
	faculty  string
	group    string
	course   string
	isu      int
	grade    float64
}

func makeRoster(t *testing.T, rows []testRow) *roster.Roster {
	t.Helper()

	records := make([]*roster.StudentRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := roster.NewStudentRecord(roster.NewStudentRecordParams{
			FullName: row.fullName,
			Faculty:  row.faculty,
			Group:    row.group,
			Course:   roster.Course(row.course),
			ISU:      roster.ISUNumber(row.isu),
			Grade:    roster.AverageGrade(row.grade),
		})
		require.NoError(t, err)
		records = append(records, rec)
	}

	rs, err := roster.NewRoster(records)
	require.NoError(t, err)
	return rs
}

func emptyRoster(t *testing.T) *roster.Roster {
	t.Helper()
	rs, err := roster.NewRoster(nil)
	require.NoError(t, err)
	return rs
}
