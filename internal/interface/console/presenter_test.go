package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isu-hub/isu-roster-stats/internal/application/query"
	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
)

func subsetRoster(t *testing.T, groups ...string) *roster.Roster {
	t.Helper()

	records := make([]*roster.StudentRecord, 0, len(groups))
	for i, group := range groups {
		rec, err := roster.NewStudentRecord(roster.NewStudentRecordParams{
			FullName: "Иванов Пётр Сергеевич",
			Faculty:  "физический факультет",
			Group:    group,
			Course:   "2-й",
			ISU:      roster.ISUNumber(312000 + i),
			Grade:    4.5,
		})
		require.NoError(t, err)
		records = append(records, rec)
	}

	rs, err := roster.NewRoster(records)
	require.NoError(t, err)
	return rs
}

func TestFormatFacultySubset_GroupsSorted(t *testing.T) {
	p := NewReportPresenter()

	out := p.FormatFacultySubset(&query.FacultySubsetResult{
		Faculty:      "физический факультет",
		StudentCount: 3,
		GroupCount:   3,
		Subset:       subsetRoster(t, "Я100", "А100", "Б200"),
	})

	assert.Contains(t, out, "Группы: А100, Б200, Я100")
	assert.Contains(t, out, "Студентов: 3")
}

func TestFormatFacultySubset_Empty(t *testing.T) {
	p := NewReportPresenter()

	out := p.FormatFacultySubset(&query.FacultySubsetResult{
		Faculty: "физический факультет",
	})

	assert.Contains(t, out, "не найдены")
}

func TestFormatHomonyms_None(t *testing.T) {
	out := NewReportPresenter().FormatHomonyms(&query.FindHomonymsResult{})

	assert.Contains(t, out, "Однофамильцев в выборке нет")
}

func TestFormatPatronymics(t *testing.T) {
	out := NewReportPresenter().FormatPatronymics(&query.AnalyzePatronymicsResult{
		WithoutPatronymic: 2,
		WithPatronymic:    8,
		Female:            4,
		Male:              3,
		Unknown:           1,
	})

	assert.Contains(t, out, "Без отчества: 2")
	assert.Contains(t, out, "С отчеством:  8")
}

func TestFormatGroupSummary_RussianOrder(t *testing.T) {
	out := NewReportPresenter().FormatGroupSummary(&query.GroupSummaryResult{
		Rows: []query.FacultyGroupsDTO{
			{Faculty: "юридический", GroupCount: 1, MeanStudentsPerGroup: 10},
			{Faculty: "биологический", GroupCount: 2, MeanStudentsPerGroup: 12},
		},
	})

	// Русский алфавитный порядок: "биологический" раньше "юридический".
	assert.Less(t, strings.Index(out, "биологический"), strings.Index(out, "юридический"))
}

func TestFormatTopGradeFaculty_GenderLabel(t *testing.T) {
	out := NewReportPresenter().FormatTopGradeFaculty(&query.TopGradeFacultyResult{
		Course:  "3-й",
		Faculty: "физический факультет",
		Gender:  roster.GenderFemale,
		Grade:   5,
	})

	assert.Contains(t, out, "женский")
	assert.Contains(t, out, "Балл (до целого): 5")
}

func TestFormatConsecutiveISU_NoRuns(t *testing.T) {
	out := NewReportPresenter().FormatConsecutiveISU(5, &query.ConsecutiveISUResult{})

	assert.Contains(t, out, "Серий нужной длины в реестре нет")
}
