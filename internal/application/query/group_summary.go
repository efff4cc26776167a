package query

import (
	"context"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
)

// ══════════════════════════════════════════════════════════════════════════════
// GROUP SUMMARY QUERY
// Для каждого факультета: количество групп и среднее число студентов
// в группе.
// ══════════════════════════════════════════════════════════════════════════════

// GroupSummaryQuery содержит параметры сводки по группам.
type GroupSummaryQuery struct{}

// FacultyGroupsDTO - сводка по группам одного факультета.
type FacultyGroupsDTO struct {
	// Faculty - факультет.
	Faculty string `json:"faculty"`

	// GroupCount - количество уникальных групп.
	GroupCount int `json:"group_count"`

	// MeanStudentsPerGroup - среднее число студентов в группе.
	MeanStudentsPerGroup float64 `json:"mean_students_per_group"`
}

// GroupSummaryResult содержит результат сводки по группам.
type GroupSummaryResult struct {
	// Rows - сводки по факультетам в порядке появления в реестре.
	Rows []FacultyGroupsDTO `json:"rows"`
}

// GroupSummaryHandler обрабатывает запросы сводки по группам.
type GroupSummaryHandler struct {
	roster *roster.Roster
}

// NewGroupSummaryHandler создаёт новый обработчик сводки по группам.
func NewGroupSummaryHandler(r *roster.Roster) *GroupSummaryHandler {
	return &GroupSummaryHandler{roster: r}
}

// Handle выполняет сводку по группам. Пустой реестр даёт пустую таблицу.
func (h *GroupSummaryHandler) Handle(ctx context.Context, query GroupSummaryQuery) (*GroupSummaryResult, error) {
	result := &GroupSummaryResult{}

	for _, faculty := range h.roster.UniqueFaculties() {
		subset := h.roster.FilterFaculty(faculty)
		groupCount := len(subset.UniqueGroups())

		result.Rows = append(result.Rows, FacultyGroupsDTO{
			Faculty:              faculty,
			GroupCount:           groupCount,
			MeanStudentsPerGroup: float64(subset.Len()) / float64(groupCount),
		})
	}

	return result, nil
}
