package query

import (
	"context"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
	"github.com/isu-hub/isu-roster-stats/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// FACULTY POPULATION QUERY
// Количество студентов на каждом факультете плюс факультеты с
// максимальным и минимальным числом студентов.
// ══════════════════════════════════════════════════════════════════════════════

// FacultyPopulationQuery содержит параметры запроса населённости факультетов.
type FacultyPopulationQuery struct{}

// FacultyCountDTO - факультет и количество его студентов.
type FacultyCountDTO struct {
	// Faculty - название факультета.
	Faculty string `json:"faculty"`

	// StudentCount - количество студентов.
	StudentCount int `json:"student_count"`
}

// FacultyPopulationResult содержит результат запроса населённости.
type FacultyPopulationResult struct {
	// Rows - частотная таблица факультетов по убыванию числа студентов.
	// При равенстве выше стоит факультет, встретившийся в реестре раньше.
	Rows []FacultyCountDTO `json:"rows"`

	// Max - факультет с наибольшим числом студентов (первая строка таблицы).
	Max FacultyCountDTO `json:"max"`

	// Min - факультет с наименьшим числом студентов (последняя строка).
	Min FacultyCountDTO `json:"min"`
}

// FacultyPopulationHandler обрабатывает запросы населённости факультетов.
type FacultyPopulationHandler struct {
	roster *roster.Roster
}

// NewFacultyPopulationHandler создаёт новый обработчик населённости.
func NewFacultyPopulationHandler(r *roster.Roster) *FacultyPopulationHandler {
	return &FacultyPopulationHandler{roster: r}
}

// Handle выполняет запрос населённости факультетов. Максимум и минимум
// над пустым реестром не определены - возвращается ErrEmptyRoster.
func (h *FacultyPopulationHandler) Handle(ctx context.Context, query FacultyPopulationQuery) (*FacultyPopulationResult, error) {
	faculties := make([]string, 0, h.roster.Len())
	for _, rec := range h.roster.Records() {
		faculties = append(faculties, rec.Faculty)
	}

	freqs := roster.Frequencies(faculties)
	top, ok := roster.Top(freqs)
	if !ok {
		return nil, shared.WrapError("query", "FacultyPopulation", shared.ErrNotFound,
			"no faculties in roster", roster.ErrEmptyRoster)
	}
	bottom, _ := roster.Bottom(freqs)

	result := &FacultyPopulationResult{
		Max: FacultyCountDTO{Faculty: top.Value, StudentCount: top.Count},
		Min: FacultyCountDTO{Faculty: bottom.Value, StudentCount: bottom.Count},
	}
	for _, freq := range freqs {
		result.Rows = append(result.Rows, FacultyCountDTO{
			Faculty:      freq.Value,
			StudentCount: freq.Count,
		})
	}

	return result, nil
}
