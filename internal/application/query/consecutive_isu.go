package query

import (
	"context"
	"errors"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
	"github.com/isu-hub/isu-roster-stats/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONSECUTIVE ISU QUERY
// Студенты, которым номера ИСУ были выданы подряд: реестр сортируется
// по номеру, ищутся серии подряд идущих номеров длиной не меньше
// порога, возвращаются первые MinRunLength записей найденных серий.
// ══════════════════════════════════════════════════════════════════════════════

// ConsecutiveISUQuery содержит параметры поиска серий номеров.
type ConsecutiveISUQuery struct {
	// MinRunLength - минимальная длина серии; столько же записей
	// попадает в результат.
	MinRunLength int
}

// Validate проверяет корректность параметров запроса.
func (q *ConsecutiveISUQuery) Validate() error {
	if q.MinRunLength < 1 {
		return errors.New("minimum run length must be positive")
	}
	return nil
}

// ConsecutiveStudentDTO - один студент из серии подряд выданных номеров.
type ConsecutiveStudentDTO struct {
	// FullName - ФИО студента.
	FullName string `json:"full_name"`

	// Faculty - факультет.
	Faculty string `json:"faculty"`

	// Course - курс.
	Course string `json:"course"`

	// Group - группа.
	Group string `json:"group"`

	// ISU - номер ИСУ.
	ISU int `json:"isu"`
}

// ConsecutiveISUResult содержит результат поиска серий номеров.
type ConsecutiveISUResult struct {
	// Rows - первые MinRunLength записей квалифицировавшихся серий в
	// порядке возрастания номера. Пусто, если серий нужной длины нет.
	Rows []ConsecutiveStudentDTO `json:"rows"`

	// RunsFound - сколько серий длиной не меньше порога нашлось.
	RunsFound int `json:"runs_found"`
}

// ConsecutiveISUHandler обрабатывает запросы поиска серий номеров.
type ConsecutiveISUHandler struct {
	roster *roster.Roster
}

// NewConsecutiveISUHandler создаёт новый обработчик поиска серий.
func NewConsecutiveISUHandler(r *roster.Roster) *ConsecutiveISUHandler {
	return &ConsecutiveISUHandler{roster: r}
}

// Handle выполняет поиск серий. Детектор серий требует отсортированный
// вход - сортировка по номеру ИСУ выполняется здесь, на копии записей.
func (h *ConsecutiveISUHandler) Handle(ctx context.Context, query ConsecutiveISUQuery) (*ConsecutiveISUResult, error) {
	if err := query.Validate(); err != nil {
		return nil, shared.WrapError("query", "ConsecutiveISU", shared.ErrValidation, err.Error(), err)
	}

	sorted := h.roster.SortedByISU()
	ids := make([]int, len(sorted))
	for i, rec := range sorted {
		ids[i] = int(rec.ISU)
	}

	runs := roster.FindRuns(ids, query.MinRunLength)

	result := &ConsecutiveISUResult{RunsFound: len(runs)}
	for _, run := range runs {
		for i := run.Start; i < run.Start+run.Length; i++ {
			if len(result.Rows) == query.MinRunLength {
				return result, nil
			}
			rec := sorted[i]
			result.Rows = append(result.Rows, ConsecutiveStudentDTO{
				FullName: rec.FullName,
				Faculty:  rec.Faculty,
				Course:   rec.Course.String(),
				Group:    rec.Group,
				ISU:      int(rec.ISU),
			})
		}
	}

	return result, nil
}
