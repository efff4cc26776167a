// Package query contains read operations following CQRS pattern.
// Queries never modify state - they only read and return data.
// Each query is a self-contained use case with its own request/response types.
//
// Все запросы работают над загруженным реестром: обработчик получает
// реестр при создании, Handle выполняет чистое вычисление. Общие записи
// реестра никогда не изменяются - производные данные считаются в
// собственные структуры результата.
package query

import (
	"context"
	"errors"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
	"github.com/isu-hub/isu-roster-stats/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// FACULTY SUBSET QUERY
// Выборка студентов одного факультета: количество студентов, количество
// уникальных групп и сама выборка для последующих запросов.
// ══════════════════════════════════════════════════════════════════════════════

// FacultySubsetQuery содержит параметры выборки по факультету.
type FacultySubsetQuery struct {
	// Faculty - точное название факультета.
	Faculty string
}

// Validate проверяет корректность параметров запроса.
func (q *FacultySubsetQuery) Validate() error {
	if q.Faculty == "" {
		return errors.New("faculty cannot be empty")
	}
	return nil
}

// FacultySubsetResult содержит результат выборки по факультету.
type FacultySubsetResult struct {
	// Faculty - факультет, по которому фильтровали.
	Faculty string `json:"faculty"`

	// StudentCount - количество студентов факультета.
	StudentCount int `json:"student_count"`

	// GroupCount - количество уникальных групп факультета.
	GroupCount int `json:"group_count"`

	// Subset - выборка записей факультета.
	Subset *roster.Roster `json:"-"`
}

// FacultySubsetHandler обрабатывает запросы выборки по факультету.
type FacultySubsetHandler struct {
	roster *roster.Roster
}

// NewFacultySubsetHandler создаёт новый обработчик выборки по факультету.
func NewFacultySubsetHandler(r *roster.Roster) *FacultySubsetHandler {
	return &FacultySubsetHandler{roster: r}
}

// Handle выполняет выборку по факультету. Отсутствие студентов
// факультета - не ошибка: возвращается пустая выборка.
func (h *FacultySubsetHandler) Handle(ctx context.Context, query FacultySubsetQuery) (*FacultySubsetResult, error) {
	if err := query.Validate(); err != nil {
		return nil, shared.WrapError("query", "FacultySubset", shared.ErrValidation, err.Error(), err)
	}

	subset := h.roster.FilterFaculty(query.Faculty)

	return &FacultySubsetResult{
		Faculty:      query.Faculty,
		StudentCount: subset.Len(),
		GroupCount:   len(subset.UniqueGroups()),
		Subset:       subset,
	}, nil
}
