package query

import (
	"context"
	"errors"
	"strings"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
	"github.com/isu-hub/isu-roster-stats/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// RARE NAMES QUERY
// Студенты, чьё имя начинается с заданной буквы и встречается в реестре
// ровно один раз: ФИО, факультет, курс.
// ══════════════════════════════════════════════════════════════════════════════

// RareNamesQuery содержит параметры поиска редких имён.
type RareNamesQuery struct {
	// Prefix - начало имени, обычно одна заглавная кириллическая буква.
	Prefix string
}

// Validate проверяет корректность параметров запроса.
func (q *RareNamesQuery) Validate() error {
	if q.Prefix == "" {
		return errors.New("name prefix cannot be empty")
	}
	return nil
}

// RareNameDTO - один студент с редким именем.
type RareNameDTO struct {
	// FullName - ФИО студента.
	FullName string `json:"full_name"`

	// Faculty - факультет.
	Faculty string `json:"faculty"`

	// Course - курс.
	Course string `json:"course"`
}

// RareNamesResult содержит результат поиска редких имён.
type RareNamesResult struct {
	// Rows - найденные студенты в порядке частотной таблицы имён.
	Rows []RareNameDTO `json:"rows"`
}

// RareNamesHandler обрабатывает запросы поиска редких имён.
type RareNamesHandler struct {
	roster *roster.Roster
}

// NewRareNamesHandler создаёт новый обработчик поиска редких имён.
func NewRareNamesHandler(r *roster.Roster) *RareNamesHandler {
	return &RareNamesHandler{roster: r}
}

// Handle выполняет поиск редких имён. Отсутствие подходящих имён - не
// ошибка: возвращается пустой список.
func (h *RareNamesHandler) Handle(ctx context.Context, query RareNamesQuery) (*RareNamesResult, error) {
	if err := query.Validate(); err != nil {
		return nil, shared.WrapError("query", "RareNames", shared.ErrValidation, err.Error(), err)
	}

	names := make([]string, 0, h.roster.Len())
	for _, rec := range h.roster.Records() {
		names = append(names, rec.GivenName)
	}

	result := &RareNamesResult{}
	for _, freq := range roster.Frequencies(names) {
		if freq.Count != 1 || !isNameWithPrefix(freq.Value, query.Prefix) {
			continue
		}
		for _, rec := range h.roster.Records() {
			if rec.GivenName != freq.Value {
				continue
			}
			result.Rows = append(result.Rows, RareNameDTO{
				FullName: rec.FullName,
				Faculty:  rec.Faculty,
				Course:   rec.Course.String(),
			})
		}
	}

	return result, nil
}

// isNameWithPrefix проверяет, что имя начинается с приставки, а остаток
// состоит из кириллических букв, буквы "ё", дефисов или тире.
func isNameWithPrefix(name, prefix string) bool {
	if !strings.HasPrefix(name, prefix) {
		return false
	}
	rest := []rune(strings.TrimPrefix(name, prefix))
	if len(rest) == 0 {
		return false
	}
	for _, r := range rest {
		switch {
		case r >= 'А' && r <= 'я':
		case r == 'ё' || r == 'Ё':
		case r == '-' || r == '–' || r == '—':
		default:
			return false
		}
	}
	return true
}
