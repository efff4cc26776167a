package query

import (
	"context"
	"sort"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
)

// ══════════════════════════════════════════════════════════════════════════════
// FIND HOMONYMS QUERY
// Поиск однофамильцев в выборке: есть ли они вообще, сколько студентов
// делят фамилию с кем-то ещё, распределение по курсам и группа с
// наибольшим числом однофамильцев.
// ══════════════════════════════════════════════════════════════════════════════

// FindHomonymsQuery содержит параметры поиска однофамильцев.
// Параметров нет: запрос работает над выборкой обработчика целиком.
type FindHomonymsQuery struct{}

// CourseHomonymsDTO - число однофамильцев на одном курсе.
type CourseHomonymsDTO struct {
	// Course - курс.
	Course string `json:"course"`

	// Count - количество студентов курса, у которых есть однофамилец
	// на том же курсе.
	Count int `json:"count"`
}

// FindHomonymsResult содержит результат поиска однофамильцев.
type FindHomonymsResult struct {
	// HasHomonyms - есть ли в выборке хотя бы одна пара однофамильцев.
	HasHomonyms bool `json:"has_homonyms"`

	// TotalHomonyms - общее количество студентов, делящих фамилию
	// с кем-то ещё в выборке.
	TotalHomonyms int `json:"total_homonyms"`

	// PerCourse - распределение однофамильцев по курсам (по возрастанию).
	PerCourse []CourseHomonymsDTO `json:"per_course"`

	// TopGroup - группа с наибольшим числом однофамильцев. Пустая строка,
	// если выборка пуста. При равенстве побеждает первая группа в
	// алфавитном порядке.
	TopGroup string `json:"top_group"`

	// TopGroupCount - число однофамильцев в TopGroup.
	TopGroupCount int `json:"top_group_count"`
}

// FindHomonymsHandler обрабатывает запросы поиска однофамильцев.
type FindHomonymsHandler struct {
	roster *roster.Roster
}

// NewFindHomonymsHandler создаёт новый обработчик поиска однофамильцев.
func NewFindHomonymsHandler(r *roster.Roster) *FindHomonymsHandler {
	return &FindHomonymsHandler{roster: r}
}

// Handle выполняет поиск однофамильцев. Пустая выборка даёт пустой
// результат без ошибки.
func (h *FindHomonymsHandler) Handle(ctx context.Context, query FindHomonymsQuery) (*FindHomonymsResult, error) {
	result := &FindHomonymsResult{}

	records := h.roster.Records()
	if len(records) == 0 {
		return result, nil
	}

	result.TotalHomonyms = countHomonyms(records)
	result.HasHomonyms = result.TotalHomonyms > 0

	// Распределение по курсам, курсы по возрастанию.
	for _, course := range h.roster.UniqueCourses() {
		subset := h.roster.FilterCourse(course)
		result.PerCourse = append(result.PerCourse, CourseHomonymsDTO{
			Course: course.String(),
			Count:  countHomonyms(subset.Records()),
		})
	}

	// Группа с максимумом однофамильцев. Группы перебираются в
	// алфавитном порядке, максимум строгий - при равенстве побеждает
	// первая группа.
	groups := h.roster.UniqueGroups()
	sort.Strings(groups)
	for _, group := range groups {
		subset := h.roster.Filter(func(rec *roster.StudentRecord) bool {
			return rec.Group == group
		})
		count := countHomonyms(subset.Records())
		if result.TopGroup == "" || count > result.TopGroupCount {
			result.TopGroup = group
			result.TopGroupCount = count
		}
	}

	return result, nil
}

// countHomonyms считает студентов, чья фамилия встречается в выборке
// больше одного раза.
func countHomonyms(records []*roster.StudentRecord) int {
	surnames := make([]string, len(records))
	for i, rec := range records {
		surnames[i] = rec.Surname
	}

	total := 0
	for _, freq := range roster.Frequencies(surnames) {
		if freq.Count > 1 {
			total += freq.Count
		}
	}
	return total
}
