package query

import (
	"context"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
)

// ══════════════════════════════════════════════════════════════════════════════
// FACULTY COURSE EXTREMES QUERY
// Полная таблица факультет × курс с количеством студентов, плюс для
// каждого факультета курс с наибольшим и наименьшим числом студентов.
// ══════════════════════════════════════════════════════════════════════════════

// FacultyCourseExtremesQuery содержит параметры запроса.
type FacultyCourseExtremesQuery struct{}

// FacultyCourseCountDTO - одна ячейка таблицы факультет × курс.
type FacultyCourseCountDTO struct {
	// Faculty - факультет.
	Faculty string `json:"faculty"`

	// Course - курс.
	Course string `json:"course"`

	// StudentCount - количество студентов.
	StudentCount int `json:"student_count"`
}

// FacultyExtremesDTO - курсы-экстремумы одного факультета.
type FacultyExtremesDTO struct {
	// Faculty - факультет.
	Faculty string `json:"faculty"`

	// MaxCourse, MaxCount - курс с наибольшим числом студентов.
	// При равенстве побеждает младший курс.
	MaxCourse string `json:"max_course"`
	MaxCount  int    `json:"max_count"`

	// MinCourse, MinCount - курс с наименьшим числом студентов.
	MinCourse string `json:"min_course"`
	MinCount  int    `json:"min_count"`
}

// FacultyCourseExtremesResult содержит результат запроса.
type FacultyCourseExtremesResult struct {
	// CrossTab - непустые ячейки таблицы факультет × курс: факультеты
	// в порядке появления в реестре, курсы по возрастанию.
	CrossTab []FacultyCourseCountDTO `json:"cross_tab"`

	// Extremes - экстремумы по каждому факультету в том же порядке.
	Extremes []FacultyExtremesDTO `json:"extremes"`
}

// FacultyCourseExtremesHandler обрабатывает запросы экстремумов.
type FacultyCourseExtremesHandler struct {
	roster *roster.Roster
}

// NewFacultyCourseExtremesHandler создаёт новый обработчик экстремумов.
func NewFacultyCourseExtremesHandler(r *roster.Roster) *FacultyCourseExtremesHandler {
	return &FacultyCourseExtremesHandler{roster: r}
}

// Handle выполняет запрос. Пустой реестр даёт пустые таблицы без ошибки:
// экстремумы считаются только по факультетам, у которых есть студенты,
// поэтому неопределённого максимума здесь не возникает.
func (h *FacultyCourseExtremesHandler) Handle(ctx context.Context, query FacultyCourseExtremesQuery) (*FacultyCourseExtremesResult, error) {
	result := &FacultyCourseExtremesResult{}

	for _, faculty := range h.roster.UniqueFaculties() {
		subset := h.roster.FilterFaculty(faculty)

		extremes := FacultyExtremesDTO{Faculty: faculty}
		for _, course := range subset.UniqueCourses() {
			count := subset.FilterCourse(course).Len()
			result.CrossTab = append(result.CrossTab, FacultyCourseCountDTO{
				Faculty:      faculty,
				Course:       course.String(),
				StudentCount: count,
			})

			if extremes.MaxCourse == "" || count > extremes.MaxCount {
				extremes.MaxCourse = course.String()
				extremes.MaxCount = count
			}
			if extremes.MinCourse == "" || count < extremes.MinCount {
				extremes.MinCourse = course.String()
				extremes.MinCount = count
			}
		}
		result.Extremes = append(result.Extremes, extremes)
	}

	return result, nil
}
