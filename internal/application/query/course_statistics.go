package query

import (
	"context"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
	"github.com/isu-hub/isu-roster-stats/pkg/statutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// COURSE STATISTICS QUERY
// Для каждого курса: среднее и медианное число студентов на факультет.
// Учитываются только факультеты, представленные на курсе.
// ══════════════════════════════════════════════════════════════════════════════

// CourseStatisticsQuery содержит параметры запроса статистики курсов.
type CourseStatisticsQuery struct{}

// CourseStatsDTO - статистика одного курса.
type CourseStatsDTO struct {
	// Course - курс.
	Course string `json:"course"`

	// MeanPerFaculty - среднее число студентов курса на факультет.
	MeanPerFaculty float64 `json:"mean_per_faculty"`

	// MedianPerFaculty - медианное число студентов курса на факультет.
	MedianPerFaculty float64 `json:"median_per_faculty"`
}

// CourseStatisticsResult содержит результат запроса статистики курсов.
type CourseStatisticsResult struct {
	// Rows - статистика по курсам, курсы по возрастанию.
	Rows []CourseStatsDTO `json:"rows"`
}

// CourseStatisticsHandler обрабатывает запросы статистики курсов.
type CourseStatisticsHandler struct {
	roster *roster.Roster
}

// NewCourseStatisticsHandler создаёт новый обработчик статистики курсов.
func NewCourseStatisticsHandler(r *roster.Roster) *CourseStatisticsHandler {
	return &CourseStatisticsHandler{roster: r}
}

// Handle выполняет запрос статистики курсов. Пустой реестр даёт пустую
// таблицу без ошибки.
func (h *CourseStatisticsHandler) Handle(ctx context.Context, query CourseStatisticsQuery) (*CourseStatisticsResult, error) {
	result := &CourseStatisticsResult{}

	for _, course := range h.roster.UniqueCourses() {
		subset := h.roster.FilterCourse(course)

		faculties := make([]string, 0, subset.Len())
		for _, rec := range subset.Records() {
			faculties = append(faculties, rec.Faculty)
		}

		counts := make([]int, 0)
		for _, freq := range roster.Frequencies(faculties) {
			counts = append(counts, freq.Count)
		}

		result.Rows = append(result.Rows, CourseStatsDTO{
			Course:           course.String(),
			MeanPerFaculty:   statutil.MeanInts(counts),
			MedianPerFaculty: statutil.MedianInts(counts),
		})
	}

	return result, nil
}
