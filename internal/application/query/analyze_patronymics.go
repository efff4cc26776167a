package query

import (
	"context"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
)

// ══════════════════════════════════════════════════════════════════════════════
// ANALYZE PATRONYMICS QUERY
// Количество студентов без отчества и распределение по полу на основе
// морфологии отчества. Записи без отчества в классификатор не попадают -
// они считаются отдельной категорией.
// ══════════════════════════════════════════════════════════════════════════════

// AnalyzePatronymicsQuery содержит параметры анализа отчеств.
type AnalyzePatronymicsQuery struct{}

// AnalyzePatronymicsResult содержит результат анализа отчеств.
// Инвариант: Female + Male + Unknown == WithPatronymic.
type AnalyzePatronymicsResult struct {
	// WithoutPatronymic - количество студентов без отчества.
	WithoutPatronymic int `json:"without_patronymic"`

	// WithPatronymic - количество студентов с отчеством.
	WithPatronymic int `json:"with_patronymic"`

	// Female - количество женских отчеств.
	Female int `json:"female"`

	// Male - количество мужских отчеств.
	Male int `json:"male"`

	// Unknown - отчества, по которым пол определить не удалось.
	Unknown int `json:"unknown"`
}

// AnalyzePatronymicsHandler обрабатывает запросы анализа отчеств.
type AnalyzePatronymicsHandler struct {
	roster *roster.Roster
}

// NewAnalyzePatronymicsHandler создаёт новый обработчик анализа отчеств.
func NewAnalyzePatronymicsHandler(r *roster.Roster) *AnalyzePatronymicsHandler {
	return &AnalyzePatronymicsHandler{roster: r}
}

// Handle выполняет анализ отчеств выборки.
func (h *AnalyzePatronymicsHandler) Handle(ctx context.Context, query AnalyzePatronymicsQuery) (*AnalyzePatronymicsResult, error) {
	result := &AnalyzePatronymicsResult{}

	for _, rec := range h.roster.Records() {
		if !rec.HasPatronymic() {
			result.WithoutPatronymic++
			continue
		}

		result.WithPatronymic++
		switch roster.ClassifyPatronymic(rec.Patronymic) {
		case roster.GenderFemale:
			result.Female++
		case roster.GenderMale:
			result.Male++
		default:
			result.Unknown++
		}
	}

	return result, nil
}
