package query

import (
	"context"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
	"github.com/isu-hub/isu-roster-stats/internal/domain/shared"
	"github.com/isu-hub/isu-roster-stats/pkg/statutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// MOST POPULAR NAME QUERY
// Самое популярное имя в реестре; среди его носителей - самая частая
// группа, затем самый частый факультет и курс; доля носителей имени
// в общем числе студентов.
// ══════════════════════════════════════════════════════════════════════════════

// MostPopularNameQuery содержит параметры запроса популярного имени.
type MostPopularNameQuery struct{}

// MostPopularNameResult содержит результат запроса популярного имени.
// Все "самые частые" значения разрешаются порядком частотной таблицы:
// по убыванию частоты, при равенстве - значение, встретившееся раньше.
type MostPopularNameResult struct {
	// Name - самое частое имя.
	Name string `json:"name"`

	// Group - группа с наибольшим числом носителей имени.
	Group string `json:"group"`

	// Faculty - самый частый факультет среди носителей имени в группе.
	Faculty string `json:"faculty"`

	// Course - самый частый курс среди носителей имени в группе на факультете.
	Course string `json:"course"`

	// Share - доля носителей имени в общем числе студентов,
	// округлённая до двух знаков.
	Share float64 `json:"share"`
}

// MostPopularNameHandler обрабатывает запросы популярного имени.
type MostPopularNameHandler struct {
	roster *roster.Roster
}

// NewMostPopularNameHandler создаёт новый обработчик популярного имени.
func NewMostPopularNameHandler(r *roster.Roster) *MostPopularNameHandler {
	return &MostPopularNameHandler{roster: r}
}

// Handle выполняет запрос популярного имени. Для пустого реестра "самое
// частое имя" не определено - возвращается ErrEmptyRoster.
func (h *MostPopularNameHandler) Handle(ctx context.Context, query MostPopularNameQuery) (*MostPopularNameResult, error) {
	names := make([]string, 0, h.roster.Len())
	for _, rec := range h.roster.Records() {
		names = append(names, rec.GivenName)
	}

	topName, ok := roster.Top(roster.Frequencies(names))
	if !ok {
		return nil, shared.WrapError("query", "MostPopularName", shared.ErrNotFound,
			"no names in roster", roster.ErrEmptyRoster)
	}

	// Сужаем выборку шаг за шагом: имя -> группа -> факультет -> курс.
	byName := h.roster.Filter(func(rec *roster.StudentRecord) bool {
		return rec.GivenName == topName.Value
	})
	topGroup := topCategory(byName, func(rec *roster.StudentRecord) string { return rec.Group })

	byGroup := byName.Filter(func(rec *roster.StudentRecord) bool {
		return rec.Group == topGroup
	})
	topFaculty := topCategory(byGroup, func(rec *roster.StudentRecord) string { return rec.Faculty })

	byFaculty := byGroup.Filter(func(rec *roster.StudentRecord) bool {
		return rec.Faculty == topFaculty
	})
	topCourse := topCategory(byFaculty, func(rec *roster.StudentRecord) string { return rec.Course.String() })

	return &MostPopularNameResult{
		Name:    topName.Value,
		Group:   topGroup,
		Faculty: topFaculty,
		Course:  topCourse,
		Share:   statutil.Round2(float64(topName.Count) / float64(h.roster.Len())),
	}, nil
}

// topCategory возвращает самое частое значение категории в выборке.
func topCategory(r *roster.Roster, key func(*roster.StudentRecord) string) string {
	values := make([]string, 0, r.Len())
	for _, rec := range r.Records() {
		values = append(values, key(rec))
	}
	top, ok := roster.Top(roster.Frequencies(values))
	if !ok {
		return ""
	}
	return top.Value
}
