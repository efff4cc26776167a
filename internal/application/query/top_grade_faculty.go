package query

import (
	"context"
	"errors"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
	"github.com/isu-hub/isu-roster-stats/internal/domain/shared"
	"github.com/isu-hub/isu-roster-stats/pkg/statutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// TOP GRADE FACULTY QUERY
// На заданном курсе: факультет с самым высоким средним баллом и пол,
// средний балл которого на этом факультете выше.
//
// Пол считается по отчеству в отдельную структуру запроса - производная
// колонка никогда не пишется в общие записи реестра.
// ══════════════════════════════════════════════════════════════════════════════

// TopGradeFacultyQuery содержит параметры запроса.
type TopGradeFacultyQuery struct {
	// Course - курс, по которому строится статистика (например "3-й").
	Course string
}

// Validate проверяет корректность параметров запроса.
func (q *TopGradeFacultyQuery) Validate() error {
	if q.Course == "" {
		return errors.New("course cannot be empty")
	}
	return nil
}

// TopGradeFacultyResult содержит результат запроса.
type TopGradeFacultyResult struct {
	// Course - курс, по которому строилась статистика.
	Course string `json:"course"`

	// Faculty - факультет с самым высоким средним баллом на курсе.
	// При равенстве побеждает факультет, встретившийся в реестре раньше.
	Faculty string `json:"faculty"`

	// Gender - пол с более высоким средним баллом на этом факультете.
	Gender roster.Gender `json:"gender"`

	// Grade - средний балл этого пола, округлённый до целого.
	Grade int `json:"grade"`
}

// TopGradeFacultyHandler обрабатывает запросы лучшего факультета по баллу.
type TopGradeFacultyHandler struct {
	roster *roster.Roster
}

// NewTopGradeFacultyHandler создаёт новый обработчик.
func NewTopGradeFacultyHandler(r *roster.Roster) *TopGradeFacultyHandler {
	return &TopGradeFacultyHandler{roster: r}
}

// Handle выполняет запрос. Отсутствие студентов на курсе делает максимум
// неопределённым - возвращается ErrEmptyRoster.
func (h *TopGradeFacultyHandler) Handle(ctx context.Context, query TopGradeFacultyQuery) (*TopGradeFacultyResult, error) {
	if err := query.Validate(); err != nil {
		return nil, shared.WrapError("query", "TopGradeFaculty", shared.ErrValidation, err.Error(), err)
	}

	onCourse := h.roster.FilterCourse(roster.Course(query.Course))
	if onCourse.Len() == 0 {
		return nil, shared.WrapError("query", "TopGradeFaculty", shared.ErrNotFound,
			"no students on course "+query.Course, roster.ErrEmptyRoster)
	}

	// Факультет с максимальным средним баллом. Факультеты перебираются
	// в порядке появления, максимум строгий.
	topFaculty := ""
	topMean := 0.0
	for _, faculty := range onCourse.UniqueFaculties() {
		mean := statutil.Mean(grades(onCourse.FilterFaculty(faculty)))
		if topFaculty == "" || mean > topMean {
			topFaculty = faculty
			topMean = mean
		}
	}

	// Средний балл по полу на лучшем факультете. Пол каждой записи
	// считается в локальную структуру.
	var femaleGrades, maleGrades []float64
	for _, rec := range onCourse.FilterFaculty(topFaculty).Records() {
		switch roster.ClassifyPatronymic(rec.Patronymic) {
		case roster.GenderFemale:
			femaleGrades = append(femaleGrades, float64(rec.Grade))
		case roster.GenderMale:
			maleGrades = append(maleGrades, float64(rec.Grade))
		}
	}

	maleMean := statutil.Mean(maleGrades)
	femaleMean := statutil.Mean(femaleGrades)

	result := &TopGradeFacultyResult{
		Course:  query.Course,
		Faculty: topFaculty,
		Gender:  roster.GenderFemale,
		Grade:   statutil.RoundToInt(femaleMean),
	}
	if maleMean > femaleMean {
		result.Gender = roster.GenderMale
		result.Grade = statutil.RoundToInt(maleMean)
	}

	return result, nil
}

// grades собирает средние баллы выборки.
func grades(r *roster.Roster) []float64 {
	gs := make([]float64, 0, r.Len())
	for _, rec := range r.Records() {
		gs = append(gs, float64(rec.Grade))
	}
	return gs
}
