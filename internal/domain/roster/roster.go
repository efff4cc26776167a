package roster

import (
	"fmt"
	"sort"

	"github.com/isu-hub/isu-roster-stats/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ROSTER
// Загруженный реестр студентов. После загрузки реестр только читается:
// запросы работают с выборками и копиями, общие записи не изменяются.
// ══════════════════════════════════════════════════════════════════════════════

// Доменные ошибки реестра.
var (
	// ErrEmptyRoster - агрегатный запрос (max/min) над пустой выборкой.
	ErrEmptyRoster = shared.NewDomainError("roster", "Aggregate", shared.ErrNotFound, "roster subset is empty")

	// ErrDuplicateISU - в реестре встретился повторяющийся номер ИСУ.
	ErrDuplicateISU = shared.NewDomainError("roster", "New", shared.ErrAlreadyExists, "duplicate ISU number")
)

// Roster представляет загруженный реестр студентов.
type Roster struct {
	records []*StudentRecord
}

// NewRoster создаёт реестр, проверяя уникальность номеров ИСУ.
func NewRoster(records []*StudentRecord) (*Roster, error) {
	seen := make(map[ISUNumber]struct{}, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.ISU]; ok {
			return nil, shared.WrapError("roster", "New", shared.ErrAlreadyExists,
				fmt.Sprintf("duplicate ISU number %d", rec.ISU), ErrDuplicateISU)
		}
		seen[rec.ISU] = struct{}{}
	}

	rs := make([]*StudentRecord, len(records))
	copy(rs, records)
	return &Roster{records: rs}, nil
}

// Len возвращает количество записей в реестре.
func (r *Roster) Len() int {
	return len(r.records)
}

// Records возвращает записи реестра. Слайс - копия, записи общие:
// вызывающий код не должен изменять их.
func (r *Roster) Records() []*StudentRecord {
	rs := make([]*StudentRecord, len(r.records))
	copy(rs, r.records)
	return rs
}

// Filter возвращает новый реестр из записей, удовлетворяющих предикату.
// Порядок записей сохраняется.
func (r *Roster) Filter(keep func(*StudentRecord) bool) *Roster {
	var rs []*StudentRecord
	for _, rec := range r.records {
		if keep(rec) {
			rs = append(rs, rec)
		}
	}
	return &Roster{records: rs}
}

// FilterFaculty возвращает выборку по факультету.
func (r *Roster) FilterFaculty(faculty string) *Roster {
	return r.Filter(func(rec *StudentRecord) bool {
		return rec.Faculty == faculty
	})
}

// FilterCourse возвращает выборку по курсу.
func (r *Roster) FilterCourse(course Course) *Roster {
	return r.Filter(func(rec *StudentRecord) bool {
		return rec.Course == course
	})
}

// Clone возвращает глубокую копию реестра. Используется запросами,
// которым нужны производные данные поверх записей: производные колонки
// никогда не пишутся в общие записи.
func (r *Roster) Clone() *Roster {
	rs := make([]*StudentRecord, len(r.records))
	for i, rec := range r.records {
		rs[i] = rec.Clone()
	}
	return &Roster{records: rs}
}

// SortedByISU возвращает копию записей, отсортированную по номеру ИСУ
// по возрастанию. Исходный порядок реестра не меняется.
func (r *Roster) SortedByISU() []*StudentRecord {
	rs := r.Records()
	sort.Slice(rs, func(i, j int) bool {
		return rs[i].ISU < rs[j].ISU
	})
	return rs
}

// UniqueGroups возвращает список уникальных групп в порядке появления.
func (r *Roster) UniqueGroups() []string {
	return uniqueInOrder(r.records, func(rec *StudentRecord) string { return rec.Group })
}

// UniqueFaculties возвращает список уникальных факультетов в порядке появления.
func (r *Roster) UniqueFaculties() []string {
	return uniqueInOrder(r.records, func(rec *StudentRecord) string { return rec.Faculty })
}

// UniqueCourses возвращает отсортированный список уникальных курсов.
func (r *Roster) UniqueCourses() []Course {
	seen := make(map[Course]struct{})
	var courses []Course
	for _, rec := range r.records {
		if _, ok := seen[rec.Course]; ok {
			continue
		}
		seen[rec.Course] = struct{}{}
		courses = append(courses, rec.Course)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i] < courses[j] })
	return courses
}

func uniqueInOrder(records []*StudentRecord, key func(*StudentRecord) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, rec := range records {
		v := key(rec)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
