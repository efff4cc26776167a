// Package roster содержит доменную модель реестра студентов университета.
// Это ядро бизнес-логики - здесь нет внешних зависимостей.
package roster

import (
	"fmt"
	"strings"

	"github.com/isu-hub/isu-roster-stats/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// ISUNumber представляет уникальный табельный номер студента в системе ИСУ.
type ISUNumber int

// IsValid проверяет, что номер ИСУ положительный.
func (n ISUNumber) IsValid() bool {
	return n > 0
}

// Course представляет курс обучения в виде категориальной строки ("1-й".."4-й").
// Канонический набор значений не фиксируется - курсы берутся из данных как есть.
type Course string

// IsValid проверяет, что курс непустой.
func (c Course) IsValid() bool {
	return strings.TrimSpace(string(c)) != ""
}

// String возвращает строковое представление курса.
func (c Course) String() string {
	return string(c)
}

// AverageGrade представляет средний балл студента.
type AverageGrade float64

// IsValid проверяет, что средний балл неотрицательный.
func (g AverageGrade) IsValid() bool {
	return g >= 0
}

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT RECORD
// Одна строка реестра. После загрузки запись не изменяется:
// все производные данные запросы считают в собственные структуры.
// ══════════════════════════════════════════════════════════════════════════════

// StudentRecord представляет одну запись реестра студентов.
type StudentRecord struct {
	// FullName - исходная строка "Фамилия Имя Отчество...".
	FullName string

	// Surname, GivenName, Patronymic - части ФИО, полученные разбиением
	// FullName по пробелам. Patronymic объединяет все токены после имени
	// (составные отчества из нескольких слов) и может быть пустым.
	Surname    string
	GivenName  string
	Patronymic string

	// Faculty - факультет.
	Faculty string

	// Group - учебная группа.
	Group string

	// Course - курс обучения.
	Course Course

	// ISU - уникальный табельный номер.
	ISU ISUNumber

	// Grade - средний балл.
	Grade AverageGrade
}

// NewStudentRecordParams содержит параметры для создания записи.
type NewStudentRecordParams struct {
	FullName string
	Faculty  string
	Group    string
	Course   Course
	ISU      ISUNumber
	Grade    AverageGrade
}

// NewStudentRecord создаёт запись реестра, разбирая ФИО на части.
func NewStudentRecord(p NewStudentRecordParams) (*StudentRecord, error) {
	if strings.TrimSpace(p.FullName) == "" {
		return nil, shared.NewDomainError("roster", "NewStudentRecord", shared.ErrEmptyValue, "full name is empty")
	}
	if !p.ISU.IsValid() {
		return nil, shared.NewDomainError("roster", "NewStudentRecord", shared.ErrInvalidID,
			fmt.Sprintf("invalid ISU number %d", p.ISU))
	}
	if !p.Grade.IsValid() {
		return nil, shared.NewDomainError("roster", "NewStudentRecord", shared.ErrNegativeValue,
			fmt.Sprintf("negative average grade %v", float64(p.Grade)))
	}

	surname, given, patronymic := SplitFullName(p.FullName)

	return &StudentRecord{
		FullName:   p.FullName,
		Surname:    surname,
		GivenName:  given,
		Patronymic: patronymic,
		Faculty:    p.Faculty,
		Group:      p.Group,
		Course:     p.Course,
		ISU:        p.ISU,
		Grade:      p.Grade,
	}, nil
}

// HasPatronymic возвращает true, если у студента указано отчество.
func (s *StudentRecord) HasPatronymic() bool {
	return s.Patronymic != ""
}

// Clone возвращает независимую копию записи.
func (s *StudentRecord) Clone() *StudentRecord {
	cp := *s
	return &cp
}

// SplitFullName разбивает строку ФИО на фамилию, имя и отчество.
// Все токены после имени склеиваются в отчество - так обрабатываются
// составные отчества и дополнительные имена ("Оглы", "Кызы" и т.п.).
func SplitFullName(fullName string) (surname, givenName, patronymic string) {
	tokens := strings.Fields(fullName)
	if len(tokens) > 0 {
		surname = tokens[0]
	}
	if len(tokens) > 1 {
		givenName = tokens[1]
	}
	if len(tokens) > 2 {
		patronymic = strings.Join(tokens[2:], " ")
	}
	return surname, givenName, patronymic
}
