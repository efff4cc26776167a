// Package fake generates plausible roster datasets for local runs and
// load experiments. Names are assembled from Russian name tables so the
// patronymic morphology matches what the gender classifier expects.
package fake

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
	"github.com/isu-hub/isu-roster-stats/internal/infrastructure/persistence/tabular"
)

// Таблицы для сборки ФИО. Женская фамилия - мужская с окончанием "а".
var (
	surnames = []string{
		"Иванов", "Петров", "Сидоров", "Смирнов", "Кузнецов",
		"Попов", "Соколов", "Лебедев", "Козлов", "Новиков",
		"Морозов", "Волков", "Зайцев", "Павлов", "Семёнов",
	}

	maleNames = []string{
		"Александр", "Дмитрий", "Максим", "Иван", "Пётр",
		"Никита", "Михаил", "Егор", "Павел", "Руслан",
	}

	femaleNames = []string{
		"Анна", "Мария", "Елена", "Дарья", "Полина",
		"Ольга", "Екатерина", "Софья", "Алиса", "Вера",
	}

	malePatronymics = []string{
		"Александрович", "Дмитриевич", "Иванович", "Петрович",
		"Сергеевич", "Ильич", "Михайлович", "Руслан-Бекович",
	}

	femalePatronymics = []string{
		"Александровна", "Дмитриевна", "Ивановна", "Петровна",
		"Сергеевна", "Ильинична", "Михайловна", "Никитична",
	}

	faculties = []struct {
		name        string
		groupPrefix string
	}{
		{"факультет систем управления и робототехники", "R"},
		{"факультет программной инженерии и компьютерной техники", "P"},
		{"факультет информационных технологий и программирования", "M"},
		{"физический факультет", "Z"},
		{"факультет безопасности информационных технологий", "N"},
	}

	courses = []string{"1-й", "2-й", "3-й", "4-й"}
)

// Generator собирает правдоподобный реестр студентов.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator создаёт генератор с фиксированным зерном: одно и то же
// зерно даёт один и тот же реестр.
func NewGenerator(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Generate создаёт n записей реестра. Номера ИСУ выдаются по
// возрастанию: чаще всего подряд, с случайными разрывами - так в данных
// гарантированно появляются серии подряд выданных номеров.
func (g *Generator) Generate(n int) ([]*roster.StudentRecord, error) {
	records := make([]*roster.StudentRecord, 0, n)

	isu := 300000 + g.faker.Number(0, 5000)
	for i := 0; i < n; i++ {
		if g.faker.Number(1, 100) <= 30 {
			isu += g.faker.Number(2, 40) // разрыв серии
		} else {
			isu++
		}

		faculty := faculties[g.faker.Number(0, len(faculties)-1)]
		courseIdx := g.faker.Number(0, len(courses)-1)
		group := fmt.Sprintf("%s3%d0%d", faculty.groupPrefix, courseIdx+1, g.faker.Number(1, 4))

		rec, err := roster.NewStudentRecord(roster.NewStudentRecordParams{
			FullName: g.fullName(),
			Faculty:  faculty.name,
			Group:    group,
			Course:   roster.Course(courses[courseIdx]),
			ISU:      roster.ISUNumber(isu),
			Grade:    roster.AverageGrade(float64(g.faker.Number(300, 500)) / 100),
		})
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// fullName собирает ФИО с согласованным полом. Примерно каждый
// двадцатый студент остаётся без отчества.
func (g *Generator) fullName() string {
	female := g.faker.Bool()

	surname := surnames[g.faker.Number(0, len(surnames)-1)]
	name := maleNames[g.faker.Number(0, len(maleNames)-1)]
	patronymic := malePatronymics[g.faker.Number(0, len(malePatronymics)-1)]
	if female {
		surname += "а"
		name = femaleNames[g.faker.Number(0, len(femaleNames)-1)]
		patronymic = femalePatronymics[g.faker.Number(0, len(femalePatronymics)-1)]
	}

	if g.faker.Number(1, 20) == 1 {
		return surname + " " + name
	}
	return surname + " " + name + " " + patronymic
}

// WriteCSV выписывает записи в CSV со схемой, которую понимает загрузчик.
func WriteCSV(w io.Writer, records []*roster.StudentRecord) error {
	cw := csv.NewWriter(w)

	header := []string{
		tabular.ColumnISU,
		tabular.ColumnFullName,
		tabular.ColumnFaculty,
		tabular.ColumnCourse,
		tabular.ColumnGroup,
		tabular.ColumnGrade,
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{
			fmt.Sprintf("%d", rec.ISU),
			rec.FullName,
			rec.Faculty,
			rec.Course.String(),
			rec.Group,
			fmt.Sprintf("%.2f", float64(rec.Grade)),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
