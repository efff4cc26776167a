// Package console formats query results into a plain-text report.
// Presenters handle the conversion from result DTOs to human-readable
// console output, one section per query.
package console

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/isu-hub/isu-roster-stats/internal/application/query"
	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPORT PRESENTER
// Форматирует результаты запросов в текстовый отчёт для консоли.
// Названия факультетов и групп сортируются русским коллатором: байтовый
// порядок строк на кириллице не совпадает с алфавитным.
// ══════════════════════════════════════════════════════════════════════════════

// ReportPresenter форматирует результаты аналитических запросов.
type ReportPresenter struct {
	collator *collate.Collator
}

// NewReportPresenter создаёт новый презентер отчёта.
func NewReportPresenter() *ReportPresenter {
	return &ReportPresenter{
		collator: collate.New(language.Russian),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// SECTION HELPERS
// ─────────────────────────────────────────────────────────────────────────────

// section форматирует заголовок секции отчёта.
func (p *ReportPresenter) section(title string) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("─", 60))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", 60))
	sb.WriteString("\n")
	return sb.String()
}

// sortRussian возвращает копию строк в русском алфавитном порядке.
func (p *ReportPresenter) sortRussian(values []string) []string {
	sorted := make([]string, len(values))
	copy(sorted, values)
	p.collator.SortStrings(sorted)
	return sorted
}

// genderLabel переводит значение пола в подпись отчёта.
func genderLabel(g roster.Gender) string {
	switch g {
	case roster.GenderFemale:
		return "женский"
	case roster.GenderMale:
		return "мужской"
	default:
		return "не определён"
	}
}

// FormatHeader форматирует шапку отчёта.
func (p *ReportPresenter) FormatHeader(source string, total int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("═", 60))
	sb.WriteString("\n")
	sb.WriteString("ОТЧЁТ ПО РЕЕСТРУ СТУДЕНТОВ\n")
	sb.WriteString(fmt.Sprintf("Источник: %s\n", source))
	sb.WriteString(fmt.Sprintf("Записей: %d\n", total))
	sb.WriteString(strings.Repeat("═", 60))
	sb.WriteString("\n")
	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// FACULTY SUBSET
// ─────────────────────────────────────────────────────────────────────────────

// FormatFacultySubset форматирует сводку по выборке факультета.
func (p *ReportPresenter) FormatFacultySubset(result *query.FacultySubsetResult) string {
	var sb strings.Builder
	sb.WriteString(p.section("Выборка факультета"))

	sb.WriteString(fmt.Sprintf("Факультет: %s\n", result.Faculty))
	sb.WriteString(fmt.Sprintf("Студентов: %d\n", result.StudentCount))
	sb.WriteString(fmt.Sprintf("Групп: %d\n", result.GroupCount))

	if result.StudentCount == 0 {
		sb.WriteString("Студенты факультета в реестре не найдены\n")
		return sb.String()
	}

	groups := p.sortRussian(result.Subset.UniqueGroups())
	sb.WriteString(fmt.Sprintf("Группы: %s\n", strings.Join(groups, ", ")))

	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// HOMONYMS
// ─────────────────────────────────────────────────────────────────────────────

// FormatHomonyms форматирует сводку по однофамильцам.
func (p *ReportPresenter) FormatHomonyms(result *query.FindHomonymsResult) string {
	var sb strings.Builder
	sb.WriteString(p.section("Однофамильцы"))

	if !result.HasHomonyms {
		sb.WriteString("Однофамильцев в выборке нет\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("Всего студентов с однофамильцами: %d\n", result.TotalHomonyms))
	for _, row := range result.PerCourse {
		sb.WriteString(fmt.Sprintf("  %-6s %d\n", row.Course, row.Count))
	}
	sb.WriteString(fmt.Sprintf("Больше всего однофамильцев в группе %s: %d\n",
		result.TopGroup, result.TopGroupCount))

	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// PATRONYMICS
// ─────────────────────────────────────────────────────────────────────────────

// FormatPatronymics форматирует анализ отчеств.
func (p *ReportPresenter) FormatPatronymics(result *query.AnalyzePatronymicsResult) string {
	var sb strings.Builder
	sb.WriteString(p.section("Отчества и пол"))

	sb.WriteString(fmt.Sprintf("Без отчества: %d\n", result.WithoutPatronymic))
	sb.WriteString(fmt.Sprintf("С отчеством:  %d\n", result.WithPatronymic))
	sb.WriteString(fmt.Sprintf("  женских:        %d\n", result.Female))
	sb.WriteString(fmt.Sprintf("  мужских:        %d\n", result.Male))
	sb.WriteString(fmt.Sprintf("  не определено:  %d\n", result.Unknown))

	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// FACULTY POPULATION
// ─────────────────────────────────────────────────────────────────────────────

// FormatFacultyPopulation форматирует частотную таблицу факультетов.
func (p *ReportPresenter) FormatFacultyPopulation(result *query.FacultyPopulationResult) string {
	var sb strings.Builder
	sb.WriteString(p.section("Численность факультетов"))

	for _, row := range result.Rows {
		sb.WriteString(fmt.Sprintf("  %-60s %d\n", row.Faculty, row.StudentCount))
	}
	sb.WriteString(fmt.Sprintf("Самый большой:   %s (%d)\n", result.Max.Faculty, result.Max.StudentCount))
	sb.WriteString(fmt.Sprintf("Самый маленький: %s (%d)\n", result.Min.Faculty, result.Min.StudentCount))

	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// COURSE STATISTICS
// ─────────────────────────────────────────────────────────────────────────────

// FormatCourseStatistics форматирует статистику по курсам.
func (p *ReportPresenter) FormatCourseStatistics(result *query.CourseStatisticsResult) string {
	var sb strings.Builder
	sb.WriteString(p.section("Студенты курса на факультет"))

	sb.WriteString(fmt.Sprintf("  %-6s %10s %10s\n", "курс", "среднее", "медиана"))
	for _, row := range result.Rows {
		sb.WriteString(fmt.Sprintf("  %-6s %10.2f %10.2f\n",
			row.Course, row.MeanPerFaculty, row.MedianPerFaculty))
	}

	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// MOST POPULAR NAME
// ─────────────────────────────────────────────────────────────────────────────

// FormatMostPopularName форматирует результат поиска популярного имени.
func (p *ReportPresenter) FormatMostPopularName(result *query.MostPopularNameResult) string {
	var sb strings.Builder
	sb.WriteString(p.section("Самое популярное имя"))

	sb.WriteString(fmt.Sprintf("Имя:       %s\n", result.Name))
	sb.WriteString(fmt.Sprintf("Группа:    %s\n", result.Group))
	sb.WriteString(fmt.Sprintf("Факультет: %s\n", result.Faculty))
	sb.WriteString(fmt.Sprintf("Курс:      %s\n", result.Course))
	sb.WriteString(fmt.Sprintf("Доля носителей имени: %.2f\n", result.Share))

	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// RARE NAMES
// ─────────────────────────────────────────────────────────────────────────────

// FormatRareNames форматирует список редких имён.
func (p *ReportPresenter) FormatRareNames(prefix string, result *query.RareNamesResult) string {
	var sb strings.Builder
	sb.WriteString(p.section(fmt.Sprintf("Редкие имена на «%s»", prefix)))

	if len(result.Rows) == 0 {
		sb.WriteString("Имён, встречающихся ровно один раз, не нашлось\n")
		return sb.String()
	}

	for _, row := range result.Rows {
		sb.WriteString(fmt.Sprintf("  %-40s %-6s %s\n", row.FullName, row.Course, row.Faculty))
	}

	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// TOP GRADE FACULTY
// ─────────────────────────────────────────────────────────────────────────────

// FormatTopGradeFaculty форматирует лучший факультет по среднему баллу.
func (p *ReportPresenter) FormatTopGradeFaculty(result *query.TopGradeFacultyResult) string {
	var sb strings.Builder
	sb.WriteString(p.section(fmt.Sprintf("Лучший средний балл на курсе %s", result.Course)))

	sb.WriteString(fmt.Sprintf("Факультет: %s\n", result.Faculty))
	sb.WriteString(fmt.Sprintf("Выше средний балл у пола: %s\n", genderLabel(result.Gender)))
	sb.WriteString(fmt.Sprintf("Балл (до целого): %d\n", result.Grade))

	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// CONSECUTIVE ISU
// ─────────────────────────────────────────────────────────────────────────────

// FormatConsecutiveISU форматирует серии подряд выданных номеров.
func (p *ReportPresenter) FormatConsecutiveISU(minRunLength int, result *query.ConsecutiveISUResult) string {
	var sb strings.Builder
	sb.WriteString(p.section(fmt.Sprintf("Серии номеров ИСУ длиной от %d", minRunLength)))

	if result.RunsFound == 0 {
		sb.WriteString("Серий нужной длины в реестре нет\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("Серий найдено: %d\n", result.RunsFound))
	for _, row := range result.Rows {
		sb.WriteString(fmt.Sprintf("  %d  %-40s %-6s %-8s %s\n",
			row.ISU, row.FullName, row.Course, row.Group, row.Faculty))
	}

	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// GROUP SUMMARY
// ─────────────────────────────────────────────────────────────────────────────

// FormatGroupSummary форматирует сводку по группам факультетов.
// Факультеты выводятся в русском алфавитном порядке.
func (p *ReportPresenter) FormatGroupSummary(result *query.GroupSummaryResult) string {
	var sb strings.Builder
	sb.WriteString(p.section("Группы факультетов"))

	rows := make([]query.FacultyGroupsDTO, len(result.Rows))
	copy(rows, result.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return p.collator.CompareString(rows[i].Faculty, rows[j].Faculty) < 0
	})

	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("  %-60s групп: %2d, в среднем %.2f студента\n",
			row.Faculty, row.GroupCount, row.MeanStudentsPerGroup))
	}

	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// FACULTY × COURSE EXTREMES
// ─────────────────────────────────────────────────────────────────────────────

// FormatFacultyCourseExtremes форматирует таблицу факультет × курс.
func (p *ReportPresenter) FormatFacultyCourseExtremes(result *query.FacultyCourseExtremesResult) string {
	var sb strings.Builder
	sb.WriteString(p.section("Численность курсов по факультетам"))

	for _, cell := range result.CrossTab {
		sb.WriteString(fmt.Sprintf("  %-60s %-6s %d\n", cell.Faculty, cell.Course, cell.StudentCount))
	}

	sb.WriteString("\n")
	for _, ext := range result.Extremes {
		sb.WriteString(fmt.Sprintf("  %s\n", ext.Faculty))
		sb.WriteString(fmt.Sprintf("    больше всего на %s курсе: %d\n", ext.MaxCourse, ext.MaxCount))
		sb.WriteString(fmt.Sprintf("    меньше всего на %s курсе: %d\n", ext.MinCourse, ext.MinCount))
	}

	return sb.String()
}
