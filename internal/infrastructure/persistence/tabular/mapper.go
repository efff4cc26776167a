// Package tabular converts raw table rows into domain roster records.
// CSV and XLSX loaders parse their formats and feed this mapper, so the
// column schema lives in exactly one place.
package tabular

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
	"github.com/isu-hub/isu-roster-stats/internal/domain/shared"
)

// Названия обязательных колонок исходной таблицы ИСУ.
const (
	ColumnFullName = "фио"
	ColumnFaculty  = "факультет"
	ColumnCourse   = "курс"
	ColumnGroup    = "группа"
	ColumnGrade    = "средний_балл"
	ColumnISU      = "ису"
)

var requiredColumns = []string{
	ColumnFullName,
	ColumnFaculty,
	ColumnCourse,
	ColumnGroup,
	ColumnGrade,
	ColumnISU,
}

// Mapper converts header-prefixed raw rows into student records.
type Mapper struct{}

// NewMapper creates a new Mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapRows maps raw rows (first row is the header) to roster records.
// A missing required column is a fatal load error, as is a row with an
// unparsable ISU number or average grade. Fully empty rows are skipped.
func (m *Mapper) MapRows(rows [][]string) ([]*roster.StudentRecord, error) {
	if len(rows) == 0 {
		return nil, shared.NewDomainError("tabular", "MapRows", shared.ErrMissingColumn, "input has no header row")
	}

	index, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]*roster.StudentRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}

		lineNo := i + 2 // строки таблицы нумеруются с единицы, первая - заголовок

		isu, err := strconv.Atoi(strings.TrimSpace(cell(row, index[ColumnISU])))
		if err != nil {
			return nil, shared.WrapError("tabular", "MapRows", shared.ErrInvalidFormat,
				fmt.Sprintf("row %d: invalid ISU number", lineNo), err)
		}

		grade, err := strconv.ParseFloat(strings.TrimSpace(cell(row, index[ColumnGrade])), 64)
		if err != nil {
			return nil, shared.WrapError("tabular", "MapRows", shared.ErrInvalidFormat,
				fmt.Sprintf("row %d: invalid average grade", lineNo), err)
		}

		rec, err := roster.NewStudentRecord(roster.NewStudentRecordParams{
			FullName: strings.TrimSpace(cell(row, index[ColumnFullName])),
			Faculty:  strings.TrimSpace(cell(row, index[ColumnFaculty])),
			Group:    strings.TrimSpace(cell(row, index[ColumnGroup])),
			Course:   roster.Course(strings.TrimSpace(cell(row, index[ColumnCourse]))),
			ISU:      roster.ISUNumber(isu),
			Grade:    roster.AverageGrade(grade),
		})
		if err != nil {
			return nil, shared.WrapError("tabular", "MapRows", shared.ErrInvalidFormat,
				fmt.Sprintf("row %d: invalid record", lineNo), err)
		}

		records = append(records, rec)
	}

	return records, nil
}

// headerIndex находит позиции обязательных колонок в заголовке.
func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, shared.WrapError("tabular", "MapRows", shared.ErrMissingColumn,
				fmt.Sprintf("column %q not found in header", name), shared.ErrMissingColumn)
		}
	}
	return index, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
