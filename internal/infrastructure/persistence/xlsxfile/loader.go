// Package xlsxfile implements the roster Loader for XLSX workbooks.
package xlsxfile

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
	"github.com/isu-hub/isu-roster-stats/internal/domain/shared"
	"github.com/isu-hub/isu-roster-stats/internal/infrastructure/persistence/tabular"
)

// Loader загружает реестр студентов из XLSX-книги.
type Loader struct {
	path   string
	sheet  string
	mapper *tabular.Mapper
}

// Option настраивает загрузчик.
type Option func(*Loader)

// WithSheet задаёт имя листа. По умолчанию берётся первый лист книги.
func WithSheet(sheet string) Option {
	return func(l *Loader) {
		l.sheet = sheet
	}
}

// NewLoader создаёт загрузчик XLSX-книги.
func NewLoader(path string, opts ...Option) *Loader {
	l := &Loader{
		path:   path,
		mapper: tabular.NewMapper(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load читает лист целиком и возвращает реестр.
func (l *Loader) Load(ctx context.Context) (*roster.Roster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, shared.WrapError("xlsxfile", "Load", shared.ErrDataSource, "cannot open workbook", err)
	}
	defer f.Close()

	sheet := l.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, shared.WrapError("xlsxfile", "Load", shared.ErrInvalidFormat, "cannot read sheet "+sheet, err)
	}

	records, err := l.mapper.MapRows(rows)
	if err != nil {
		return nil, err
	}

	return roster.NewRoster(records)
}
