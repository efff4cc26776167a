// Package csvfile implements the roster Loader for CSV files.
package csvfile

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
	"github.com/isu-hub/isu-roster-stats/internal/domain/shared"
	"github.com/isu-hub/isu-roster-stats/internal/infrastructure/persistence/tabular"
)

// Loader загружает реестр студентов из CSV-файла.
type Loader struct {
	path   string
	comma  rune
	mapper *tabular.Mapper
}

// Option настраивает загрузчик.
type Option func(*Loader)

// WithComma задаёт разделитель колонок (по умолчанию запятая).
func WithComma(comma rune) Option {
	return func(l *Loader) {
		l.comma = comma
	}
}

// NewLoader создаёт загрузчик CSV-файла.
func NewLoader(path string, opts ...Option) *Loader {
	l := &Loader{
		path:   path,
		comma:  ',',
		mapper: tabular.NewMapper(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load читает файл целиком и возвращает реестр. Любая ошибка чтения или
// разбора фатальна - частично загруженный реестр не возвращается.
func (l *Loader) Load(ctx context.Context) (*roster.Roster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, shared.WrapError("csvfile", "Load", shared.ErrDataSource, "cannot open roster file", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = l.comma
	reader.FieldsPerRecord = -1 // длина строк проверяется маппером

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, shared.WrapError("csvfile", "Load", shared.ErrInvalidFormat, "cannot parse CSV", err)
	}

	records, err := l.mapper.MapRows(rows)
	if err != nil {
		return nil, err
	}

	return roster.NewRoster(records)
}
