package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeFile(t, "ису,фио,факультет,курс,группа,средний_балл\n"+
		"312045,Иванов Пётр Сергеевич,ФСУиР,2-й,R3201,4.53\n"+
		"312046,Сидорова Анна Петровна,ФИТиП,1-й,M3101,4.8\n")

	rs, err := NewLoader(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, rs.Len())
	assert.Equal(t, roster.ISUNumber(312045), rs.Records()[0].ISU)
}

func TestLoader_CustomDelimiter(t *testing.T) {
	path := writeFile(t, "ису;фио;факультет;курс;группа;средний_балл\n"+
		"1;Иванов Пётр Сергеевич;ФСУиР;2-й;R3201;4.5\n")

	rs, err := NewLoader(path, WithComma(';')).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, rs.Len())
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "нет.csv")).Load(context.Background())

	assert.Error(t, err)
}

func TestLoader_MissingColumn(t *testing.T) {
	path := writeFile(t, "ису,фио\n1,Иванов Пётр\n")

	_, err := NewLoader(path).Load(context.Background())

	assert.Error(t, err)
}

func TestLoader_DuplicateISU(t *testing.T) {
	path := writeFile(t, "ису,фио,факультет,курс,группа,средний_балл\n"+
		"1,Иванов Пётр Сергеевич,ФСУиР,2-й,R3201,4.5\n"+
		"1,Петров Иван Ильич,ФСУиР,2-й,R3201,4.1\n")

	_, err := NewLoader(path).Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, roster.ErrDuplicateISU)
}
