package roster

import "context"

// ══════════════════════════════════════════════════════════════════════════════
// LOADER INTERFACE
// Интерфейс источника данных реестра. Реализации живут в infrastructure
// (CSV, XLSX) - доменный слой от них не зависит.
// ══════════════════════════════════════════════════════════════════════════════

// Loader загружает реестр студентов из внешнего табличного источника.
// Реестр загружается один раз на старте и дальше только читается.
type Loader interface {
	// Load читает источник целиком и возвращает реестр.
	// Отсутствие обязательной колонки - фатальная ошибка загрузки.
	Load(ctx context.Context) (*Roster, error)
}
