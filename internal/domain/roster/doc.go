// Package roster содержит доменную модель реестра студентов.
//
// Это ядро бизнес-логики системы "ISU Roster Stats". Пакет определяет:
//
//   - Сущности: StudentRecord, Roster
//   - Value Objects: ISUNumber, Course, AverageGrade, Gender
//   - Чистые примитивы: ClassifyPatronymic (пол по отчеству),
//     FindRuns (серии подряд идущих номеров), Frequencies (частотные таблицы)
//   - Интерфейс источника данных: Loader
//
// # Архитектурные принципы
//
// Пакет следует принципам Clean Architecture и DDD:
//
//  1. Нулевые внешние зависимости - только стандартная библиотека Go
//  2. Dependency Inversion - Loader реализуется в infrastructure
//  3. Реестр после загрузки неизменяем - производные данные запросы
//     считают в собственные структуры, а не в общие записи
//
// # Основные примитивы
//
// Определение пола по отчеству:
//
//	gender := roster.ClassifyPatronymic("Ивановна") // GenderFemale
//	gender  = roster.ClassifyPatronymic("Руслан-Бекович") // GenderMale
//
// Поиск серий подряд выданных номеров (вход должен быть отсортирован):
//
//	runs := roster.FindRuns([]int{100, 101, 102, 103, 104, 200}, 5)
//	// одна серия длиной 5, начинающаяся с индекса 0
//
// Частотная таблица с фиксированным порядком (по убыванию частоты,
// при равенстве - более раннее значение):
//
//	freqs := roster.Frequencies(names)
//	top, ok := roster.Top(freqs)
package roster
