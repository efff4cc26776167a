package roster

import "strings"

// ══════════════════════════════════════════════════════════════════════════════
// GENDER CLASSIFIER
// Определение пола по морфологии отчества.
//
// В современном русском языке мужские отчества оканчиваются на
// -ович/-евич/-ич, женские - на -овна/-евна/-ична/-инична.
// Классификатор работает прямым сравнением суффиксов над кириллическими
// рунами: это эквивалентно шаблонам с границами слов, но не зависит от
// особенностей конкретного движка регулярных выражений (граница \b в
// пакете regexp определена только для ASCII и на кириллице не работает).
// ══════════════════════════════════════════════════════════════════════════════

// Gender представляет пол, определённый по отчеству.
type Gender string

const (
	// GenderFemale - женское отчество.
	GenderFemale Gender = "female"
	// GenderMale - мужское отчество.
	GenderMale Gender = "male"
	// GenderUnknown - пол по отчеству определить не удалось.
	GenderUnknown Gender = "unknown"
)

// IsValid проверяет, что значение пола корректно.
func (g Gender) IsValid() bool {
	switch g {
	case GenderFemale, GenderMale, GenderUnknown:
		return true
	default:
		return false
	}
}

// String возвращает строковое представление пола.
func (g Gender) String() string {
	return string(g)
}

// Суффиксы проверяются от длинных к коротким, чтобы "-инична" не
// срезалась до "-ична", а "-ович" - до "-ич".
var (
	femaleSuffixes = []string{"инична", "овна", "евна", "ична"}
	maleSuffixes   = []string{"ович", "евич", "ич"}
)

// ClassifyPatronymic определяет пол по отчеству.
//
// Правила (первое совпадение выигрывает):
//  1. female - какой-либо сегмент отчества (слова разделяются пробелами,
//     дефисом и тире) состоит из кириллических букв и оканчивается
//     женским суффиксом;
//  2. male - слово в начале строки, возможно составное через дефис или
//     тире ("Руслан-Бекович"), оканчивается мужским суффиксом;
//  3. иначе unknown.
//
// Пустую строку передавать нельзя: записи без отчества считаются
// отдельной категорией до классификации. На практике пустой вход
// безопасно возвращает unknown.
func ClassifyPatronymic(patronymic string) Gender {
	words := strings.Fields(patronymic)

	for _, w := range words {
		if matchesFemale(w) {
			return GenderFemale
		}
	}

	// Мужской шаблон привязан к началу строки.
	if len(words) > 0 && matchesMale(words[0]) {
		return GenderMale
	}

	return GenderUnknown
}

// matchesFemale проверяет слово на женский суффикс. Дефис и тире -
// границы слов: в составном слове каждый сегмент проверяется отдельно,
// поэтому "Анна-Петровна" - женское отчество.
func matchesFemale(word string) bool {
	for _, segment := range strings.FieldsFunc(word, isJoiner) {
		runes := []rune(segment)
		if allCyrillic(runes) && hasSuffixWithStem(runes, femaleSuffixes) {
			return true
		}
	}
	return false
}

// matchesMale проверяет слово на мужской суффикс. Составная приставка
// через дефис, короткое или длинное тире допустима - это осознанное
// правило для отчеств вида "Руслан-Бекович". Начинаться и кончаться
// слово обязано кириллической буквой.
func matchesMale(word string) bool {
	runes := []rune(word)
	for _, r := range runes {
		if !isCyrillic(r) && !isJoiner(r) {
			return false
		}
	}
	if len(runes) == 0 || !isCyrillic(runes[0]) || !isCyrillic(runes[len(runes)-1]) {
		return false
	}
	return hasSuffixWithStem(runes, maleSuffixes)
}

// allCyrillic проверяет, что все руны - кириллические буквы.
func allCyrillic(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if !isCyrillic(r) {
			return false
		}
	}
	return true
}

// hasSuffixWithStem проверяет, что слово оканчивается одним из суффиксов
// и перед суффиксом есть хотя бы одна кириллическая буква.
func hasSuffixWithStem(runes []rune, suffixes []string) bool {
	for _, suffix := range suffixes {
		sr := []rune(suffix)
		if len(runes) <= len(sr) {
			continue
		}
		if string(runes[len(runes)-len(sr):]) != suffix {
			continue
		}
		if isCyrillic(runes[len(runes)-len(sr)-1]) {
			return true
		}
	}
	return false
}

// isCyrillic проверяет принадлежность руны диапазону А-Яа-я.
func isCyrillic(r rune) bool {
	return r >= 'А' && r <= 'я'
}

// isJoiner проверяет, что руна - дефис или тире, соединяющее части
// составного отчества.
func isJoiner(r rune) bool {
	return r == '-' || r == '–' || r == '—'
}
