package roster

import "sort"

// ══════════════════════════════════════════════════════════════════════════════
// FREQUENCY TABLE
// Частотная таблица категориальных значений. Порядок фиксированный:
// по убыванию частоты, при равенстве - значение, встретившееся раньше
// во входных данных. Этим определяется и разрешение "самых частых"
// значений при равных частотах.
// ══════════════════════════════════════════════════════════════════════════════

// Frequency - одна строка частотной таблицы.
type Frequency struct {
	// Value - категориальное значение.
	Value string

	// Count - сколько раз значение встретилось.
	Count int
}

// Frequencies строит частотную таблицу по списку значений.
func Frequencies(values []string) []Frequency {
	counts := make(map[string]int, len(values))
	firstSeen := make(map[string]int, len(values))
	var order []string

	for i, v := range values {
		if _, ok := counts[v]; !ok {
			firstSeen[v] = i
			order = append(order, v)
		}
		counts[v]++
	}

	freqs := make([]Frequency, 0, len(order))
	for _, v := range order {
		freqs = append(freqs, Frequency{Value: v, Count: counts[v]})
	}

	sort.SliceStable(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return firstSeen[freqs[i].Value] < firstSeen[freqs[j].Value]
	})
	return freqs
}

// Top возвращает самое частое значение таблицы.
// Для пустой таблицы возвращает false вторым значением.
func Top(freqs []Frequency) (Frequency, bool) {
	if len(freqs) == 0 {
		return Frequency{}, false
	}
	return freqs[0], true
}

// Bottom возвращает самое редкое значение таблицы.
func Bottom(freqs []Frequency) (Frequency, bool) {
	if len(freqs) == 0 {
		return Frequency{}, false
	}
	return freqs[len(freqs)-1], true
}
