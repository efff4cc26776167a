package roster

// ══════════════════════════════════════════════════════════════════════════════
// RUN DETECTOR
// Поиск серий подряд идущих номеров ИСУ. Серия - максимальная
// подпоследовательность, в которой соседние номера отличаются ровно
// на единицу. Детектор не сортирует вход: вызывающий код обязан
// передать номера по возрастанию.
// ══════════════════════════════════════════════════════════════════════════════

// Run описывает одну найденную серию как диапазон индексов входной
// последовательности: [Start, Start+Length).
type Run struct {
	// Start - индекс первого элемента серии во входной последовательности.
	Start int

	// Length - длина серии.
	Length int
}

// FindRuns находит все серии длиной не меньше minLen в уже
// отсортированной по возрастанию последовательности номеров.
// Пустой вход даёт пустой результат; серия ровно из minLen элементов
// включается. Значение minLen меньше единицы трактуется как единица.
func FindRuns(ids []int, minLen int) []Run {
	if minLen < 1 {
		minLen = 1
	}
	if len(ids) == 0 {
		return nil
	}

	var runs []Run
	start := 0
	for i := 1; i <= len(ids); i++ {
		if i < len(ids) && ids[i]-ids[i-1] == 1 {
			continue
		}
		if length := i - start; length >= minLen {
			runs = append(runs, Run{Start: start, Length: length})
		}
		start = i
	}
	return runs
}

// Runs возвращает сами серии номеров вместо диапазонов индексов.
func Runs(ids []int, minLen int) [][]int {
	found := FindRuns(ids, minLen)
	if len(found) == 0 {
		return nil
	}

	groups := make([][]int, 0, len(found))
	for _, run := range found {
		group := make([]int, run.Length)
		copy(group, ids[run.Start:run.Start+run.Length])
		groups = append(groups, group)
	}
	return groups
}
