package hrv

import (
	"fmt"
	"sort"
	"time"
)

// TimeRange задает закрытый интервал времени [Start, End]
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// RemoveNegativeTimestamps убирает аномалии, при которых очередное
// измерение приходит с меткой раньше уже виденного максимума (сбой
// часов устройства). Вместе с каждым таким измерением удаляются его
// сосед слева и сосед справа; на краях серии удаляется только один
// сосед - ровно как в эталоне, без обобщения.
func RemoveNegativeTimestamps(series BeatSeries) BeatSeries {
	if len(series) == 0 {
		return BeatSeries{}
	}

	currentMax := series[0].Timestamp
	var rewinds []int
	for i := 1; i < len(series); i++ {
		if series[i].Timestamp.Before(currentMax) {
			rewinds = append(rewinds, i)
		} else {
			currentMax = series[i].Timestamp
		}
	}

	toRemove := make(map[int]bool)
	last := len(series) - 1
	for _, pos := range rewinds {
		switch {
		case pos == 0:
			toRemove[pos] = true
			toRemove[pos+1] = true
		case pos == last:
			toRemove[pos-1] = true
			toRemove[pos] = true
		default:
			toRemove[pos-1] = true
			toRemove[pos] = true
			toRemove[pos+1] = true
		}
	}

	out := make(BeatSeries, 0, len(series))
	for i, b := range series {
		if !toRemove[i] {
			out = append(out, b)
		}
	}
	return out
}

// RemoveFirstAndLastIndices отрезает начало и конец записи: измерения
// в пределах initialCut от первой метки и endCut до последней метки
// (границы включительно) считаются ненадежными из-за надевания и
// снятия датчика.
func RemoveFirstAndLastIndices(series BeatSeries, initialCut, endCut time.Duration) BeatSeries {
	if len(series) == 0 {
		return BeatSeries{}
	}

	firstCut := series[0].Timestamp.Add(initialCut)
	lastCut := series[len(series)-1].Timestamp.Add(-endCut)

	out := make(BeatSeries, 0, len(series))
	for _, b := range series {
		if b.Timestamp.After(firstCut) && b.Timestamp.Before(lastCut) {
			out = append(out, b)
		}
	}
	return out
}

// RemoveSelectedTimeRanges убирает все измерения, попадающие в любой
// из заданных интервалов (границы включительно)
func RemoveSelectedTimeRanges(series BeatSeries, ranges []TimeRange) BeatSeries {
	out := make(BeatSeries, 0, len(series))
	for _, b := range series {
		removed := false
		for _, r := range ranges {
			if !b.Timestamp.Before(r.Start) && !b.Timestamp.After(r.End) {
				removed = true
				break
			}
		}
		if !removed {
			out = append(out, b)
		}
	}
	return out
}

// RemoveConsecutiveBeatsAfterHoles находит дыры в записи (паузы длиннее
// holeTime) и убирает все измерения в окне windowTime после каждой дыры:
// удары сразу после восстановления связи ненадежны.
func RemoveConsecutiveBeatsAfterHoles(series BeatSeries, holeTime, windowTime time.Duration) BeatSeries {
	sorted := series.SortByTimestamp()

	var ranges []TimeRange
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Timestamp.Sub(sorted[i-1].Timestamp) > holeTime {
			ranges = append(ranges, TimeRange{
				Start: sorted[i].Timestamp,
				End:   sorted[i].Timestamp.Add(windowTime),
			})
		}
	}
	return RemoveSelectedTimeRanges(series, ranges)
}

// RemoveAdjacentBeats убирает все измерения в симметричной окрестности
// [t - adjacent, t + adjacent] вокруг каждого помеченного индекса:
// аномальный удар обычно портит и своих соседей по времени. Индексы
// за пределами серии игнорируются.
func RemoveAdjacentBeats(series BeatSeries, indices []int, adjacent time.Duration) BeatSeries {
	var ranges []TimeRange
	for _, idx := range indices {
		if idx < 0 || idx >= len(series) {
			continue
		}
		t := series[idx].Timestamp
		ranges = append(ranges, TimeRange{
			Start: t.Add(-adjacent),
			End:   t.Add(adjacent),
		})
	}
	return RemoveSelectedTimeRanges(series, ranges)
}

// RemovePrecedingAndFollowingBeats дополняет набор индексов соседями
// каждого индекса слева и справа, не выходя за границы серии.
// Результат отсортирован и не содержит дубликатов.
func RemovePrecedingAndFollowingBeats(indices []int, length int) ([]int, error) {
	for _, idx := range indices {
		if idx >= length {
			return nil, fmt.Errorf("индекс %d вне диапазона серии длины %d", idx, length)
		}
	}

	present := make(map[int]bool, len(indices))
	for _, idx := range indices {
		present[idx] = true
	}

	expanded := make([]int, 0, 3*len(indices))
	expanded = append(expanded, indices...)
	for _, idx := range indices {
		for _, adj := range []int{idx - 1, idx + 1} {
			if adj >= 0 && adj < length && !present[adj] {
				present[adj] = true
				expanded = append(expanded, adj)
			}
		}
	}
	sort.Ints(expanded)
	return expanded, nil
}
