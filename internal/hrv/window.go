package hrv

import (
	"fmt"
	"time"
)

// Window представляет временное окно фиксированной длины с попавшими
// в него измерениями
type Window struct {
	Start time.Time
	Beats BeatSeries
}

// SliceWindows делит серию на окна длиной window с шагом step между
// началами соседних окон. Окна могут перекрываться и могут быть пустыми.
// Измерение попадает в окно при start <= t <= start+window: обе границы
// включаются, ровно как в эталонных расчетах, от этого зависят
// численные результаты.
func SliceWindows(series BeatSeries, step, window time.Duration) ([]Window, error) {
	if step > window {
		return nil, fmt.Errorf("шаг %v больше размера окна %v", step, window)
	}
	if len(series) == 0 {
		return nil, nil
	}

	first := series[0].Timestamp
	last := series[len(series)-1].Timestamp

	var windows []Window
	for start := first; !start.After(last); start = start.Add(step) {
		end := start.Add(window)
		var beats BeatSeries
		for _, b := range series {
			if !b.Timestamp.Before(start) && !b.Timestamp.After(end) {
				beats = append(beats, b)
			}
		}
		windows = append(windows, Window{Start: start, Beats: beats})
	}
	return windows, nil
}

// DeduplicateWindows убирает повторяющиеся окна: если соседние окна
// начинаются с одной и той же метки и содержат одинаковое число
// элементов, остается только последнее из них. Неcоседние дубликаты
// не объединяются.
func DeduplicateWindows(windows []Window) []Window {
	remove := make([]bool, len(windows))
	for i := 1; i < len(windows); i++ {
		if len(windows[i].Beats) == 0 || len(windows[i-1].Beats) == 0 {
			continue
		}
		if windows[i].Beats[0].Timestamp.Equal(windows[i-1].Beats[0].Timestamp) &&
			len(windows[i].Beats) == len(windows[i-1].Beats) {
			remove[i-1] = true
		}
	}

	filtered := make([]Window, 0, len(windows))
	for i, w := range windows {
		if !remove[i] {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
