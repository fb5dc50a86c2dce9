package hrv

import (
	"sort"
	"time"
)

// Beat представляет одно измерение: RR-интервал с временной меткой
type Beat struct {
	Timestamp time.Time
	RR        float64
}

// BeatSeries представляет упорядоченную серию RR-интервалов.
// Каждый этап пайплайна возвращает новую серию, исходная не изменяется.
type BeatSeries []Beat

// Values возвращает значения RR-интервалов серии
func (s BeatSeries) Values() []float64 {
	values := make([]float64, len(s))
	for i, b := range s {
		values[i] = b.RR
	}
	return values
}

// Timestamps возвращает временные метки серии
func (s BeatSeries) Timestamps() []time.Time {
	timestamps := make([]time.Time, len(s))
	for i, b := range s {
		timestamps[i] = b.Timestamp
	}
	return timestamps
}

// Clone возвращает независимую копию серии
func (s BeatSeries) Clone() BeatSeries {
	out := make(BeatSeries, len(s))
	copy(out, s)
	return out
}

// SortByTimestamp возвращает новую серию, отсортированную по времени
func (s BeatSeries) SortByTimestamp() BeatSeries {
	out := s.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// Rebase переносит начало серии на заданный момент времени: первая метка
// становится равной initial, а последующие отражают накопленное время
// между измерениями
func (s BeatSeries) Rebase(initial time.Time) BeatSeries {
	out := make(BeatSeries, len(s))
	elapsed := time.Duration(0)
	for i, b := range s {
		if i > 0 {
			elapsed += b.Timestamp.Sub(s[i-1].Timestamp)
		}
		out[i] = Beat{Timestamp: initial.Add(elapsed), RR: b.RR}
	}
	return out
}
