package hrv

import (
	"reflect"
	"testing"
	"time"
)

func TestSortByTimestampStable(t *testing.T) {
	series := BeatSeries{
		{Timestamp: testStart.Add(2 * time.Second), RR: 620},
		{Timestamp: testStart, RR: 600},
		{Timestamp: testStart.Add(time.Second), RR: 610},
	}
	sorted := series.SortByTimestamp()
	if !reflect.DeepEqual(sorted.Values(), []float64{600, 610, 620}) {
		t.Errorf("порядок после сортировки: %v", sorted.Values())
	}
	// Исходная серия не изменяется
	if series[0].RR != 620 {
		t.Error("сортировка изменила исходную серию")
	}
}

func TestRebase(t *testing.T) {
	series := seriesAt(
		offsets(100, 101, 103.5),
		[]float64{600, 610, 620},
	)
	initial := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	rebased := series.Rebase(initial)

	wantOffsets := []time.Duration{0, time.Second, 3500 * time.Millisecond}
	for i, b := range rebased {
		if !b.Timestamp.Equal(initial.Add(wantOffsets[i])) {
			t.Errorf("метка [%d] = %v, ожидалось %v", i, b.Timestamp, initial.Add(wantOffsets[i]))
		}
	}
	if !reflect.DeepEqual(rebased.Values(), series.Values()) {
		t.Error("перенос начала изменил значения")
	}
}

func TestCloneIndependence(t *testing.T) {
	series := seriesEverySecond([]float64{600, 610})
	clone := series.Clone()
	clone[0].RR = 999
	if series[0].RR != 600 {
		t.Error("изменение копии затронуло оригинал")
	}
}
