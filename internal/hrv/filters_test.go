package hrv

import (
	"reflect"
	"testing"
	"time"
)

func offsets(seconds ...float64) []time.Duration {
	out := make([]time.Duration, len(seconds))
	for i, s := range seconds {
		out[i] = time.Duration(s * float64(time.Second))
	}
	return out
}

func rrValues(series BeatSeries) []float64 {
	return series.Values()
}

func TestRemoveNegativeTimestamps(t *testing.T) {
	// Метка 1.5 приходит после 2 - сбой часов: удаляется сама метка
	// и оба соседа
	series := seriesAt(
		offsets(0, 1, 2, 1.5, 3, 4),
		[]float64{600, 610, 620, 630, 640, 650},
	)
	got := RemoveNegativeTimestamps(series)
	want := []float64{600, 610, 650}
	if !reflect.DeepEqual(rrValues(got), want) {
		t.Errorf("осталось %v, ожидалось %v", rrValues(got), want)
	}
}

func TestRemoveNegativeTimestampsAtEnd(t *testing.T) {
	// Сбой на последней метке: удаляется она и только левый сосед
	series := seriesAt(
		offsets(0, 1, 2, 1.5),
		[]float64{600, 610, 620, 630},
	)
	got := RemoveNegativeTimestamps(series)
	want := []float64{600, 610}
	if !reflect.DeepEqual(rrValues(got), want) {
		t.Errorf("осталось %v, ожидалось %v", rrValues(got), want)
	}
}

func TestRemoveNegativeTimestampsClean(t *testing.T) {
	series := seriesEverySecond([]float64{600, 610, 620})
	if got := RemoveNegativeTimestamps(series); len(got) != 3 {
		t.Errorf("чистая серия изменилась: %v", rrValues(got))
	}
}

func TestRemoveFirstAndLastIndices(t *testing.T) {
	series := seriesAt(
		offsets(0, 5, 10, 15, 20, 25, 30),
		[]float64{600, 610, 620, 630, 640, 650, 660},
	)
	// Границы обрезки включаются: метки ровно на границе удаляются
	got := RemoveFirstAndLastIndices(series, 10*time.Second, 10*time.Second)
	want := []float64{630}
	if !reflect.DeepEqual(rrValues(got), want) {
		t.Errorf("осталось %v, ожидалось %v", rrValues(got), want)
	}
}

func TestRemoveFirstAndLastIndicesEmpty(t *testing.T) {
	if got := RemoveFirstAndLastIndices(nil, time.Second, time.Second); len(got) != 0 {
		t.Errorf("ожидалась пустая серия, получено %d", len(got))
	}
}

func TestRemoveConsecutiveBeatsAfterHoles(t *testing.T) {
	// Пауза 2 -> 33 длиннее 30 секунд: удаляется все в окне 15 секунд
	// после дыры
	series := seriesAt(
		offsets(0, 1, 2, 33, 34, 35, 50),
		[]float64{600, 610, 620, 630, 640, 650, 660},
	)
	got := RemoveConsecutiveBeatsAfterHoles(series, 30*time.Second, 15*time.Second)
	want := []float64{600, 610, 620, 660}
	if !reflect.DeepEqual(rrValues(got), want) {
		t.Errorf("осталось %v, ожидалось %v", rrValues(got), want)
	}
}

func TestRemoveSelectedTimeRanges(t *testing.T) {
	series := seriesAt(
		offsets(0, 1, 2, 3, 4),
		[]float64{600, 610, 620, 630, 640},
	)
	ranges := []TimeRange{
		{Start: testStart.Add(time.Second), End: testStart.Add(2 * time.Second)},
	}
	got := RemoveSelectedTimeRanges(series, ranges)
	want := []float64{600, 630, 640}
	if !reflect.DeepEqual(rrValues(got), want) {
		t.Errorf("осталось %v, ожидалось %v", rrValues(got), want)
	}
}

func TestRemoveAdjacentBeats(t *testing.T) {
	series := seriesAt(
		offsets(0, 1, 2, 3, 10, 11),
		[]float64{600, 610, 620, 630, 640, 650},
	)
	// Вокруг индекса 2 удаляется окрестность в одну секунду;
	// индекс 100 вне серии и молча пропускается
	got := RemoveAdjacentBeats(series, []int{2, 100}, time.Second)
	want := []float64{600, 640, 650}
	if !reflect.DeepEqual(rrValues(got), want) {
		t.Errorf("осталось %v, ожидалось %v", rrValues(got), want)
	}
}

func TestRemovePrecedingAndFollowingBeats(t *testing.T) {
	got, err := RemovePrecedingAndFollowingBeats([]int{0, 3, 5, 27, 28, 99}, 100)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	want := []int{0, 1, 2, 3, 4, 5, 6, 26, 27, 28, 29, 98, 99}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("получено %v, ожидалось %v", got, want)
	}
}

func TestRemovePrecedingAndFollowingBeatsOutOfRange(t *testing.T) {
	if _, err := RemovePrecedingAndFollowingBeats([]int{10}, 10); err == nil {
		t.Error("ожидалась ошибка для индекса вне серии")
	}
}
