package hrv

import (
	"math"
	"testing"
	"time"
)

var testStart = time.Date(2023, 5, 12, 10, 0, 0, 0, time.UTC)

// seriesAt строит серию из значений с заданными смещениями от testStart
func seriesAt(offsets []time.Duration, values []float64) BeatSeries {
	series := make(BeatSeries, len(values))
	for i := range values {
		series[i] = Beat{Timestamp: testStart.Add(offsets[i]), RR: values[i]}
	}
	return series
}

// seriesEverySecond строит серию значений с шагом в одну секунду
func seriesEverySecond(values []float64) BeatSeries {
	series := make(BeatSeries, len(values))
	for i, v := range values {
		series[i] = Beat{Timestamp: testStart.Add(time.Duration(i) * time.Second), RR: v}
	}
	return series
}

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestRMSSD(t *testing.T) {
	series := seriesAt(
		[]time.Duration{0, time.Second, 2 * time.Second, 3300 * time.Millisecond},
		[]float64{650, 700, 675, 730},
	)
	got := RMSSD(series)
	want := math.Sqrt(2050) // разности 50, -25, 55
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("RMSSD = %v, ожидалось %v", got, want)
	}
}

func TestRMSSDSecondSeries(t *testing.T) {
	got := RMSSD(seriesEverySecond([]float64{600, 675, 525, 750, 800}))
	want := 142.52192813739223 // sqrt(mean(75^2, 150^2, 225^2, 50^2))
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("RMSSD = %v, ожидалось %v", got, want)
	}
}

func TestRMSSDSkipsGaps(t *testing.T) {
	// Пара 700 -> 800 разделена 8 секундами и не участвует в расчете
	series := seriesAt(
		[]time.Duration{0, time.Second, 2 * time.Second, 10 * time.Second, 11 * time.Second},
		[]float64{600, 650, 700, 800, 850},
	)
	got := RMSSD(series)
	if !almostEqual(got, 50, 1e-9) {
		t.Errorf("RMSSD = %v, ожидалось 50", got)
	}
}

func TestRMSSDBoundaryGap(t *testing.T) {
	// Ровно две секунды между ударами - пара еще учитывается
	series := seriesAt(
		[]time.Duration{0, 2 * time.Second},
		[]float64{600, 700},
	)
	if got := RMSSD(series); !almostEqual(got, 100, 1e-9) {
		t.Errorf("RMSSD = %v, ожидалось 100", got)
	}
}

func TestRMSSDShortSeries(t *testing.T) {
	if got := RMSSD(nil); got != 0 {
		t.Errorf("RMSSD(nil) = %v, ожидалось 0", got)
	}
	if got := RMSSD(seriesEverySecond([]float64{700})); got != 0 {
		t.Errorf("RMSSD одного удара = %v, ожидалось 0", got)
	}
}

func TestSDNN(t *testing.T) {
	got := SDNN(seriesEverySecond([]float64{600, 675, 525, 750, 800}))
	want := math.Sqrt(9850)
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("SDNN = %v, ожидалось %v", got, want)
	}
}

func TestSDNNExcludesImplausible(t *testing.T) {
	// 2500 мс отбрасывается, 2000 мс - еще нет
	withOutlier := seriesEverySecond([]float64{600, 675, 525, 750, 800, 2500})
	clean := seriesEverySecond([]float64{600, 675, 525, 750, 800})
	if got, want := SDNN(withOutlier), SDNN(clean); !almostEqual(got, want, 1e-9) {
		t.Errorf("SDNN с выбросом = %v, ожидалось %v", got, want)
	}

	boundary := seriesEverySecond([]float64{2000, 2000})
	if got := SDNN(boundary); got != 0 {
		t.Errorf("SDNN двух одинаковых значений = %v, ожидалось 0", got)
	}
}

func TestPNN50(t *testing.T) {
	// Разности 75, -150, 225, 50: ровно 50 не превышает порог
	got := PNN50(seriesEverySecond([]float64{600, 675, 525, 750, 800}))
	if !almostEqual(got, 0.75, 1e-12) {
		t.Errorf("pNN50 = %v, ожидалось 0.75", got)
	}
}

func TestPNN50AllBelowThreshold(t *testing.T) {
	// Ноль - законный результат pNN50, а не признак отсутствия данных
	got := PNN50(seriesEverySecond([]float64{700, 710, 700, 690}))
	if got != 0 {
		t.Errorf("pNN50 = %v, ожидалось 0", got)
	}
}

func TestEstimateUnknownMethod(t *testing.T) {
	if _, err := Estimate(seriesEverySecond([]float64{600, 700}), Method("SD1")); err == nil {
		t.Error("ожидалась ошибка для неизвестного метода")
	}
}

func TestMedianTimestamp(t *testing.T) {
	odd := []time.Time{
		testStart.Add(4 * time.Second),
		testStart,
		testStart.Add(2 * time.Second),
	}
	if got := medianTimestamp(odd); !got.Equal(testStart.Add(2 * time.Second)) {
		t.Errorf("медиана нечетной серии = %v", got)
	}

	even := []time.Time{
		testStart,
		testStart.Add(time.Second),
		testStart.Add(3 * time.Second),
		testStart.Add(10 * time.Second),
	}
	if got := medianTimestamp(even); !got.Equal(testStart.Add(2 * time.Second)) {
		t.Errorf("медиана четной серии = %v", got)
	}
}

func TestComputeWindowedHRV(t *testing.T) {
	windows := []Window{
		{Start: testStart, Beats: seriesEverySecond([]float64{600, 675, 525, 750, 800})},
		{Start: testStart.Add(time.Minute), Beats: seriesEverySecond([]float64{700})},
		{Start: testStart.Add(2 * time.Minute), Beats: nil},
	}

	values, timestamps, err := ComputeWindowedHRV(windows, MethodRMSSD)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(values) != 3 || len(timestamps) != 3 {
		t.Fatalf("длины результата %d и %d, ожидалось 3", len(values), len(timestamps))
	}
	if !almostEqual(values[0], 142.52192813739223, 1e-9) {
		t.Errorf("значение первого окна = %v", values[0])
	}
	if !timestamps[0].Equal(testStart.Add(2 * time.Second)) {
		t.Errorf("метка первого окна = %v", timestamps[0])
	}
	// Окна с одним ударом и пустые помечаются нулевой эпохой
	for i := 1; i < 3; i++ {
		if values[i] != 0 || !timestamps[i].Equal(epochSentinel) {
			t.Errorf("окно %d: значение %v, метка %v", i, values[i], timestamps[i])
		}
	}
}
