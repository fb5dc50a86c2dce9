package accel

import (
	"math"
	"testing"
	"time"
)

var testStart = time.Date(2023, 5, 12, 10, 0, 0, 0, time.UTC)

func samplesEverySecond(n int, fn func(i int) (x, y, z float64)) SampleSeries {
	series := make(SampleSeries, n)
	for i := 0; i < n; i++ {
		x, y, z := fn(i)
		series[i] = Sample{
			Timestamp: testStart.Add(time.Duration(i) * time.Second),
			X:         x, Y: y, Z: z,
		}
	}
	return series
}

func TestReflectIndex(t *testing.T) {
	cases := []struct {
		i, n, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{-1, 5, 0},
		{-2, 5, 1},
		{5, 5, 4},
		{6, 5, 3},
		{-6, 5, 4},
		{12, 5, 2},
		{3, 1, 0},
	}
	for _, c := range cases {
		if got := reflectIndex(c.i, c.n); got != c.want {
			t.Errorf("reflectIndex(%d, %d) = %d, ожидалось %d", c.i, c.n, got, c.want)
		}
	}
}

func TestGaussianSmoothConstant(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = 981
	}
	smoothed := gaussianSmooth(values, 3)
	for i, v := range smoothed {
		if math.Abs(v-981) > 1e-9 {
			t.Fatalf("сглаженное значение [%d] = %v, ожидалось 981", i, v)
		}
	}
}

func TestGaussianSmoothPreservesMassCenter(t *testing.T) {
	// Гауссово ядро нормировано: сглаживание не меняет сумму
	// постоянного сигнала и остается в пределах [min, max]
	values := []float64{0, 0, 0, 0, 100, 0, 0, 0, 0}
	smoothed := gaussianSmooth(values, 1)
	for i, v := range smoothed {
		if v < 0 || v > 100 {
			t.Errorf("сглаженное значение [%d] = %v вне [0, 100]", i, v)
		}
	}
	if smoothed[4] <= smoothed[0] {
		t.Error("пик сигнала не сохранился после сглаживания")
	}
}

func TestMobilityStationary(t *testing.T) {
	// Неподвижный датчик: вся величина сигнала уходит в гравитацию,
	// подвижность нулевая
	series := samplesEverySecond(100, func(i int) (float64, float64, float64) {
		return 0, 0, 1000
	})
	earth, movement := series.Mobility(5)
	for i := range series {
		if math.Abs(earth[i]-1000) > 1e-9 {
			t.Fatalf("гравитация [%d] = %v, ожидалось 1000", i, earth[i])
		}
		if math.Abs(movement[i]) > 1e-9 {
			t.Fatalf("подвижность [%d] = %v, ожидалось 0", i, movement[i])
		}
	}
}

func TestSliceWindowsStepLargerThanWindow(t *testing.T) {
	series := samplesEverySecond(10, func(i int) (float64, float64, float64) {
		return 0, 0, 1000
	})
	if _, err := SliceWindows(series, time.Minute, time.Second); err == nil {
		t.Error("ожидалась ошибка при шаге больше окна")
	}
}

func TestMeanMobilitySkipsEmptyWindows(t *testing.T) {
	// Два куска данных с дырой между ними: окна внутри дыры пустые
	// и не попадают в результат
	series := SampleSeries{
		{Timestamp: testStart, Z: 1000},
		{Timestamp: testStart.Add(time.Second), Z: 1000},
		{Timestamp: testStart.Add(200 * time.Second), Z: 1000},
	}
	windows, err := SliceWindows(series, 10*time.Second, 10*time.Second)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	values, timestamps := MeanMobility(windows, 3)
	if len(values) != len(timestamps) {
		t.Fatalf("длины значений и меток расходятся: %d и %d", len(values), len(timestamps))
	}
	for i, ts := range timestamps {
		if ts.Before(testStart) {
			t.Errorf("метка [%d] = %v раньше начала данных", i, ts)
		}
	}
	// Неподвижный датчик: средняя подвижность каждого окна около нуля
	for i, v := range values {
		if math.Abs(v) > 1e-9 {
			t.Errorf("подвижность окна %d = %v, ожидалось 0", i, v)
		}
	}
}

func TestNearestTimestamp(t *testing.T) {
	timestamps := []time.Time{
		testStart,
		testStart.Add(10 * time.Second),
		testStart.Add(20 * time.Second),
	}
	got := NearestTimestamp(timestamps, testStart.Add(12*time.Second))
	if !got.Equal(testStart.Add(10 * time.Second)) {
		t.Errorf("ближайшая метка %v", got)
	}
	got = NearestTimestamp(timestamps, testStart.Add(-time.Hour))
	if !got.Equal(testStart) {
		t.Errorf("ближайшая метка %v", got)
	}
}

func TestAlignTimestamps(t *testing.T) {
	mobility := []time.Time{
		testStart,
		testStart.Add(time.Minute),
	}
	hrv := []time.Time{
		testStart.Add(5 * time.Second),
		testStart.Add(50 * time.Second),
	}
	aligned := AlignTimestamps(hrv, mobility)
	if !aligned[0].Equal(testStart) || !aligned[1].Equal(testStart.Add(time.Minute)) {
		t.Errorf("выровненные метки %v", aligned)
	}
}

func TestCorrelate(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}
	r, err := Correlate(x, y)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if math.Abs(r-1) > 1e-12 {
		t.Errorf("корреляция = %v, ожидалось 1", r)
	}

	inverse := []float64{10, 8, 6, 4, 2}
	r, err = Correlate(x, inverse)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if math.Abs(r+1) > 1e-12 {
		t.Errorf("корреляция = %v, ожидалось -1", r)
	}
}

func TestCorrelateLengthMismatch(t *testing.T) {
	if _, err := Correlate([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("ожидалась ошибка для рядов разной длины")
	}
}
