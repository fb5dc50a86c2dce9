package hrv

import (
	"math"
	"testing"
)

var waveletSignal = []float64{
	800, 810, 805, 795, 790, 1500, 800, 805, 810, 800, 795, 790, 800, 805,
}

func TestDWTLengths(t *testing.T) {
	approx, detail := DWT(waveletSignal)
	// floor((14 + 10 - 1) / 2) = 11
	if len(approx) != 11 || len(detail) != 11 {
		t.Fatalf("длины %d и %d, ожидалось 11", len(approx), len(detail))
	}
}

func TestDWTDetailCoefficients(t *testing.T) {
	_, detail := DWT(waveletSignal)
	want := []float64{
		7.416289804496046e-14,
		-3.453855117861041,
		-110.98364586628254,
		-511.54169910268104,
		172.82807723622437,
		-53.10622239437092,
		13.813295546456317,
		-2.2460215787030062,
		0.6454330566867941,
		-0.04622513356805369,
		2.3092638912203256e-14,
	}
	for i := range want {
		if math.Abs(detail[i]-want[i]) > 1e-8 {
			t.Errorf("detail[%d] = %v, ожидалось %v", i, detail[i], want[i])
		}
	}
}

func TestDb5FiltersProperties(t *testing.T) {
	low, high := db5Filters()
	if len(low) != 10 || len(high) != 10 {
		t.Fatalf("длины фильтров %d и %d, ожидалось 10", len(low), len(high))
	}

	sum := 0.0
	norm := 0.0
	for _, c := range low {
		sum += c
		norm += c * c
	}
	if math.Abs(sum-math.Sqrt2) > 1e-12 {
		t.Errorf("сумма коэффициентов %v, ожидалось sqrt(2)", sum)
	}
	if math.Abs(norm-1) > 1e-12 {
		t.Errorf("норма фильтра %v, ожидалось 1", norm)
	}

	// Высокочастотный фильтр ортогонален низкочастотному
	dot := 0.0
	for i := range low {
		dot += low[i] * high[i]
	}
	if math.Abs(dot) > 1e-12 {
		t.Errorf("скалярное произведение фильтров %v, ожидалось 0", dot)
	}
}

func TestDetectAnomalies(t *testing.T) {
	detail, indices := DetectAnomalies(waveletSignal)

	noise := 0.0
	for _, d := range detail {
		noise += d * d
	}
	noise /= float64(len(detail))
	if math.Abs(noise-27899.1176628505) > 1e-6 {
		t.Errorf("оценка шума %v", noise)
	}

	// Порог превышает только коэффициент с индексом 3,
	// который отображается во входной индекс 6
	if len(indices) != 1 || indices[0] != 6 {
		t.Errorf("индексы аномалий %v, ожидалось [6]", indices)
	}
}

func TestDetectAnomaliesFlatSignal(t *testing.T) {
	flat := make([]float64, 20)
	for i := range flat {
		flat[i] = 800
	}
	if _, indices := DetectAnomalies(flat); len(indices) != 0 {
		t.Errorf("на ровном сигнале найдены аномалии: %v", indices)
	}
}

func TestExtendSmooth(t *testing.T) {
	signal := []float64{10, 12, 14}
	cases := []struct {
		i    int
		want float64
	}{
		{-2, 6}, // линейное продолжение наклона слева
		{-1, 8},
		{0, 10},
		{2, 14},
		{3, 16}, // линейное продолжение наклона справа
		{4, 18},
	}
	for _, c := range cases {
		if got := extendSmooth(signal, c.i); got != c.want {
			t.Errorf("extendSmooth(%d) = %v, ожидалось %v", c.i, got, c.want)
		}
	}
}
