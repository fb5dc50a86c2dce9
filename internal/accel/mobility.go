package accel

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// DefaultGravitySigma - стандартное отклонение гауссова фильтра
// (в отсчетах) для оценки гравитационной составляющей
const DefaultGravitySigma = 1001.0

// Sample представляет одно измерение акселерометра по трем осям, в мг
type Sample struct {
	Timestamp time.Time
	X         float64
	Y         float64
	Z         float64
}

// SampleSeries представляет упорядоченную серию измерений акселерометра
type SampleSeries []Sample

// Timestamps возвращает временные метки серии
func (s SampleSeries) Timestamps() []time.Time {
	timestamps := make([]time.Time, len(s))
	for i, m := range s {
		timestamps[i] = m.Timestamp
	}
	return timestamps
}

// axes возвращает значения серии по осям тремя массивами
func (s SampleSeries) axes() (x, y, z []float64) {
	x = make([]float64, len(s))
	y = make([]float64, len(s))
	z = make([]float64, len(s))
	for i, m := range s {
		x[i], y[i], z[i] = m.X, m.Y, m.Z
	}
	return x, y, z
}

// reflectIndex отражает индекс от границ массива (граничный режим
// "reflect": d c b a | a b c d | d c b a)
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i
}

// gaussianSmooth сглаживает сигнал гауссовым фильтром с заданным
// стандартным отклонением. Ядро обрезается на четырех сигмах.
func gaussianSmooth(values []float64, sigma float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	radius := int(4.0*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for k := -radius; k <= radius; k++ {
		v := math.Exp(-float64(k*k) / (2 * sigma * sigma))
		kernel[k+radius] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	out := make([]float64, len(values))
	for i := range values {
		acc := 0.0
		for k := -radius; k <= radius; k++ {
			acc += kernel[k+radius] * values[reflectIndex(i+k, len(values))]
		}
		out[i] = acc
	}
	return out
}

// Mobility раскладывает сигнал акселерометра на гравитационную и
// двигательную составляющие. Гравитация оценивается низкочастотным
// гауссовым фильтром по каждой оси; возвращаются модуль оценки гравитации
// и модуль остатка (собственно подвижность), оба в мг.
func (s SampleSeries) Mobility(sigma float64) (earth, movement []float64) {
	x, y, z := s.axes()
	xe := gaussianSmooth(x, sigma)
	ye := gaussianSmooth(y, sigma)
	ze := gaussianSmooth(z, sigma)

	earth = make([]float64, len(s))
	movement = make([]float64, len(s))
	for i := range s {
		earth[i] = math.Sqrt(xe[i]*xe[i] + ye[i]*ye[i] + ze[i]*ze[i])
		dx, dy, dz := x[i]-xe[i], y[i]-ye[i], z[i]-ze[i]
		movement[i] = math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	return earth, movement
}

// Window представляет временное окно с попавшими в него измерениями
type Window struct {
	Start   time.Time
	Samples SampleSeries
}

// SliceWindows делит серию измерений акселерометра на окна длиной window
// с шагом step, обе границы окна включаются. Семантика окон совпадает
// с нарезкой RR-интервалов, чтобы ряды были сопоставимы по времени.
func SliceWindows(series SampleSeries, step, window time.Duration) ([]Window, error) {
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
		var samples SampleSeries
		for _, m := range series {
			if !m.Timestamp.Before(start) && !m.Timestamp.After(end) {
				samples = append(samples, m)
			}
		}
		windows = append(windows, Window{Start: start, Samples: samples})
	}
	return windows, nil
}

// MeanMobility рассчитывает среднюю подвижность в каждом непустом окне.
// Каждому окну соответствует медианная метка времени его измерений.
// Пустые окна пропускаются.
func MeanMobility(windows []Window, sigma float64) ([]float64, []time.Time) {
	var values []float64
	var timestamps []time.Time
	for _, w := range windows {
		if len(w.Samples) == 0 {
			continue
		}
		_, movement := w.Samples.Mobility(sigma)
		values = append(values, stat.Mean(movement, nil))
		timestamps = append(timestamps, medianTimestamp(w.Samples.Timestamps()))
	}
	return values, timestamps
}

// medianTimestamp возвращает медианную метку времени
func medianTimestamp(timestamps []time.Time) time.Time {
	sorted := make([]time.Time, len(timestamps))
	copy(sorted, timestamps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	a, b := sorted[n/2-1], sorted[n/2]
	return a.Add(b.Sub(a) / 2)
}

// NearestTimestamp возвращает метку из массива, ближайшую по времени
// к заданной. Массив должен быть непустым.
func NearestTimestamp(timestamps []time.Time, value time.Time) time.Time {
	best := timestamps[0]
	bestDistance := absDuration(timestamps[0].Sub(value))
	for _, t := range timestamps[1:] {
		if d := absDuration(t.Sub(value)); d < bestDistance {
			best = t
			bestDistance = d
		}
	}
	return best
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// AlignTimestamps заменяет каждую метку ряда ВСР на ближайшую метку
// ряда подвижности, чтобы оба ряда можно было сопоставить поточечно
func AlignTimestamps(hrvTimestamps, mobilityTimestamps []time.Time) []time.Time {
	aligned := make([]time.Time, len(hrvTimestamps))
	for i, t := range hrvTimestamps {
		aligned[i] = NearestTimestamp(mobilityTimestamps, t)
	}
	return aligned
}

// Correlate вычисляет коэффициент корреляции Пирсона между рядами
// ВСР и подвижности. Ряды должны быть одной длины.
func Correlate(hrvValues, mobilityValues []float64) (float64, error) {
	if len(hrvValues) != len(mobilityValues) {
		return 0, fmt.Errorf(
			"ряды разной длины: %d и %d", len(hrvValues), len(mobilityValues))
	}
	if len(hrvValues) < 2 {
		return 0, fmt.Errorf("для корреляции нужно не меньше двух точек")
	}
	return stat.Correlation(hrvValues, mobilityValues, nil), nil
}
