package hrv

import (
	"math"
	"sort"
	"time"

	"hrv-service/pkg/utils"
)

// maxPlausibleRR - RR-интервалы длиннее 2000 мс физиологически
// неправдоподобны и исключаются из расчета SDNN и pNN50
const maxPlausibleRR = 2000.0

// maxSuccessiveGap - пары ударов, разделенные более чем 2 секундами,
// не считаются последовательными при расчете RMSSD
const maxSuccessiveGap = 2 * time.Second

// epochSentinel помечает окна, для которых показатель не рассчитан
// (меньше двух измерений в окне)
var epochSentinel = time.Unix(0, 0).UTC()

// RMSSD вычисляет корень из среднего квадрата разностей последовательных
// RR-интервалов. Разности между ударами, разделенными дырой в записи
// (больше 2 секунд), не учитываются. Для серий короче двух измерений
// возвращается 0.
func RMSSD(series BeatSeries) float64 {
	if len(series) <= 1 {
		return 0
	}

	var squares []float64
	for i := 1; i < len(series); i++ {
		if series[i].Timestamp.Sub(series[i-1].Timestamp) > maxSuccessiveGap {
			continue
		}
		d := series[i].RR - series[i-1].RR
		squares = append(squares, d*d)
	}
	if len(squares) == 0 {
		return 0
	}
	return math.Sqrt(utils.Mean(squares))
}

// SDNN вычисляет стандартное отклонение RR-интервалов (нормировка на N).
// Значения больше 2000 мс исключаются. Для серий короче двух измерений
// возвращается 0.
func SDNN(series BeatSeries) float64 {
	if len(series) <= 1 {
		return 0
	}

	var values []float64
	for _, b := range series {
		if b.RR > maxPlausibleRR {
			continue
		}
		values = append(values, b.RR)
	}
	if len(values) == 0 {
		return 0
	}
	return utils.StdPop(values)
}

// PNN50 вычисляет долю пар соседних RR-интервалов, отличающихся более
// чем на 50 мс. Значения больше 2000 мс исключаются до расчета разностей.
// Для серий короче двух измерений возвращается 0.
func PNN50(series BeatSeries) float64 {
	if len(series) <= 1 {
		return 0
	}

	var values []float64
	for _, b := range series {
		if b.RR > maxPlausibleRR {
			continue
		}
		values = append(values, b.RR)
	}
	diffs := utils.Diff(values)
	if len(diffs) == 0 {
		return 0
	}

	over := 0
	for _, d := range diffs {
		if utils.Abs(d) > 50 {
			over++
		}
	}
	return float64(over) / float64(len(diffs))
}

// Estimate применяет к серии показатель вариабельности, выбранный методом
func Estimate(series BeatSeries, method Method) (float64, error) {
	switch method {
	case MethodRMSSD:
		return RMSSD(series), nil
	case MethodSDNN:
		return SDNN(series), nil
	case MethodPNN50:
		return PNN50(series), nil
	default:
		return 0, errUnknownMethod(method)
	}
}

// medianTimestamp возвращает медианную метку времени: средний элемент
// отсортированных меток при нечетной длине, середину между двумя
// центральными при четной
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

// ComputeWindowedHRV рассчитывает показатель вариабельности в каждом окне.
// Каждому окну соответствует одно значение и одна метка времени - медиана
// меток попавших в окно измерений. Окна с числом измерений меньше двух
// получают нулевое значение и нулевую метку эпохи, чтобы позиции в
// результате соответствовали окнам один к одному.
func ComputeWindowedHRV(windows []Window, method Method) ([]float64, []time.Time, error) {
	values := make([]float64, len(windows))
	timestamps := make([]time.Time, len(windows))

	for i, w := range windows {
		if len(w.Beats) <= 1 {
			values[i] = 0
			timestamps[i] = epochSentinel
			continue
		}
		v, err := Estimate(w.Beats, method)
		if err != nil {
			return nil, nil, err
		}
		values[i] = v
		timestamps[i] = medianTimestamp(w.Beats.Timestamps())
	}
	return values, timestamps, nil
}
