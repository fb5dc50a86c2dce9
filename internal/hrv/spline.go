package hrv

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/interp"

	"hrv-service/pkg/utils"
)

// InterpolateWithSplines восстанавливает удаленные фильтрами измерения
// натуральным кубическим сплайном, построенным по выжившей серии.
// Восстановление выполняется только для меток внутри временных границ
// выжившей серии (экстраполяция невозможна). При roundValues предсказания
// округляются до целого - RR-интервалы измеряются в целых миллисекундах.
// Предсказания вне диапазона [min, max] наблюдаемых значений отбрасываются.
// Возвращает объединенную серию, отсортированную по времени, а также
// все рассчитанные предсказания и метки, для которых они делались
// (до отбраковки) - для диагностики.
func InterpolateWithSplines(original, current BeatSeries, roundValues bool) (BeatSeries, []float64, []time.Time, error) {
	if len(current) < 2 {
		return nil, nil, nil, fmt.Errorf(
			"для интерполяции нужно не меньше двух выживших измерений, есть %d", len(current))
	}

	surviving := make(map[int64]bool, len(current))
	for _, b := range current {
		surviving[b.Timestamp.UnixNano()] = true
	}

	minTimestamp := current[0].Timestamp
	maxTimestamp := current[len(current)-1].Timestamp

	// Метки, удаленные фильтрами и лежащие внутри границ выжившей серии
	var removed []time.Time
	for _, b := range original {
		if surviving[b.Timestamp.UnixNano()] {
			continue
		}
		if b.Timestamp.Before(minTimestamp) || b.Timestamp.After(maxTimestamp) {
			continue
		}
		removed = append(removed, b.Timestamp)
	}
	if len(removed) == 0 {
		return current.Clone(), nil, nil, nil
	}

	xs := make([]float64, len(current))
	ys := make([]float64, len(current))
	for i, b := range current {
		xs[i] = float64(b.Timestamp.UnixNano())
		ys[i] = b.RR
	}

	var spline interp.NaturalCubic
	if err := spline.Fit(xs, ys); err != nil {
		return nil, nil, nil, fmt.Errorf("ошибка построения сплайна: %w", err)
	}

	predictions := make([]float64, len(removed))
	for i, t := range removed {
		v := spline.Predict(float64(t.UnixNano()))
		if roundValues {
			v = math.Round(v)
		}
		predictions[i] = v
	}

	// Предсказания не должны выходить за наблюдаемый диапазон значений
	values := current.Values()
	low, high := utils.Min(values), utils.Max(values)

	merged := current.Clone()
	for i, t := range removed {
		if predictions[i] < low || predictions[i] > high {
			continue
		}
		merged = append(merged, Beat{Timestamp: t, RR: predictions[i]})
	}
	merged = merged.SortByTimestamp()
	return merged, predictions, removed, nil
}
