package hrv

import "time"

// missingValueThreshold - значения показателя ниже этого порога считаются
// нерассчитанными (окно содержало меньше двух измерений)
const missingValueThreshold = 1e-8

// FilterMissingData убирает позиции, для которых показатель не был
// рассчитан: нулевые значения (кроме метода pNN50, где ноль - законный
// результат) и позиции с нулевой меткой эпохи. Массивы значений и меток
// должны быть одной длины, фильтруются они согласованно.
func FilterMissingData(values []float64, timestamps []time.Time, method Method) ([]float64, []time.Time) {
	missing := make(map[int]bool)
	if method != MethodPNN50 {
		for i, v := range values {
			if v < missingValueThreshold {
				missing[i] = true
			}
		}
	}
	for i, t := range timestamps {
		if t.Equal(epochSentinel) {
			missing[i] = true
		}
	}

	outValues := make([]float64, 0, len(values))
	outTimestamps := make([]time.Time, 0, len(timestamps))
	for i := range values {
		if missing[i] {
			continue
		}
		outValues = append(outValues, values[i])
		outTimestamps = append(outTimestamps, timestamps[i])
	}
	return outValues, outTimestamps
}
