package hrv

import (
	"fmt"
	"math"
	"time"
)

// ResultKind различает форму результата расчета
type ResultKind string

const (
	// ResultScalar - один показатель по всей серии
	ResultScalar ResultKind = "scalar"
	// ResultWindowed - последовательность показателей по окнам
	ResultWindowed ResultKind = "windowed"
)

// Result содержит результат расчета ВСР. Форма результата определяется
// полем Kind: для ResultScalar заполнено Scalar, для ResultWindowed -
// параллельные массивы Values и Timestamps.
type Result struct {
	Kind       ResultKind
	Scalar     float64
	Values     []float64
	Timestamps []time.Time
}

// isIntegerValued сообщает, все ли значения серии целочисленны.
// RR-интервалы с мониторов приходят в целых миллисекундах, и
// восстановленные сплайном значения тогда тоже округляются до целых.
func isIntegerValued(values []float64) bool {
	for _, v := range values {
		if v != math.Trunc(v) {
			return false
		}
	}
	return true
}

// Preprocess прогоняет серию через все этапы очистки в фиксированном
// порядке: починка сбоев часов, обрезка краев записи, подавление ударов
// после дыр, вейвлет-детекция аномалий с удалением окрестностей,
// ручные исключения и, по желанию, восстановление удаленного сплайном.
// Сплайн строится по выжившей серии, а восстанавливаются метки,
// удаленные после этапа подавления дыр: края записи и сами дыры
// не восстанавливаются никогда.
func Preprocess(series BeatSeries, p Params, group string, number int) (BeatSeries, error) {
	cleaned := RemoveNegativeTimestamps(series)
	cleaned = RemoveFirstAndLastIndices(cleaned, p.CutTimeFromStart, p.CutTimeBeforeFinish)
	cleaned = RemoveConsecutiveBeatsAfterHoles(
		cleaned, p.ThresholdForHoleDuration, p.TimeAfterHoleForRemoving)

	// Отсюда удаленные измерения - кандидаты на восстановление сплайном
	recoverable := cleaned.Clone()

	if len(cleaned) > 1 {
		_, anomalies := DetectAnomalies(cleaned.Values())
		cleaned = RemoveAdjacentBeats(cleaned, anomalies, p.AdjacentBeatsForRemoving)
	}

	cleaned, err := RemoveManualAnomalies(cleaned, group, number)
	if err != nil {
		return nil, fmt.Errorf("ошибка применения ручных исключений: %w", err)
	}

	if p.Interpolation {
		round := isIntegerValued(recoverable.Values())
		merged, _, _, err := InterpolateWithSplines(recoverable, cleaned, round)
		if err != nil {
			return nil, fmt.Errorf("ошибка интерполяции: %w", err)
		}
		cleaned = merged
	}
	return cleaned, nil
}

// ComputeWindowed рассчитывает показатель ВСР по окнам очищенной серии:
// нарезка на окна, схлопывание дубликатов, расчет в каждом окне и
// фильтрация окон, для которых показатель не рассчитан
func ComputeWindowed(series BeatSeries, p Params) (Result, error) {
	windows, err := SliceWindows(series, p.StepFrequency, p.WindowSize)
	if err != nil {
		return Result{}, err
	}
	windows = DeduplicateWindows(windows)

	values, timestamps, err := ComputeWindowedHRV(windows, p.Method)
	if err != nil {
		return Result{}, err
	}
	values, timestamps = FilterMissingData(values, timestamps, p.Method)

	return Result{
		Kind:       ResultWindowed,
		Values:     values,
		Timestamps: timestamps,
	}, nil
}

// ComputeFull рассчитывает один показатель по всей очищенной серии
func ComputeFull(series BeatSeries, p Params) (Result, error) {
	v, err := Estimate(series, p.Method)
	if err != nil {
		return Result{}, err
	}
	return Result{Kind: ResultScalar, Scalar: v}, nil
}

// Run выполняет полный пайплайн: проверка параметров, очистка серии
// и расчет показателя в выбранном режиме
func Run(series BeatSeries, p Params, group string, number int) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	cleaned, err := Preprocess(series, p, group, number)
	if err != nil {
		return Result{}, err
	}

	switch p.SequenceRange {
	case SequenceFull:
		return ComputeFull(cleaned, p)
	default:
		return ComputeWindowed(cleaned, p)
	}
}
