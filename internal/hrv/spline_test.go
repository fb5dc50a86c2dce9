package hrv

import (
	"math"
	"testing"
	"time"
)

func TestInterpolateWithSplinesLinearSeries(t *testing.T) {
	// Выжившая серия лежит на прямой: натуральный кубический сплайн
	// восстанавливает удаленную точку точно на прямой
	original := seriesAt(
		offsets(0, 1, 2, 3, 4, 5),
		[]float64{600, 610, 1500, 630, 640, 650},
	)
	current := seriesAt(
		offsets(0, 1, 3, 4, 5),
		[]float64{600, 610, 630, 640, 650},
	)

	merged, predictions, removed, err := InterpolateWithSplines(original, current, true)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if len(removed) != 1 || !removed[0].Equal(testStart.Add(2*time.Second)) {
		t.Fatalf("восстанавливаемые метки %v", removed)
	}
	if len(predictions) != 1 || math.Abs(predictions[0]-620) > 1e-9 {
		t.Fatalf("предсказания %v, ожидалось [620]", predictions)
	}

	if len(merged) != 6 {
		t.Fatalf("длина объединенной серии %d, ожидалось 6", len(merged))
	}
	// Серия отсортирована, восстановленная точка на своем месте
	for i := 1; i < len(merged); i++ {
		if merged[i].Timestamp.Before(merged[i-1].Timestamp) {
			t.Fatalf("объединенная серия не отсортирована: %v", merged.Timestamps())
		}
	}
	if merged[2].RR != 620 {
		t.Errorf("восстановленное значение %v, ожидалось 620", merged[2].RR)
	}
}

func TestInterpolateWithSplinesSkipsOutOfBounds(t *testing.T) {
	// Метки за пределами выжившей серии не восстанавливаются:
	// экстраполяция запрещена
	original := seriesAt(
		offsets(0, 1, 2, 3, 4),
		[]float64{600, 610, 620, 630, 640},
	)
	current := seriesAt(
		offsets(1, 2, 3),
		[]float64{610, 620, 630},
	)

	merged, predictions, removed, err := InterpolateWithSplines(original, current, true)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(removed) != 0 || len(predictions) != 0 {
		t.Errorf("восстанавливаемые метки %v, ожидалась пустота", removed)
	}
	if len(merged) != 3 {
		t.Errorf("длина серии %d, ожидалось 3", len(merged))
	}
}

func TestInterpolateWithSplinesRejectsOutOfRange(t *testing.T) {
	// Предсказание за пределами диапазона наблюдаемых значений
	// не включается в объединенную серию
	original := seriesAt(
		offsets(0, 1, 2, 3, 4, 5, 6),
		[]float64{600, 400, 0, 1200, 0, 500, 610},
	)
	current := seriesAt(
		offsets(0, 1, 3, 5, 6),
		[]float64{600, 400, 1200, 500, 610},
	)

	merged, predictions, removed, err := InterpolateWithSplines(original, current, false)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(removed) != 2 || len(predictions) != 2 {
		t.Fatalf("восстанавливаемых меток %d, ожидалось 2", len(removed))
	}

	low, high := 400.0, 1200.0
	for _, b := range merged {
		if b.RR < low || b.RR > high {
			t.Errorf("в серию попало значение %v вне диапазона [%v, %v]", b.RR, low, high)
		}
	}
}

func TestInterpolateWithSplinesTooFewSurvivors(t *testing.T) {
	original := seriesEverySecond([]float64{600, 610, 620})
	current := seriesEverySecond([]float64{600})
	if _, _, _, err := InterpolateWithSplines(original, current, false); err == nil {
		t.Error("ожидалась ошибка при одной выжившей точке")
	}
}
