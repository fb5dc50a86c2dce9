package hrv

import (
	"reflect"
	"testing"
	"time"
)

func TestFilterMissingDataRMSSD(t *testing.T) {
	values := []float64{45.2, 0, 38.7, 1e-9}
	timestamps := []time.Time{
		testStart,
		testStart.Add(time.Minute),
		testStart.Add(2 * time.Minute),
		testStart.Add(3 * time.Minute),
	}

	gotValues, gotTimestamps := FilterMissingData(values, timestamps, MethodRMSSD)
	if !reflect.DeepEqual(gotValues, []float64{45.2, 38.7}) {
		t.Errorf("значения %v", gotValues)
	}
	if len(gotTimestamps) != 2 || !gotTimestamps[1].Equal(testStart.Add(2*time.Minute)) {
		t.Errorf("метки %v", gotTimestamps)
	}
}

func TestFilterMissingDataPNN50KeepsZeros(t *testing.T) {
	// Для pNN50 ноль - валидный результат, удаляются только позиции
	// с нулевой меткой эпохи
	values := []float64{0, 0.25, 0}
	timestamps := []time.Time{
		testStart,
		epochSentinel,
		testStart.Add(2 * time.Minute),
	}

	gotValues, gotTimestamps := FilterMissingData(values, timestamps, MethodPNN50)
	if !reflect.DeepEqual(gotValues, []float64{0, 0}) {
		t.Errorf("значения %v", gotValues)
	}
	if len(gotTimestamps) != 2 {
		t.Errorf("меток %d, ожидалось 2", len(gotTimestamps))
	}
}

func TestFilterMissingDataUnion(t *testing.T) {
	// Нулевое значение и нулевая метка на разных позициях:
	// удаляются обе позиции
	values := []float64{0, 50}
	timestamps := []time.Time{testStart, epochSentinel}

	gotValues, _ := FilterMissingData(values, timestamps, MethodSDNN)
	if len(gotValues) != 0 {
		t.Errorf("значения %v, ожидалась пустота", gotValues)
	}
}
