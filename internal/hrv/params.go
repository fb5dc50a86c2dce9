package hrv

import (
	"fmt"
	"time"
)

// Method задает способ расчета ВСР
type Method string

const (
	MethodRMSSD Method = "RMSSD"
	MethodSDNN  Method = "SDNN"
	MethodPNN50 Method = "pNN50"
)

// SequenceRange задает режим расчета: по окнам или по всей серии
type SequenceRange string

const (
	SequenceWindows SequenceRange = "windows"
	SequenceFull    SequenceRange = "full"
)

// Группы испытуемых
const (
	GroupTreatment = "treatment"
	GroupControl   = "control"
)

// Params содержит все параметры пайплайна. Параметры передаются явно
// по цепочке вызовов, глобального состояния нет.
type Params struct {
	SequenceRange SequenceRange
	Method        Method
	StepFrequency time.Duration
	WindowSize    time.Duration

	AdjacentBeatsForRemoving time.Duration
	ThresholdForHoleDuration time.Duration
	TimeAfterHoleForRemoving time.Duration
	CutTimeFromStart         time.Duration
	CutTimeBeforeFinish      time.Duration
	Interpolation            bool
}

// Validate проверяет конфигурацию и сразу возвращает ошибку
// при недопустимых сочетаниях параметров
func (p Params) Validate() error {
	switch p.Method {
	case MethodRMSSD, MethodSDNN, MethodPNN50:
	default:
		return errUnknownMethod(p.Method)
	}
	switch p.SequenceRange {
	case SequenceWindows:
		// Шаг не может быть больше размера окна, иначе часть данных
		// будет потеряна
		if p.StepFrequency > p.WindowSize {
			return fmt.Errorf(
				"шаг %v больше размера окна %v", p.StepFrequency, p.WindowSize)
		}
	case SequenceFull:
		if p.Method != MethodRMSSD {
			return fmt.Errorf(
				"режим %q поддерживает только метод RMSSD", p.SequenceRange)
		}
	default:
		return fmt.Errorf("неизвестный режим расчета: %q", p.SequenceRange)
	}
	return nil
}

func errUnknownMethod(m Method) error {
	return fmt.Errorf("неизвестный метод расчета ВСР: %q", m)
}

// ValidateGroup проверяет название группы испытуемых
func ValidateGroup(group string) error {
	if group != GroupTreatment && group != GroupControl {
		return fmt.Errorf("неизвестная группа: %q", group)
	}
	return nil
}
