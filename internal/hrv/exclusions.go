package hrv

import (
	"fmt"
	"time"
)

// ExclusionRule задает интервал времени суток, который по результатам
// визуального просмотра ЭКГ нужно исключить из записи испытуемого.
// Пустой From означает "от начала записи", пустой To - "до конца записи".
type ExclusionRule struct {
	From string
	To   string
}

// SubjectKey идентифицирует испытуемого: группа и номер в группе
type SubjectKey struct {
	Group  string
	Number int
}

// parseClock переводит время суток вида "13:37:42" в смещение от полуночи
func parseClock(value string) (time.Duration, error) {
	t, err := time.Parse("15:04:05", value)
	if err != nil {
		return 0, fmt.Errorf("неверный формат времени %q: %w", value, err)
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond()), nil
}

// clockOf возвращает время суток метки как смещение от полуночи
func clockOf(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

// matches сообщает, попадает ли метка в интервал правила (границы включительно)
func (r ExclusionRule) matches(t time.Time) (bool, error) {
	clock := clockOf(t)
	if r.From != "" {
		from, err := parseClock(r.From)
		if err != nil {
			return false, err
		}
		if clock < from {
			return false, nil
		}
	}
	if r.To != "" {
		to, err := parseClock(r.To)
		if err != nil {
			return false, err
		}
		if clock > to {
			return false, nil
		}
	}
	return true, nil
}

// RemoveManualAnomalies применяет таблицу ручных исключений для заданного
// испытуемого. Каждый помеченный удар удаляется вместе с предыдущим и
// следующим. Испытуемые, отсутствующие в таблице, проходят без изменений.
func RemoveManualAnomalies(series BeatSeries, group string, number int) (BeatSeries, error) {
	if err := ValidateGroup(group); err != nil {
		return nil, err
	}

	rules, ok := manualExclusions[SubjectKey{Group: group, Number: number}]
	if !ok {
		return series.Clone(), nil
	}

	var flagged []int
	for i, b := range series {
		for _, rule := range rules {
			match, err := rule.matches(b.Timestamp)
			if err != nil {
				return nil, err
			}
			if match {
				flagged = append(flagged, i)
				break
			}
		}
	}
	if len(flagged) == 0 {
		return series.Clone(), nil
	}

	toRemove, err := RemovePrecedingAndFollowingBeats(flagged, len(series))
	if err != nil {
		return nil, err
	}
	removeSet := make(map[int]bool, len(toRemove))
	for _, idx := range toRemove {
		removeSet[idx] = true
	}

	out := make(BeatSeries, 0, len(series))
	for i, b := range series {
		if !removeSet[i] {
			out = append(out, b)
		}
	}
	return out, nil
}
