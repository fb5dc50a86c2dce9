package hrv

import (
	"reflect"
	"testing"
	"time"
)

func beatsAtClock(day time.Time, clocks []string, values []float64) BeatSeries {
	series := make(BeatSeries, len(clocks))
	for i, c := range clocks {
		parsed, err := time.Parse("15:04:05", c)
		if err != nil {
			panic(err)
		}
		series[i] = Beat{
			Timestamp: day.Add(time.Duration(parsed.Hour())*time.Hour +
				time.Duration(parsed.Minute())*time.Minute +
				time.Duration(parsed.Second())*time.Second),
			RR: values[i],
		}
	}
	return series
}

func TestRemoveManualAnomaliesOpenEndedRule(t *testing.T) {
	day := time.Date(2023, 5, 12, 0, 0, 0, 0, time.UTC)
	// У control 1 первое правило открыто слева: все до 10:01:35
	// включительно удаляется, вместе со следующим соседом
	series := beatsAtClock(day,
		[]string{"10:01:30", "10:01:33", "10:01:36", "10:01:38", "10:01:40"},
		[]float64{600, 610, 620, 630, 640},
	)

	got, err := RemoveManualAnomalies(series, GroupControl, 1)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	want := []float64{630, 640}
	if !reflect.DeepEqual(got.Values(), want) {
		t.Errorf("осталось %v, ожидалось %v", got.Values(), want)
	}
}

func TestRemoveManualAnomaliesIntervalRule(t *testing.T) {
	day := time.Date(2023, 5, 12, 0, 0, 0, 0, time.UTC)
	// Правило control 1: интервал 10:04:50 - 10:05:00, границы включаются.
	// Помеченные удары тянут за собой соседей слева и справа.
	series := beatsAtClock(day,
		[]string{"10:04:40", "10:04:45", "10:04:50", "10:05:00", "10:05:05", "10:05:10"},
		[]float64{600, 610, 620, 630, 640, 650},
	)

	got, err := RemoveManualAnomalies(series, GroupControl, 1)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	want := []float64{600, 650}
	if !reflect.DeepEqual(got.Values(), want) {
		t.Errorf("осталось %v, ожидалось %v", got.Values(), want)
	}
}

func TestRemoveManualAnomaliesUnknownSubject(t *testing.T) {
	series := seriesEverySecond([]float64{600, 610, 620})
	got, err := RemoveManualAnomalies(series, GroupControl, 999)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !reflect.DeepEqual(got.Values(), series.Values()) {
		t.Errorf("серия изменилась для испытуемого без правил: %v", got.Values())
	}
}

func TestRemoveManualAnomaliesBadGroup(t *testing.T) {
	if _, err := RemoveManualAnomalies(nil, "placebo", 1); err == nil {
		t.Error("ожидалась ошибка для неизвестной группы")
	}
}

func TestParseClockFractionalSeconds(t *testing.T) {
	got, err := parseClock("13:20:50.8")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	want := 13*time.Hour + 20*time.Minute + 50*time.Second + 800*time.Millisecond
	if got != want {
		t.Errorf("parseClock = %v, ожидалось %v", got, want)
	}
}
