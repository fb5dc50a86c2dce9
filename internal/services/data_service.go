package services

import (
	"fmt"
	"log"
	"time"

	"hrv-service/internal/accel"
	"hrv-service/internal/hrv"
	"hrv-service/internal/models"

	"gorm.io/gorm"
)

// DataService отвечает за работу с данными записей
type DataService struct {
	db *gorm.DB
}

// NewDataService создает новый сервис для работы с данными
func NewDataService(db *gorm.DB) *DataService {
	return &DataService{db: db}
}

// GetRecording находит запись испытуемого по группе и номеру
func (ds *DataService) GetRecording(group string, number int) (*models.Recording, error) {
	var recording models.Recording
	err := ds.db.Where(`"group" = ? AND number = ?`, group, number).
		Order("start_time DESC").
		First(&recording).Error
	if err != nil {
		return nil, fmt.Errorf("запись для испытуемого %s %d не найдена: %w", group, number, err)
	}
	return &recording, nil
}

// LoadBeatSeries загружает серию RR-интервалов испытуемого. Время каждой
// точки хранится в секундах от начала записи и переводится в абсолютные
// метки через время старта.
func (ds *DataService) LoadBeatSeries(group string, number int) (hrv.BeatSeries, *models.Recording, error) {
	recording, err := ds.GetRecording(group, number)
	if err != nil {
		return nil, nil, err
	}

	log.Printf("Запись %s: RR точек %d, ACC точек %d",
		recording.ID, recording.RRData.Count, recording.AccData.Count)

	series := make(hrv.BeatSeries, 0, len(recording.RRData.Points))
	for _, p := range recording.RRData.Points {
		series = append(series, hrv.Beat{
			Timestamp: recording.StartTime.Add(secondsToDuration(p.T)),
			RR:        p.V,
		})
	}
	if len(series) == 0 {
		return nil, nil, fmt.Errorf("запись %s не содержит RR-интервалов", recording.ID)
	}
	return series, recording, nil
}

// LoadSampleSeries загружает серию измерений акселерометра испытуемого
func (ds *DataService) LoadSampleSeries(group string, number int) (accel.SampleSeries, *models.Recording, error) {
	recording, err := ds.GetRecording(group, number)
	if err != nil {
		return nil, nil, err
	}

	series := make(accel.SampleSeries, 0, len(recording.AccData.Points))
	for _, p := range recording.AccData.Points {
		series = append(series, accel.Sample{
			Timestamp: recording.StartTime.Add(secondsToDuration(p.T)),
			X:         p.X,
			Y:         p.Y,
			Z:         p.Z,
		})
	}
	if len(series) == 0 {
		return nil, nil, fmt.Errorf("запись %s не содержит данных акселерометра", recording.ID)
	}
	return series, recording, nil
}

// SaveResult сохраняет результат расчета ВСР
func (ds *DataService) SaveResult(result *models.HRVResult) error {
	if err := ds.db.Create(result).Error; err != nil {
		return fmt.Errorf("ошибка сохранения результата: %w", err)
	}
	return nil
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
