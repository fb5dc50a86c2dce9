package models

import (
	"time"

	"github.com/google/uuid"
)

// HRVResult сохраненный результат расчета ВСР для одной записи
type HRVResult struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecordingID uuid.UUID `json:"recording_id" gorm:"type:uuid;not null;index"`

	Method        string `json:"method" gorm:"type:varchar(20);not null"`
	SequenceRange string `json:"sequence_range" gorm:"type:varchar(20);not null"`
	Interpolation bool   `json:"interpolation"`

	// Для оконного режима - массив точек, для скалярного - одно значение
	Values HRVTimeSeries `json:"values" gorm:"serializer:json;type:jsonb"`
	Scalar *float64      `json:"scalar"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// HRVTimeSeries значения показателя с метками времени
type HRVTimeSeries struct {
	Points []HRVPoint `json:"points"`
	Count  int        `json:"count"`
}

// HRVPoint значение показателя в окне с медианной меткой времени окна
type HRVPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

func (HRVResult) TableName() string {
	return "hrv_results"
}
