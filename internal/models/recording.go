package models

import (
	"time"

	"github.com/google/uuid"
)

// Recording единая таблица для записей одного испытуемого: RR-интервалы
// с нагрудного датчика и данные акселерометра телефона
type Recording struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Group    string    `json:"group" gorm:"type:varchar(20);not null;index"`
	Number   int       `json:"number" gorm:"not null;index"`
	DeviceID string    `json:"device_id" gorm:"type:varchar(100);index"`

	StartTime time.Time  `json:"start_time" gorm:"not null;index"`
	EndTime   *time.Time `json:"end_time" gorm:"index"` // null пока запись активна

	// Данные как аппендабельные JSONB массивы
	RRData  RRTimeSeries  `json:"rr_data" gorm:"serializer:json;type:jsonb"`
	AccData AccTimeSeries `json:"acc_data" gorm:"serializer:json;type:jsonb"`
}

// RRTimeSeries оптимизированная структура для аппенда RR-интервалов
type RRTimeSeries struct {
	Points   []RRPoint `json:"points"`
	LastTime float64   `json:"last_time"` // Последняя временная отметка
	Count    int       `json:"count"`
}

// RRPoint одна точка данных: время в секундах от начала записи
// и RR-интервал в миллисекундах
type RRPoint struct {
	T float64 `json:"t"`
	V float64 `json:"v"`
}

// AccTimeSeries оптимизированная структура для аппенда данных акселерометра
type AccTimeSeries struct {
	Points   []AccPoint `json:"points"`
	LastTime float64    `json:"last_time"`
	Count    int        `json:"count"`
}

// AccPoint одна точка акселерометра: время в секундах от начала записи
// и ускорения по трем осям в мг
type AccPoint struct {
	T float64 `json:"t"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (Recording) TableName() string {
	return "recordings"
}

// AppendRR добавляет точку RR-интервала в конец серии
func (r *Recording) AppendRR(p RRPoint) {
	r.RRData.Points = append(r.RRData.Points, p)
	r.RRData.LastTime = p.T
	r.RRData.Count = len(r.RRData.Points)
}

// AppendAcc добавляет точку акселерометра в конец серии
func (r *Recording) AppendAcc(p AccPoint) {
	r.AccData.Points = append(r.AccData.Points, p)
	r.AccData.LastTime = p.T
	r.AccData.Count = len(r.AccData.Points)
}
