package handlers

import (
	"encoding/json"
	"log"
	"math"
	"time"

	"hrv-service/internal/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"gorm.io/gorm"
)

// IngestProcessor принимает измерения датчиков из MQTT и дописывает их
// в активную запись испытуемого
type IngestProcessor struct {
	db *gorm.DB
}

// NewIngestProcessor создает новый процессор входящих измерений
func NewIngestProcessor(db *gorm.DB) *IngestProcessor {
	return &IngestProcessor{db: db}
}

// isValidRR проверяет физиологические пределы RR-интервала
func isValidRR(value float64) bool {
	return value > 0 && value < 5000 && !math.IsNaN(value) && !math.IsInf(value, 0)
}

// MessageHandler обрабатывает входящее MQTT сообщение
func (p *IngestProcessor) MessageHandler(client mqtt.Client, msg mqtt.Message) {
	var data models.SensorMessage
	if err := json.Unmarshal(msg.Payload(), &data); err != nil {
		log.Printf("Ошибка декодирования JSON: %v", err)
		return
	}

	switch data.DataType {
	case models.DataTypeRRInterval:
		if !isValidRR(data.Value) {
			log.Printf("Отброшен невалидный RR: устройство=%s, время=%.3f, значение=%.2f",
				data.DeviceID, data.TimeSec, data.Value)
			return
		}
		p.appendPoint(&data, func(r *models.Recording) {
			r.AppendRR(models.RRPoint{T: data.TimeSec, V: data.Value})
		})

	case models.DataTypeAccelerometer:
		p.appendPoint(&data, func(r *models.Recording) {
			r.AppendAcc(models.AccPoint{T: data.TimeSec, X: data.X, Y: data.Y, Z: data.Z})
		})

	default:
		log.Printf("Неизвестный тип данных: %s", data.DataType)
	}
}

// appendPoint находит или создает активную запись испытуемого и
// дописывает в нее точку
func (p *IngestProcessor) appendPoint(data *models.SensorMessage, appendFn func(*models.Recording)) {
	var recording models.Recording
	err := p.db.Where(`"group" = ? AND number = ? AND end_time IS NULL`, data.Group, data.Number).
		Order("start_time DESC").
		First(&recording).Error

	if err == gorm.ErrRecordNotFound {
		recording = models.Recording{
			Group:     data.Group,
			Number:    data.Number,
			DeviceID:  data.DeviceID,
			StartTime: time.Now().UTC(),
		}
		if err := p.db.Create(&recording).Error; err != nil {
			log.Printf("Ошибка создания записи для %s %d: %v", data.Group, data.Number, err)
			return
		}
		log.Printf("Создана новая запись %s для %s %d", recording.ID, data.Group, data.Number)
	} else if err != nil {
		log.Printf("Ошибка поиска записи для %s %d: %v", data.Group, data.Number, err)
		return
	}

	appendFn(&recording)
	if err := p.db.Save(&recording).Error; err != nil {
		log.Printf("Ошибка сохранения записи %s: %v", recording.ID, err)
	}
}
