package models

// SensorMessage сообщение датчика из MQTT топика
type SensorMessage struct {
	DeviceID string  `json:"device_id"`
	Group    string  `json:"group"`
	Number   int     `json:"number"`
	DataType string  `json:"data_type"`
	TimeSec  float64 `json:"time_sec"`

	// RR-интервал в миллисекундах
	Value float64 `json:"value"`

	// Ускорения по осям в мг
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Типы данных в сообщениях датчиков
const (
	DataTypeRRInterval    = "rr_interval"
	DataTypeAccelerometer = "accelerometer"
)
