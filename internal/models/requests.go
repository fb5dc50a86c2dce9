package models

import "time"

// HRVRequest структура запроса на расчет ВСР
type HRVRequest struct {
	Group         string `json:"group" binding:"required"`
	Number        int    `json:"number" binding:"required"`
	Method        string `json:"method" binding:"required"`
	Interpolation bool   `json:"interpolation"`
}

// HRVResponse структура ответа с результатами расчета ВСР
type HRVResponse struct {
	Group         string     `json:"group"`
	Number        int        `json:"number"`
	Method        string     `json:"method"`
	SequenceRange string     `json:"sequence_range"`
	Scalar        *float64   `json:"scalar,omitempty"`
	Points        []HRVPoint `json:"points,omitempty"`
}

// MobilityRequest структура запроса на расчет подвижности
type MobilityRequest struct {
	Group  string `json:"group" binding:"required"`
	Number int    `json:"number" binding:"required"`
}

// MobilityPoint среднее значение подвижности в окне
type MobilityPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// MobilityResponse структура ответа с подвижностью и ее связью с ВСР
type MobilityResponse struct {
	Group    string          `json:"group"`
	Number   int             `json:"number"`
	Points   []MobilityPoint `json:"points"`
	MeanHRV  float64         `json:"mean_hrv"`
	PearsonR float64         `json:"pearson_r"`
}

// ErrorResponse структура ошибки API
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
