package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port     string
	Database DatabaseConfig
	MQTT     MQTTConfig
	Pipeline PipelineConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type MQTTConfig struct {
	Enabled  bool
	Broker   string
	ClientID string
	Username string
	Password string
	QoS      int
}

// PipelineConfig содержит параметры очистки и оконного расчета
// по умолчанию. Параметры запроса имеют приоритет над ними.
type PipelineConfig struct {
	StepFrequency            time.Duration
	WindowSize               time.Duration
	AdjacentBeatsForRemoving time.Duration
	ThresholdForHoleDuration time.Duration
	TimeAfterHoleForRemoving time.Duration
	CutTimeFromStart         time.Duration
	CutTimeBeforeFinish      time.Duration
	GravitySigma             float64
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8053"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "hrv_db"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		MQTT: MQTTConfig{
			Enabled:  getEnv("MQTT_ENABLED", "false") == "true",
			Broker:   getEnv("MQTT_BROKER", "tcp://localhost:1883"),
			ClientID: getEnv("MQTT_CLIENT_ID", "hrv-service"),
			Username: getEnv("MQTT_USERNAME", ""),
			Password: getEnv("MQTT_PASSWORD", ""),
			QoS:      getEnvInt("MQTT_QOS", 1),
		},
		Pipeline: PipelineConfig{
			StepFrequency:            getEnvDuration("PIPELINE_STEP", time.Minute),
			WindowSize:               getEnvDuration("PIPELINE_WINDOW", 5*time.Minute),
			AdjacentBeatsForRemoving: getEnvDuration("PIPELINE_ADJACENT", 5*time.Second),
			ThresholdForHoleDuration: getEnvDuration("PIPELINE_HOLE", 30*time.Second),
			TimeAfterHoleForRemoving: getEnvDuration("PIPELINE_AFTER_HOLE", 15*time.Second),
			CutTimeFromStart:         getEnvDuration("PIPELINE_CUT_START", 45*time.Second),
			CutTimeBeforeFinish:      getEnvDuration("PIPELINE_CUT_FINISH", 45*time.Second),
			GravitySigma:             getEnvFloat("PIPELINE_GRAVITY_SIGMA", 1001),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
