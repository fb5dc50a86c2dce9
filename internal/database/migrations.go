package database

import (
	"fmt"
	"log"

	"hrv-service/internal/models"

	"gorm.io/gorm"
)

// RunMigrations выполняет миграции базы данных
func RunMigrations(db *gorm.DB) error {
	log.Println("Запуск миграций базы данных...")

	err := db.AutoMigrate(
		&models.Recording{},
		&models.HRVResult{},
	)
	if err != nil {
		return fmt.Errorf("ошибка миграции: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("ошибка создания индексов: %w", err)
	}

	log.Println("Миграции выполнены успешно")
	return nil
}

// createIndexes создает дополнительные индексы
func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Запись испытуемого ищется по группе и номеру
		`CREATE INDEX IF NOT EXISTS idx_recordings_group_number ON recordings("group", number)`,
		"CREATE INDEX IF NOT EXISTS idx_recordings_device_active ON recordings(device_id, end_time) WHERE end_time IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_hrv_results_recording ON hrv_results(recording_id, created_at DESC)",

		// GIN индексы для JSONB полей
		"CREATE INDEX IF NOT EXISTS idx_recordings_rr_gin ON recordings USING GIN (rr_data)",
		"CREATE INDEX IF NOT EXISTS idx_recordings_acc_gin ON recordings USING GIN (acc_data)",
	}

	for _, indexSQL := range indexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			log.Printf("Не удалось создать индекс: %s, ошибка: %v", indexSQL, err)
		}
	}
	return nil
}
