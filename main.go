package main

import (
	"log"
	"net/http"
	"time"

	"hrv-service/config"
	"hrv-service/internal/database"
	"hrv-service/internal/handlers"
	"hrv-service/internal/middleware"
	"hrv-service/internal/mqtt_client"
	"hrv-service/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Загрузка конфигурации и логгера
	cfg := config.Load()
	config.InitLogger()

	// Подключение к БД
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Ошибка миграций: %v", err)
	}

	// Инициализация сервисов
	dataService := services.NewDataService(db)
	hrvService := services.NewHRVService(dataService, cfg.Pipeline)
	jwtService := services.NewJWTService()

	// Инициализация обработчиков
	hrvHandler := handlers.NewHRVHandler(hrvService)
	jwtMiddleware := middleware.NewJWTMiddleware(jwtService)

	// MQTT прием данных с датчиков
	if cfg.MQTT.Enabled {
		ingest := handlers.NewIngestProcessor(db)
		mqttClient, err := mqtt_client.InitClient(cfg.MQTT, ingest.MessageHandler)
		if err != nil {
			log.Fatalf("Ошибка MQTT: %v", err)
		}
		defer mqttClient.Disconnect(250)
		log.Printf("MQTT клиент подключён к %s", cfg.MQTT.Broker)
	}

	// Настройка роутера
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:80", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// API endpoints
	api := router.Group("/api/v1")
	api.GET("/health", hrvHandler.Health)

	protected := api.Group("")
	protected.Use(jwtMiddleware.RequireAuth())
	{
		protected.POST("/hrv/windows", hrvHandler.CalculateWindows)
		protected.POST("/hrv/full", hrvHandler.CalculateFull)
		protected.POST("/mobility", hrvHandler.CalculateMobility)
	}

	log.Printf("Запуск HRV сервиса на порту %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
