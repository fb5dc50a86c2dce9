package handlers

import (
	"net/http"
	"time"

	"hrv-service/internal/hrv"
	"hrv-service/internal/models"
	"hrv-service/internal/services"

	"github.com/gin-gonic/gin"
)

// HRVHandler обрабатывает HTTP запросы расчета ВСР
type HRVHandler struct {
	hrvService *services.HRVService
}

// NewHRVHandler создает новый обработчик запросов ВСР
func NewHRVHandler(hrvService *services.HRVService) *HRVHandler {
	return &HRVHandler{hrvService: hrvService}
}

// CalculateWindows рассчитывает показатель ВСР по окнам
// @Summary Оконный расчет ВСР
// @Description Очищает серию RR-интервалов и рассчитывает показатель ВСР в скользящих окнах
// @Tags hrv
// @Accept json
// @Produce json
// @Param request body models.HRVRequest true "Запрос на расчет"
// @Success 200 {object} models.HRVResponse "Результаты по окнам"
// @Failure 400 {object} models.ErrorResponse "Неверный запрос"
// @Failure 500 {object} models.ErrorResponse "Внутренняя ошибка сервера"
// @Router /hrv/windows [post]
func (h *HRVHandler) CalculateWindows(c *gin.Context) {
	var req models.HRVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request",
			"details": err.Error(),
		})
		return
	}

	response, err := h.hrvService.ProcessHRVRequest(&req, hrv.SequenceWindows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "hrv calculation error",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

// CalculateFull рассчитывает один показатель ВСР по всей записи
// @Summary Расчет ВСР по всей записи
// @Description Очищает серию RR-интервалов и рассчитывает один показатель по всей записи (только RMSSD)
// @Tags hrv
// @Accept json
// @Produce json
// @Param request body models.HRVRequest true "Запрос на расчет"
// @Success 200 {object} models.HRVResponse "Скалярный результат"
// @Failure 400 {object} models.ErrorResponse "Неверный запрос"
// @Failure 500 {object} models.ErrorResponse "Внутренняя ошибка сервера"
// @Router /hrv/full [post]
func (h *HRVHandler) CalculateFull(c *gin.Context) {
	var req models.HRVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request",
			"details": err.Error(),
		})
		return
	}

	response, err := h.hrvService.ProcessHRVRequest(&req, hrv.SequenceFull)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "hrv calculation error",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

// CalculateMobility рассчитывает подвижность по акселерометру
// @Summary Расчет подвижности и ее связи с ВСР
// @Description Рассчитывает среднюю подвижность в окнах и корреляцию Пирсона с оконной ВСР
// @Tags mobility
// @Accept json
// @Produce json
// @Param request body models.MobilityRequest true "Запрос на расчет"
// @Success 200 {object} models.MobilityResponse "Подвижность и корреляция"
// @Failure 400 {object} models.ErrorResponse "Неверный запрос"
// @Failure 500 {object} models.ErrorResponse "Внутренняя ошибка сервера"
// @Router /mobility [post]
func (h *HRVHandler) CalculateMobility(c *gin.Context) {
	var req models.MobilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request",
			"details": err.Error(),
		})
		return
	}

	response, err := h.hrvService.ProcessMobilityRequest(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "mobility calculation error",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

// Health проверяет состояние сервиса
// @Summary Проверка состояния сервиса
// @Description Возвращает статус работы сервиса
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Сервис работает"
// @Router /health [get]
func (h *HRVHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
