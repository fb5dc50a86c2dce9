package services

import (
	"fmt"
	"log"
	"time"

	"hrv-service/config"
	"hrv-service/internal/accel"
	"hrv-service/internal/hrv"
	"hrv-service/internal/models"
	"hrv-service/pkg/utils"
)

// HRVService отвечает за расчет показателей вариабельности сердечного ритма
type HRVService struct {
	dataService *DataService
	pipeline    config.PipelineConfig
}

// NewHRVService создает новый сервис расчета ВСР
func NewHRVService(dataService *DataService, pipeline config.PipelineConfig) *HRVService {
	return &HRVService{
		dataService: dataService,
		pipeline:    pipeline,
	}
}

// buildParams собирает параметры пайплайна: параметры очистки из
// конфигурации, режим и метод из запроса
func (s *HRVService) buildParams(method string, sequenceRange hrv.SequenceRange, interpolation bool) hrv.Params {
	return hrv.Params{
		SequenceRange:            sequenceRange,
		Method:                   hrv.Method(method),
		StepFrequency:            s.pipeline.StepFrequency,
		WindowSize:               s.pipeline.WindowSize,
		AdjacentBeatsForRemoving: s.pipeline.AdjacentBeatsForRemoving,
		ThresholdForHoleDuration: s.pipeline.ThresholdForHoleDuration,
		TimeAfterHoleForRemoving: s.pipeline.TimeAfterHoleForRemoving,
		CutTimeFromStart:         s.pipeline.CutTimeFromStart,
		CutTimeBeforeFinish:      s.pipeline.CutTimeBeforeFinish,
		Interpolation:            interpolation,
	}
}

// ProcessHRVRequest выполняет полный расчет ВСР для испытуемого и
// сохраняет результат
func (s *HRVService) ProcessHRVRequest(req *models.HRVRequest, sequenceRange hrv.SequenceRange) (*models.HRVResponse, error) {
	series, recording, err := s.dataService.LoadBeatSeries(req.Group, req.Number)
	if err != nil {
		return nil, err
	}

	params := s.buildParams(req.Method, sequenceRange, req.Interpolation)
	result, err := hrv.Run(series, params, req.Group, req.Number)
	if err != nil {
		return nil, fmt.Errorf("ошибка расчета ВСР: %w", err)
	}

	stored := &models.HRVResult{
		RecordingID:   recording.ID,
		Method:        req.Method,
		SequenceRange: string(sequenceRange),
		Interpolation: req.Interpolation,
	}
	response := &models.HRVResponse{
		Group:         req.Group,
		Number:        req.Number,
		Method:        req.Method,
		SequenceRange: string(sequenceRange),
	}

	switch result.Kind {
	case hrv.ResultScalar:
		v := result.Scalar
		stored.Scalar = &v
		response.Scalar = &v
	case hrv.ResultWindowed:
		points := make([]models.HRVPoint, len(result.Values))
		for i := range result.Values {
			points[i] = models.HRVPoint{
				Timestamp: result.Timestamps[i],
				Value:     result.Values[i],
			}
		}
		stored.Values = models.HRVTimeSeries{Points: points, Count: len(points)}
		response.Points = points
	}

	if err := s.dataService.SaveResult(stored); err != nil {
		// Расчет прошел, поэтому результат отдаем несмотря на ошибку записи
		log.Printf("Не удалось сохранить результат для %s %d: %v", req.Group, req.Number, err)
	}

	log.Printf("Расчет ВСР завершен: %s %d, метод %s, режим %s",
		req.Group, req.Number, req.Method, sequenceRange)
	return response, nil
}

// ProcessMobilityRequest рассчитывает подвижность по окнам, оконную ВСР
// методом RMSSD и корреляцию Пирсона между двумя рядами
func (s *HRVService) ProcessMobilityRequest(req *models.MobilityRequest) (*models.MobilityResponse, error) {
	samples, _, err := s.dataService.LoadSampleSeries(req.Group, req.Number)
	if err != nil {
		return nil, err
	}
	beats, _, err := s.dataService.LoadBeatSeries(req.Group, req.Number)
	if err != nil {
		return nil, err
	}

	windows, err := accel.SliceWindows(samples, s.pipeline.StepFrequency, s.pipeline.WindowSize)
	if err != nil {
		return nil, err
	}
	mobilityValues, mobilityTimestamps := accel.MeanMobility(windows, s.pipeline.GravitySigma)
	if len(mobilityValues) == 0 {
		return nil, fmt.Errorf("данные акселерометра не покрыли ни одного окна")
	}

	params := s.buildParams(string(hrv.MethodRMSSD), hrv.SequenceWindows, false)
	hrvResult, err := hrv.Run(beats, params, req.Group, req.Number)
	if err != nil {
		return nil, fmt.Errorf("ошибка расчета ВСР: %w", err)
	}

	points := make([]models.MobilityPoint, len(mobilityValues))
	for i := range mobilityValues {
		points[i] = models.MobilityPoint{
			Timestamp: mobilityTimestamps[i],
			Value:     mobilityValues[i],
		}
	}

	response := &models.MobilityResponse{
		Group:   req.Group,
		Number:  req.Number,
		Points:  points,
		MeanHRV: utils.SafeFloat(utils.Mean(hrvResult.Values)),
	}

	// Ряды ВСР и подвижности сопоставляются по ближайшим меткам подвижности
	aligned := accel.AlignTimestamps(hrvResult.Timestamps, mobilityTimestamps)
	pairedMobility := matchMobility(aligned, mobilityTimestamps, mobilityValues)
	if r, err := accel.Correlate(hrvResult.Values, pairedMobility); err == nil {
		response.PearsonR = utils.SafeFloat(r)
	} else {
		log.Printf("Корреляция не рассчитана для %s %d: %v", req.Group, req.Number, err)
	}
	return response, nil
}

// matchMobility подбирает для каждой выровненной метки значение
// подвижности с той же меткой
func matchMobility(aligned, mobilityTimestamps []time.Time, mobilityValues []float64) []float64 {
	byTimestamp := make(map[int64]float64, len(mobilityTimestamps))
	for i, t := range mobilityTimestamps {
		byTimestamp[t.UnixNano()] = mobilityValues[i]
	}

	out := make([]float64, len(aligned))
	for i, t := range aligned {
		out[i] = byTimestamp[t.UnixNano()]
	}
	return out
}
