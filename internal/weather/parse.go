package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shenikar/flood_risk_system/internal/models"
)

// Категории КМА
const (
	categoryRainfall1h    = "RN1" // осадки за 1 час, мм
	categoryTemperature   = "T1H" // температура, °C
	categoryWindSpeed     = "WSD" // скорость ветра, м/с
	categoryPrecipitation = "PCP" // прогноз осадков за 1 час
)

// Текстовые обозначения в значениях PCP
const (
	noPrecipitation = "강수없음"
	lessThanMarker  = "미만"
	orMoreMarker    = "이상"
	unitSuffix      = "mm"
)

func parseObservation(items []kmaItem) (models.WeatherObservation, error) {
	var obs models.WeatherObservation
	for _, item := range items {
		var target *float64
		switch item.Category {
		case categoryRainfall1h:
			target = &obs.RainfallMM
		case categoryTemperature:
			target = &obs.TemperatureC
		case categoryWindSpeed:
			target = &obs.WindSpeedMS
		default:
			continue
		}

		value, err := parseNumber(string(item.ObsrValue))
		if err != nil {
			return models.WeatherObservation{}, fmt.Errorf("category %s: %w", item.Category, err)
		}
		*target = value
	}
	return obs, nil
}

func parseForecast(items []kmaItem) (models.ForecastSummary, error) {
	var summary models.ForecastSummary
	for _, item := range items {
		if item.Category != categoryPrecipitation {
			continue
		}
		value, err := ParsePrecipitation(string(item.FcstValue))
		if err != nil {
			return models.ForecastSummary{}, fmt.Errorf("PCP at %s %s: %w", item.FcstDate, item.FcstTime, err)
		}
		summary.MaxRainfallMM = math.Max(summary.MaxRainfallMM, value)
	}
	return summary, nil
}

// ParsePrecipitation разбирает значение PCP из краткосрочного прогноза:
//
//	"강수없음"       -> 0
//	"1mm 미만"       -> 0
//	"12.5mm", "5"    -> 12.5, 5
//	"30.0~50.0mm"    -> 50 (верхняя граница)
//	"50.0mm 이상"    -> 50
func ParsePrecipitation(raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	switch {
	case value == "" || value == noPrecipitation:
		return 0, nil
	case strings.HasSuffix(value, lessThanMarker):
		return 0, nil
	case strings.HasSuffix(value, orMoreMarker):
		value = strings.TrimSpace(strings.TrimSuffix(value, orMoreMarker))
	}

	value = strings.TrimSuffix(value, unitSuffix)
	if _, upper, ok := strings.Cut(value, "~"); ok {
		value = strings.TrimSuffix(strings.TrimSpace(upper), unitSuffix)
	}
	return parseNumber(value)
}

func parseNumber(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, raw)
	}
	// |значение| >= 900 у КМА означает отсутствие данных (например, -998.9)
	if math.Abs(value) >= 900 {
		return 0, nil
	}
	return value, nil
}
