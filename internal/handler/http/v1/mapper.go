package v1

import "github.com/shenikar/flood_risk_system/internal/models"

// ModelToPredictResponse преобразует оценку риска в DTO для ответа
func ModelToPredictResponse(model *models.RiskAssessment) *PredictResponse {
	return &PredictResponse{
		RiskScore:    model.Score,
		WaterLevel:   model.WaterLevel,
		Rainfall:     model.CurrentRainfall,
		ForecastRain: model.ForecastRainfall,
		WindSpeed:    model.WindSpeed,
		Temperature:  model.Temperature,
		Comment:      model.Advisory,
	}
}

// ModelsToDistrictResponses преобразует слайс районов в слайс DTO
func ModelsToDistrictResponses(districts []models.District) []DistrictResponse {
	responses := make([]DistrictResponse, len(districts))
	for i, d := range districts {
		responses[i] = DistrictResponse{
			Name:      d.Name,
			Lat:       d.Latitude,
			Lon:       d.Longitude,
			Nx:        d.GridX,
			Ny:        d.GridY,
			BaseDepth: d.BaseDepth,
		}
	}
	return responses
}
