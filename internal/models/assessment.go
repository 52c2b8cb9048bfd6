package models

// AdvisoryTier - уровень предупреждения
type AdvisoryTier string

const (
	TierSevere  AdvisoryTier = "severe"
	TierWarning AdvisoryTier = "warning"
	TierRaining AdvisoryTier = "raining"
	TierClear   AdvisoryTier = "clear"
)

// RiskAssessment - результат оценки риска подтопления для одного запроса
type RiskAssessment struct {
	Location         string       `json:"location"`
	District         District     `json:"district"`
	Score            int          `json:"score"`
	WaterLevel       float64      `json:"water_level"`
	CurrentRainfall  float64      `json:"current_rainfall"`
	ForecastRainfall float64      `json:"forecast_rainfall"`
	WindSpeed        float64      `json:"wind_speed"`
	Temperature      float64      `json:"temperature"`
	Tier             AdvisoryTier `json:"tier"`
	Advisory         string       `json:"advisory"`
}
