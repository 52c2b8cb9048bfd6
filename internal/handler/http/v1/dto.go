package v1

// PredictRequest DTO для оценки риска подтопления
// @Description DTO для оценки риска подтопления
type PredictRequest struct {
	Location string  `json:"location" validate:"required" example:"서울특별시 강남구 역삼동"`
	Lat      float64 `json:"lat" example:"37.5"`
	Lon      float64 `json:"lon" example:"127.03"`
}

// PredictResponse DTO для ответа с оценкой риска
// @Description DTO для ответа с оценкой риска
type PredictResponse struct {
	RiskScore    int     `json:"riskScore" example:"71"`
	WaterLevel   float64 `json:"waterLevel" example:"1.2"`
	Rainfall     float64 `json:"rainfall" example:"40"`
	ForecastRain float64 `json:"forecastRain" example:"60"`
	WindSpeed    float64 `json:"windSpeed" example:"5.2"`
	Temperature  float64 `json:"temperature" example:"23.4"`
	Comment      string  `json:"comment"`
}

// DistrictResponse DTO района справочника
// @Description DTO района справочника
type DistrictResponse struct {
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Nx        int     `json:"nx"`
	Ny        int     `json:"ny"`
	BaseDepth float64 `json:"base_depth"`
}
