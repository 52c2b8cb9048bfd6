package models

// WeatherObservation - текущие наблюдения (ultra short-term nowcast) для ячейки сетки
type WeatherObservation struct {
	RainfallMM   float64 `json:"rainfall_mm"`
	TemperatureC float64 `json:"temperature_c"`
	WindSpeedMS  float64 `json:"wind_speed_ms"`
}

// ForecastSummary - пиковое ожидаемое количество осадков в горизонте краткосрочного прогноза
type ForecastSummary struct {
	MaxRainfallMM float64 `json:"max_rainfall_mm"`
}
