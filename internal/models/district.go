package models

// District описывает административный район: координаты, ячейку сетки КМА и базовую глубину подтопления
type District struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	GridX     int     `json:"nx"`
	GridY     int     `json:"ny"`
	BaseDepth float64 `json:"base_depth"`
}
