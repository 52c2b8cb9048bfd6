// Package risk содержит формулу оценки риска подтопления и составление текстового предупреждения.
package risk

import "math"

const (
	// Насыщение: 30 мм/ч текущих осадков и 50 мм прогноза дают по 100 баллов
	rainSaturationMM     = 30.0
	forecastSaturationMM = 50.0

	maxDepthScore = 50.0

	// 100 баллов никогда не выставляется
	MaxScore = 99
)

// Score рассчитывает балл риска в диапазоне [0, 99].
// Входные значения должны быть неотрицательными: вызывающая сторона обязана обрезать их до 0.
func Score(currentRain, forecastRain, baseDepth float64) int {
	rainScore := math.Min(100, currentRain/rainSaturationMM*100)
	forecastScore := math.Min(100, forecastRain/forecastSaturationMM*100)
	// Явные float64(...) запрещают компилятору объединять умножение и сложение в FMA,
	// иначе результат на arm64 может отличаться в последнем бите
	combinedRain := float64(rainScore*0.6) + float64(forecastScore*0.4)

	depthScore := math.Min(maxDepthScore, baseDepth*10)

	total := float64(combinedRain*0.7) + float64(depthScore*0.3)
	return min(MaxScore, int(math.Floor(total)))
}

// WaterLevel - линейная оценка уровня воды (м), только для отображения
func WaterLevel(currentRain, forecastRain, baseDepth float64) float64 {
	return baseDepth + float64(currentRain*0.01) + float64(forecastRain*0.005)
}
