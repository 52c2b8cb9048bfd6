package risk

import (
	"fmt"

	"github.com/shenikar/flood_risk_system/internal/models"
)

const (
	severeScoreThreshold  = 80
	warningForecastRainMM = 30.0
)

// Advisory - уровень предупреждения и готовый текст для клиента
type Advisory struct {
	Tier models.AdvisoryTier
	Text string
}

// Compose выбирает уровень предупреждения. Порядок проверок важен:
// балл >= 80, затем прогноз > 30 мм, затем идущий дождь, иначе "безопасно".
func Compose(location string, score int, currentRain, forecastRain, temperature float64) Advisory {
	switch {
	case score >= severeScoreThreshold:
		return Advisory{
			Tier: models.TierSevere,
			Text: fmt.Sprintf("🚨 [심각] '%s' 지역에 강한 비(%.1fmm)가 내리고 있으며 최대 %.1fmm의 비가 예보되어 있습니다. 침수 위험이 매우 높으니 즉시 대피를 준비하세요.",
				location, currentRain, forecastRain),
		}
	case forecastRain > warningForecastRainMM:
		return Advisory{
			Tier: models.TierWarning,
			Text: fmt.Sprintf("⚠️ [주의] '%s' 지역에 최대 %.1fmm의 많은 비가 예보되어 있습니다. 빗물받이를 확인하고 지하 주차장 진입을 자제하세요.",
				location, forecastRain),
		}
	case currentRain > 0:
		return Advisory{
			Tier: models.TierRaining,
			Text: fmt.Sprintf("☔ [비] 비가 오고 있지만(%.1fmm) 현재 침수 위험은 낮습니다. 기상 변화를 주시하세요.", currentRain),
		}
	default:
		return Advisory{
			Tier: models.TierClear,
			Text: fmt.Sprintf("✅ [안전] 현재 강수량이 없어 안전합니다. (%.1f°C)", temperature),
		}
	}
}
