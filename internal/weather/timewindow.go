package weather

import (
	"fmt"
	"time"
)

const (
	baseDateLayout = "20060102"

	// Данные наблюдений за час H публикуются примерно к 45-й минуте
	currentPublishMinute = 45
	// Прогноз считается опубликованным через 10 минут после базового часа
	forecastSettleMinute = 10
)

// Часы публикации краткосрочного прогноза (местное время), по возрастанию
var forecastBaseHours = []int{2, 5, 8, 11, 14, 17, 20, 23}

// BaseTime - параметры base_date/base_time запроса к КМА
type BaseTime struct {
	Date string // YYYYMMDD
	Time string // HH00
}

// CurrentBaseTime выбирает окно для текущих наблюдений: до 45-й минуты берется предыдущий час
func CurrentBaseTime(now time.Time) BaseTime {
	target := now
	if now.Minute() < currentPublishMinute {
		target = now.Add(-time.Hour)
	}
	return BaseTime{
		Date: target.Format(baseDateLayout),
		Time: fmt.Sprintf("%02d00", target.Hour()),
	}
}

// ForecastBaseTime выбирает последний опубликованный выпуск прогноза.
// До 02:00 (с учетом 10-минутной задержки) берется выпуск 23:00 предыдущего дня.
func ForecastBaseTime(now time.Time) BaseTime {
	hour := now.Hour()
	if now.Minute() < forecastSettleMinute {
		hour--
	}

	for i := len(forecastBaseHours) - 1; i >= 0; i-- {
		if forecastBaseHours[i] <= hour {
			return BaseTime{
				Date: now.Format(baseDateLayout),
				Time: fmt.Sprintf("%02d00", forecastBaseHours[i]),
			}
		}
	}

	prev := now.AddDate(0, 0, -1)
	return BaseTime{
		Date: prev.Format(baseDateLayout),
		Time: fmt.Sprintf("%02d00", forecastBaseHours[len(forecastBaseHours)-1]),
	}
}
