package directory

import "github.com/shenikar/flood_risk_system/internal/models"

// DefaultDistrict используется, когда ни одно название района не найдено в тексте (Сеульская мэрия)
var DefaultDistrict = models.District{
	Name:      "서울특별시청",
	Latitude:  37.5665,
	Longitude: 126.9780,
	GridX:     60,
	GridY:     127,
	BaseDepth: 0.5,
}

// Встроенная таблица районов. Порядок объявления является порядком поиска и не должен меняться:
// при нескольких совпадениях побеждает первый район.
var fallbackDistricts = []models.District{
	// 서울
	{Name: "강남구", Latitude: 37.5172, Longitude: 127.0474, GridX: 61, GridY: 126, BaseDepth: 0.5},
	{Name: "강동구", Latitude: 37.5301, Longitude: 127.1237, GridX: 62, GridY: 126, BaseDepth: 0.6},
	{Name: "강북구", Latitude: 37.6398, Longitude: 127.0255, GridX: 61, GridY: 129, BaseDepth: 0.4},
	{Name: "강서구", Latitude: 37.5509, Longitude: 126.8495, GridX: 55, GridY: 127, BaseDepth: 0.7},
	{Name: "관악구", Latitude: 37.4784, Longitude: 126.9515, GridX: 59, GridY: 125, BaseDepth: 0.5},
	{Name: "광진구", Latitude: 37.5386, Longitude: 127.0823, GridX: 62, GridY: 127, BaseDepth: 0.6},
	{Name: "구로구", Latitude: 37.4955, Longitude: 126.8874, GridX: 56, GridY: 125, BaseDepth: 0.5},
	{Name: "금천구", Latitude: 37.4519, Longitude: 126.9020, GridX: 57, GridY: 124, BaseDepth: 0.4},
	{Name: "노원구", Latitude: 37.6542, Longitude: 127.0568, GridX: 61, GridY: 130, BaseDepth: 0.7},
	{Name: "도봉구", Latitude: 37.6688, Longitude: 127.0471, GridX: 61, GridY: 131, BaseDepth: 0.6},
	{Name: "동대문구", Latitude: 37.5744, Longitude: 127.0396, GridX: 61, GridY: 127, BaseDepth: 0.5},
	{Name: "동작구", Latitude: 37.5124, Longitude: 126.9393, GridX: 59, GridY: 126, BaseDepth: 0.5},
	{Name: "마포구", Latitude: 37.5663, Longitude: 126.9018, GridX: 58, GridY: 127, BaseDepth: 0.6},
	{Name: "서대문구", Latitude: 37.5791, Longitude: 126.9368, GridX: 59, GridY: 127, BaseDepth: 0.4},
	{Name: "서초구", Latitude: 37.4836, Longitude: 127.0324, GridX: 61, GridY: 125, BaseDepth: 0.5},
	{Name: "성동구", Latitude: 37.5633, Longitude: 127.0368, GridX: 61, GridY: 127, BaseDepth: 0.6},
	{Name: "성북구", Latitude: 37.5894, Longitude: 127.0167, GridX: 61, GridY: 128, BaseDepth: 0.5},
	{Name: "송파구", Latitude: 37.5145, Longitude: 127.1059, GridX: 62, GridY: 126, BaseDepth: 0.7},
	{Name: "양천구", Latitude: 37.5270, Longitude: 126.8562, GridX: 56, GridY: 126, BaseDepth: 0.4},
	{Name: "영등포구", Latitude: 37.5264, Longitude: 126.8963, GridX: 57, GridY: 126, BaseDepth: 0.5},
	{Name: "용산구", Latitude: 37.5326, Longitude: 126.9900, GridX: 60, GridY: 126, BaseDepth: 0.6},
	{Name: "은평구", Latitude: 37.6027, Longitude: 126.9291, GridX: 58, GridY: 128, BaseDepth: 0.5},
	{Name: "종로구", Latitude: 37.5730, Longitude: 126.9794, GridX: 60, GridY: 127, BaseDepth: 0.4},
	{Name: "중구", Latitude: 37.5638, Longitude: 126.9975, GridX: 60, GridY: 127, BaseDepth: 0.5},
	{Name: "중랑구", Latitude: 37.6066, Longitude: 127.0926, GridX: 62, GridY: 128, BaseDepth: 0.6},
	// 부산
	{Name: "해운대구", Latitude: 35.1631, Longitude: 129.1636, GridX: 102, GridY: 42, BaseDepth: 1.0},
	{Name: "부산진구", Latitude: 35.1628, Longitude: 129.0532, GridX: 100, GridY: 42, BaseDepth: 0.9},
	{Name: "수영구", Latitude: 35.1455, Longitude: 129.1132, GridX: 101, GridY: 41, BaseDepth: 1.0},
	// 경기 / 광역시
	{Name: "분당구", Latitude: 37.3827, Longitude: 127.1189, GridX: 61, GridY: 122, BaseDepth: 0.4},
	{Name: "일산동구", Latitude: 37.6777, Longitude: 126.7489, GridX: 56, GridY: 129, BaseDepth: 0.5},
	{Name: "수성구", Latitude: 35.8584, Longitude: 128.6306, GridX: 90, GridY: 90, BaseDepth: 0.7},
	{Name: "유성구", Latitude: 36.3622, Longitude: 127.3563, GridX: 67, GridY: 101, BaseDepth: 0.7},
	{Name: "연수구", Latitude: 37.4094, Longitude: 126.6784, GridX: 56, GridY: 123, BaseDepth: 0.2},
}

// FallbackDistricts возвращает копию встроенной таблицы в порядке объявления
func FallbackDistricts() []models.District {
	out := make([]models.District, len(fallbackDistricts))
	copy(out, fallbackDistricts)
	return out
}
