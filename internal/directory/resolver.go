package directory

import (
	"context"
	"strings"

	"github.com/shenikar/flood_risk_system/internal/models"
)

// Lookuper - источник упорядоченного списка районов
type Lookuper interface {
	Lookup(ctx context.Context) []models.District
}

// SubstringResolver находит первый район, название которого входит в текст как подстрока.
// Сравнение чувствительно к регистру, без токенизации; при нескольких совпадениях решает порядок справочника.
type SubstringResolver struct {
	directory Lookuper
}

func NewSubstringResolver(directory Lookuper) *SubstringResolver {
	return &SubstringResolver{directory: directory}
}

// Resolve возвращает (район, true) или (zero, false), если совпадений нет
func (r *SubstringResolver) Resolve(ctx context.Context, text string) (models.District, bool) {
	for _, district := range r.directory.Lookup(ctx) {
		if district.Name != "" && strings.Contains(text, district.Name) {
			return district, true
		}
	}
	return models.District{}, false
}

// Districts отдает справочник целиком в порядке поиска
func (r *SubstringResolver) Districts(ctx context.Context) []models.District {
	return r.directory.Lookup(ctx)
}
