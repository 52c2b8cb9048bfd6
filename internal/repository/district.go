package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_risk_system/internal/directory"
	"github.com/shenikar/flood_risk_system/internal/models"
)

// PoolProvider отдает пул соединений (см. postgres.Handle)
type PoolProvider interface {
	Pool(ctx context.Context) (*pgxpool.Pool, error)
}

// DistrictRepository читает документы районов из коллекции cities (JSONB)
type DistrictRepository struct {
	db     PoolProvider
	logger *logrus.Logger
}

func NewDistrictRepository(db PoolProvider, logger *logrus.Logger) directory.DocumentStore {
	return &DistrictRepository{
		db:     db,
		logger: logger,
	}
}

// ListDistricts потоково читает все документы в естественном порядке хранилища.
// Некорректные документы пропускаются, чтение продолжается.
func (r *DistrictRepository) ListDistricts(ctx context.Context) ([]models.District, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, doc
		FROM cities
		ORDER BY id;
	`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	return r.scanDistricts(rows)
}

// cityRows - подмножество pgx.Rows, которое нужно для чтения документов
type cityRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

func (r *DistrictRepository) scanDistricts(rows cityRows) ([]models.District, error) {
	defer rows.Close()

	districts := make([]models.District, 0)
	for rows.Next() {
		var (
			id  int64
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("failed to scan city row: %w", err)
		}

		district, err := decodeCityDocument(doc)
		if err != nil {
			r.logger.WithError(err).WithField("city_id", id).Warn("Skipping malformed city document")
			continue
		}
		districts = append(districts, district)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error cities iteration: %w", err)
	}
	return districts, nil
}

// cityDocument - поля-указатели позволяют отличить отсутствующее поле от нулевого значения
type cityDocument struct {
	Name      *string  `json:"name"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Nx        *int     `json:"nx"`
	Ny        *int     `json:"ny"`
	BaseDepth *float64 `json:"base_depth"`
}

func decodeCityDocument(raw []byte) (models.District, error) {
	var doc cityDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.District{}, fmt.Errorf("invalid city document: %w", err)
	}

	var missing []string
	if doc.Name == nil || strings.TrimSpace(*doc.Name) == "" {
		missing = append(missing, "name")
	}
	if doc.Lat == nil {
		missing = append(missing, "lat")
	}
	if doc.Lon == nil {
		missing = append(missing, "lon")
	}
	if doc.Nx == nil {
		missing = append(missing, "nx")
	}
	if doc.Ny == nil {
		missing = append(missing, "ny")
	}
	if doc.BaseDepth == nil {
		missing = append(missing, "base_depth")
	}
	if len(missing) > 0 {
		return models.District{}, fmt.Errorf("city document is missing fields: %s", strings.Join(missing, ", "))
	}

	if *doc.BaseDepth < 0 {
		return models.District{}, errors.New("city document has negative base_depth")
	}
	if *doc.Nx <= 0 || *doc.Ny <= 0 {
		return models.District{}, fmt.Errorf("city document has invalid grid %d,%d", *doc.Nx, *doc.Ny)
	}

	return models.District{
		Name:      *doc.Name,
		Latitude:  *doc.Lat,
		Longitude: *doc.Lon,
		GridX:     *doc.Nx,
		GridY:     *doc.Ny,
		BaseDepth: *doc.BaseDepth,
	}, nil
}
