package repository

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/pkg/postgres"
)

func TestDecodeCityDocument_Valid(t *testing.T) {
	raw := []byte(`{"name":"강남구","lat":37.5172,"lon":127.0474,"nx":61,"ny":126,"base_depth":0.5}`)

	district, err := decodeCityDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, models.District{
		Name:      "강남구",
		Latitude:  37.5172,
		Longitude: 127.0474,
		GridX:     61,
		GridY:     126,
		BaseDepth: 0.5,
	}, district)
}

func TestDecodeCityDocument_ZeroBaseDepthIsValid(t *testing.T) {
	raw := []byte(`{"name":"연수구","lat":37.4094,"lon":126.6784,"nx":56,"ny":123,"base_depth":0}`)

	district, err := decodeCityDocument(raw)
	require.NoError(t, err)
	assert.Zero(t, district.BaseDepth)
}

func TestDecodeCityDocument_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		errPart string
	}{
		{name: "not json", raw: `name=강남구`, errPart: "invalid city document"},
		{name: "missing grid", raw: `{"name":"강남구","lat":37.5,"lon":127.0,"base_depth":0.5}`, errPart: "nx, ny"},
		{name: "empty name", raw: `{"name":" ","lat":37.5,"lon":127.0,"nx":61,"ny":126,"base_depth":0.5}`, errPart: "name"},
		{name: "string grid", raw: `{"name":"강남구","lat":37.5,"lon":127.0,"nx":"61","ny":126,"base_depth":0.5}`, errPart: "invalid city document"},
		{name: "negative depth", raw: `{"name":"강남구","lat":37.5,"lon":127.0,"nx":61,"ny":126,"base_depth":-1}`, errPart: "negative base_depth"},
		{name: "zero grid", raw: `{"name":"강남구","lat":37.5,"lon":127.0,"nx":0,"ny":126,"base_depth":0.5}`, errPart: "invalid grid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeCityDocument([]byte(tt.raw))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

type failingPool struct {
	err error
}

func (f failingPool) Pool(context.Context) (*pgxpool.Pool, error) {
	return nil, f.err
}

type cityRow struct {
	id  int64
	doc string
}

// fakeCityRows отдает строки в заданном порядке, как курсор pgx
type fakeCityRows struct {
	rows    []cityRow
	pos     int
	scanErr error
	iterErr error
	closed  bool
}

func (f *fakeCityRows) Next() bool {
	if f.pos >= len(f.rows) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeCityRows) Scan(dest ...any) error {
	if f.scanErr != nil {
		return f.scanErr
	}
	row := f.rows[f.pos-1]
	*dest[0].(*int64) = row.id
	*dest[1].(*[]byte) = []byte(row.doc)
	return nil
}

func (f *fakeCityRows) Err() error { return f.iterErr }

func (f *fakeCityRows) Close() { f.closed = true }

func newTestDistrictRepository() (*DistrictRepository, *bytes.Buffer) {
	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return &DistrictRepository{logger: logger}, &logs
}

func TestScanDistricts_SkipsMalformedAndKeepsOrder(t *testing.T) {
	repo, logs := newTestDistrictRepository()
	rows := &fakeCityRows{rows: []cityRow{
		{id: 1, doc: `{"name":"해운대구","lat":35.1631,"lon":129.1636,"nx":102,"ny":42,"base_depth":1.0}`},
		{id: 2, doc: `{"name":"강남구","lat":37.5172}`},
		{id: 3, doc: `not json`},
		{id: 4, doc: `{"name":"강남구","lat":37.5172,"lon":127.0474,"nx":61,"ny":126,"base_depth":0.5}`},
	}}

	districts, err := repo.scanDistricts(rows)

	require.NoError(t, err)
	require.Len(t, districts, 2)
	assert.Equal(t, "해운대구", districts[0].Name)
	assert.Equal(t, "강남구", districts[1].Name)
	assert.Equal(t, 61, districts[1].GridX)
	assert.True(t, rows.closed)
	assert.Contains(t, logs.String(), `"city_id":2`)
	assert.Contains(t, logs.String(), `"city_id":3`)
}

func TestScanDistricts_AllMalformedYieldsEmptyList(t *testing.T) {
	repo, _ := newTestDistrictRepository()
	rows := &fakeCityRows{rows: []cityRow{{id: 1, doc: `{}`}}}

	districts, err := repo.scanDistricts(rows)

	require.NoError(t, err)
	assert.Empty(t, districts)
}

func TestScanDistricts_RowErrors(t *testing.T) {
	tests := []struct {
		name    string
		rows    *fakeCityRows
		errPart string
	}{
		{
			name:    "scan error",
			rows:    &fakeCityRows{rows: []cityRow{{id: 1, doc: `{}`}}, scanErr: errors.New("conn closed")},
			errPart: "failed to scan city row",
		},
		{
			name:    "iteration error",
			rows:    &fakeCityRows{iterErr: errors.New("unexpected EOF")},
			errPart: "error cities iteration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := newTestDistrictRepository()

			districts, err := repo.scanDistricts(tt.rows)

			require.Error(t, err)
			assert.Nil(t, districts)
			assert.Contains(t, err.Error(), tt.errPart)
			assert.True(t, tt.rows.closed)
		})
	}
}

func TestListDistricts_PropagatesUnavailableStore(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	repo := NewDistrictRepository(failingPool{err: postgres.ErrNotConfigured}, logger)

	districts, err := repo.ListDistricts(context.Background())
	assert.Nil(t, districts)
	assert.True(t, errors.Is(err, postgres.ErrNotConfigured))
}
