package directory

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/flood_risk_system/internal/directory/mocks"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/observability"
	"github.com/shenikar/flood_risk_system/pkg/postgres"
)

func newTestDirectory(t *testing.T, withStore bool) (*Directory, *mocks.MockDocumentStore, *observability.Metrics) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockDocumentStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	metrics := observability.NewMetricsForTesting()

	var store DocumentStore
	if withStore {
		store = storeMock
	}
	return NewDirectory(store, time.Second, metrics, logger), storeMock, metrics
}

func TestLookup_FromStore(t *testing.T) {
	dir, storeMock, metrics := newTestDirectory(t, true)
	stored := []models.District{
		{Name: "해운대구", GridX: 102, GridY: 42, BaseDepth: 1.0},
		{Name: "강남구", GridX: 61, GridY: 126, BaseDepth: 0.5},
	}

	storeMock.EXPECT().ListDistricts(gomock.Any()).Return(stored, nil).Times(1)

	assert.Equal(t, stored, dir.Lookup(context.Background()))
	assert.Zero(t, testutil.CollectAndCount(metrics.Degradations))
}

func TestLookup_StoreNotConfigured(t *testing.T) {
	dir, _, metrics := newTestDirectory(t, false)

	got := dir.Lookup(context.Background())

	assert.Equal(t, FallbackDistricts(), got)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Degradations.WithLabelValues("directory", "not_configured")))
}

func TestLookup_FallbackReasons(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		reason string
	}{
		{name: "unconfigured handle", err: postgres.ErrNotConfigured, reason: "not_configured"},
		{name: "failed initialization", err: &postgres.UnavailableError{Err: errors.New("connection refused")}, reason: "unavailable"},
		{name: "scan timeout", err: context.DeadlineExceeded, reason: "timeout"},
		{name: "query error", err: errors.New("relation \"cities\" does not exist"), reason: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, storeMock, metrics := newTestDirectory(t, true)
			storeMock.EXPECT().ListDistricts(gomock.Any()).Return(nil, tt.err).Times(1)

			got := dir.Lookup(context.Background())

			assert.Equal(t, FallbackDistricts(), got)
			assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Degradations.WithLabelValues("directory", tt.reason)))
		})
	}
}

func TestLookup_LogLevelByReason(t *testing.T) {
	tests := []struct {
		name      string
		withStore bool
		storeErr  error
		wantWarn  bool
	}{
		{name: "store not configured", withStore: false, wantWarn: false},
		{name: "handle not configured", withStore: true, storeErr: postgres.ErrNotConfigured, wantWarn: false},
		{name: "store unavailable", withStore: true, storeErr: &postgres.UnavailableError{Err: errors.New("connection refused")}, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, storeMock, metrics := newTestDirectory(t, tt.withStore)
			if tt.withStore {
				storeMock.EXPECT().ListDistricts(gomock.Any()).Return(nil, tt.storeErr).Times(1)
			}
			var logs bytes.Buffer
			dir.logger.SetOutput(&logs)
			dir.logger.SetLevel(logrus.InfoLevel)

			assert.Equal(t, FallbackDistricts(), dir.Lookup(context.Background()))

			if tt.wantWarn {
				assert.Contains(t, logs.String(), "District store unavailable")
			} else {
				assert.Empty(t, logs.String())
			}
			assert.Equal(t, 1, testutil.CollectAndCount(metrics.Degradations))
		})
	}
}

func TestLookup_EmptyStoreFallsBack(t *testing.T) {
	dir, storeMock, _ := newTestDirectory(t, true)
	storeMock.EXPECT().ListDistricts(gomock.Any()).Return([]models.District{}, nil).Times(1)

	assert.Equal(t, FallbackDistricts(), dir.Lookup(context.Background()))
}

func TestLookup_DegradeIsPerRequest(t *testing.T) {
	dir, storeMock, _ := newTestDirectory(t, true)
	stored := []models.District{{Name: "연수구", GridX: 56, GridY: 123, BaseDepth: 0.2}}

	gomock.InOrder(
		storeMock.EXPECT().ListDistricts(gomock.Any()).Return(nil, errors.New("temporary failure")),
		storeMock.EXPECT().ListDistricts(gomock.Any()).Return(stored, nil),
	)

	assert.Equal(t, FallbackDistricts(), dir.Lookup(context.Background()))
	assert.Equal(t, stored, dir.Lookup(context.Background()))
}

func TestLookup_AppliesTimeout(t *testing.T) {
	dir, storeMock, _ := newTestDirectory(t, true)

	storeMock.EXPECT().ListDistricts(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]models.District, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "store scan must run under a deadline")
			return []models.District{DefaultDistrict}, nil
		}).Times(1)

	dir.Lookup(context.Background())
}

func TestFallbackDistricts_ReturnsCopy(t *testing.T) {
	first := FallbackDistricts()
	first[0].Name = "changed"

	assert.Equal(t, "강남구", FallbackDistricts()[0].Name)
	assert.Len(t, FallbackDistricts(), 33)
}
