package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotConfigured возвращается, если DATABASE_URL не задан
var ErrNotConfigured = errors.New("postgres: database url is not configured")

// UnavailableError - хранилище недоступно до конца жизни процесса, т.к. первичное подключение не удалось
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("postgres: store unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

const defaultConnectTimeout = 5 * time.Second

// Handle - лениво инициализируемый пул соединений с семантикой "подключиться один раз".
// Первый вызов Pool выполняет подключение, все последующие возвращают тот же результат.
type Handle struct {
	url            string
	connectTimeout time.Duration

	// Семафор вместо мьютекса: ожидающие вызовы уважают свой контекст
	sem       chan struct{}
	attempted bool
	pool      *pgxpool.Pool
	err       error
}

// NewHandle создает handle без подключения к базе.
// connectTimeout ограничивает первичное подключение; неположительное значение заменяется на 5s.
func NewHandle(databaseURL string, connectTimeout time.Duration) *Handle {
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}
	return &Handle{
		url:            databaseURL,
		connectTimeout: connectTimeout,
		sem:            make(chan struct{}, 1),
	}
}

// Pool возвращает пул или типизированную ошибку недоступности.
// Пока идет первичное подключение, остальные вызовы ждут не дольше своего ctx.
func (h *Handle) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	if h.url == "" {
		return nil, ErrNotConfigured
	}

	select {
	case h.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-h.sem }()

	if !h.attempted {
		h.attempted = true
		// Отдельный контекст: отмена одного запроса не должна навсегда "отравить" handle
		connectCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.connectTimeout)
		defer cancel()
		h.pool, h.err = NewPostgresDB(connectCtx, h.url)
		if h.err != nil {
			h.err = &UnavailableError{Err: h.err}
		}
	}
	return h.pool, h.err
}

// Close закрывает пул, если он был создан
func (h *Handle) Close() {
	h.sem <- struct{}{}
	defer func() { <-h.sem }()
	if h.pool != nil {
		h.pool.Close()
	}
}

// NewPostgresDB создает новый пул соединений PostgreSQL
func NewPostgresDB(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	// Проверяем соединение с базой данных
	err = dbpool.Ping(ctx)
	if err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
	}

	return dbpool, nil
}
