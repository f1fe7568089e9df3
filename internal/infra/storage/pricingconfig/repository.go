package pricingconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/CMP-EstimateService/internal/domain"
	"github.com/m04kA/CMP-EstimateService/pkg/dbmetrics"
	"github.com/m04kA/CMP-EstimateService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var configColumns = []string{
	"id",
	"version",
	"service_prices",
	"room_prices",
	"addon_prices",
	"duration_coefficients",
	"discount_policy",
	"created_at",
	"updated_at",
}

// Repository репозиторий версий rate card
// Таблица append-only: обновление конфигурации добавляет строку с новой версией,
// активной считается строка с максимальной версией
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория rate card
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActive получает действующую (последнюю) версию rate card
func (r *Repository) GetActive(ctx context.Context) (*domain.PricingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("pricing_config").
		OrderBy("version DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanConfig(executor.QueryRowContext(ctx, query, args...), "GetActive")
}

// GetByVersion получает конкретную версию rate card
func (r *Repository) GetByVersion(ctx context.Context, version int) (*domain.PricingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("pricing_config").
		Where(squirrel.Eq{"version": version}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVersion - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanConfig(executor.QueryRowContext(ctx, query, args...), "GetByVersion")
}

// Create вставляет новую версию rate card
// Номер версии задаёт вызывающий (текущая + 1 внутри сериализуемой транзакции);
// уникальный индекс по version страхует от гонки параллельных сохранений
func (r *Repository) Create(ctx context.Context, config *domain.PricingConfig) (*domain.PricingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	servicePrices, roomPrices, addonPrices, durations, discount, err := encodePayloads(config)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("pricing_config").
		Columns(
			"version",
			"service_prices",
			"room_prices",
			"addon_prices",
			"duration_coefficients",
			"discount_policy",
		).
		Values(
			config.Version,
			servicePrices,
			roomPrices,
			addonPrices,
			durations,
			discount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateVersion
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// ListVersions получает все версии rate card, новые первыми
func (r *Repository) ListVersions(ctx context.Context) ([]*domain.PricingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("pricing_config").
		OrderBy("version DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListVersions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListVersions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.PricingConfig, 0)

	for rows.Next() {
		var config domain.PricingConfig
		var servicePrices, roomPrices, addonPrices, durations, discount []byte
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&config.ID,
			&config.Version,
			&servicePrices,
			&roomPrices,
			&addonPrices,
			&durations,
			&discount,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListVersions - scan row: %v", ErrScanRow, err)
		}

		if err := decodePayloads(&config, servicePrices, roomPrices, addonPrices, durations, discount); err != nil {
			return nil, err
		}

		config.CreatedAt = createdAt.Time
		config.UpdatedAt = updatedAt.Time

		configs = append(configs, &config)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListVersions - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

// scanConfig сканирует одну строку rate card
func (r *Repository) scanConfig(row *sql.Row, op string) (*domain.PricingConfig, error) {
	var config domain.PricingConfig
	var servicePrices, roomPrices, addonPrices, durations, discount []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&config.ID,
		&config.Version,
		&servicePrices,
		&roomPrices,
		&addonPrices,
		&durations,
		&discount,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan config: %v", ErrScanRow, op, err)
	}

	if err := decodePayloads(&config, servicePrices, roomPrices, addonPrices, durations, discount); err != nil {
		return nil, err
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// BeginTx начинает новую транзакцию и возвращает контекст с ней
func (r *Repository) BeginTx(ctx context.Context, opts *sql.TxOptions) (context.Context, TxExecutor, error) {
	// Пытаемся привести к TxBeginner интерфейсу (dbmetrics.DB реализует этот интерфейс)
	if txBeginner, ok := r.db.(TxBeginner); ok {
		tx, err := txBeginner.BeginTx(ctx, opts)
		if err != nil {
			return ctx, nil, fmt.Errorf("%w: BeginTx: %v", ErrTransaction, err)
		}
		return dbmetrics.WithTx(ctx, tx), tx, nil
	}

	// Fallback для обычного *sql.DB
	if db, ok := r.db.(*sql.DB); ok {
		tx, err := db.BeginTx(ctx, opts)
		if err != nil {
			return ctx, nil, fmt.Errorf("%w: BeginTx: %v", ErrTransaction, err)
		}
		wrappedTx := &dbmetrics.SqlTxWrapper{Tx: tx}
		return dbmetrics.WithTx(ctx, wrappedTx), wrappedTx, nil
	}

	return ctx, nil, fmt.Errorf("%w: db type not supported", ErrTransaction)
}
