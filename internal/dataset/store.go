package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"pharmadash.molview.org/internal/models"
	"pharmadash.molview.org/internal/observability"
)

const (
	defaultPageSize = 1000
	maxPageAttempts = 3
)

// StoreConfig configures the hosted table store load.
type StoreConfig struct {
	URL      string
	PageSize int
}

// LoadStore reads the full products table through a paginated fetch loop.
// Each page is retried with exponential backoff before the load is aborted,
// so a transient failure on one page does not throw away the whole session.
func LoadStore(ctx context.Context, cfg StoreConfig, logger *slog.Logger) (*Dataset, error) {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	pool, err := pgxpool.New(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to store: %w", err)
	}
	defer pool.Close()

	var records []models.ProductRecord
	for offset := 0; ; offset += pageSize {
		page, err := fetchPage(ctx, pool, pageSize, offset, logger)
		if err != nil {
			return nil, fmt.Errorf("load aborted at offset %d: %w", offset, err)
		}
		records = append(records, page...)
		if len(page) < pageSize {
			break
		}
	}

	observability.RowsLoaded.Add(float64(len(records)))
	logger.Info("store load complete", "rows", len(records))

	// The hosted table has a fixed schema, so every column is present.
	columns := make(map[models.Column]bool, len(models.AllColumns))
	for _, c := range models.AllColumns {
		columns[c] = true
	}
	return New(records, columns), nil
}

func fetchPage(ctx context.Context, pool *pgxpool.Pool, limit, offset int, logger *slog.Logger) ([]models.ProductRecord, error) {
	var lastErr error
	for attempt := 1; attempt <= maxPageAttempts; attempt++ {
		page, err := queryPage(ctx, pool, limit, offset)
		if err == nil {
			return page, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		observability.LoadRetries.Inc()
		backoff := time.Duration(1<<(attempt-1)) * 250 * time.Millisecond
		logger.Warn("page fetch failed, retrying",
			"offset", offset, "attempt", attempt, "backoff", backoff, "error", err)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

func queryPage(ctx context.Context, pool *pgxpool.Pool, limit, offset int) ([]models.ProductRecord, error) {
	rows, err := pool.Query(ctx, `
		SELECT region, country, molecule, product, corporation, rx_otc, launch_year, atc1
		FROM products
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var page []models.ProductRecord
	for rows.Next() {
		var rec models.ProductRecord
		var region, country, molecule, product, corporation, rxOTC, atc1 *string
		var launchYear *int
		err := rows.Scan(&region, &country, &molecule, &product, &corporation, &rxOTC, &launchYear, &atc1)
		if err != nil {
			return nil, err
		}
		rec.Region = deref(region)
		rec.Country = deref(country)
		rec.Molecule = deref(molecule)
		rec.Product = deref(product)
		rec.Corporation = deref(corporation)
		rec.RxOTC = deref(rxOTC)
		rec.ATC1 = deref(atc1)
		if launchYear != nil {
			rec.LaunchYear = fmt.Sprintf("%d", *launchYear)
		}
		page = append(page, rec)
	}
	return page, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
