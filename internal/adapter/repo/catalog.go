package repo

import (
	"context"

	"github.com/finleyross14/PeakOrderApp/internal/domain"
)

// The charity catalog and the historical peak-order series are static
// reference data, identical in every deployment, so the PostgreSQL store
// serves them from memory instead of a table.

func (s *PG) ListCharities(_ context.Context) ([]domain.Charity, error) {
	return domain.CharityCatalog(), nil
}

func (s *PG) ListHistory(_ context.Context) ([]domain.HistoricalDataPoint, error) {
	return domain.HistoricalSeries(), nil
}
