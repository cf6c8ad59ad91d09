// Package periodrepo manages repository layer of fiscal periods.
package periodrepo

import (
	"context"
	"database/sql"

	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/dbpkg"
	"github.com/finvera/ledger-core/pkg/errorspkg"

	"github.com/rs/zerolog"
)

// RepoPGS facilitates fiscal period repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns fiscal period RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const getQuery = `
SELECT entity_id, year, period, status
FROM fiscal_periods
WHERE entity_id = $1 AND year = $2 AND period = $3
`

// Get returns the recorded state of a fiscal period. Periods that were never
// recorded are open.
func (r *RepoPGS) Get(ctx context.Context, entityID int32, year, period int) (domain.FiscalPeriod, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, entityID, year, period)

	var p domain.FiscalPeriod

	err := row.Scan(&p.EntityID, &p.Year, &p.Period, &p.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.FiscalPeriod{
				EntityID: entityID,
				Year:     year,
				Period:   period,
				Status:   domain.PeriodOpen,
			}, nil
		}

		l.Error().Err(err).Send()

		return p, errorspkg.ErrInternal
	}

	return p, nil
}

const setStatusQuery = `
INSERT INTO fiscal_periods (entity_id, year, period, status)
VALUES ($1, $2, $3, $4)
ON CONFLICT (entity_id, year, period) DO UPDATE SET status = EXCLUDED.status
RETURNING entity_id, year, period, status
`

// SetStatus records a fiscal period as open or closed.
func (r *RepoPGS) SetStatus(ctx context.Context, entityID int32, year, period int, status domain.PeriodStatus) (domain.FiscalPeriod, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, setStatusQuery, entityID, year, period, status)

	var p domain.FiscalPeriod

	err := row.Scan(&p.EntityID, &p.Year, &p.Period, &p.Status)
	if err != nil {
		l.Error().Err(err).Send()
		return p, errorspkg.ErrInternal
	}

	return p, nil
}
