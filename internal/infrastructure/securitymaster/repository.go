package securitymaster

import (
	"context"
	"fmt"

	domain "main/internal/domain/entity/instruments"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	return &Repository{pool: pool}, nil
}

func (r *Repository) Close() {
	if r == nil || r.pool == nil {
		return
	}
	r.pool.Close()
}

func (r *Repository) ListSectors(ctx context.Context) ([]domain.Sector, error) {
	const query = `
		SELECT sector_id, sector_name
		FROM encoredb.sectors
		ORDER BY sector_name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sectors []domain.Sector
	for rows.Next() {
		var sector domain.Sector
		if err := rows.Scan(&sector.SectorID, &sector.SectorName); err != nil {
			return nil, err
		}
		sectors = append(sectors, sector)
	}
	return sectors, rows.Err()
}

func (r *Repository) ListCohorts(ctx context.Context, sectorID int64) ([]domain.Cohort, error) {
	const query = `
		SELECT cohort_id, sector_id, cohort_name
		FROM encoredb.cohorts
		WHERE sector_id = $1
		ORDER BY cohort_name`
	rows, err := r.pool.Query(ctx, query, sectorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cohorts []domain.Cohort
	for rows.Next() {
		var cohort domain.Cohort
		if err := rows.Scan(&cohort.CohortID, &cohort.SectorID, &cohort.CohortName); err != nil {
			return nil, err
		}
		cohorts = append(cohorts, cohort)
	}
	return cohorts, rows.Err()
}

// ListCohortInstruments returns a cohort's instruments at their latest
// effective weight, primaries first, heaviest first.
func (r *Repository) ListCohortInstruments(ctx context.Context, cohortID int64) ([]domain.CohortInstrument, error) {
	const query = `
		SELECT
			i.ticker,
			i.name,
			w.weight_pct,
			w.is_primary,
			w.effective_date,
			w.source
		FROM encoredb.instrument_cohort_weights w
		JOIN encoredb.instruments i ON i.instrument_uid = w.instrument_uid
		WHERE w.cohort_id = $1
		  AND w.effective_date = (
			SELECT MAX(w2.effective_date)
			FROM encoredb.instrument_cohort_weights w2
			WHERE w2.instrument_uid = w.instrument_uid
			  AND w2.cohort_id = w.cohort_id
		  )
		ORDER BY w.is_primary DESC, w.weight_pct DESC, i.ticker`
	rows, err := r.pool.Query(ctx, query, cohortID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.CohortInstrument
	for rows.Next() {
		var member domain.CohortInstrument
		err := rows.Scan(
			&member.Ticker,
			&member.Name,
			&member.WeightPct,
			&member.IsPrimary,
			&member.EffectiveDate,
			&member.Source,
		)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

// listIssuesQuery flags instruments in the latest positions snapshot whose
// sector or cohort assignment is missing or ambiguous, with an explicit
// reason per row.
const listIssuesQuery = `
	WITH latest_positions AS (
		SELECT *
		FROM encoredb.positions_eod_snapshot
		WHERE snapshot_date = (
			SELECT MAX(snapshot_date)
			FROM encoredb.positions_eod_snapshot
		)
	),

	primary_candidates AS (
		SELECT
			w.instrument_uid,
			w.cohort_id,
			w.effective_date
		FROM encoredb.instrument_cohort_weights w
		WHERE w.is_primary = true
	),

	primary_valid AS (
		SELECT
			p.instrument_uid,
			MAX(w.effective_date) AS effective_date
		FROM latest_positions p
		LEFT JOIN primary_candidates w
		  ON w.instrument_uid = p.instrument_uid
		 AND w.effective_date <= p.snapshot_date
		GROUP BY p.instrument_uid
	),

	primary_count AS (
		SELECT
			p.instrument_uid,
			COUNT(*) AS primary_count
		FROM latest_positions p
		JOIN primary_candidates w
		  ON w.instrument_uid = p.instrument_uid
		 AND w.effective_date <= p.snapshot_date
		GROUP BY p.instrument_uid
	)

	SELECT
		i.ticker,
		i.name,

		CASE
			WHEN NOT EXISTS (
				SELECT 1
				FROM encoredb.instrument_cohort_weights w
				WHERE w.instrument_uid = p.instrument_uid
			)
				THEN 'No cohort assignments exist'

			WHEN pv.effective_date IS NULL
				THEN 'Primary cohort exists but only in the future'

			WHEN pc.primary_count > 1
				THEN 'Multiple primary cohorts valid for date'

			WHEN s.sector_id IS NULL
				THEN 'Primary cohort has no sector'

			ELSE 'Unknown issue'
		END AS issue_reason

	FROM latest_positions p
	JOIN encoredb.instruments i
	  ON i.instrument_uid = p.instrument_uid

	LEFT JOIN primary_valid pv
	  ON pv.instrument_uid = p.instrument_uid

	LEFT JOIN primary_count pc
	  ON pc.instrument_uid = p.instrument_uid

	LEFT JOIN encoredb.instrument_cohort_weights w
	  ON w.instrument_uid = p.instrument_uid
	 AND w.is_primary = true
	 AND w.effective_date = pv.effective_date

	LEFT JOIN encoredb.cohorts c
	  ON c.cohort_id = w.cohort_id

	LEFT JOIN encoredb.sectors s
	  ON s.sector_id = c.sector_id

	WHERE
		pv.effective_date IS NULL
		OR pc.primary_count > 1
		OR s.sector_id IS NULL

	ORDER BY i.ticker`

func (r *Repository) ListIssues(ctx context.Context) ([]domain.Issue, error) {
	rows, err := r.pool.Query(ctx, listIssuesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []domain.Issue
	for rows.Next() {
		var issue domain.Issue
		if err := rows.Scan(&issue.Ticker, &issue.Name, &issue.Reason); err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	return issues, rows.Err()
}
