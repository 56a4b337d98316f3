package postgres

import (
	"context"
	"time"

	"zerowaste-exchange/internal/domain/reservation"
	"zerowaste-exchange/internal/infra"
	"zerowaste-exchange/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type reservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) shared.ReservationRepository {
	return &reservationRepository{pool: pool}
}

const insertReservation = `
INSERT INTO reservations (id, offer_id, batch_id, user_id, qty, window_start, window_end, status, code, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`

func (r *reservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.pool.Exec(ctx, insertReservation,
		res.ID(), res.OfferID(), res.BatchID(), res.UserID(), res.Qty(),
		res.Window().Start(), res.Window().End(),
		res.Status().String(), res.Code().String(), res.CreatedAt(),
	)
	if err != nil {
		// The partial unique index on live codes surfaces collisions here.
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "confirmation code in use", err)
		}
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to create reservation", err)
	}
	return nil
}

const selectReservation = `
SELECT id, offer_id, batch_id, user_id, qty, window_start, window_end, status, code, created_at, updated_at
FROM reservations`

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.pool.QueryRow(ctx, selectReservation+" WHERE id = $1", id)
	res, err := scanReservation(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to find reservation", err)
	}
	return res, nil
}

func (r *reservationRepository) FindByCode(ctx context.Context, code reservation.Code) (*reservation.Reservation, error) {
	// Codes can recur across terminal reservations; the newest row is the
	// one the holder is standing at the counter with.
	row := r.pool.QueryRow(ctx, selectReservation+" WHERE code = $1 ORDER BY created_at DESC LIMIT 1", code.String())
	res, err := scanReservation(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "no reservation for code", err)
		}
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to find reservation by code", err)
	}
	return res, nil
}

func (r *reservationRepository) CodeInUse(ctx context.Context, code reservation.Code) (bool, error) {
	var inUse bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reservations WHERE code = $1 AND status = 'reserved')`,
		code.String(),
	).Scan(&inUse)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindStoreFailure, "failed to check code", err)
	}
	return inUse, nil
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*reservation.Reservation, error) {
	return r.query(ctx, selectReservation+" WHERE user_id = $1 ORDER BY created_at DESC, id", userID)
}

func (r *reservationRepository) ListSweepable(ctx context.Context, now time.Time) ([]*reservation.Reservation, error) {
	return r.query(ctx, selectReservation+" WHERE status = 'reserved' AND window_end < $1 ORDER BY window_end, id", now)
}

// TransitionStatus compiles to a single conditional UPDATE, which is the
// compare-and-swap: concurrent confirm and sweep can never both win.
func (r *reservationRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to reservation.Status, now time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE reservations SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`,
		id, from.String(), to.String(), now,
	)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindStoreFailure, "failed to transition reservation", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *reservationRepository) RecordPickup(ctx context.Context, reservationID, staffID uuid.UUID, pickedUpAt time.Time) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO pickups (reservation_id, staff_id, picked_up_at) VALUES ($1, $2, $3)
		 ON CONFLICT (reservation_id) DO NOTHING`,
		reservationID, staffID, pickedUpAt,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to record pickup", err)
	}
	return nil
}

func (r *reservationRepository) query(ctx context.Context, sql string, args ...any) ([]*reservation.Reservation, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to list reservations", err)
	}
	defer rows.Close()

	var out []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to scan reservation", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to list reservations", err)
	}
	return out, nil
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, offerID, batchID, userID uuid.UUID
		qty                          int
		windowStart, windowEnd       time.Time
		status, rawCode              string
		createdAt, updatedAt         time.Time
	)
	if err := row.Scan(&id, &offerID, &batchID, &userID, &qty, &windowStart, &windowEnd, &status, &rawCode, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	code, err := reservation.NewCode(rawCode)
	if err != nil {
		return nil, err
	}
	window, err := reservation.NewPickupWindow(windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		id, offerID, batchID, userID, qty, window,
		reservation.Status(status), code, createdAt, updatedAt,
	), nil
}
