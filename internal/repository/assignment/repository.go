package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
)

const (
	table = "locker_assignments"

	uniqueViolation = "23505"
	openSlotIndex   = "ux_locker_assignments_open_slot"
)

var selectColumns = []string{
	"id",
	"appointment_id",
	"locker_number",
	"to_char(scheduled_date, 'YYYY-MM-DD')",
	"time_slot",
	"products",
	"total_slots_used",
	"status",
	"capacity_exceeded",
	"created_at",
	"updated_at",
}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewAssignmentRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, a *model.LockerAssignment) error {
	const op = "repository.Create"

	date, err := parseDate(a.ScheduledDate)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	q := r.sb.
		Insert(table).
		Columns(
			"id", "appointment_id", "locker_number", "scheduled_date", "time_slot",
			"products", "total_slots_used", "status", "capacity_exceeded", "created_at", "updated_at",
		).
		Values(
			a.ID, a.AppointmentID, a.LockerNumber, date, a.TimeSlot,
			ProductsFromModel(a.Products), a.TotalSlotsUsed, string(a.Status), a.CapacityExceeded, a.CreatedAt, a.UpdatedAt,
		)

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.pool.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	return nil
}

func (r *repository) AssignmentByID(ctx context.Context, id uuid.UUID) (*model.LockerAssignment, error) {
	const op = "repository.AssignmentByID"

	q := r.sb.
		Select(selectColumns...).
		From(table).
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	e, err := scanAssignment(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(e), nil
}

// List returns matching assignments in insertion order.
func (r *repository) List(ctx context.Context, filter model.AssignmentFilter) ([]model.LockerAssignment, error) {
	const op = "repository.List"

	q, err := applyFilter(r.sb.Select(selectColumns...).From(table), filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sqlStr, args, err := q.OrderBy("created_at", "locker_number").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []model.LockerAssignment
	for rows.Next() {
		e, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, *EntityToModel(e))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AssignmentStatus) error {
	return r.update(ctx, "repository.UpdateStatus", id, sq.Eq{"status": string(status)})
}

func (r *repository) UpdateSchedule(ctx context.Context, id uuid.UUID, date, timeSlot string) error {
	d, err := parseDate(date)
	if err != nil {
		return fmt.Errorf("repository.UpdateSchedule: %w", err)
	}

	return r.update(ctx, "repository.UpdateSchedule", id, sq.Eq{"scheduled_date": d, "time_slot": timeSlot})
}

func (r *repository) update(ctx context.Context, op string, id uuid.UUID, set sq.Eq) error {
	set["updated_at"] = time.Now().UTC()

	q := r.sb.
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	if ct.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "repository.Delete"

	sqlStr, args, err := r.sb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func applyFilter(q sq.SelectBuilder, f model.AssignmentFilter) (sq.SelectBuilder, error) {
	if f.AppointmentID != "" {
		q = q.Where(sq.Eq{"appointment_id": f.AppointmentID})
	}
	if f.LockerNumber != nil {
		q = q.Where(sq.Eq{"locker_number": *f.LockerNumber})
	}
	if f.ScheduledDate != "" {
		d, err := parseDate(f.ScheduledDate)
		if err != nil {
			return q, err
		}
		q = q.Where(sq.Eq{"scheduled_date": d})
	}
	if f.TimeSlot != "" {
		q = q.Where(sq.Eq{"time_slot": f.TimeSlot})
	}
	if len(f.Statuses) > 0 {
		q = q.Where(sq.Eq{"status": lo.Map(f.Statuses, func(s model.AssignmentStatus, _ int) string { return string(s) })})
	}
	return q, nil
}

func scanAssignment(row pgx.Row) (*AssignmentEntity, error) {
	var e AssignmentEntity
	err := row.Scan(
		&e.ID,
		&e.AppointmentID,
		&e.LockerNumber,
		&e.ScheduledDate,
		&e.TimeSlot,
		&e.Products,
		&e.TotalSlotsUsed,
		&e.Status,
		&e.CapacityExceeded,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, errors.Join(model.ErrValidation, err)
	}
	return d, nil
}

// mapError turns a violation of the open-slot unique index into
// model.ErrLockerUnavailable.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == openSlotIndex {
		return model.ErrLockerUnavailable
	}
	return err
}
