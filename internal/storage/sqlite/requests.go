package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
)

type RequestsRepo struct {
	db *sql.DB
}

func NewRequestsRepo(db *sql.DB) *RequestsRepo {
	return &RequestsRepo{db: db}
}

func (r *RequestsRepo) Create(ctx context.Context, req *core.ServiceRequest) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	if req.Status == "" {
		req.Status = core.StatusPending
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO service_requests (room_number, request_type, details, status, created_at) VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, query, req.RoomNumber, req.RequestType, req.Details, req.Status, req.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert service request: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	req.ID = id

	return tx.Commit()
}

func (r *RequestsRepo) List(ctx context.Context, filter core.ListFilter) ([]core.ServiceRequest, error) {
	query := `SELECT id, room_number, request_type, details, status, created_at FROM service_requests WHERE 1=1`
	var args []any

	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	if filter.RoomNumber != "" {
		query += ` AND room_number = ?`
		args = append(args, filter.RoomNumber)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query service requests: %w", err)
	}
	defer rows.Close()

	var requests []core.ServiceRequest
	for rows.Next() {
		var req core.ServiceRequest
		var details sql.NullString
		if err := rows.Scan(&req.ID, &req.RoomNumber, &req.RequestType, &details, &req.Status, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan service request: %w", err)
		}
		req.Details = details.String
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *RequestsRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE service_requests SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *RequestsRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM service_requests`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count service requests: %w", err)
	}
	return count, nil
}
