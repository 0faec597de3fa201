package payment

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aquatour/crm-backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type PaymentRepository interface {
	FindAll(ctx context.Context) ([]model.PaymentEntity, error)
	FindByID(ctx context.Context, id uint64) (*model.PaymentEntity, error)
	FindByReservation(ctx context.Context, reservationID uint64) ([]model.PaymentEntity, error)
	FindByEmployee(ctx context.Context, employeeID uint64) ([]model.PaymentEntity, error)
	Insert(ctx context.Context, w *model.PaymentWrite) (uint64, error)
	Update(ctx context.Context, id uint64, w *model.PaymentWrite) error
	Delete(ctx context.Context, id uint64) (bool, error)
	CountByReservation(ctx context.Context, reservationID uint64) (int64, error)
}

func NewPaymentRepository(conn *sqlx.DB) PaymentRepository {
	return &SQL{conn: conn}
}

const getPaymentBase = `SELECT p.id, p.paid_at, p.method, p.issuing_bank, p.reference_number,
p.amount, p.reservation_id, p.quote_id FROM payments p`

func (s *SQL) FindAll(ctx context.Context) ([]model.PaymentEntity, error) {
	return s.list(ctx, getPaymentBase+" ORDER BY p.paid_at DESC")
}

func (s *SQL) FindByReservation(ctx context.Context, reservationID uint64) ([]model.PaymentEntity, error) {
	return s.list(ctx, getPaymentBase+" WHERE p.reservation_id = ? ORDER BY p.paid_at DESC", reservationID)
}

func (s *SQL) FindByEmployee(ctx context.Context, employeeID uint64) ([]model.PaymentEntity, error) {
	query := getPaymentBase + `
INNER JOIN reservations r ON p.reservation_id = r.id
WHERE r.employee_id = ?
ORDER BY p.paid_at DESC`
	return s.list(ctx, query, employeeID)
}

func (s *SQL) list(ctx context.Context, query string, args ...any) ([]model.PaymentEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]model.PaymentEntity, 0)
	for rows.Next() {
		var entity model.PaymentEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		payments = append(payments, entity)
	}
	return payments, rows.Err()
}

func (s *SQL) FindByID(ctx context.Context, id uint64) (*model.PaymentEntity, error) {
	var entity model.PaymentEntity
	err := s.conn.QueryRowxContext(ctx, getPaymentBase+" WHERE p.id = ? LIMIT 1", id).StructScan(&entity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

const insertPaymentQuery = `INSERT INTO payments (paid_at, method, issuing_bank, reference_number,
amount, reservation_id, quote_id) VALUES (COALESCE(?, NOW()), ?, ?, ?, ?, ?, ?)`

func (s *SQL) Insert(ctx context.Context, w *model.PaymentWrite) (uint64, error) {
	result, err := s.conn.ExecContext(ctx, insertPaymentQuery,
		w.PaidAt, w.Method, w.IssuingBank, w.ReferenceNumber, w.Amount,
		w.ReservationID, w.QuoteID)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, w *model.PaymentWrite) error {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 8)
	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if w.PaidAt != nil {
		add("paid_at", *w.PaidAt)
	}
	if w.Method != nil {
		add("method", *w.Method)
	}
	if w.IssuingBank != nil {
		add("issuing_bank", *w.IssuingBank)
	}
	if w.ReferenceNumber != nil {
		add("reference_number", *w.ReferenceNumber)
	}
	if w.Amount != nil {
		add("amount", *w.Amount)
	}
	// a payment points at exactly one record, so repointing clears the
	// other column
	if w.ReservationID != nil {
		add("reservation_id", *w.ReservationID)
		sets = append(sets, "quote_id = NULL")
	}
	if w.QuoteID != nil {
		add("quote_id", *w.QuoteID)
		sets = append(sets, "reservation_id = NULL")
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := s.conn.ExecContext(ctx, "UPDATE payments SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, "DELETE FROM payments WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) CountByReservation(ctx context.Context, reservationID uint64) (int64, error) {
	var count int64
	err := s.conn.QueryRowxContext(ctx, "SELECT COUNT(*) FROM payments WHERE reservation_id = ?", reservationID).Scan(&count)
	return count, err
}
