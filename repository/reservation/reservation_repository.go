package reservation

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

type ReservationRepository interface {
	FindAll(ctx context.Context) ([]model.ReservationEntity, error)
	FindByID(ctx context.Context, id uint64) (*model.ReservationEntity, error)
	FindByEmployee(ctx context.Context, employeeID uint64) ([]model.ReservationEntity, error)
	Insert(ctx context.Context, w *model.ReservationWrite) (uint64, error)
	Update(ctx context.Context, id uint64, w *model.ReservationWrite) error
	Delete(ctx context.Context, id uint64) (bool, error)
	CountByClient(ctx context.Context, clientID uint64) (int64, error)
	CountByPackage(ctx context.Context, packageID uint64) (int64, error)
}

func NewReservationRepository(conn *sqlx.DB) ReservationRepository {
	return &SQL{conn: conn}
}

const getReservationBase = `SELECT r.id, r.reserved_at, r.people_count, r.total_price, r.start_date,
r.end_date, r.client_id, r.package_id, r.destination_id, r.destination_price, r.employee_id,
u.first_name AS employee_first_name, u.last_name AS employee_last_name,
CAST(COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.reservation_id = r.id), 0) AS DECIMAL(10,2)) AS paid_total
FROM reservations r
LEFT JOIN users u ON r.employee_id = u.id`

func (s *SQL) FindAll(ctx context.Context) ([]model.ReservationEntity, error) {
	return s.list(ctx, getReservationBase+" ORDER BY r.id DESC")
}

func (s *SQL) FindByEmployee(ctx context.Context, employeeID uint64) ([]model.ReservationEntity, error) {
	return s.list(ctx, getReservationBase+" WHERE r.employee_id = ? ORDER BY r.id DESC", employeeID)
}

func (s *SQL) list(ctx context.Context, query string, args ...any) ([]model.ReservationEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]model.ReservationEntity, 0)
	for rows.Next() {
		var entity model.ReservationEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		reservations = append(reservations, entity)
	}
	return reservations, rows.Err()
}

func (s *SQL) FindByID(ctx context.Context, id uint64) (*model.ReservationEntity, error) {
	var entity model.ReservationEntity
	err := s.conn.QueryRowxContext(ctx, getReservationBase+" WHERE r.id = ? LIMIT 1", id).StructScan(&entity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

const insertReservationQuery = `INSERT INTO reservations (reserved_at, people_count, total_price,
start_date, end_date, client_id, package_id, destination_id, destination_price, employee_id)
VALUES (NOW(), ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (s *SQL) Insert(ctx context.Context, w *model.ReservationWrite) (uint64, error) {
	result, err := s.conn.ExecContext(ctx, insertReservationQuery,
		w.PeopleCount, w.TotalPrice, w.StartDate, w.EndDate, w.ClientID,
		w.PackageID, w.DestinationID, w.DestinationPrice, w.EmployeeID)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, w *model.ReservationWrite) error {
	sets := make([]string, 0, 8)
	args := make([]any, 0, 9)
	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if w.PeopleCount != nil {
		add("people_count", *w.PeopleCount)
	}
	if w.TotalPrice != nil {
		add("total_price", *w.TotalPrice)
	}
	if w.StartDate != nil {
		add("start_date", *w.StartDate)
	}
	if w.EndDate != nil {
		add("end_date", *w.EndDate)
	}
	if w.ClientID != nil {
		add("client_id", *w.ClientID)
	}
	if w.PackageID != nil {
		add("package_id", *w.PackageID)
	}
	if w.DestinationID != nil {
		add("destination_id", *w.DestinationID)
	}
	if w.DestinationPrice != nil {
		add("destination_price", *w.DestinationPrice)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := s.conn.ExecContext(ctx, "UPDATE reservations SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, "DELETE FROM reservations WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) CountByClient(ctx context.Context, clientID uint64) (int64, error) {
	var count int64
	err := s.conn.QueryRowxContext(ctx, "SELECT COUNT(*) FROM reservations WHERE client_id = ?", clientID).Scan(&count)
	return count, err
}

func (s *SQL) CountByPackage(ctx context.Context, packageID uint64) (int64, error) {
	var count int64
	err := s.conn.QueryRowxContext(ctx, "SELECT COUNT(*) FROM reservations WHERE package_id = ?", packageID).Scan(&count)
	return count, err
}
