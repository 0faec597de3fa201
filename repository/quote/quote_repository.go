package quote

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

type QuoteRepository interface {
	FindAll(ctx context.Context) ([]model.QuoteEntity, error)
	FindByID(ctx context.Context, id uint64) (*model.QuoteEntity, error)
	FindByEmployee(ctx context.Context, employeeID uint64) ([]model.QuoteEntity, error)
	Insert(ctx context.Context, w *model.QuoteWrite) (uint64, error)
	Update(ctx context.Context, id uint64, w *model.QuoteWrite) error
	CountByClient(ctx context.Context, clientID uint64) (int64, error)
	CountByPackage(ctx context.Context, packageID uint64) (int64, error)

	FindCompanionsByQuote(ctx context.Context, quoteID uint64) ([]model.CompanionEntity, error)
	InsertCompanionTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64, w *model.CompanionWrite) error
	DeleteCompanionsByQuoteTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64) (int64, error)
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) (bool, error)
}

func NewQuoteRepository(conn *sqlx.DB) QuoteRepository {
	return &SQL{conn: conn}
}

const getQuoteBase = `SELECT q.id, q.start_date, q.end_date, q.estimated_price, q.package_id,
q.client_id, q.employee_id FROM quotes q`

func (s *SQL) FindAll(ctx context.Context) ([]model.QuoteEntity, error) {
	return s.list(ctx, getQuoteBase+" ORDER BY q.start_date DESC")
}

func (s *SQL) FindByEmployee(ctx context.Context, employeeID uint64) ([]model.QuoteEntity, error) {
	return s.list(ctx, getQuoteBase+" WHERE q.employee_id = ? ORDER BY q.start_date DESC", employeeID)
}

func (s *SQL) list(ctx context.Context, query string, args ...any) ([]model.QuoteEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make([]model.QuoteEntity, 0)
	for rows.Next() {
		var entity model.QuoteEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		quotes = append(quotes, entity)
	}
	return quotes, rows.Err()
}

func (s *SQL) FindByID(ctx context.Context, id uint64) (*model.QuoteEntity, error) {
	var entity model.QuoteEntity
	err := s.conn.QueryRowxContext(ctx, getQuoteBase+" WHERE q.id = ? LIMIT 1", id).StructScan(&entity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

const insertQuoteQuery = `INSERT INTO quotes (start_date, end_date, estimated_price, package_id,
client_id, employee_id) VALUES (?, ?, ?, ?, ?, ?)`

func (s *SQL) Insert(ctx context.Context, w *model.QuoteWrite) (uint64, error) {
	result, err := s.conn.ExecContext(ctx, insertQuoteQuery,
		w.StartDate, w.EndDate, w.EstimatedPrice, w.PackageID, w.ClientID, w.EmployeeID)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, w *model.QuoteWrite) error {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if w.StartDate != nil {
		add("start_date", *w.StartDate)
	}
	if w.EndDate != nil {
		add("end_date", *w.EndDate)
	}
	if w.EstimatedPrice != nil {
		add("estimated_price", *w.EstimatedPrice)
	}
	if w.PackageID != nil {
		add("package_id", *w.PackageID)
	}
	if w.ClientID != nil {
		add("client_id", *w.ClientID)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := s.conn.ExecContext(ctx, "UPDATE quotes SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	return err
}

func (s *SQL) CountByClient(ctx context.Context, clientID uint64) (int64, error) {
	var count int64
	err := s.conn.QueryRowxContext(ctx, "SELECT COUNT(*) FROM quotes WHERE client_id = ?", clientID).Scan(&count)
	return count, err
}

func (s *SQL) CountByPackage(ctx context.Context, packageID uint64) (int64, error) {
	var count int64
	err := s.conn.QueryRowxContext(ctx, "SELECT COUNT(*) FROM quotes WHERE package_id = ?", packageID).Scan(&count)
	return count, err
}

const getCompanionBase = `SELECT id, first_name, last_name, document_number, nationality, birth_date,
is_minor, quote_id, created_at FROM companions`

func (s *SQL) FindCompanionsByQuote(ctx context.Context, quoteID uint64) ([]model.CompanionEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, getCompanionBase+" WHERE quote_id = ? ORDER BY created_at ASC", quoteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companions := make([]model.CompanionEntity, 0)
	for rows.Next() {
		var entity model.CompanionEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		companions = append(companions, entity)
	}
	return companions, rows.Err()
}

const insertCompanionQuery = `INSERT INTO companions (first_name, last_name, document_number,
nationality, birth_date, is_minor, quote_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`

func (s *SQL) InsertCompanionTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64, w *model.CompanionWrite) error {
	_, err := tx.ExecContext(ctx, insertCompanionQuery,
		w.FirstName, w.LastName, w.DocumentNumber, w.Nationality, w.BirthDate, w.IsMinor, quoteID)
	return err
}

func (s *SQL) DeleteCompanionsByQuoteTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64) (int64, error) {
	result, err := tx.ExecContext(ctx, "DELETE FROM companions WHERE quote_id = ?", quoteID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) (bool, error) {
	result, err := tx.ExecContext(ctx, "DELETE FROM quotes WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
