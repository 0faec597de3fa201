package user

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

type UserRepository interface {
	FindAll(ctx context.Context) ([]model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Insert(ctx context.Context, w *model.UserWrite) (uint64, error)
	Update(ctx context.Context, id uint64, w *model.UserWrite) error
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const getUserBase = `SELECT u.id, u.first_name, u.last_name, u.email, COALESCE(r.name, 'Advisor') AS role_name,
u.document_type, u.document_number, u.birth_date, u.gender, u.phone, u.address, u.city, u.country,
u.password_hash, u.active, u.created_at, u.updated_at
FROM users u
LEFT JOIN roles r ON u.role_id = r.id
WHERE true`

func (s *SQL) FindAll(ctx context.Context) ([]model.UserEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, getUserBase+" ORDER BY u.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.UserEntity, 0)
	for rows.Next() {
		var entity model.UserEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		users = append(users, entity)
	}
	return users, rows.Err()
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND u.id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND u.email = ?"
		args = append(args, filter.Email)
	}
	if filter.ExcludeID != 0 {
		query += " AND u.id <> ?"
		args = append(args, filter.ExcludeID)
	}
	query += " LIMIT 1"

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) resolveRoleID(ctx context.Context, roleName string) (*uint64, error) {
	var id uint64
	err := s.conn.QueryRowxContext(ctx, "SELECT id FROM roles WHERE name = ? LIMIT 1", roleName).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}

const insertUserQuery = `INSERT INTO users (first_name, last_name, email, document_type, document_number,
birth_date, gender, phone, address, city, country, password_hash, role_id, active, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, true, NOW())`

func (s *SQL) Insert(ctx context.Context, w *model.UserWrite) (uint64, error) {
	var roleID *uint64
	if w.RoleName != nil {
		var err error
		roleID, err = s.resolveRoleID(ctx, *w.RoleName)
		if err != nil {
			return 0, err
		}
	}

	result, err := s.conn.ExecContext(ctx, insertUserQuery,
		w.FirstName, w.LastName, w.Email, w.DocumentType, w.DocumentNumber,
		w.BirthDate, w.Gender, w.Phone, w.Address, w.City, w.Country,
		w.PasswordHash, roleID)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, w *model.UserWrite) error {
	sets := make([]string, 0, 14)
	args := make([]any, 0, 15)
	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if w.FirstName != nil {
		add("first_name", *w.FirstName)
	}
	if w.LastName != nil {
		add("last_name", *w.LastName)
	}
	if w.Email != nil {
		add("email", *w.Email)
	}
	if w.DocumentType != nil {
		add("document_type", *w.DocumentType)
	}
	if w.DocumentNumber != nil {
		add("document_number", *w.DocumentNumber)
	}
	if w.BirthDate != nil {
		add("birth_date", *w.BirthDate)
	}
	if w.Gender != nil {
		add("gender", *w.Gender)
	}
	if w.Phone != nil {
		add("phone", *w.Phone)
	}
	if w.Address != nil {
		add("address", *w.Address)
	}
	if w.City != nil {
		add("city", *w.City)
	}
	if w.Country != nil {
		add("country", *w.Country)
	}
	if w.PasswordHash != nil {
		add("password_hash", *w.PasswordHash)
	}
	if w.Active != nil {
		add("active", *w.Active)
	}
	if w.RoleName != nil {
		roleID, err := s.resolveRoleID(ctx, *w.RoleName)
		if err != nil {
			return err
		}
		add("role_id", roleID)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE users SET " + strings.Join(sets, ", ") + ", updated_at = NOW() WHERE id = ?"
	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
