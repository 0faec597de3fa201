package contact

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

type ContactRepository interface {
	FindAll(ctx context.Context) ([]model.ContactEntity, error)
	FindByID(ctx context.Context, id uint64) (*model.ContactEntity, error)
	Insert(ctx context.Context, req *model.ContactCreateRequest) (uint64, error)
	Update(ctx context.Context, id uint64, patch *model.ContactPatch) error
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewContactRepository(conn *sqlx.DB) ContactRepository {
	return &SQL{conn: conn}
}

const getContactBase = `SELECT id, name, email, phone, company, created_at, updated_at FROM contacts`

func (s *SQL) FindAll(ctx context.Context) ([]model.ContactEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, getContactBase+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]model.ContactEntity, 0)
	for rows.Next() {
		var entity model.ContactEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		contacts = append(contacts, entity)
	}
	return contacts, rows.Err()
}

func (s *SQL) FindByID(ctx context.Context, id uint64) (*model.ContactEntity, error) {
	var entity model.ContactEntity
	err := s.conn.QueryRowxContext(ctx, getContactBase+" WHERE id = ? LIMIT 1", id).StructScan(&entity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Insert(ctx context.Context, req *model.ContactCreateRequest) (uint64, error) {
	result, err := s.conn.ExecContext(ctx,
		"INSERT INTO contacts (name, email, phone, company, created_at) VALUES (?, ?, ?, ?, NOW())",
		req.Name, req.Email, req.Phone, req.Company)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, patch *model.ContactPatch) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Company != nil {
		add("company", *patch.Company)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE contacts SET " + strings.Join(sets, ", ") + ", updated_at = NOW() WHERE id = ?"
	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, "DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
