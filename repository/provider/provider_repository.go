package provider

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

type ProviderRepository interface {
	FindAll(ctx context.Context) ([]model.ProviderEntity, error)
	FindByID(ctx context.Context, id uint64) (*model.ProviderEntity, error)
	Insert(ctx context.Context, req *model.ProviderCreateRequest) (uint64, error)
	Update(ctx context.Context, id uint64, patch *model.ProviderPatch) error
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewProviderRepository(conn *sqlx.DB) ProviderRepository {
	return &SQL{conn: conn}
}

const getProviderBase = `SELECT id, name, provider_type, phone, email, status FROM providers`

func (s *SQL) FindAll(ctx context.Context) ([]model.ProviderEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, getProviderBase+" ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	providers := make([]model.ProviderEntity, 0)
	for rows.Next() {
		var entity model.ProviderEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		providers = append(providers, entity)
	}
	return providers, rows.Err()
}

func (s *SQL) FindByID(ctx context.Context, id uint64) (*model.ProviderEntity, error) {
	var entity model.ProviderEntity
	err := s.conn.QueryRowxContext(ctx, getProviderBase+" WHERE id = ? LIMIT 1", id).StructScan(&entity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Insert(ctx context.Context, req *model.ProviderCreateRequest) (uint64, error) {
	status := "active"
	if req.Status != nil {
		status = *req.Status
	}

	result, err := s.conn.ExecContext(ctx,
		"INSERT INTO providers (name, provider_type, phone, email, status) VALUES (?, ?, ?, ?, ?)",
		req.Name, req.ProviderType, req.Phone, req.Email, status)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, patch *model.ProviderPatch) error {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.ProviderType != nil {
		add("provider_type", *patch.ProviderType)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := s.conn.ExecContext(ctx, "UPDATE providers SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, "DELETE FROM providers WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
