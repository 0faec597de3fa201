package client

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

type ClientRepository interface {
	FindAll(ctx context.Context) ([]model.ClientEntity, error)
	FindByID(ctx context.Context, id uint64) (*model.ClientEntity, error)
	FindByUser(ctx context.Context, userID uint64) ([]model.ClientEntity, error)
	Insert(ctx context.Context, req *model.ClientCreateRequest) (uint64, error)
	Update(ctx context.Context, id uint64, patch *model.ClientPatch) error
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewClientRepository(conn *sqlx.DB) ClientRepository {
	return &SQL{conn: conn}
}

const getClientBase = `SELECT c.id, c.first_name, c.last_name, c.email, c.phone, c.document_number,
c.nationality, c.passport, c.marital_status, c.travel_preferences, c.satisfaction, c.status,
c.user_id, c.contact_id, c.created_at, c.updated_at,
u.first_name AS user_first_name, u.last_name AS user_last_name
FROM clients c
LEFT JOIN users u ON c.user_id = u.id`

func (s *SQL) FindAll(ctx context.Context) ([]model.ClientEntity, error) {
	return s.list(ctx, getClientBase+" ORDER BY c.created_at DESC")
}

func (s *SQL) FindByUser(ctx context.Context, userID uint64) ([]model.ClientEntity, error) {
	return s.list(ctx, getClientBase+" WHERE c.user_id = ? ORDER BY c.created_at DESC", userID)
}

func (s *SQL) list(ctx context.Context, query string, args ...any) ([]model.ClientEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]model.ClientEntity, 0)
	for rows.Next() {
		var entity model.ClientEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		clients = append(clients, entity)
	}
	return clients, rows.Err()
}

func (s *SQL) FindByID(ctx context.Context, id uint64) (*model.ClientEntity, error) {
	var entity model.ClientEntity
	err := s.conn.QueryRowxContext(ctx, getClientBase+" WHERE c.id = ? LIMIT 1", id).StructScan(&entity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

const insertClientQuery = `INSERT INTO clients (first_name, last_name, email, phone, document_number,
nationality, passport, marital_status, travel_preferences, satisfaction, status, user_id, contact_id, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

func (s *SQL) Insert(ctx context.Context, req *model.ClientCreateRequest) (uint64, error) {
	preferences := ""
	if req.TravelPreferences != nil {
		preferences = *req.TravelPreferences
	}
	satisfaction := 3
	if req.Satisfaction != nil {
		satisfaction = *req.Satisfaction
	}
	status := "active"
	if req.Status != nil {
		status = *req.Status
	}

	result, err := s.conn.ExecContext(ctx, insertClientQuery,
		req.FirstName, req.LastName, req.Email, req.Phone, req.DocumentNumber,
		req.Nationality, req.Passport, req.MaritalStatus, preferences,
		satisfaction, status, req.CreatedByUserID, req.ContactID)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, patch *model.ClientPatch) error {
	sets := make([]string, 0, 12)
	args := make([]any, 0, 13)
	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if patch.FirstName != nil {
		add("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		add("last_name", *patch.LastName)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.DocumentNumber != nil {
		add("document_number", *patch.DocumentNumber)
	}
	if patch.Nationality != nil {
		add("nationality", *patch.Nationality)
	}
	if patch.Passport != nil {
		add("passport", *patch.Passport)
	}
	if patch.MaritalStatus != nil {
		add("marital_status", *patch.MaritalStatus)
	}
	if patch.TravelPreferences != nil {
		add("travel_preferences", *patch.TravelPreferences)
	}
	if patch.Satisfaction != nil {
		add("satisfaction", *patch.Satisfaction)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.ContactID != nil {
		add("contact_id", *patch.ContactID)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE clients SET " + strings.Join(sets, ", ") + ", updated_at = NOW() WHERE id = ?"
	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, "DELETE FROM clients WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
