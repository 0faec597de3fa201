package destination

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

type DestinationRepository interface {
	FindAll(ctx context.Context) ([]model.DestinationEntity, error)
	FindByID(ctx context.Context, id uint64) (*model.DestinationEntity, error)
	Insert(ctx context.Context, req *model.DestinationCreateRequest) (uint64, error)
	Update(ctx context.Context, id uint64, patch *model.DestinationPatch) error
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewDestinationRepository(conn *sqlx.DB) DestinationRepository {
	return &SQL{conn: conn}
}

const getDestinationBase = `SELECT id, city, country, description, average_climate, high_season,
main_language, currency, base_price, provider_id FROM destinations`

func (s *SQL) FindAll(ctx context.Context) ([]model.DestinationEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, getDestinationBase+" ORDER BY country, city")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	destinations := make([]model.DestinationEntity, 0)
	for rows.Next() {
		var entity model.DestinationEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		destinations = append(destinations, entity)
	}
	return destinations, rows.Err()
}

func (s *SQL) FindByID(ctx context.Context, id uint64) (*model.DestinationEntity, error) {
	var entity model.DestinationEntity
	err := s.conn.QueryRowxContext(ctx, getDestinationBase+" WHERE id = ? LIMIT 1", id).StructScan(&entity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

const insertDestinationQuery = `INSERT INTO destinations (city, country, description, average_climate,
high_season, main_language, currency, base_price, provider_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (s *SQL) Insert(ctx context.Context, req *model.DestinationCreateRequest) (uint64, error) {
	result, err := s.conn.ExecContext(ctx, insertDestinationQuery,
		req.City, req.Country, req.Description, req.AverageClimate,
		req.HighSeason, req.MainLanguage, req.Currency, req.BasePrice, req.ProviderID)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, patch *model.DestinationPatch) error {
	sets := make([]string, 0, 9)
	args := make([]any, 0, 10)
	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if patch.City != nil {
		add("city", *patch.City)
	}
	if patch.Country != nil {
		add("country", *patch.Country)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.AverageClimate != nil {
		add("average_climate", *patch.AverageClimate)
	}
	if patch.HighSeason != nil {
		add("high_season", *patch.HighSeason)
	}
	if patch.MainLanguage != nil {
		add("main_language", *patch.MainLanguage)
	}
	if patch.Currency != nil {
		add("currency", *patch.Currency)
	}
	if patch.BasePrice != nil {
		add("base_price", *patch.BasePrice)
	}
	if patch.ProviderID != nil {
		add("provider_id", *patch.ProviderID)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := s.conn.ExecContext(ctx, "UPDATE destinations SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, "DELETE FROM destinations WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
