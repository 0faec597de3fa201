package travelpackage

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

type PackageRepository interface {
	FindAll(ctx context.Context) ([]model.PackageEntity, error)
	FindByID(ctx context.Context, id uint64) (*model.PackageEntity, error)
	Insert(ctx context.Context, req *model.PackageCreateRequest) (uint64, error)
	Update(ctx context.Context, id uint64, patch *model.PackagePatch) error
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewPackageRepository(conn *sqlx.DB) PackageRepository {
	return &SQL{conn: conn}
}

const getPackageBase = `SELECT id, name, description, base_price, duration_days, max_capacity,
included_services, destination_ids FROM packages`

func (s *SQL) FindAll(ctx context.Context) ([]model.PackageEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, getPackageBase+" ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := make([]model.PackageEntity, 0)
	for rows.Next() {
		var entity model.PackageEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		packages = append(packages, entity)
	}
	return packages, rows.Err()
}

func (s *SQL) FindByID(ctx context.Context, id uint64) (*model.PackageEntity, error) {
	var entity model.PackageEntity
	err := s.conn.QueryRowxContext(ctx, getPackageBase+" WHERE id = ? LIMIT 1", id).StructScan(&entity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

const insertPackageQuery = `INSERT INTO packages (name, description, base_price, duration_days,
max_capacity, included_services, destination_ids) VALUES (?, ?, ?, ?, ?, ?, ?)`

func (s *SQL) Insert(ctx context.Context, req *model.PackageCreateRequest) (uint64, error) {
	basePrice := 0.0
	if req.BasePrice != nil {
		basePrice = *req.BasePrice
	}
	durationDays := 1
	if req.DurationDays != nil {
		durationDays = *req.DurationDays
	}
	maxCapacity := 1
	if req.MaxCapacity != nil {
		maxCapacity = *req.MaxCapacity
	}

	result, err := s.conn.ExecContext(ctx, insertPackageQuery,
		req.Name, req.Description, basePrice, durationDays, maxCapacity,
		req.IncludedServices, req.DestinationIDs)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, patch *model.PackagePatch) error {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 8)
	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.BasePrice != nil {
		add("base_price", *patch.BasePrice)
	}
	if patch.DurationDays != nil {
		add("duration_days", *patch.DurationDays)
	}
	if patch.MaxCapacity != nil {
		add("max_capacity", *patch.MaxCapacity)
	}
	if patch.IncludedServices != nil {
		add("included_services", *patch.IncludedServices)
	}
	if patch.DestinationIDs != nil {
		add("destination_ids", *patch.DestinationIDs)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := s.conn.ExecContext(ctx, "UPDATE packages SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, "DELETE FROM packages WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
