package lookup

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	"github.com/jmoiron/sqlx"
)

// Exclusion skips the caller's own row so a record can be updated with its
// current email/phone/document without reporting a self-conflict.
type Exclusion struct {
	Entity constant.EntityKind
	ID     uint64
}

type LookupRepository interface {
	// FindValueOwner scans the tables participating in the field's
	// uniqueness domain in a fixed order and returns the first row holding
	// the value, or nil when no table has a match.
	FindValueOwner(ctx context.Context, field constant.UniqueField, value string, exclude *Exclusion) (*model.ConflictDetail, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewLookupRepository(conn *sqlx.DB) LookupRepository {
	return &SQL{conn: conn}
}

// tableProbe describes how one table is searched for one field.
type tableProbe struct {
	entity   constant.EntityKind
	table    string
	column   string
	nameExpr string
}

// Scan order is fixed: the first match wins, so reordering these lists
// changes which conflict gets reported.
var probesByField = map[constant.UniqueField][]tableProbe{
	constant.FieldEmail: {
		{constant.EntityUser, "users", "email", "CONCAT(first_name, ' ', last_name)"},
		{constant.EntityClient, "clients", "email", "CONCAT(first_name, ' ', last_name)"},
		{constant.EntityProvider, "providers", "email", "name"},
		{constant.EntityContact, "contacts", "email", "name"},
	},
	constant.FieldPhone: {
		{constant.EntityUser, "users", "phone", "CONCAT(first_name, ' ', last_name)"},
		{constant.EntityClient, "clients", "phone", "CONCAT(first_name, ' ', last_name)"},
		{constant.EntityProvider, "providers", "phone", "name"},
		{constant.EntityContact, "contacts", "phone", "name"},
	},
	constant.FieldDocument: {
		{constant.EntityUser, "users", "document_number", "CONCAT(first_name, ' ', last_name)"},
		{constant.EntityClient, "clients", "document_number", "CONCAT(first_name, ' ', last_name)"},
	},
}

func (s *SQL) FindValueOwner(ctx context.Context, field constant.UniqueField, value string, exclude *Exclusion) (*model.ConflictDetail, error) {
	probes, ok := probesByField[field]
	if !ok {
		return nil, fmt.Errorf("unknown uniqueness field %q", field)
	}

	for _, probe := range probes {
		query := fmt.Sprintf(
			"SELECT id, %s AS display_name, %s AS value FROM %s WHERE %s = ?",
			probe.nameExpr, probe.column, probe.table, probe.column,
		)
		args := []any{value}

		if exclude != nil && exclude.Entity == probe.entity && exclude.ID != 0 {
			query += " AND id <> ?"
			args = append(args, exclude.ID)
		}
		query += " LIMIT 1"

		var row model.ConflictRow
		err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&row)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, err
		}

		return &model.ConflictDetail{
			Table:       probe.table,
			Entity:      string(probe.entity),
			DisplayName: constant.EntityDisplayName[probe.entity],
			Data:        &row,
		}, nil
	}

	return nil, nil
}
