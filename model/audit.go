package model

import "time"

// AuditLogEntity is a row of the append-only audit_logs table.
type AuditLogEntity struct {
	ID         uint64    `db:"id" json:"id"`
	UserID     *uint64   `db:"user_id" json:"userId"`
	UserName   *string   `db:"user_name" json:"userName"`
	UserRole   *string   `db:"user_role" json:"userRole"`
	Action     string    `db:"action" json:"action"`
	Category   string    `db:"category" json:"category"`
	Entity     string    `db:"entity" json:"entity"`
	EntityID   *uint64   `db:"entity_id" json:"entityId"`
	EntityName *string   `db:"entity_name" json:"entityName"`
	Details    *string   `db:"details" json:"details"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// AuditLogFilter narrows audit log listings.
type AuditLogFilter struct {
	Category string
	UserID   uint64
	Entity   string
	EntityID uint64
	From     *time.Time
	To       *time.Time
	Limit    int
}

type AuditCount struct {
	Key   string `db:"label" json:"key"`
	Count int64  `db:"count" json:"count"`
}

type AuditUserCount struct {
	UserName string `db:"user_name" json:"userName"`
	UserRole string `db:"user_role" json:"userRole"`
	Count    int64  `db:"count" json:"count"`
}

type AuditDailyCount struct {
	Date  string `db:"date" json:"date"`
	Count int64  `db:"count" json:"count"`
}

type AuditStats struct {
	Total         int64             `json:"total"`
	ByCategory    []AuditCount      `json:"byCategory"`
	ByAction      []AuditCount      `json:"byAction"`
	TopUsers      []AuditUserCount  `json:"topUsers"`
	DailyActivity []AuditDailyCount `json:"dailyActivity"`
}

// AccessLogEntity is a row of the append-only access_logs table (login
// attempts).
type AccessLogEntity struct {
	ID        uint64    `db:"id" json:"id"`
	UserID    *uint64   `db:"user_id" json:"userId"`
	Email     string    `db:"email" json:"email"`
	IP        string    `db:"ip" json:"ip"`
	Success   bool      `db:"success" json:"success"`
	Reason    *string   `db:"reason" json:"reason"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// AuditEvent is the message published to the audit exchange after a
// successful mutation.
type AuditEvent struct {
	UserID     uint64    `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserRole   string    `json:"user_role"`
	Action     string    `json:"action"`
	Entity     string    `json:"entity"`
	EntityID   uint64    `json:"entity_id"`
	EntityName string    `json:"entity_name"`
	Details    string    `json:"details"`
	OccurredAt time.Time `json:"occurred_at"`
}
