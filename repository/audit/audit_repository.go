package audit

import (
	"context"
	"strings"

	"github.com/aquatour/crm-backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

// AuditRepository is the append-only recorder plus the query side used by
// the audit endpoints. Nothing here ever mutates an existing row.
type AuditRepository interface {
	InsertLog(ctx context.Context, log *model.AuditLogEntity) (uint64, error)
	ListLogs(ctx context.Context, filter *model.AuditLogFilter) ([]model.AuditLogEntity, error)
	Stats(ctx context.Context) (*model.AuditStats, error)
	PurgeAll(ctx context.Context) (int64, error)
	PurgeOlderThan(ctx context.Context, days int) (int64, error)

	InsertAccessLog(ctx context.Context, log *model.AccessLogEntity) error
	ListAccessLogs(ctx context.Context, limit int) ([]model.AccessLogEntity, error)
}

func NewAuditRepository(conn *sqlx.DB) AuditRepository {
	return &SQL{conn: conn}
}

const insertAuditQuery = `INSERT INTO audit_logs (user_id, user_name, user_role, action, category,
entity, entity_id, entity_name, details, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, COALESCE(?, NOW()))`

func (s *SQL) InsertLog(ctx context.Context, log *model.AuditLogEntity) (uint64, error) {
	var createdAt any
	if !log.CreatedAt.IsZero() {
		createdAt = log.CreatedAt
	}
	result, err := s.conn.ExecContext(ctx, insertAuditQuery,
		log.UserID, log.UserName, log.UserRole, log.Action, log.Category,
		log.Entity, log.EntityID, log.EntityName, log.Details, createdAt)
	if err != nil {
		return 0, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) ListLogs(ctx context.Context, filter *model.AuditLogFilter) ([]model.AuditLogEntity, error) {
	query := `SELECT id, user_id, user_name, user_role, action, category, entity, entity_id,
entity_name, details, created_at FROM audit_logs WHERE true`
	args := make([]any, 0, 6)

	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}
	if filter.UserID != 0 {
		query += " AND user_id = ?"
		args = append(args, filter.UserID)
	}
	if filter.Entity != "" {
		query += " AND entity = ?"
		args = append(args, filter.Entity)
	}
	if filter.EntityID != 0 {
		query += " AND entity_id = ?"
		args = append(args, filter.EntityID)
	}
	if filter.From != nil {
		query += " AND created_at >= ?"
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		query += " AND created_at <= ?"
		args = append(args, *filter.To)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 1000
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]model.AuditLogEntity, 0)
	for rows.Next() {
		var entity model.AuditLogEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		logs = append(logs, entity)
	}
	return logs, rows.Err()
}

func (s *SQL) Stats(ctx context.Context) (*model.AuditStats, error) {
	stats := &model.AuditStats{}

	if err := s.conn.QueryRowxContext(ctx, "SELECT COUNT(*) FROM audit_logs").Scan(&stats.Total); err != nil {
		return nil, err
	}

	byCategory, err := s.countBy(ctx, "SELECT category AS label, COUNT(*) AS count FROM audit_logs GROUP BY category")
	if err != nil {
		return nil, err
	}
	stats.ByCategory = byCategory

	byAction, err := s.countBy(ctx, "SELECT action AS label, COUNT(*) AS count FROM audit_logs GROUP BY action ORDER BY count DESC LIMIT 10")
	if err != nil {
		return nil, err
	}
	stats.ByAction = byAction

	userRows, err := s.conn.QueryxContext(ctx, `SELECT COALESCE(user_name, '') AS user_name,
COALESCE(user_role, '') AS user_role, COUNT(*) AS count FROM audit_logs
GROUP BY user_id, user_name, user_role ORDER BY count DESC LIMIT 10`)
	if err != nil {
		return nil, err
	}
	defer userRows.Close()
	stats.TopUsers = make([]model.AuditUserCount, 0)
	for userRows.Next() {
		var row model.AuditUserCount
		if err := userRows.StructScan(&row); err != nil {
			return nil, err
		}
		stats.TopUsers = append(stats.TopUsers, row)
	}
	if err := userRows.Err(); err != nil {
		return nil, err
	}

	dailyRows, err := s.conn.QueryxContext(ctx, `SELECT DATE_FORMAT(DATE(created_at), '%Y-%m-%d') AS date, COUNT(*) AS count
FROM audit_logs WHERE created_at >= DATE_SUB(NOW(), INTERVAL 30 DAY)
GROUP BY DATE(created_at) ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer dailyRows.Close()
	stats.DailyActivity = make([]model.AuditDailyCount, 0)
	for dailyRows.Next() {
		var row model.AuditDailyCount
		if err := dailyRows.StructScan(&row); err != nil {
			return nil, err
		}
		stats.DailyActivity = append(stats.DailyActivity, row)
	}
	return stats, dailyRows.Err()
}

func (s *SQL) countBy(ctx context.Context, query string) ([]model.AuditCount, error) {
	rows, err := s.conn.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]model.AuditCount, 0)
	for rows.Next() {
		var row model.AuditCount
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		counts = append(counts, row)
	}
	return counts, rows.Err()
}

func (s *SQL) PurgeAll(ctx context.Context) (int64, error) {
	result, err := s.conn.ExecContext(ctx, "DELETE FROM audit_logs")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQL) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	result, err := s.conn.ExecContext(ctx,
		"DELETE FROM audit_logs WHERE created_at < DATE_SUB(NOW(), INTERVAL ? DAY)", days)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQL) InsertAccessLog(ctx context.Context, log *model.AccessLogEntity) error {
	_, err := s.conn.ExecContext(ctx,
		"INSERT INTO access_logs (user_id, email, ip, success, reason, created_at) VALUES (?, ?, ?, ?, ?, NOW())",
		log.UserID, log.Email, log.IP, log.Success, log.Reason)
	return err
}

func (s *SQL) ListAccessLogs(ctx context.Context, limit int) ([]model.AccessLogEntity, error) {
	if limit <= 0 {
		limit = 1000
	}
	rows, err := s.conn.QueryxContext(ctx,
		"SELECT id, user_id, email, ip, success, reason, created_at FROM access_logs ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]model.AccessLogEntity, 0)
	for rows.Next() {
		var entity model.AccessLogEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		logs = append(logs, entity)
	}
	return logs, rows.Err()
}

// trimmed reason strings keep the column width in check
func TruncateReason(reason string, max int) string {
	if len(reason) <= max {
		return reason
	}
	return strings.TrimSpace(reason[:max])
}
