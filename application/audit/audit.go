package audit

import (
	"context"
	"time"

	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	auditrepo "github.com/aquatour/crm-backend/repository/audit"
	userrepo "github.com/aquatour/crm-backend/repository/user"
	ctxutil "github.com/aquatour/crm-backend/utils/context"
	"github.com/aquatour/crm-backend/utils/errors"
	"github.com/aquatour/crm-backend/utils/logger"
	"go.uber.org/zap"
)

// EventPublisher is the outbound side of the audit trail. The rabbitmq
// publisher satisfies it; a nil publisher disables fan-out.
type EventPublisher interface {
	PublishAuditEvent(event model.AuditEvent) error
}

// Recorder appends audit entries and serves the audit query endpoints.
// Recording is best effort: a failed append is logged and never fails
// the mutation that triggered it.
type Recorder interface {
	Record(ctx context.Context, action string, entity constant.EntityKind, entityID uint64, entityName, details string)
	RecordLoginAttempt(ctx context.Context, log *model.AccessLogEntity)

	List(ctx context.Context, filter *model.AuditLogFilter) ([]model.AuditLogEntity, error)
	Stats(ctx context.Context) (*model.AuditStats, error)
	PurgeAll(ctx context.Context) (int64, error)
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	ListAccessLogs(ctx context.Context, limit int) ([]model.AccessLogEntity, error)
}

type RecorderImpl struct {
	auditRepo auditrepo.AuditRepository
	userRepo  userrepo.UserRepository
	publisher EventPublisher
}

func NewRecorder(auditRepo auditrepo.AuditRepository, userRepo userrepo.UserRepository, publisher EventPublisher) Recorder {
	return &RecorderImpl{
		auditRepo: auditRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (r *RecorderImpl) Record(ctx context.Context, action string, entity constant.EntityKind, entityID uint64, entityName, details string) {
	entry := &model.AuditLogEntity{
		Action:    action,
		Category:  string(entity),
		Entity:    string(entity),
		CreatedAt: time.Now(),
	}
	if entityID != 0 {
		entry.EntityID = &entityID
	}
	if entityName != "" {
		entry.EntityName = &entityName
	}
	if details != "" {
		entry.Details = &details
	}

	if userID, ok := ctxutil.GetUserID(ctx); ok {
		entry.UserID = &userID
		actor, err := r.userRepo.Get(ctx, &model.UserFilter{ID: userID})
		if err != nil {
			logger.Error("[Record] err userRepo.Get", zap.String("error", err.Error()))
		}
		if actor != nil {
			name := actor.FirstName + " " + actor.LastName
			role, _ := constant.RoleToApp(actor.Role, constant.EnumLenient)
			entry.UserName = &name
			entry.UserRole = &role
		}
	}

	if _, err := r.auditRepo.InsertLog(ctx, entry); err != nil {
		logger.Error("[Record] err auditRepo.InsertLog",
			zap.String("action", action), zap.String("entity", string(entity)),
			zap.String("error", err.Error()))
	}

	if r.publisher == nil {
		return
	}
	event := model.AuditEvent{
		Action:     action,
		Entity:     string(entity),
		EntityID:   entityID,
		EntityName: entityName,
		Details:    details,
		OccurredAt: entry.CreatedAt,
	}
	if entry.UserID != nil {
		event.UserID = *entry.UserID
	}
	if entry.UserName != nil {
		event.UserName = *entry.UserName
	}
	if entry.UserRole != nil {
		event.UserRole = *entry.UserRole
	}
	if err := r.publisher.PublishAuditEvent(event); err != nil {
		logger.Error("[Record] err publisher.PublishAuditEvent", zap.String("error", err.Error()))
	}
}

func (r *RecorderImpl) RecordLoginAttempt(ctx context.Context, log *model.AccessLogEntity) {
	if err := r.auditRepo.InsertAccessLog(ctx, log); err != nil {
		logger.Error("[RecordLoginAttempt] err auditRepo.InsertAccessLog",
			zap.String("email", log.Email), zap.String("error", err.Error()))
	}
}

func (r *RecorderImpl) List(ctx context.Context, filter *model.AuditLogFilter) ([]model.AuditLogEntity, error) {
	logs, err := r.auditRepo.ListLogs(ctx, filter)
	if err != nil {
		logger.Error("[ListAuditLogs] err auditRepo.ListLogs", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return logs, nil
}

func (r *RecorderImpl) Stats(ctx context.Context) (*model.AuditStats, error) {
	stats, err := r.auditRepo.Stats(ctx)
	if err != nil {
		logger.Error("[AuditStats] err auditRepo.Stats", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return stats, nil
}

func (r *RecorderImpl) PurgeAll(ctx context.Context) (int64, error) {
	deleted, err := r.auditRepo.PurgeAll(ctx)
	if err != nil {
		logger.Error("[PurgeAuditLogs] err auditRepo.PurgeAll", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return deleted, nil
}

func (r *RecorderImpl) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, errors.SetCustomErrorf(constant.ErrValidation, "days must be a positive number")
	}
	deleted, err := r.auditRepo.PurgeOlderThan(ctx, days)
	if err != nil {
		logger.Error("[PurgeAuditLogs] err auditRepo.PurgeOlderThan", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return deleted, nil
}

func (r *RecorderImpl) ListAccessLogs(ctx context.Context, limit int) ([]model.AccessLogEntity, error) {
	logs, err := r.auditRepo.ListAccessLogs(ctx, limit)
	if err != nil {
		logger.Error("[ListAccessLogs] err auditRepo.ListAccessLogs", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return logs, nil
}
