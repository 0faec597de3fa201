package transport

import (
	"net/http"
	"strconv"

	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	ctxutil "github.com/aquatour/crm-backend/utils/context"
	"github.com/aquatour/crm-backend/utils/errors"
)

func (s *RestHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := &model.AuditLogFilter{
		Category: query.Get("category"),
		Entity:   query.Get("entity"),
	}
	if raw := query.Get("userId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomErrorf(constant.ErrValidation, "Invalid userId: %s", raw))
			return
		}
		filter.UserID = id
	}
	if raw := query.Get("entityId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomErrorf(constant.ErrValidation, "Invalid entityId: %s", raw))
			return
		}
		filter.EntityID = id
	}
	if raw := query.Get("from"); raw != "" {
		from, err := model.ParseDate(raw)
		if err != nil {
			writeError(w, errors.SetCustomErrorf(constant.ErrValidation, "Invalid from date: %s", raw))
			return
		}
		filter.From = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := model.ParseDate(raw)
		if err != nil {
			writeError(w, errors.SetCustomErrorf(constant.ErrValidation, "Invalid to date: %s", raw))
			return
		}
		filter.To = &to
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			writeError(w, errors.SetCustomErrorf(constant.ErrValidation, "Invalid limit: %s", raw))
			return
		}
		filter.Limit = limit
	}

	logs, err := s.Recorder.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, logs)
}

func (s *RestHandler) AuditStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Recorder.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, stats)
}

func (s *RestHandler) PurgeAuditLogs(w http.ResponseWriter, r *http.Request) {
	role, _ := ctxutil.GetUserRole(r.Context())
	if role != constant.RoleSuperAdmin {
		writeError(w, errors.SetCustomErrorf(constant.ErrForbidden,
			"Only super administrators can purge the audit trail"))
		return
	}

	var deleted int64
	var err error
	if raw := r.URL.Query().Get("olderThanDays"); raw != "" {
		days, convErr := strconv.Atoi(raw)
		if convErr != nil {
			writeError(w, errors.SetCustomErrorf(constant.ErrValidation, "Invalid olderThanDays: %s", raw))
			return
		}
		deleted, err = s.Recorder.PurgeOlderThan(r.Context(), days)
	} else {
		deleted, err = s.Recorder.PurgeAll(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]int64{"deleted": deleted})
}

func (s *RestHandler) ListAccessLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, errors.SetCustomErrorf(constant.ErrValidation, "Invalid limit: %s", raw))
			return
		}
		limit = parsed
	}

	logs, err := s.Recorder.ListAccessLogs(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, logs)
}
