package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	"github.com/aquatour/crm-backend/utils/errors"
)

func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.Login(ctx, &req, clientIP(r))
	if err != nil {
		writeError(w, err)
		return
	}

	// a successful login clears the per-IP attempt window
	if s.RedisRepo != nil {
		s.RedisRepo.ResetWindow(ctx, loginRateKey(clientIP(r)))
	}

	writeSuccess(w, res)
}

func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := bearerToken(r)
	if token == "" {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.AuthApp.Logout(ctx, token); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"loggedOut": true})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
