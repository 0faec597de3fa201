package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	"github.com/aquatour/crm-backend/utils/errors"
	"github.com/gorilla/mux"
)

func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.UserApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, users)
}

func (s *RestHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := s.UserApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, user)
}

// CheckUserEmail reports whether an email is free to register, and if
// not, which entity already holds it.
func (s *RestHandler) CheckUserEmail(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(strings.TrimSpace(mux.Vars(r)["email"]))
	if email == "" {
		writeError(w, errors.SetCustomErrorf(constant.ErrValidation, "Missing required fields: email"))
		return
	}

	err := s.Unique.CheckEmail(r.Context(), email, nil)
	if err == nil {
		writeSuccess(w, map[string]any{"available": true})
		return
	}

	custom, ok := err.(errors.CustomError)
	if !ok || custom.ErrorCode() != constant.ErrorTypeCode[constant.ErrConflict] {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]any{"available": false, "conflict": custom.Conflict()})
}

func (s *RestHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.UserCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	user, err := s.UserApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, user)
}

func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var patch model.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	user, err := s.UserApp.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, user)
}

func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	deleted, err := s.UserApp.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]bool{"deleted": deleted})
}
