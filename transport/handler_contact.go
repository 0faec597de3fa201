package transport

import (
	"encoding/json"
	"net/http"

	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	"github.com/aquatour/crm-backend/utils/errors"
)

func (s *RestHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.ContactApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, contacts)
}

func (s *RestHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	contact, err := s.ContactApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, contact)
}

func (s *RestHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req model.ContactCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	contact, err := s.ContactApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, contact)
}

func (s *RestHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var patch model.ContactPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	contact, err := s.ContactApp.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, contact)
}

func (s *RestHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	deleted, err := s.ContactApp.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]bool{"deleted": deleted})
}
