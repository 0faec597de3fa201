package transport

import (
	"encoding/json"
	"net/http"

	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	"github.com/aquatour/crm-backend/utils/errors"
)

func (s *RestHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.ClientApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, clients)
}

func (s *RestHandler) ListClientsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}

	clients, err := s.ClientApp.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, clients)
}

func (s *RestHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	client, err := s.ClientApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, client)
}

func (s *RestHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req model.ClientCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	client, err := s.ClientApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, client)
}

func (s *RestHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var patch model.ClientPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	client, err := s.ClientApp.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, client)
}

func (s *RestHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	deleted, err := s.ClientApp.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]bool{"deleted": deleted})
}
