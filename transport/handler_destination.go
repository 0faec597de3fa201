package transport

import (
	"encoding/json"
	"net/http"

	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	"github.com/aquatour/crm-backend/utils/errors"
)

func (s *RestHandler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := s.DestinationApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, destinations)
}

func (s *RestHandler) GetDestination(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	destination, err := s.DestinationApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, destination)
}

func (s *RestHandler) CreateDestination(w http.ResponseWriter, r *http.Request) {
	var req model.DestinationCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	destination, err := s.DestinationApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, destination)
}

func (s *RestHandler) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var patch model.DestinationPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	destination, err := s.DestinationApp.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, destination)
}

func (s *RestHandler) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	deleted, err := s.DestinationApp.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]bool{"deleted": deleted})
}
