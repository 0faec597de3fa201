package transport

import (
	"encoding/json"
	"net/http"

	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	"github.com/aquatour/crm-backend/utils/errors"
)

func (s *RestHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := s.ReservationApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, reservations)
}

func (s *RestHandler) ListReservationsByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "employeeId")
	if err != nil {
		writeError(w, err)
		return
	}

	reservations, err := s.ReservationApp.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, reservations)
}

func (s *RestHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	reservation, err := s.ReservationApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, reservation)
}

func (s *RestHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req model.ReservationCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	reservation, err := s.ReservationApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, reservation)
}

func (s *RestHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var patch model.ReservationPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	reservation, err := s.ReservationApp.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, reservation)
}

func (s *RestHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	deleted, err := s.ReservationApp.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]bool{"deleted": deleted})
}
