package transport

import (
	"encoding/json"
	"net/http"

	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	"github.com/aquatour/crm-backend/utils/errors"
)

func (s *RestHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := s.PaymentApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, payments)
}

func (s *RestHandler) ListPaymentsByReservation(w http.ResponseWriter, r *http.Request) {
	reservationID, err := pathID(r, "reservationId")
	if err != nil {
		writeError(w, err)
		return
	}

	payments, err := s.PaymentApp.ListByReservation(r.Context(), reservationID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, payments)
}

func (s *RestHandler) ListPaymentsByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "employeeId")
	if err != nil {
		writeError(w, err)
		return
	}

	payments, err := s.PaymentApp.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, payments)
}

func (s *RestHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	payment, err := s.PaymentApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, payment)
}

func (s *RestHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req model.PaymentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	payment, err := s.PaymentApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, payment)
}

func (s *RestHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var patch model.PaymentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	payment, err := s.PaymentApp.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, payment)
}

func (s *RestHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	deleted, err := s.PaymentApp.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]bool{"deleted": deleted})
}
