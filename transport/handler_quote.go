package transport

import (
	"encoding/json"
	"net/http"

	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	"github.com/aquatour/crm-backend/utils/errors"
)

func (s *RestHandler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := s.QuoteApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, quotes)
}

func (s *RestHandler) ListQuotesByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "employeeId")
	if err != nil {
		writeError(w, err)
		return
	}

	quotes, err := s.QuoteApp.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, quotes)
}

func (s *RestHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	quote, err := s.QuoteApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, quote)
}

func (s *RestHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req model.QuoteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	quote, err := s.QuoteApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, quote)
}

func (s *RestHandler) UpdateQuote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var patch model.QuotePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	quote, err := s.QuoteApp.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, quote)
}

// ReplaceQuoteCompanions swaps the full companion set of a quote. The
// body is the new list; an empty list clears it.
func (s *RestHandler) ReplaceQuoteCompanions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var companions []model.CompanionRequest
	if err := json.NewDecoder(r.Body).Decode(&companions); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if companions == nil {
		companions = []model.CompanionRequest{}
	}

	patch := &model.QuotePatch{Companions: companions, HasCompanions: true}
	quote, err := s.QuoteApp.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, quote)
}

func (s *RestHandler) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	deleted, err := s.QuoteApp.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]bool{"deleted": deleted})
}
