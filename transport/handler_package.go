package transport

import (
	"encoding/json"
	"net/http"

	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	"github.com/aquatour/crm-backend/utils/errors"
)

func (s *RestHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := s.PackageApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, packages)
}

func (s *RestHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	pkg, err := s.PackageApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, pkg)
}

func (s *RestHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req model.PackageCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	pkg, err := s.PackageApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, pkg)
}

func (s *RestHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var patch model.PackagePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	pkg, err := s.PackageApp.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, pkg)
}

func (s *RestHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	deleted, err := s.PackageApp.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]bool{"deleted": deleted})
}
