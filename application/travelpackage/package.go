package travelpackage

import (
	"context"
	"strings"

	"github.com/aquatour/crm-backend/application/audit"
	"github.com/aquatour/crm-backend/application/guard"
	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	packagerepo "github.com/aquatour/crm-backend/repository/travelpackage"
	"github.com/aquatour/crm-backend/utils/errors"
	"github.com/aquatour/crm-backend/utils/logger"
	"go.uber.org/zap"
)

type PackageApp interface {
	List(ctx context.Context) ([]model.PackageEntity, error)
	Get(ctx context.Context, id uint64) (*model.PackageEntity, error)
	Create(ctx context.Context, req *model.PackageCreateRequest) (*model.PackageEntity, error)
	Update(ctx context.Context, id uint64, patch *model.PackagePatch) (*model.PackageEntity, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

type PackageAppImpl struct {
	packageRepo packagerepo.PackageRepository
	guard       guard.Guard
	recorder    audit.Recorder
}

func NewPackageApp(packageRepo packagerepo.PackageRepository, guard guard.Guard, recorder audit.Recorder) PackageApp {
	return &PackageAppImpl{
		packageRepo: packageRepo,
		guard:       guard,
		recorder:    recorder,
	}
}

func (s *PackageAppImpl) List(ctx context.Context) ([]model.PackageEntity, error) {
	packages, err := s.packageRepo.FindAll(ctx)
	if err != nil {
		logger.Error("[ListPackages] err packageRepo.FindAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return packages, nil
}

func (s *PackageAppImpl) Get(ctx context.Context, id uint64) (*model.PackageEntity, error) {
	pkg, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[GetPackage] err packageRepo.FindByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if pkg == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Package %d not found", id)
	}
	return pkg, nil
}

func (s *PackageAppImpl) Create(ctx context.Context, req *model.PackageCreateRequest) (*model.PackageEntity, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "Missing required fields: name")
	}
	if req.BasePrice != nil && *req.BasePrice < 0 {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "basePrice cannot be negative")
	}
	if req.DurationDays != nil && *req.DurationDays < 1 {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "durationDays must be at least 1")
	}
	if req.MaxCapacity != nil && *req.MaxCapacity < 1 {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "maxCapacity must be at least 1")
	}

	id, err := s.packageRepo.Insert(ctx, req)
	if err != nil {
		logger.Error("[CreatePackage] err packageRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	created, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionCreate, constant.EntityPackage, id, created.Name, "")
	return created, nil
}

func (s *PackageAppImpl) Update(ctx context.Context, id uint64, patch *model.PackagePatch) (*model.PackageEntity, error) {
	existing, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[UpdatePackage] err packageRepo.FindByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Package %d not found", id)
	}

	if patch.IsEmpty() {
		return existing, nil
	}

	if patch.BasePrice != nil && *patch.BasePrice < 0 {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "basePrice cannot be negative")
	}
	if patch.DurationDays != nil && *patch.DurationDays < 1 {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "durationDays must be at least 1")
	}
	if patch.MaxCapacity != nil && *patch.MaxCapacity < 1 {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "maxCapacity must be at least 1")
	}

	if err := s.packageRepo.Update(ctx, id, patch); err != nil {
		logger.Error("[UpdatePackage] err packageRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionUpdate, constant.EntityPackage, id, updated.Name, "")
	return updated, nil
}

func (s *PackageAppImpl) Delete(ctx context.Context, id uint64) (bool, error) {
	existing, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[DeletePackage] err packageRepo.FindByID", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return false, errors.SetCustomErrorf(constant.ErrNotFound, "Package %d not found", id)
	}

	if err := s.guard.AssertPackageDeletable(ctx, id); err != nil {
		return false, err
	}

	deleted, err := s.packageRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeletePackage] err packageRepo.Delete", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	if deleted {
		s.recorder.Record(ctx, constant.AuditActionDelete, constant.EntityPackage, id, existing.Name, "")
	}
	return deleted, nil
}
