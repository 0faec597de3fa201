package provider

import (
	"context"
	"strings"

	"github.com/aquatour/crm-backend/application/audit"
	"github.com/aquatour/crm-backend/application/uniqueness"
	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	providerrepo "github.com/aquatour/crm-backend/repository/provider"
	"github.com/aquatour/crm-backend/utils/errors"
	"github.com/aquatour/crm-backend/utils/logger"
	"go.uber.org/zap"
)

type ProviderApp interface {
	List(ctx context.Context) ([]model.ProviderEntity, error)
	Get(ctx context.Context, id uint64) (*model.ProviderEntity, error)
	Create(ctx context.Context, req *model.ProviderCreateRequest) (*model.ProviderEntity, error)
	Update(ctx context.Context, id uint64, patch *model.ProviderPatch) (*model.ProviderEntity, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

type ProviderAppImpl struct {
	providerRepo providerrepo.ProviderRepository
	unique       uniqueness.Validator
	recorder     audit.Recorder
}

func NewProviderApp(providerRepo providerrepo.ProviderRepository, unique uniqueness.Validator, recorder audit.Recorder) ProviderApp {
	return &ProviderAppImpl{
		providerRepo: providerRepo,
		unique:       unique,
		recorder:     recorder,
	}
}

func (s *ProviderAppImpl) List(ctx context.Context) ([]model.ProviderEntity, error) {
	providers, err := s.providerRepo.FindAll(ctx)
	if err != nil {
		logger.Error("[ListProviders] err providerRepo.FindAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return providers, nil
}

func (s *ProviderAppImpl) Get(ctx context.Context, id uint64) (*model.ProviderEntity, error) {
	provider, err := s.providerRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[GetProvider] err providerRepo.FindByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if provider == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Provider %d not found", id)
	}
	return provider, nil
}

func (s *ProviderAppImpl) Create(ctx context.Context, req *model.ProviderCreateRequest) (*model.ProviderEntity, error) {
	missing := make([]string, 0, 4)
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.ProviderType) == "" {
		missing = append(missing, "providerType")
	}
	if strings.TrimSpace(req.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return nil, errors.SetCustomErrorf(constant.ErrValidation,
			"Missing required fields: %s", strings.Join(missing, ", "))
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = uniqueness.NormalizePhone(req.Phone)

	if err := s.unique.CheckEmail(ctx, req.Email, nil); err != nil {
		return nil, err
	}
	if err := s.unique.CheckPhone(ctx, req.Phone, nil); err != nil {
		return nil, err
	}

	id, err := s.providerRepo.Insert(ctx, req)
	if err != nil {
		logger.Error("[CreateProvider] err providerRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	created, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionCreate, constant.EntityProvider, id, created.Name, "")
	return created, nil
}

func (s *ProviderAppImpl) Update(ctx context.Context, id uint64, patch *model.ProviderPatch) (*model.ProviderEntity, error) {
	existing, err := s.providerRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateProvider] err providerRepo.FindByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Provider %d not found", id)
	}

	if patch.IsEmpty() {
		return existing, nil
	}

	opts := &uniqueness.Options{ExcludeEntity: constant.EntityProvider, ExcludeID: id}
	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		if err := s.unique.CheckEmail(ctx, email, opts); err != nil {
			return nil, err
		}
		patch.Email = &email
	}
	if patch.Phone != nil {
		phone := uniqueness.NormalizePhone(*patch.Phone)
		if err := s.unique.CheckPhone(ctx, phone, opts); err != nil {
			return nil, err
		}
		patch.Phone = &phone
	}

	if err := s.providerRepo.Update(ctx, id, patch); err != nil {
		logger.Error("[UpdateProvider] err providerRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionUpdate, constant.EntityProvider, id, updated.Name, "")
	return updated, nil
}

func (s *ProviderAppImpl) Delete(ctx context.Context, id uint64) (bool, error) {
	existing, err := s.providerRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteProvider] err providerRepo.FindByID", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return false, errors.SetCustomErrorf(constant.ErrNotFound, "Provider %d not found", id)
	}

	deleted, err := s.providerRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteProvider] err providerRepo.Delete", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	if deleted {
		s.recorder.Record(ctx, constant.AuditActionDelete, constant.EntityProvider, id, existing.Name, "")
	}
	return deleted, nil
}
