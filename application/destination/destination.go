package destination

import (
	"context"
	"strings"

	"github.com/aquatour/crm-backend/application/audit"
	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	destinationrepo "github.com/aquatour/crm-backend/repository/destination"
	"github.com/aquatour/crm-backend/utils/errors"
	"github.com/aquatour/crm-backend/utils/logger"
	"go.uber.org/zap"
)

type DestinationApp interface {
	List(ctx context.Context) ([]model.DestinationEntity, error)
	Get(ctx context.Context, id uint64) (*model.DestinationEntity, error)
	Create(ctx context.Context, req *model.DestinationCreateRequest) (*model.DestinationEntity, error)
	Update(ctx context.Context, id uint64, patch *model.DestinationPatch) (*model.DestinationEntity, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

type DestinationAppImpl struct {
	destinationRepo destinationrepo.DestinationRepository
	recorder        audit.Recorder
}

func NewDestinationApp(destinationRepo destinationrepo.DestinationRepository, recorder audit.Recorder) DestinationApp {
	return &DestinationAppImpl{
		destinationRepo: destinationRepo,
		recorder:        recorder,
	}
}

func (s *DestinationAppImpl) List(ctx context.Context) ([]model.DestinationEntity, error) {
	destinations, err := s.destinationRepo.FindAll(ctx)
	if err != nil {
		logger.Error("[ListDestinations] err destinationRepo.FindAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return destinations, nil
}

func (s *DestinationAppImpl) Get(ctx context.Context, id uint64) (*model.DestinationEntity, error) {
	destination, err := s.destinationRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[GetDestination] err destinationRepo.FindByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if destination == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Destination %d not found", id)
	}
	return destination, nil
}

func (s *DestinationAppImpl) Create(ctx context.Context, req *model.DestinationCreateRequest) (*model.DestinationEntity, error) {
	missing := make([]string, 0, 2)
	if strings.TrimSpace(req.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(req.Country) == "" {
		missing = append(missing, "country")
	}
	if len(missing) > 0 {
		return nil, errors.SetCustomErrorf(constant.ErrValidation,
			"Missing required fields: %s", strings.Join(missing, ", "))
	}

	id, err := s.destinationRepo.Insert(ctx, req)
	if err != nil {
		logger.Error("[CreateDestination] err destinationRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	created, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionCreate, constant.EntityDestination, id,
		created.City+", "+created.Country, "")
	return created, nil
}

func (s *DestinationAppImpl) Update(ctx context.Context, id uint64, patch *model.DestinationPatch) (*model.DestinationEntity, error) {
	existing, err := s.destinationRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateDestination] err destinationRepo.FindByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Destination %d not found", id)
	}

	if patch.IsEmpty() {
		return existing, nil
	}

	if err := s.destinationRepo.Update(ctx, id, patch); err != nil {
		logger.Error("[UpdateDestination] err destinationRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionUpdate, constant.EntityDestination, id,
		updated.City+", "+updated.Country, "")
	return updated, nil
}

func (s *DestinationAppImpl) Delete(ctx context.Context, id uint64) (bool, error) {
	existing, err := s.destinationRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteDestination] err destinationRepo.FindByID", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return false, errors.SetCustomErrorf(constant.ErrNotFound, "Destination %d not found", id)
	}

	deleted, err := s.destinationRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteDestination] err destinationRepo.Delete", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	if deleted {
		s.recorder.Record(ctx, constant.AuditActionDelete, constant.EntityDestination, id,
			existing.City+", "+existing.Country, "")
	}
	return deleted, nil
}
