package client

import (
	"context"
	"strings"

	"github.com/aquatour/crm-backend/application/audit"
	"github.com/aquatour/crm-backend/application/guard"
	"github.com/aquatour/crm-backend/application/uniqueness"
	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	clientrepo "github.com/aquatour/crm-backend/repository/client"
	ctxutil "github.com/aquatour/crm-backend/utils/context"
	"github.com/aquatour/crm-backend/utils/errors"
	"github.com/aquatour/crm-backend/utils/logger"
	"go.uber.org/zap"
)

type ClientApp interface {
	List(ctx context.Context) ([]model.ClientEntity, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.ClientEntity, error)
	Get(ctx context.Context, id uint64) (*model.ClientEntity, error)
	Create(ctx context.Context, req *model.ClientCreateRequest) (*model.ClientEntity, error)
	Update(ctx context.Context, id uint64, patch *model.ClientPatch) (*model.ClientEntity, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

type ClientAppImpl struct {
	clientRepo clientrepo.ClientRepository
	unique     uniqueness.Validator
	guard      guard.Guard
	recorder   audit.Recorder
}

func NewClientApp(clientRepo clientrepo.ClientRepository, unique uniqueness.Validator, guard guard.Guard, recorder audit.Recorder) ClientApp {
	return &ClientAppImpl{
		clientRepo: clientRepo,
		unique:     unique,
		guard:      guard,
		recorder:   recorder,
	}
}

func (s *ClientAppImpl) List(ctx context.Context) ([]model.ClientEntity, error) {
	clients, err := s.clientRepo.FindAll(ctx)
	if err != nil {
		logger.Error("[ListClients] err clientRepo.FindAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return clients, nil
}

func (s *ClientAppImpl) ListByUser(ctx context.Context, userID uint64) ([]model.ClientEntity, error) {
	clients, err := s.clientRepo.FindByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListClientsByUser] err clientRepo.FindByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return clients, nil
}

func (s *ClientAppImpl) Get(ctx context.Context, id uint64) (*model.ClientEntity, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[GetClient] err clientRepo.FindByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if client == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Client %d not found", id)
	}
	return client, nil
}

func (s *ClientAppImpl) Create(ctx context.Context, req *model.ClientCreateRequest) (*model.ClientEntity, error) {
	missing := make([]string, 0, 5)
	if strings.TrimSpace(req.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(req.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(req.DocumentNumber) == "" {
		missing = append(missing, "documentNumber")
	}
	if len(missing) > 0 {
		return nil, errors.SetCustomErrorf(constant.ErrValidation,
			"Missing required fields: %s", strings.Join(missing, ", "))
	}

	// the creating advisor is implied by the session when not sent
	if req.CreatedByUserID == 0 {
		if userID, ok := ctxutil.GetUserID(ctx); ok {
			req.CreatedByUserID = userID
		} else {
			return nil, errors.SetCustomErrorf(constant.ErrValidation,
				"Missing required fields: createdByUserId")
		}
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = uniqueness.NormalizePhone(req.Phone)
	req.DocumentNumber = uniqueness.NormalizeDocument(req.DocumentNumber)

	if err := s.unique.CheckEmail(ctx, req.Email, nil); err != nil {
		return nil, err
	}
	if err := s.unique.CheckPhone(ctx, req.Phone, nil); err != nil {
		return nil, err
	}
	if err := s.unique.CheckDocument(ctx, req.DocumentNumber, nil); err != nil {
		return nil, err
	}

	id, err := s.clientRepo.Insert(ctx, req)
	if err != nil {
		logger.Error("[CreateClient] err clientRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	created, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionCreate, constant.EntityClient, id,
		created.FirstName+" "+created.LastName, "")
	return created, nil
}

func (s *ClientAppImpl) Update(ctx context.Context, id uint64, patch *model.ClientPatch) (*model.ClientEntity, error) {
	existing, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateClient] err clientRepo.FindByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Client %d not found", id)
	}

	if patch.IsEmpty() {
		return existing, nil
	}

	opts := &uniqueness.Options{ExcludeEntity: constant.EntityClient, ExcludeID: id}
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
	if patch.DocumentNumber != nil {
		document := uniqueness.NormalizeDocument(*patch.DocumentNumber)
		if err := s.unique.CheckDocument(ctx, document, opts); err != nil {
			return nil, err
		}
		patch.DocumentNumber = &document
	}

	if err := s.clientRepo.Update(ctx, id, patch); err != nil {
		logger.Error("[UpdateClient] err clientRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionUpdate, constant.EntityClient, id,
		updated.FirstName+" "+updated.LastName, "")
	return updated, nil
}

func (s *ClientAppImpl) Delete(ctx context.Context, id uint64) (bool, error) {
	existing, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteClient] err clientRepo.FindByID", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return false, errors.SetCustomErrorf(constant.ErrNotFound, "Client %d not found", id)
	}

	if err := s.guard.AssertClientDeletable(ctx, id); err != nil {
		return false, err
	}

	deleted, err := s.clientRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteClient] err clientRepo.Delete", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	if deleted {
		s.recorder.Record(ctx, constant.AuditActionDelete, constant.EntityClient, id,
			existing.FirstName+" "+existing.LastName, "")
	}
	return deleted, nil
}
