package contact

import (
	"context"
	"strings"

	"github.com/aquatour/crm-backend/application/audit"
	"github.com/aquatour/crm-backend/application/uniqueness"
	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	contactrepo "github.com/aquatour/crm-backend/repository/contact"
	"github.com/aquatour/crm-backend/utils/errors"
	"github.com/aquatour/crm-backend/utils/logger"
	"go.uber.org/zap"
)

type ContactApp interface {
	List(ctx context.Context) ([]model.ContactEntity, error)
	Get(ctx context.Context, id uint64) (*model.ContactEntity, error)
	Create(ctx context.Context, req *model.ContactCreateRequest) (*model.ContactEntity, error)
	Update(ctx context.Context, id uint64, patch *model.ContactPatch) (*model.ContactEntity, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

type ContactAppImpl struct {
	contactRepo contactrepo.ContactRepository
	unique      uniqueness.Validator
	recorder    audit.Recorder
}

func NewContactApp(contactRepo contactrepo.ContactRepository, unique uniqueness.Validator, recorder audit.Recorder) ContactApp {
	return &ContactAppImpl{
		contactRepo: contactRepo,
		unique:      unique,
		recorder:    recorder,
	}
}

func (s *ContactAppImpl) List(ctx context.Context) ([]model.ContactEntity, error) {
	contacts, err := s.contactRepo.FindAll(ctx)
	if err != nil {
		logger.Error("[ListContacts] err contactRepo.FindAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return contacts, nil
}

func (s *ContactAppImpl) Get(ctx context.Context, id uint64) (*model.ContactEntity, error) {
	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[GetContact] err contactRepo.FindByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if contact == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Contact %d not found", id)
	}
	return contact, nil
}

func (s *ContactAppImpl) Create(ctx context.Context, req *model.ContactCreateRequest) (*model.ContactEntity, error) {
	missing := make([]string, 0, 3)
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.Phone) == "" {
		missing = append(missing, "phone")
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

	id, err := s.contactRepo.Insert(ctx, req)
	if err != nil {
		logger.Error("[CreateContact] err contactRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	created, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionCreate, constant.EntityContact, id, created.Name, "")
	return created, nil
}

func (s *ContactAppImpl) Update(ctx context.Context, id uint64, patch *model.ContactPatch) (*model.ContactEntity, error) {
	existing, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateContact] err contactRepo.FindByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Contact %d not found", id)
	}

	if patch.IsEmpty() {
		return existing, nil
	}

	opts := &uniqueness.Options{ExcludeEntity: constant.EntityContact, ExcludeID: id}
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

	if err := s.contactRepo.Update(ctx, id, patch); err != nil {
		logger.Error("[UpdateContact] err contactRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionUpdate, constant.EntityContact, id, updated.Name, "")
	return updated, nil
}

func (s *ContactAppImpl) Delete(ctx context.Context, id uint64) (bool, error) {
	existing, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteContact] err contactRepo.FindByID", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return false, errors.SetCustomErrorf(constant.ErrNotFound, "Contact %d not found", id)
	}

	deleted, err := s.contactRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteContact] err contactRepo.Delete", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	if deleted {
		s.recorder.Record(ctx, constant.AuditActionDelete, constant.EntityContact, id, existing.Name, "")
	}
	return deleted, nil
}
