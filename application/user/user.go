package user

import (
	"context"
	"strings"
	"time"

	"github.com/aquatour/crm-backend/application/audit"
	"github.com/aquatour/crm-backend/application/uniqueness"
	"github.com/aquatour/crm-backend/cmd/config"
	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	userrepo "github.com/aquatour/crm-backend/repository/user"
	"github.com/aquatour/crm-backend/utils/errors"
	"github.com/aquatour/crm-backend/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	List(ctx context.Context) ([]model.UserEntity, error)
	Get(ctx context.Context, id uint64) (*model.UserEntity, error)
	Create(ctx context.Context, req *model.UserCreateRequest) (*model.UserEntity, error)
	Update(ctx context.Context, id uint64, patch *model.UserPatch) (*model.UserEntity, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

type UserAppImpl struct {
	config   *config.Config
	userRepo userrepo.UserRepository
	unique   uniqueness.Validator
	recorder audit.Recorder
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, unique uniqueness.Validator, recorder audit.Recorder) UserApp {
	return &UserAppImpl{
		config:   config,
		userRepo: userRepo,
		unique:   unique,
		recorder: recorder,
	}
}

func (s *UserAppImpl) List(ctx context.Context) ([]model.UserEntity, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		logger.Error("[ListUsers] err userRepo.FindAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	for i := range users {
		toAppVocabulary(&users[i])
	}
	return users, nil
}

func (s *UserAppImpl) Get(ctx context.Context, id uint64) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: id})
	if err != nil {
		logger.Error("[GetUser] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "User %d not found", id)
	}
	toAppVocabulary(user)
	return user, nil
}

func (s *UserAppImpl) Create(ctx context.Context, req *model.UserCreateRequest) (*model.UserEntity, error) {
	missing := make([]string, 0, 8)
	if strings.TrimSpace(req.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(req.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if strings.TrimSpace(req.DocumentNumber) == "" {
		missing = append(missing, "documentNumber")
	}
	if strings.TrimSpace(req.Phone) == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return nil, errors.SetCustomErrorf(constant.ErrValidation,
			"Missing required fields: %s", strings.Join(missing, ", "))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := uniqueness.NormalizePhone(req.Phone)
	document := uniqueness.NormalizeDocument(req.DocumentNumber)

	if err := s.unique.CheckEmail(ctx, email, nil); err != nil {
		return nil, err
	}
	if err := s.unique.CheckPhone(ctx, phone, nil); err != nil {
		return nil, err
	}
	if err := s.unique.CheckDocument(ctx, document, nil); err != nil {
		return nil, err
	}

	mode := s.config.Validation.EnumMode
	roleName, err := constant.RoleToDB(valueOr(req.Role, constant.RoleEmployee), mode)
	if err != nil {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "Invalid role: %s", req.Role)
	}
	docType, err := constant.DocTypeToDB(valueOr(req.DocumentType, "CC"), mode)
	if err != nil {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "Invalid document type: %s", req.DocumentType)
	}
	gender, err := constant.GenderToDB(valueOr(req.Gender, "Other"), mode)
	if err != nil {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "Invalid gender: %s", req.Gender)
	}

	var birthDate *time.Time
	if req.BirthDate != nil && *req.BirthDate != "" {
		parsed, err := model.ParseDate(*req.BirthDate)
		if err != nil {
			return nil, errors.SetCustomErrorf(constant.ErrValidation, "Invalid birthDate: %s", *req.BirthDate)
		}
		birthDate = &parsed
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[CreateUser] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	passwordHash := string(hashedPassword)

	write := &model.UserWrite{
		FirstName:      &req.FirstName,
		LastName:       &req.LastName,
		Email:          &email,
		DocumentType:   &docType,
		DocumentNumber: &document,
		BirthDate:      birthDate,
		Gender:         &gender,
		Phone:          &phone,
		Address:        req.Address,
		City:           req.City,
		Country:        req.Country,
		PasswordHash:   &passwordHash,
		RoleName:       &roleName,
	}

	id, err := s.userRepo.Insert(ctx, write)
	if err != nil {
		logger.Error("[CreateUser] err userRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	created, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionCreate, constant.EntityUser, id,
		created.FirstName+" "+created.LastName, "")
	return created, nil
}

func (s *UserAppImpl) Update(ctx context.Context, id uint64, patch *model.UserPatch) (*model.UserEntity, error) {
	existing, err := s.userRepo.Get(ctx, &model.UserFilter{ID: id})
	if err != nil {
		logger.Error("[UpdateUser] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "User %d not found", id)
	}

	if patch.IsEmpty() {
		toAppVocabulary(existing)
		return existing, nil
	}

	opts := &uniqueness.Options{ExcludeEntity: constant.EntityUser, ExcludeID: id}
	write := &model.UserWrite{
		FirstName: patch.FirstName,
		LastName:  patch.LastName,
		Address:   patch.Address,
		City:      patch.City,
		Country:   patch.Country,
		Active:    patch.Active,
	}

	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		if err := s.unique.CheckEmail(ctx, email, opts); err != nil {
			return nil, err
		}
		write.Email = &email
	}
	if patch.Phone != nil {
		phone := uniqueness.NormalizePhone(*patch.Phone)
		if err := s.unique.CheckPhone(ctx, phone, opts); err != nil {
			return nil, err
		}
		write.Phone = &phone
	}
	if patch.DocumentNumber != nil {
		document := uniqueness.NormalizeDocument(*patch.DocumentNumber)
		if err := s.unique.CheckDocument(ctx, document, opts); err != nil {
			return nil, err
		}
		write.DocumentNumber = &document
	}

	mode := s.config.Validation.EnumMode
	if patch.Role != nil {
		roleName, err := constant.RoleToDB(*patch.Role, mode)
		if err != nil {
			return nil, errors.SetCustomErrorf(constant.ErrValidation, "Invalid role: %s", *patch.Role)
		}
		write.RoleName = &roleName
	}
	if patch.DocumentType != nil {
		docType, err := constant.DocTypeToDB(*patch.DocumentType, mode)
		if err != nil {
			return nil, errors.SetCustomErrorf(constant.ErrValidation, "Invalid document type: %s", *patch.DocumentType)
		}
		write.DocumentType = &docType
	}
	if patch.Gender != nil {
		gender, err := constant.GenderToDB(*patch.Gender, mode)
		if err != nil {
			return nil, errors.SetCustomErrorf(constant.ErrValidation, "Invalid gender: %s", *patch.Gender)
		}
		write.Gender = &gender
	}
	if patch.BirthDate != nil && *patch.BirthDate != "" {
		parsed, err := model.ParseDate(*patch.BirthDate)
		if err != nil {
			return nil, errors.SetCustomErrorf(constant.ErrValidation, "Invalid birthDate: %s", *patch.BirthDate)
		}
		write.BirthDate = &parsed
	}
	if patch.Password != nil && *patch.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("[UpdateUser] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		passwordHash := string(hashedPassword)
		write.PasswordHash = &passwordHash
	}

	if err := s.userRepo.Update(ctx, id, write); err != nil {
		logger.Error("[UpdateUser] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionUpdate, constant.EntityUser, id,
		updated.FirstName+" "+updated.LastName, "")
	return updated, nil
}

func (s *UserAppImpl) Delete(ctx context.Context, id uint64) (bool, error) {
	existing, err := s.userRepo.Get(ctx, &model.UserFilter{ID: id})
	if err != nil {
		logger.Error("[DeleteUser] err userRepo.Get", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return false, errors.SetCustomErrorf(constant.ErrNotFound, "User %d not found", id)
	}

	role, _ := constant.RoleToApp(existing.Role, constant.EnumLenient)
	if role == constant.RoleSuperAdmin {
		return false, errors.SetCustomErrorf(constant.ErrForbidden,
			"Super administrator accounts cannot be deleted")
	}

	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteUser] err userRepo.Delete", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	if deleted {
		s.recorder.Record(ctx, constant.AuditActionDelete, constant.EntityUser, id,
			existing.FirstName+" "+existing.LastName, "")
	}
	return deleted, nil
}

// toAppVocabulary rewrites the stored role, document type and gender into
// the API vocabulary before the entity leaves the service.
func toAppVocabulary(user *model.UserEntity) {
	user.Role, _ = constant.RoleToApp(user.Role, constant.EnumLenient)
	user.DocumentType, _ = constant.DocTypeToApp(user.DocumentType, constant.EnumLenient)
	user.Gender, _ = constant.GenderToApp(user.Gender, constant.EnumLenient)
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
