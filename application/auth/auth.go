package auth

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	auditapp "github.com/aquatour/crm-backend/application/audit"
	"github.com/aquatour/crm-backend/cmd/config"
	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	auditrepo "github.com/aquatour/crm-backend/repository/audit"
	redisrepo "github.com/aquatour/crm-backend/repository/redis"
	userrepo "github.com/aquatour/crm-backend/repository/user"
	"github.com/aquatour/crm-backend/utils/errors"
	"github.com/aquatour/crm-backend/utils/logger"
	validatorx "github.com/aquatour/crm-backend/utils/validator"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const maxReasonLen = 120

type AuthApp interface {
	Login(ctx context.Context, req *model.LoginRequest, ip string) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (*model.UserEntity, error)
}

type AuthAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
	recorder  auditapp.Recorder
}

func NewAuthApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository, recorder auditapp.Recorder) AuthApp {
	return &AuthAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		recorder:  recorder,
	}
}

func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest, ip string) (*model.LoginResponse, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "email and password are required")
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		s.logAttempt(ctx, nil, req.Email, ip, false, "unknown email")
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	if !user.Active {
		s.logAttempt(ctx, &user.ID, req.Email, ip, false, "inactive account")
		return nil, errors.SetCustomErrorf(constant.ErrForbidden, "This account has been deactivated")
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		s.logAttempt(ctx, &user.ID, req.Email, ip, false, "wrong password")
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.logAttempt(ctx, &user.ID, req.Email, ip, true, "")

	user.Role, _ = constant.RoleToApp(user.Role, constant.EnumLenient)
	user.DocumentType, _ = constant.DocTypeToApp(user.DocumentType, constant.EnumLenient)
	user.Gender, _ = constant.GenderToApp(user.Gender, constant.EnumLenient)

	return &model.LoginResponse{
		User:  user,
		Token: token,
	}, nil
}

func (s *AuthAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *AuthAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.UserEntity, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token")
	}

	jti := claims.ID
	if jti == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	switch {
	case stderrors.Is(err, redisrepo.ErrSessionsDisabled):
		// no session store to consult; the signed token stands alone
	case err != nil:
		return nil, fmt.Errorf("invalid or expired session")
	case redisUserID != userID:
		return nil, fmt.Errorf("token does not match user session")
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[ValidateToken] err userRepo.Get", zap.String("error", err.Error()))
		return nil, fmt.Errorf("could not load user")
	}
	if user == nil || !user.Active {
		return nil, fmt.Errorf("user no longer active")
	}

	user.Role, _ = constant.RoleToApp(user.Role, constant.EnumLenient)
	return user, nil
}

func (s *AuthAppImpl) parseClaims(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// generateJWT creates a JWT token for the user
func (s *AuthAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", userID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

func (s *AuthAppImpl) logAttempt(ctx context.Context, userID *uint64, email, ip string, success bool, reason string) {
	entry := &model.AccessLogEntity{
		UserID:    userID,
		Email:     email,
		IP:        ip,
		Success:   success,
		CreatedAt: time.Now(),
	}
	if reason != "" {
		truncated := auditrepo.TruncateReason(reason, maxReasonLen)
		entry.Reason = &truncated
	}
	s.recorder.RecordLoginAttempt(ctx, entry)
}
