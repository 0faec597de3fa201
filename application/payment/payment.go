package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aquatour/crm-backend/application/audit"
	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	paymentrepo "github.com/aquatour/crm-backend/repository/payment"
	"github.com/aquatour/crm-backend/utils/errors"
	"github.com/aquatour/crm-backend/utils/logger"
	"go.uber.org/zap"
)

// ReservationFinder and QuoteFinder are the narrow views the payment
// service needs to confirm the paid-for record exists.
type ReservationFinder interface {
	FindByID(ctx context.Context, id uint64) (*model.ReservationEntity, error)
}

type QuoteFinder interface {
	FindByID(ctx context.Context, id uint64) (*model.QuoteEntity, error)
}

type PaymentApp interface {
	List(ctx context.Context) ([]model.PaymentEntity, error)
	ListByReservation(ctx context.Context, reservationID uint64) ([]model.PaymentEntity, error)
	ListByEmployee(ctx context.Context, employeeID uint64) ([]model.PaymentEntity, error)
	Get(ctx context.Context, id uint64) (*model.PaymentEntity, error)
	Create(ctx context.Context, req *model.PaymentCreateRequest) (*model.PaymentEntity, error)
	Update(ctx context.Context, id uint64, patch *model.PaymentPatch) (*model.PaymentEntity, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

type PaymentAppImpl struct {
	paymentRepo  paymentrepo.PaymentRepository
	reservations ReservationFinder
	quotes       QuoteFinder
	recorder     audit.Recorder
}

func NewPaymentApp(paymentRepo paymentrepo.PaymentRepository, reservations ReservationFinder, quotes QuoteFinder, recorder audit.Recorder) PaymentApp {
	return &PaymentAppImpl{
		paymentRepo:  paymentRepo,
		reservations: reservations,
		quotes:       quotes,
		recorder:     recorder,
	}
}

func (s *PaymentAppImpl) List(ctx context.Context) ([]model.PaymentEntity, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		logger.Error("[ListPayments] err paymentRepo.FindAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return payments, nil
}

func (s *PaymentAppImpl) ListByReservation(ctx context.Context, reservationID uint64) ([]model.PaymentEntity, error) {
	payments, err := s.paymentRepo.FindByReservation(ctx, reservationID)
	if err != nil {
		logger.Error("[ListPaymentsByReservation] err paymentRepo.FindByReservation", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return payments, nil
}

func (s *PaymentAppImpl) ListByEmployee(ctx context.Context, employeeID uint64) ([]model.PaymentEntity, error) {
	payments, err := s.paymentRepo.FindByEmployee(ctx, employeeID)
	if err != nil {
		logger.Error("[ListPaymentsByEmployee] err paymentRepo.FindByEmployee", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return payments, nil
}

func (s *PaymentAppImpl) Get(ctx context.Context, id uint64) (*model.PaymentEntity, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[GetPayment] err paymentRepo.FindByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if payment == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Payment %d not found", id)
	}
	return payment, nil
}

func (s *PaymentAppImpl) Create(ctx context.Context, req *model.PaymentCreateRequest) (*model.PaymentEntity, error) {
	missing := make([]string, 0, 3)
	if strings.TrimSpace(req.Method) == "" {
		missing = append(missing, "method")
	}
	if strings.TrimSpace(req.ReferenceNumber) == "" {
		missing = append(missing, "referenceNumber")
	}
	if req.Amount <= 0 {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		return nil, errors.SetCustomErrorf(constant.ErrValidation,
			"Missing required fields: %s", strings.Join(missing, ", "))
	}

	if err := s.assertExactlyOneTarget(ctx, req.ReservationID, req.QuoteID); err != nil {
		return nil, err
	}

	var paidAt *time.Time
	if req.PaidAt != nil && *req.PaidAt != "" {
		parsed, err := model.ParseDate(*req.PaidAt)
		if err != nil {
			return nil, errors.SetCustomErrorf(constant.ErrValidation, "Invalid paidAt: %s", *req.PaidAt)
		}
		paidAt = &parsed
	}

	write := &model.PaymentWrite{
		PaidAt:          paidAt,
		Method:          &req.Method,
		IssuingBank:     req.IssuingBank,
		ReferenceNumber: &req.ReferenceNumber,
		Amount:          &req.Amount,
		ReservationID:   req.ReservationID,
		QuoteID:         req.QuoteID,
	}

	id, err := s.paymentRepo.Insert(ctx, write)
	if err != nil {
		logger.Error("[CreatePayment] err paymentRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	created, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionCreate, constant.EntityPayment, id,
		fmt.Sprintf("Payment %s", created.ReferenceNumber), "")
	return created, nil
}

func (s *PaymentAppImpl) Update(ctx context.Context, id uint64, patch *model.PaymentPatch) (*model.PaymentEntity, error) {
	existing, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[UpdatePayment] err paymentRepo.FindByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Payment %d not found", id)
	}

	if patch.IsEmpty() {
		return existing, nil
	}

	if patch.Amount != nil && *patch.Amount <= 0 {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "amount must be positive")
	}

	// repointing the payment must leave it attached to exactly one record
	if patch.ReservationID != nil && patch.QuoteID != nil {
		return nil, errors.SetCustomErrorf(constant.ErrValidation,
			"A payment must reference exactly one reservation or quote")
	}
	if patch.ReservationID != nil || patch.QuoteID != nil {
		if err := s.assertExactlyOneTarget(ctx, patch.ReservationID, patch.QuoteID); err != nil {
			return nil, err
		}
	}

	write := &model.PaymentWrite{
		Method:          patch.Method,
		IssuingBank:     patch.IssuingBank,
		ReferenceNumber: patch.ReferenceNumber,
		Amount:          patch.Amount,
		ReservationID:   patch.ReservationID,
		QuoteID:         patch.QuoteID,
	}
	if patch.PaidAt != nil && *patch.PaidAt != "" {
		parsed, err := model.ParseDate(*patch.PaidAt)
		if err != nil {
			return nil, errors.SetCustomErrorf(constant.ErrValidation, "Invalid paidAt: %s", *patch.PaidAt)
		}
		write.PaidAt = &parsed
	}

	if err := s.paymentRepo.Update(ctx, id, write); err != nil {
		logger.Error("[UpdatePayment] err paymentRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionUpdate, constant.EntityPayment, id,
		fmt.Sprintf("Payment %s", updated.ReferenceNumber), "")
	return updated, nil
}

func (s *PaymentAppImpl) Delete(ctx context.Context, id uint64) (bool, error) {
	existing, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[DeletePayment] err paymentRepo.FindByID", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return false, errors.SetCustomErrorf(constant.ErrNotFound, "Payment %d not found", id)
	}

	deleted, err := s.paymentRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeletePayment] err paymentRepo.Delete", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	if deleted {
		s.recorder.Record(ctx, constant.AuditActionDelete, constant.EntityPayment, id,
			fmt.Sprintf("Payment %s", existing.ReferenceNumber), "")
	}
	return deleted, nil
}

func (s *PaymentAppImpl) assertExactlyOneTarget(ctx context.Context, reservationID, quoteID *uint64) error {
	hasReservation := reservationID != nil && *reservationID != 0
	hasQuote := quoteID != nil && *quoteID != 0

	if hasReservation == hasQuote {
		return errors.SetCustomErrorf(constant.ErrValidation,
			"A payment must reference exactly one reservation or quote")
	}

	if hasReservation {
		reservation, err := s.reservations.FindByID(ctx, *reservationID)
		if err != nil {
			logger.Error("[PaymentTarget] err reservations.FindByID", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if reservation == nil {
			return errors.SetCustomErrorf(constant.ErrNotFound, "Reservation %d not found", *reservationID)
		}
		return nil
	}

	quote, err := s.quotes.FindByID(ctx, *quoteID)
	if err != nil {
		logger.Error("[PaymentTarget] err quotes.FindByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if quote == nil {
		return errors.SetCustomErrorf(constant.ErrNotFound, "Quote %d not found", *quoteID)
	}
	return nil
}
