package reservation

import (
	"context"
	"fmt"
	"strings"

	"github.com/aquatour/crm-backend/application/audit"
	"github.com/aquatour/crm-backend/application/guard"
	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	reservationrepo "github.com/aquatour/crm-backend/repository/reservation"
	ctxutil "github.com/aquatour/crm-backend/utils/context"
	"github.com/aquatour/crm-backend/utils/errors"
	"github.com/aquatour/crm-backend/utils/logger"
	"go.uber.org/zap"
)

type ReservationApp interface {
	List(ctx context.Context) ([]model.ReservationEntity, error)
	ListByEmployee(ctx context.Context, employeeID uint64) ([]model.ReservationEntity, error)
	Get(ctx context.Context, id uint64) (*model.ReservationEntity, error)
	Create(ctx context.Context, req *model.ReservationCreateRequest) (*model.ReservationEntity, error)
	Update(ctx context.Context, id uint64, patch *model.ReservationPatch) (*model.ReservationEntity, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

type ReservationAppImpl struct {
	reservationRepo reservationrepo.ReservationRepository
	guard           guard.Guard
	recorder        audit.Recorder
}

func NewReservationApp(reservationRepo reservationrepo.ReservationRepository, guard guard.Guard, recorder audit.Recorder) ReservationApp {
	return &ReservationAppImpl{
		reservationRepo: reservationRepo,
		guard:           guard,
		recorder:        recorder,
	}
}

func (s *ReservationAppImpl) List(ctx context.Context) ([]model.ReservationEntity, error) {
	reservations, err := s.reservationRepo.FindAll(ctx)
	if err != nil {
		logger.Error("[ListReservations] err reservationRepo.FindAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return reservations, nil
}

func (s *ReservationAppImpl) ListByEmployee(ctx context.Context, employeeID uint64) ([]model.ReservationEntity, error) {
	reservations, err := s.reservationRepo.FindByEmployee(ctx, employeeID)
	if err != nil {
		logger.Error("[ListReservationsByEmployee] err reservationRepo.FindByEmployee", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return reservations, nil
}

func (s *ReservationAppImpl) Get(ctx context.Context, id uint64) (*model.ReservationEntity, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[GetReservation] err reservationRepo.FindByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if reservation == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Reservation %d not found", id)
	}
	return reservation, nil
}

func (s *ReservationAppImpl) Create(ctx context.Context, req *model.ReservationCreateRequest) (*model.ReservationEntity, error) {
	missing := make([]string, 0, 4)
	if req.PeopleCount <= 0 {
		missing = append(missing, "peopleCount")
	}
	if strings.TrimSpace(req.StartDate) == "" {
		missing = append(missing, "startDate")
	}
	if strings.TrimSpace(req.EndDate) == "" {
		missing = append(missing, "endDate")
	}
	if req.ClientID == 0 {
		missing = append(missing, "clientId")
	}
	if len(missing) > 0 {
		return nil, errors.SetCustomErrorf(constant.ErrValidation,
			"Missing required fields: %s", strings.Join(missing, ", "))
	}

	// the handling advisor defaults to the session user
	if req.EmployeeID == 0 {
		if userID, ok := ctxutil.GetUserID(ctx); ok {
			req.EmployeeID = userID
		} else {
			return nil, errors.SetCustomErrorf(constant.ErrValidation,
				"Missing required fields: employeeId")
		}
	}

	startDate, err := model.ParseDate(req.StartDate)
	if err != nil {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "Invalid startDate: %s", req.StartDate)
	}
	endDate, err := model.ParseDate(req.EndDate)
	if err != nil {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "Invalid endDate: %s", req.EndDate)
	}
	if endDate.Before(startDate) {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "endDate cannot be before startDate")
	}

	write := &model.ReservationWrite{
		PeopleCount:      &req.PeopleCount,
		TotalPrice:       req.TotalPrice,
		StartDate:        &startDate,
		EndDate:          &endDate,
		ClientID:         &req.ClientID,
		PackageID:        req.PackageID,
		DestinationID:    req.DestinationID,
		DestinationPrice: req.DestinationPrice,
		EmployeeID:       &req.EmployeeID,
	}

	id, err := s.reservationRepo.Insert(ctx, write)
	if err != nil {
		logger.Error("[CreateReservation] err reservationRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	created, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionCreate, constant.EntityReservation, id,
		fmt.Sprintf("Reservation #%d", id), "")
	return created, nil
}

func (s *ReservationAppImpl) Update(ctx context.Context, id uint64, patch *model.ReservationPatch) (*model.ReservationEntity, error) {
	existing, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateReservation] err reservationRepo.FindByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Reservation %d not found", id)
	}

	if patch.IsEmpty() {
		return existing, nil
	}

	if patch.PeopleCount != nil && *patch.PeopleCount <= 0 {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "peopleCount must be positive")
	}

	write := &model.ReservationWrite{
		PeopleCount:      patch.PeopleCount,
		TotalPrice:       patch.TotalPrice,
		ClientID:         patch.ClientID,
		PackageID:        patch.PackageID,
		DestinationID:    patch.DestinationID,
		DestinationPrice: patch.DestinationPrice,
	}

	// dates must stay ordered after a partial update
	startDate := existing.StartDate
	endDate := existing.EndDate
	if patch.StartDate != nil {
		parsed, err := model.ParseDate(*patch.StartDate)
		if err != nil {
			return nil, errors.SetCustomErrorf(constant.ErrValidation, "Invalid startDate: %s", *patch.StartDate)
		}
		startDate = parsed
		write.StartDate = &parsed
	}
	if patch.EndDate != nil {
		parsed, err := model.ParseDate(*patch.EndDate)
		if err != nil {
			return nil, errors.SetCustomErrorf(constant.ErrValidation, "Invalid endDate: %s", *patch.EndDate)
		}
		endDate = parsed
		write.EndDate = &parsed
	}
	if endDate.Before(startDate) {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "endDate cannot be before startDate")
	}

	if err := s.reservationRepo.Update(ctx, id, write); err != nil {
		logger.Error("[UpdateReservation] err reservationRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionUpdate, constant.EntityReservation, id,
		fmt.Sprintf("Reservation #%d", id), "")
	return updated, nil
}

func (s *ReservationAppImpl) Delete(ctx context.Context, id uint64) (bool, error) {
	existing, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteReservation] err reservationRepo.FindByID", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return false, errors.SetCustomErrorf(constant.ErrNotFound, "Reservation %d not found", id)
	}

	if err := s.guard.AssertReservationDeletable(ctx, id); err != nil {
		return false, err
	}

	deleted, err := s.reservationRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteReservation] err reservationRepo.Delete", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	if deleted {
		s.recorder.Record(ctx, constant.AuditActionDelete, constant.EntityReservation, id,
			fmt.Sprintf("Reservation #%d", id), "")
	}
	return deleted, nil
}
