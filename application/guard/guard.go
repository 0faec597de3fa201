package guard

import (
	"context"

	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/utils/errors"
	"github.com/aquatour/crm-backend/utils/logger"
	"go.uber.org/zap"
)

// The guard only needs counters, so it consumes narrow views of the
// repositories instead of the full interfaces.

type QuoteCounter interface {
	CountByClient(ctx context.Context, clientID uint64) (int64, error)
	CountByPackage(ctx context.Context, packageID uint64) (int64, error)
}

type ReservationCounter interface {
	CountByClient(ctx context.Context, clientID uint64) (int64, error)
	CountByPackage(ctx context.Context, packageID uint64) (int64, error)
}

type PaymentCounter interface {
	CountByReservation(ctx context.Context, reservationID uint64) (int64, error)
}

// Guard refuses deletes that would orphan dependent records. Checks run
// in a fixed order and the first non-zero count wins.
type Guard interface {
	AssertClientDeletable(ctx context.Context, clientID uint64) error
	AssertPackageDeletable(ctx context.Context, packageID uint64) error
	AssertReservationDeletable(ctx context.Context, reservationID uint64) error
}

type GuardImpl struct {
	quotes       QuoteCounter
	reservations ReservationCounter
	payments     PaymentCounter
}

func NewGuard(quotes QuoteCounter, reservations ReservationCounter, payments PaymentCounter) Guard {
	return &GuardImpl{
		quotes:       quotes,
		reservations: reservations,
		payments:     payments,
	}
}

func (g *GuardImpl) AssertClientDeletable(ctx context.Context, clientID uint64) error {
	count, err := g.quotes.CountByClient(ctx, clientID)
	if err != nil {
		logger.Error("[Guard] err quotes.CountByClient", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if count > 0 {
		return dependencyConflict("client", count, "quote")
	}

	count, err = g.reservations.CountByClient(ctx, clientID)
	if err != nil {
		logger.Error("[Guard] err reservations.CountByClient", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if count > 0 {
		return dependencyConflict("client", count, "reservation")
	}
	return nil
}

func (g *GuardImpl) AssertPackageDeletable(ctx context.Context, packageID uint64) error {
	count, err := g.reservations.CountByPackage(ctx, packageID)
	if err != nil {
		logger.Error("[Guard] err reservations.CountByPackage", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if count > 0 {
		return dependencyConflict("package", count, "reservation")
	}

	count, err = g.quotes.CountByPackage(ctx, packageID)
	if err != nil {
		logger.Error("[Guard] err quotes.CountByPackage", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if count > 0 {
		return dependencyConflict("package", count, "quote")
	}
	return nil
}

func (g *GuardImpl) AssertReservationDeletable(ctx context.Context, reservationID uint64) error {
	count, err := g.payments.CountByReservation(ctx, reservationID)
	if err != nil {
		logger.Error("[Guard] err payments.CountByReservation", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if count > 0 {
		return dependencyConflict("reservation", count, "payment")
	}
	return nil
}

func dependencyConflict(owner string, count int64, kind string) error {
	plural := kind + "s"
	if count == 1 {
		plural = kind
	}
	return errors.SetCustomErrorf(constant.ErrConflict,
		"Cannot delete the %s: it has %d associated %s. Delete the dependent records first.",
		owner, count, plural)
}
