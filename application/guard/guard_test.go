package guard_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aquatour/crm-backend/application/guard"
	"github.com/aquatour/crm-backend/constant"
	paymentmocks "github.com/aquatour/crm-backend/mocks/repository/payment"
	quotemocks "github.com/aquatour/crm-backend/mocks/repository/quote"
	reservationmocks "github.com/aquatour/crm-backend/mocks/repository/reservation"
	cerr "github.com/aquatour/crm-backend/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestGuard_AssertClientDeletable(t *testing.T) {
	type fields struct {
		quotes       *quotemocks.QuoteRepository
		reservations *reservationmocks.ReservationRepository
		payments     *paymentmocks.PaymentRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
		wantMsg  string
	}{
		{
			name: "success: no dependents",
			fields: fields{
				quotes:       quotemocks.NewQuoteRepository(t),
				reservations: reservationmocks.NewReservationRepository(t),
				payments:     paymentmocks.NewPaymentRepository(t),
			},
			mockCall: func(f fields) {
				f.quotes.On("CountByClient", mock.Anything, uint64(10)).Return(int64(0), nil).Once()
				f.reservations.On("CountByClient", mock.Anything, uint64(10)).Return(int64(0), nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: quotes reported first",
			fields: fields{
				quotes:       quotemocks.NewQuoteRepository(t),
				reservations: reservationmocks.NewReservationRepository(t),
				payments:     paymentmocks.NewPaymentRepository(t),
			},
			mockCall: func(f fields) {
				f.quotes.On("CountByClient", mock.Anything, uint64(10)).Return(int64(2), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
			wantMsg: "2 associated quote",
		},
		{
			name: "error: reservations block when no quotes",
			fields: fields{
				quotes:       quotemocks.NewQuoteRepository(t),
				reservations: reservationmocks.NewReservationRepository(t),
				payments:     paymentmocks.NewPaymentRepository(t),
			},
			mockCall: func(f fields) {
				f.quotes.On("CountByClient", mock.Anything, uint64(10)).Return(int64(0), nil).Once()
				f.reservations.On("CountByClient", mock.Anything, uint64(10)).Return(int64(1), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
			wantMsg: "1 associated reservation",
		},
		{
			name: "error: counter failure",
			fields: fields{
				quotes:       quotemocks.NewQuoteRepository(t),
				reservations: reservationmocks.NewReservationRepository(t),
				payments:     paymentmocks.NewPaymentRepository(t),
			},
			mockCall: func(f fields) {
				f.quotes.On("CountByClient", mock.Anything, uint64(10)).Return(int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			g := guard.NewGuard(tt.fields.quotes, tt.fields.reservations, tt.fields.payments)

			err := g.AssertClientDeletable(context.Background(), 10)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AssertClientDeletable() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}

			var ce cerr.CustomError
			if !errors.As(err, &ce) {
				t.Fatalf("error type = %T, want CustomError", err)
			}
			if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
				t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
			}
			if tt.wantMsg != "" && !strings.Contains(ce.Error(), tt.wantMsg) {
				t.Fatalf("error message = %q, want it to mention %q", ce.Error(), tt.wantMsg)
			}
		})
	}
}

func TestGuard_AssertPackageDeletable(t *testing.T) {
	t.Run("reservations are checked before quotes", func(t *testing.T) {
		quotes := quotemocks.NewQuoteRepository(t)
		reservations := reservationmocks.NewReservationRepository(t)
		payments := paymentmocks.NewPaymentRepository(t)

		reservations.On("CountByPackage", mock.Anything, uint64(5)).Return(int64(3), nil).Once()

		g := guard.NewGuard(quotes, reservations, payments)
		err := g.AssertPackageDeletable(context.Background(), 5)
		if err == nil {
			t.Fatal("AssertPackageDeletable() expected error")
		}

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if !strings.Contains(ce.Error(), "3 associated reservation") {
			t.Fatalf("error message = %q, want the reservation count", ce.Error())
		}
	})

	t.Run("quotes block after reservations are clear", func(t *testing.T) {
		quotes := quotemocks.NewQuoteRepository(t)
		reservations := reservationmocks.NewReservationRepository(t)
		payments := paymentmocks.NewPaymentRepository(t)

		reservations.On("CountByPackage", mock.Anything, uint64(5)).Return(int64(0), nil).Once()
		quotes.On("CountByPackage", mock.Anything, uint64(5)).Return(int64(1), nil).Once()

		g := guard.NewGuard(quotes, reservations, payments)
		if err := g.AssertPackageDeletable(context.Background(), 5); err == nil {
			t.Fatal("AssertPackageDeletable() expected error")
		}
	})

	t.Run("deletable when nothing depends on it", func(t *testing.T) {
		quotes := quotemocks.NewQuoteRepository(t)
		reservations := reservationmocks.NewReservationRepository(t)
		payments := paymentmocks.NewPaymentRepository(t)

		reservations.On("CountByPackage", mock.Anything, uint64(5)).Return(int64(0), nil).Once()
		quotes.On("CountByPackage", mock.Anything, uint64(5)).Return(int64(0), nil).Once()

		g := guard.NewGuard(quotes, reservations, payments)
		if err := g.AssertPackageDeletable(context.Background(), 5); err != nil {
			t.Fatalf("AssertPackageDeletable() error = %v", err)
		}
	})
}

func TestGuard_AssertReservationDeletable(t *testing.T) {
	t.Run("payments block the delete", func(t *testing.T) {
		quotes := quotemocks.NewQuoteRepository(t)
		reservations := reservationmocks.NewReservationRepository(t)
		payments := paymentmocks.NewPaymentRepository(t)

		payments.On("CountByReservation", mock.Anything, uint64(8)).Return(int64(2), nil).Once()

		g := guard.NewGuard(quotes, reservations, payments)
		err := g.AssertReservationDeletable(context.Background(), 8)
		if err == nil {
			t.Fatal("AssertReservationDeletable() expected error")
		}

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrConflict] {
			t.Fatalf("error code = %s, want conflict", ce.ErrorCode())
		}
	})

	t.Run("deletable without payments", func(t *testing.T) {
		quotes := quotemocks.NewQuoteRepository(t)
		reservations := reservationmocks.NewReservationRepository(t)
		payments := paymentmocks.NewPaymentRepository(t)

		payments.On("CountByReservation", mock.Anything, uint64(8)).Return(int64(0), nil).Once()

		g := guard.NewGuard(quotes, reservations, payments)
		if err := g.AssertReservationDeletable(context.Background(), 8); err != nil {
			t.Fatalf("AssertReservationDeletable() error = %v", err)
		}
	})
}
