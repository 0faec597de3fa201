package payment_test

import (
	"context"
	"errors"
	"testing"

	apppayment "github.com/aquatour/crm-backend/application/payment"
	"github.com/aquatour/crm-backend/constant"
	auditmocks "github.com/aquatour/crm-backend/mocks/application/audit"
	paymentmocks "github.com/aquatour/crm-backend/mocks/repository/payment"
	quotemocks "github.com/aquatour/crm-backend/mocks/repository/quote"
	reservationmocks "github.com/aquatour/crm-backend/mocks/repository/reservation"
	"github.com/aquatour/crm-backend/model"
	cerr "github.com/aquatour/crm-backend/utils/errors"
	"github.com/stretchr/testify/mock"
)

func uint64Ptr(v uint64) *uint64 { return &v }

func TestPaymentApp_Create(t *testing.T) {
	type fields struct {
		paymentRepo  *paymentmocks.PaymentRepository
		reservations *reservationmocks.ReservationRepository
		quotes       *quotemocks.QuoteRepository
		recorder     *auditmocks.Recorder
	}
	type args struct {
		ctx context.Context
		req *model.PaymentCreateRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: payment against a reservation",
			fields: fields{
				paymentRepo:  paymentmocks.NewPaymentRepository(t),
				reservations: reservationmocks.NewReservationRepository(t),
				quotes:       quotemocks.NewQuoteRepository(t),
				recorder:     auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.PaymentCreateRequest{
					Method:          "card",
					ReferenceNumber: "PAY-001",
					Amount:          350.50,
					ReservationID:   uint64Ptr(8),
				},
			},
			mockCall: func(f fields) {
				f.reservations.
					On("FindByID", mock.Anything, uint64(8)).
					Return(&model.ReservationEntity{ID: 8}, nil).
					Once()

				f.paymentRepo.
					On("Insert", mock.Anything, mock.MatchedBy(func(w *model.PaymentWrite) bool {
						return *w.Method == "card" && *w.Amount == 350.50 &&
							w.ReservationID != nil && *w.ReservationID == 8 && w.QuoteID == nil
					})).
					Return(uint64(15), nil).
					Once()

				f.paymentRepo.
					On("FindByID", mock.Anything, uint64(15)).
					Return(&model.PaymentEntity{ID: 15, ReferenceNumber: "PAY-001"}, nil).
					Once()

				f.recorder.
					On("Record", mock.Anything, constant.AuditActionCreate, constant.EntityPayment,
						uint64(15), "Payment PAY-001", "").
					Return().
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: neither reservation nor quote referenced",
			fields: fields{
				paymentRepo:  paymentmocks.NewPaymentRepository(t),
				reservations: reservationmocks.NewReservationRepository(t),
				quotes:       quotemocks.NewQuoteRepository(t),
				recorder:     auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.PaymentCreateRequest{
					Method:          "card",
					ReferenceNumber: "PAY-002",
					Amount:          100,
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
		},
		{
			name: "error: both reservation and quote referenced",
			fields: fields{
				paymentRepo:  paymentmocks.NewPaymentRepository(t),
				reservations: reservationmocks.NewReservationRepository(t),
				quotes:       quotemocks.NewQuoteRepository(t),
				recorder:     auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.PaymentCreateRequest{
					Method:          "card",
					ReferenceNumber: "PAY-003",
					Amount:          100,
					ReservationID:   uint64Ptr(8),
					QuoteID:         uint64Ptr(21),
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
		},
		{
			name: "error: referenced quote does not exist",
			fields: fields{
				paymentRepo:  paymentmocks.NewPaymentRepository(t),
				reservations: reservationmocks.NewReservationRepository(t),
				quotes:       quotemocks.NewQuoteRepository(t),
				recorder:     auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.PaymentCreateRequest{
					Method:          "transfer",
					ReferenceNumber: "PAY-004",
					Amount:          100,
					QuoteID:         uint64Ptr(404),
				},
			},
			mockCall: func(f fields) {
				f.quotes.
					On("FindByID", mock.Anything, uint64(404)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: missing method and amount",
			fields: fields{
				paymentRepo:  paymentmocks.NewPaymentRepository(t),
				reservations: reservationmocks.NewReservationRepository(t),
				quotes:       quotemocks.NewQuoteRepository(t),
				recorder:     auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.PaymentCreateRequest{
					ReferenceNumber: "PAY-005",
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apppayment.NewPaymentApp(tt.fields.paymentRepo, tt.fields.reservations, tt.fields.quotes, tt.fields.recorder)

			got, err := app.Create(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got == nil || got.ID != 15 {
				t.Fatalf("Create() = %+v, want payment 15", got)
			}
		})
	}
}

func TestPaymentApp_Update(t *testing.T) {
	t.Run("success: repoint to a quote", func(t *testing.T) {
		paymentRepo := paymentmocks.NewPaymentRepository(t)
		reservations := reservationmocks.NewReservationRepository(t)
		quotes := quotemocks.NewQuoteRepository(t)
		recorder := auditmocks.NewRecorder(t)

		paymentRepo.
			On("FindByID", mock.Anything, uint64(15)).
			Return(&model.PaymentEntity{ID: 15, ReferenceNumber: "PAY-001", ReservationID: uint64Ptr(8)}, nil).
			Twice()

		quotes.
			On("FindByID", mock.Anything, uint64(21)).
			Return(&model.QuoteEntity{ID: 21}, nil).
			Once()

		paymentRepo.
			On("Update", mock.Anything, uint64(15), mock.MatchedBy(func(w *model.PaymentWrite) bool {
				return w.QuoteID != nil && *w.QuoteID == 21 && w.ReservationID == nil
			})).
			Return(nil).
			Once()

		recorder.
			On("Record", mock.Anything, constant.AuditActionUpdate, constant.EntityPayment,
				uint64(15), "Payment PAY-001", "").
			Return().
			Once()

		app := apppayment.NewPaymentApp(paymentRepo, reservations, quotes, recorder)

		if _, err := app.Update(context.Background(), 15, &model.PaymentPatch{QuoteID: uint64Ptr(21)}); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	})

	t.Run("error: patch names both targets", func(t *testing.T) {
		paymentRepo := paymentmocks.NewPaymentRepository(t)
		reservations := reservationmocks.NewReservationRepository(t)
		quotes := quotemocks.NewQuoteRepository(t)
		recorder := auditmocks.NewRecorder(t)

		paymentRepo.
			On("FindByID", mock.Anything, uint64(15)).
			Return(&model.PaymentEntity{ID: 15}, nil).
			Once()

		app := apppayment.NewPaymentApp(paymentRepo, reservations, quotes, recorder)

		_, err := app.Update(context.Background(), 15, &model.PaymentPatch{
			ReservationID: uint64Ptr(8),
			QuoteID:       uint64Ptr(21),
		})

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrValidation] {
			t.Fatalf("error code = %s, want validation", ce.ErrorCode())
		}
	})

	t.Run("success: empty patch is a no-op", func(t *testing.T) {
		paymentRepo := paymentmocks.NewPaymentRepository(t)
		reservations := reservationmocks.NewReservationRepository(t)
		quotes := quotemocks.NewQuoteRepository(t)
		recorder := auditmocks.NewRecorder(t)

		existing := &model.PaymentEntity{ID: 15, ReferenceNumber: "PAY-001"}
		paymentRepo.On("FindByID", mock.Anything, uint64(15)).Return(existing, nil).Once()

		app := apppayment.NewPaymentApp(paymentRepo, reservations, quotes, recorder)

		got, err := app.Update(context.Background(), 15, &model.PaymentPatch{})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if got != existing {
			t.Fatalf("Update() = %+v, want the unchanged record", got)
		}
	})

	t.Run("error: non-positive amount", func(t *testing.T) {
		paymentRepo := paymentmocks.NewPaymentRepository(t)
		reservations := reservationmocks.NewReservationRepository(t)
		quotes := quotemocks.NewQuoteRepository(t)
		recorder := auditmocks.NewRecorder(t)

		paymentRepo.On("FindByID", mock.Anything, uint64(15)).
			Return(&model.PaymentEntity{ID: 15}, nil).
			Once()

		app := apppayment.NewPaymentApp(paymentRepo, reservations, quotes, recorder)

		amount := -10.0
		if _, err := app.Update(context.Background(), 15, &model.PaymentPatch{Amount: &amount}); err == nil {
			t.Fatal("Update() expected amount error")
		}
	})
}

func TestPaymentApp_Delete(t *testing.T) {
	paymentRepo := paymentmocks.NewPaymentRepository(t)
	reservations := reservationmocks.NewReservationRepository(t)
	quotes := quotemocks.NewQuoteRepository(t)
	recorder := auditmocks.NewRecorder(t)

	paymentRepo.
		On("FindByID", mock.Anything, uint64(15)).
		Return(&model.PaymentEntity{ID: 15, ReferenceNumber: "PAY-001"}, nil).
		Once()
	paymentRepo.
		On("Delete", mock.Anything, uint64(15)).
		Return(true, nil).
		Once()
	recorder.
		On("Record", mock.Anything, constant.AuditActionDelete, constant.EntityPayment,
			uint64(15), "Payment PAY-001", "").
		Return().
		Once()

	app := apppayment.NewPaymentApp(paymentRepo, reservations, quotes, recorder)

	deleted, err := app.Delete(context.Background(), 15)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !deleted {
		t.Fatal("Delete() = false, want true")
	}
}
