package quote_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	appquote "github.com/aquatour/crm-backend/application/quote"
	"github.com/aquatour/crm-backend/constant"
	auditmocks "github.com/aquatour/crm-backend/mocks/application/audit"
	quotemocks "github.com/aquatour/crm-backend/mocks/repository/quote"
	txmocks "github.com/aquatour/crm-backend/mocks/repository/tx"
	"github.com/aquatour/crm-backend/model"
	ctxutil "github.com/aquatour/crm-backend/utils/context"
	cerr "github.com/aquatour/crm-backend/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestQuoteApp_Create(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	type fields struct {
		quoteRepo *quotemocks.QuoteRepository
		txRepo    *txmocks.TxRepository
		recorder  *auditmocks.Recorder
	}
	type args struct {
		ctx context.Context
		req *model.QuoteCreateRequest
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
			name: "success: create quote with companions",
			fields: fields{
				quoteRepo: quotemocks.NewQuoteRepository(t),
				txRepo:    txmocks.NewTxRepository(t),
				recorder:  auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.QuoteCreateRequest{
					StartDate:  "2026-10-01",
					EndDate:    "2026-10-08",
					ClientID:   3,
					EmployeeID: 2,
					Companions: []model.CompanionRequest{
						{FirstName: "Nina", LastName: "Vega", BirthDate: strPtr("2015-02-10")},
						{FirstName: "Leo", LastName: "Vega", IsMinor: boolPtr(false)},
					},
				},
			},
			mockCall: func(f fields) {
				f.quoteRepo.
					On("Insert", mock.Anything, mock.MatchedBy(func(w *model.QuoteWrite) bool {
						return *w.ClientID == 3 && *w.EmployeeID == 2 &&
							w.StartDate != nil && w.EndDate != nil
					})).
					Return(uint64(21), nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				// companion born 2015 is derived as a minor
				f.quoteRepo.
					On("InsertCompanionTx", mock.Anything, tx, uint64(21), mock.MatchedBy(func(w *model.CompanionWrite) bool {
						return w.FirstName == "Nina" && w.IsMinor
					})).
					Return(nil).
					Once()
				f.quoteRepo.
					On("InsertCompanionTx", mock.Anything, tx, uint64(21), mock.MatchedBy(func(w *model.CompanionWrite) bool {
						return w.FirstName == "Leo" && !w.IsMinor
					})).
					Return(nil).
					Once()

				f.quoteRepo.
					On("FindByID", mock.Anything, uint64(21)).
					Return(&model.QuoteEntity{ID: 21, ClientID: 3, EmployeeID: 2}, nil).
					Once()
				f.quoteRepo.
					On("FindCompanionsByQuote", mock.Anything, uint64(21)).
					Return([]model.CompanionEntity{{ID: 1}, {ID: 2}}, nil).
					Once()

				f.recorder.
					On("Record", mock.Anything, constant.AuditActionCreate, constant.EntityQuote,
						uint64(21), "Quote #21", "").
					Return().
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: endDate before startDate",
			fields: fields{
				quoteRepo: quotemocks.NewQuoteRepository(t),
				txRepo:    txmocks.NewTxRepository(t),
				recorder:  auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.QuoteCreateRequest{
					StartDate:  "2026-10-08",
					EndDate:    "2026-10-01",
					ClientID:   3,
					EmployeeID: 2,
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
		},
		{
			name: "error: companion without a last name",
			fields: fields{
				quoteRepo: quotemocks.NewQuoteRepository(t),
				txRepo:    txmocks.NewTxRepository(t),
				recorder:  auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.QuoteCreateRequest{
					StartDate:  "2026-10-01",
					EndDate:    "2026-10-08",
					ClientID:   3,
					EmployeeID: 2,
					Companions: []model.CompanionRequest{{FirstName: "Nina"}},
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
		},
		{
			name: "error: missing clientId and no session employee",
			fields: fields{
				quoteRepo: quotemocks.NewQuoteRepository(t),
				txRepo:    txmocks.NewTxRepository(t),
				recorder:  auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.QuoteCreateRequest{
					StartDate: "2026-10-01",
					EndDate:   "2026-10-08",
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
			app := appquote.NewQuoteApp(tt.fields.quoteRepo, tt.fields.txRepo, tt.fields.recorder)

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

			if got == nil || got.ID != 21 {
				t.Fatalf("Create() = %+v, want quote 21", got)
			}
			if len(got.Companions) != 2 {
				t.Fatalf("Create() companions = %d, want 2", len(got.Companions))
			}
		})
	}
}

func TestQuoteApp_Create_EmployeeFromSession(t *testing.T) {
	quoteRepo := quotemocks.NewQuoteRepository(t)
	txRepo := txmocks.NewTxRepository(t)
	recorder := auditmocks.NewRecorder(t)

	quoteRepo.
		On("Insert", mock.Anything, mock.MatchedBy(func(w *model.QuoteWrite) bool {
			return *w.EmployeeID == 9
		})).
		Return(uint64(30), nil).
		Once()
	quoteRepo.
		On("FindByID", mock.Anything, uint64(30)).
		Return(&model.QuoteEntity{ID: 30, ClientID: 3, EmployeeID: 9}, nil).
		Once()
	quoteRepo.
		On("FindCompanionsByQuote", mock.Anything, uint64(30)).
		Return([]model.CompanionEntity{}, nil).
		Once()
	recorder.
		On("Record", mock.Anything, constant.AuditActionCreate, constant.EntityQuote,
			uint64(30), "Quote #30", "").
		Return().
		Once()

	app := appquote.NewQuoteApp(quoteRepo, txRepo, recorder)
	ctx := ctxutil.WithUser(context.Background(), 9, constant.RoleEmployee)

	got, err := app.Create(ctx, &model.QuoteCreateRequest{
		StartDate: "2026-10-01",
		EndDate:   "2026-10-08",
		ClientID:  3,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.EmployeeID != 9 {
		t.Fatalf("Create() employeeID = %d, want session user 9", got.EmployeeID)
	}
}

func TestQuoteApp_Update_ReplacesCompanions(t *testing.T) {
	quoteRepo := quotemocks.NewQuoteRepository(t)
	txRepo := txmocks.NewTxRepository(t)
	recorder := auditmocks.NewRecorder(t)

	existing := &model.QuoteEntity{
		ID:        21,
		StartDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 8, 0, 0, 0, 0, time.UTC),
		ClientID:  3,
	}

	quoteRepo.On("FindByID", mock.Anything, uint64(21)).Return(existing, nil).Twice()
	quoteRepo.On("FindCompanionsByQuote", mock.Anything, uint64(21)).
		Return([]model.CompanionEntity{{ID: 1}}, nil).
		Twice()

	quoteRepo.
		On("Update", mock.Anything, uint64(21), mock.AnythingOfType("*model.QuoteWrite")).
		Return(nil).
		Once()

	// the new set replaces the old one inside a single transaction
	tx := &sqlx.Tx{}
	txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	quoteRepo.On("DeleteCompanionsByQuoteTx", mock.Anything, tx, uint64(21)).Return(int64(1), nil).Once()
	quoteRepo.
		On("InsertCompanionTx", mock.Anything, tx, uint64(21), mock.MatchedBy(func(w *model.CompanionWrite) bool {
			return w.FirstName == "Sara"
		})).
		Return(nil).
		Once()
	txRepo.On("CommitTx", tx).Return(nil).Once()

	recorder.
		On("Record", mock.Anything, constant.AuditActionUpdate, constant.EntityQuote,
			uint64(21), "Quote #21", "").
		Return().
		Once()

	app := appquote.NewQuoteApp(quoteRepo, txRepo, recorder)

	patch := &model.QuotePatch{
		HasCompanions: true,
		Companions:    []model.CompanionRequest{{FirstName: "Sara", LastName: "Rios"}},
	}
	if _, err := app.Update(context.Background(), 21, patch); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
}

func TestQuoteApp_Update_MergedDatesStayOrdered(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	quoteRepo := quotemocks.NewQuoteRepository(t)
	txRepo := txmocks.NewTxRepository(t)
	recorder := auditmocks.NewRecorder(t)

	existing := &model.QuoteEntity{
		ID:        21,
		StartDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 8, 0, 0, 0, 0, time.UTC),
	}
	quoteRepo.On("FindByID", mock.Anything, uint64(21)).Return(existing, nil).Once()
	quoteRepo.On("FindCompanionsByQuote", mock.Anything, uint64(21)).
		Return([]model.CompanionEntity{}, nil).
		Once()

	app := appquote.NewQuoteApp(quoteRepo, txRepo, recorder)

	// moving only endDate past the kept startDate must be rejected
	_, err := app.Update(context.Background(), 21, &model.QuotePatch{EndDate: strPtr("2026-09-20")})
	if err == nil {
		t.Fatal("Update() expected date ordering error")
	}

	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrValidation] {
		t.Fatalf("error code = %s, want validation", ce.ErrorCode())
	}
}

func TestQuoteApp_Delete(t *testing.T) {
	t.Run("success: companions removed with the quote in one transaction", func(t *testing.T) {
		quoteRepo := quotemocks.NewQuoteRepository(t)
		txRepo := txmocks.NewTxRepository(t)
		recorder := auditmocks.NewRecorder(t)

		quoteRepo.On("FindByID", mock.Anything, uint64(21)).
			Return(&model.QuoteEntity{ID: 21}, nil).
			Once()

		tx := &sqlx.Tx{}
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		quoteRepo.On("DeleteCompanionsByQuoteTx", mock.Anything, tx, uint64(21)).Return(int64(2), nil).Once()
		quoteRepo.On("DeleteTx", mock.Anything, tx, uint64(21)).Return(true, nil).Once()
		txRepo.On("CommitTx", tx).Return(nil).Once()

		recorder.
			On("Record", mock.Anything, constant.AuditActionDelete, constant.EntityQuote,
				uint64(21), "Quote #21", "").
			Return().
			Once()

		app := appquote.NewQuoteApp(quoteRepo, txRepo, recorder)

		deleted, err := app.Delete(context.Background(), 21)
		if err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if !deleted {
			t.Fatal("Delete() = false, want true")
		}
	})

	t.Run("error: failed quote delete rolls the transaction back", func(t *testing.T) {
		quoteRepo := quotemocks.NewQuoteRepository(t)
		txRepo := txmocks.NewTxRepository(t)
		recorder := auditmocks.NewRecorder(t)

		quoteRepo.On("FindByID", mock.Anything, uint64(21)).
			Return(&model.QuoteEntity{ID: 21}, nil).
			Once()

		tx := &sqlx.Tx{}
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		quoteRepo.On("DeleteCompanionsByQuoteTx", mock.Anything, tx, uint64(21)).Return(int64(0), nil).Once()
		quoteRepo.On("DeleteTx", mock.Anything, tx, uint64(21)).Return(false, errors.New("db error")).Once()
		txRepo.On("RollbackTx", tx).Return(nil).Once()

		app := appquote.NewQuoteApp(quoteRepo, txRepo, recorder)

		if _, err := app.Delete(context.Background(), 21); err == nil {
			t.Fatal("Delete() expected error")
		}
	})

	t.Run("error: quote not found", func(t *testing.T) {
		quoteRepo := quotemocks.NewQuoteRepository(t)
		txRepo := txmocks.NewTxRepository(t)
		recorder := auditmocks.NewRecorder(t)

		quoteRepo.On("FindByID", mock.Anything, uint64(99)).Return(nil, nil).Once()

		app := appquote.NewQuoteApp(quoteRepo, txRepo, recorder)

		_, err := app.Delete(context.Background(), 99)
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("error code = %s, want not found", ce.ErrorCode())
		}
	})
}
