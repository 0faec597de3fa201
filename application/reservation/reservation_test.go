package reservation_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	appreservation "github.com/aquatour/crm-backend/application/reservation"
	"github.com/aquatour/crm-backend/constant"
	auditmocks "github.com/aquatour/crm-backend/mocks/application/audit"
	guardmocks "github.com/aquatour/crm-backend/mocks/application/guard"
	reservationmocks "github.com/aquatour/crm-backend/mocks/repository/reservation"
	"github.com/aquatour/crm-backend/model"
	ctxutil "github.com/aquatour/crm-backend/utils/context"
	cerr "github.com/aquatour/crm-backend/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestReservationApp_Create(t *testing.T) {
	type fields struct {
		reservationRepo *reservationmocks.ReservationRepository
		guard           *guardmocks.Guard
		recorder        *auditmocks.Recorder
	}
	type args struct {
		ctx context.Context
		req *model.ReservationCreateRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
		wantMsg  string
	}{
		{
			name: "success: advisor taken from the session",
			fields: fields{
				reservationRepo: reservationmocks.NewReservationRepository(t),
				guard:           guardmocks.NewGuard(t),
				recorder:        auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: ctxutil.WithUser(context.Background(), 4, constant.RoleEmployee),
				req: &model.ReservationCreateRequest{
					PeopleCount: 3,
					StartDate:   "2026-11-10",
					EndDate:     "2026-11-17",
					ClientID:    7,
				},
			},
			mockCall: func(f fields) {
				f.reservationRepo.
					On("Insert", mock.Anything, mock.MatchedBy(func(w *model.ReservationWrite) bool {
						return w.PeopleCount != nil && *w.PeopleCount == 3 &&
							w.EmployeeID != nil && *w.EmployeeID == 4 &&
							w.StartDate != nil && w.StartDate.Format("2006-01-02") == "2026-11-10" &&
							w.EndDate != nil && w.EndDate.Format("2006-01-02") == "2026-11-17"
					})).
					Return(uint64(31), nil).
					Once()

				f.reservationRepo.
					On("FindByID", mock.Anything, uint64(31)).
					Return(&model.ReservationEntity{ID: 31, ClientID: 7, EmployeeID: 4}, nil).
					Once()

				f.recorder.
					On("Record", mock.Anything, constant.AuditActionCreate, constant.EntityReservation,
						uint64(31), "Reservation #31", "").
					Return().
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: missing fields are listed together",
			fields: fields{
				reservationRepo: reservationmocks.NewReservationRepository(t),
				guard:           guardmocks.NewGuard(t),
				recorder:        auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ReservationCreateRequest{},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
			wantMsg:  "Missing required fields: peopleCount, startDate, endDate, clientId",
		},
		{
			name: "error: no advisor and no session",
			fields: fields{
				reservationRepo: reservationmocks.NewReservationRepository(t),
				guard:           guardmocks.NewGuard(t),
				recorder:        auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ReservationCreateRequest{
					PeopleCount: 2,
					StartDate:   "2026-11-10",
					EndDate:     "2026-11-17",
					ClientID:    7,
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
			wantMsg:  "employeeId",
		},
		{
			name: "error: end date before start date",
			fields: fields{
				reservationRepo: reservationmocks.NewReservationRepository(t),
				guard:           guardmocks.NewGuard(t),
				recorder:        auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ReservationCreateRequest{
					PeopleCount: 2,
					StartDate:   "2026-11-17",
					EndDate:     "2026-11-10",
					ClientID:    7,
					EmployeeID:  4,
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
			wantMsg:  "endDate cannot be before startDate",
		},
		{
			name: "error: unparseable start date",
			fields: fields{
				reservationRepo: reservationmocks.NewReservationRepository(t),
				guard:           guardmocks.NewGuard(t),
				recorder:        auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ReservationCreateRequest{
					PeopleCount: 2,
					StartDate:   "next friday",
					EndDate:     "2026-11-10",
					ClientID:    7,
					EmployeeID:  4,
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
			wantMsg:  "Invalid startDate",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appreservation.NewReservationApp(tt.fields.reservationRepo, tt.fields.guard, tt.fields.recorder)

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
				if tt.wantMsg != "" && !strings.Contains(ce.Error(), tt.wantMsg) {
					t.Fatalf("error message = %q, want it to mention %q", ce.Error(), tt.wantMsg)
				}
				return
			}

			if got == nil || got.ID != 31 {
				t.Fatalf("Create() = %+v, want reservation 31", got)
			}
		})
	}
}

func TestReservationApp_Update(t *testing.T) {
	intPtr := func(v int) *int { return &v }
	strPtr := func(s string) *string { return &s }

	existing := func() *model.ReservationEntity {
		return &model.ReservationEntity{
			ID:          31,
			PeopleCount: 3,
			StartDate:   mustDate(t, "2026-11-10"),
			EndDate:     mustDate(t, "2026-11-17"),
			ClientID:    7,
			EmployeeID:  4,
		}
	}

	t.Run("success: empty patch is a no-op", func(t *testing.T) {
		reservationRepo := reservationmocks.NewReservationRepository(t)
		g := guardmocks.NewGuard(t)
		recorder := auditmocks.NewRecorder(t)

		current := existing()
		reservationRepo.On("FindByID", mock.Anything, uint64(31)).Return(current, nil).Once()

		app := appreservation.NewReservationApp(reservationRepo, g, recorder)

		got, err := app.Update(context.Background(), 31, &model.ReservationPatch{})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if got != current {
			t.Fatalf("Update() = %+v, want the unchanged record", got)
		}
	})

	t.Run("success: shifting only the end date", func(t *testing.T) {
		reservationRepo := reservationmocks.NewReservationRepository(t)
		g := guardmocks.NewGuard(t)
		recorder := auditmocks.NewRecorder(t)

		reservationRepo.On("FindByID", mock.Anything, uint64(31)).Return(existing(), nil).Twice()
		reservationRepo.
			On("Update", mock.Anything, uint64(31), mock.MatchedBy(func(w *model.ReservationWrite) bool {
				return w.StartDate == nil &&
					w.EndDate != nil && w.EndDate.Format("2006-01-02") == "2026-11-20"
			})).
			Return(nil).
			Once()
		recorder.
			On("Record", mock.Anything, constant.AuditActionUpdate, constant.EntityReservation,
				uint64(31), "Reservation #31", "").
			Return().
			Once()

		app := appreservation.NewReservationApp(reservationRepo, g, recorder)

		if _, err := app.Update(context.Background(), 31, &model.ReservationPatch{EndDate: strPtr("2026-11-20")}); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	})

	t.Run("error: patched end date falls before the kept start date", func(t *testing.T) {
		reservationRepo := reservationmocks.NewReservationRepository(t)
		g := guardmocks.NewGuard(t)
		recorder := auditmocks.NewRecorder(t)

		reservationRepo.On("FindByID", mock.Anything, uint64(31)).Return(existing(), nil).Once()

		app := appreservation.NewReservationApp(reservationRepo, g, recorder)

		_, err := app.Update(context.Background(), 31, &model.ReservationPatch{EndDate: strPtr("2026-11-05")})
		assertErrCode(t, err, constant.ErrValidation)
		if !strings.Contains(err.Error(), "endDate cannot be before startDate") {
			t.Fatalf("error message = %q", err.Error())
		}
	})

	t.Run("error: people count must stay positive", func(t *testing.T) {
		reservationRepo := reservationmocks.NewReservationRepository(t)
		g := guardmocks.NewGuard(t)
		recorder := auditmocks.NewRecorder(t)

		reservationRepo.On("FindByID", mock.Anything, uint64(31)).Return(existing(), nil).Once()

		app := appreservation.NewReservationApp(reservationRepo, g, recorder)

		_, err := app.Update(context.Background(), 31, &model.ReservationPatch{PeopleCount: intPtr(0)})
		assertErrCode(t, err, constant.ErrValidation)
	})

	t.Run("error: reservation not found", func(t *testing.T) {
		reservationRepo := reservationmocks.NewReservationRepository(t)
		g := guardmocks.NewGuard(t)
		recorder := auditmocks.NewRecorder(t)

		reservationRepo.On("FindByID", mock.Anything, uint64(99)).Return(nil, nil).Once()

		app := appreservation.NewReservationApp(reservationRepo, g, recorder)

		_, err := app.Update(context.Background(), 99, &model.ReservationPatch{PeopleCount: intPtr(2)})
		assertErrCode(t, err, constant.ErrNotFound)
	})
}

func TestReservationApp_Delete(t *testing.T) {
	t.Run("success: deletable reservation", func(t *testing.T) {
		reservationRepo := reservationmocks.NewReservationRepository(t)
		g := guardmocks.NewGuard(t)
		recorder := auditmocks.NewRecorder(t)

		reservationRepo.On("FindByID", mock.Anything, uint64(31)).
			Return(&model.ReservationEntity{ID: 31}, nil).
			Once()
		g.On("AssertReservationDeletable", mock.Anything, uint64(31)).Return(nil).Once()
		reservationRepo.On("Delete", mock.Anything, uint64(31)).Return(true, nil).Once()
		recorder.
			On("Record", mock.Anything, constant.AuditActionDelete, constant.EntityReservation,
				uint64(31), "Reservation #31", "").
			Return().
			Once()

		app := appreservation.NewReservationApp(reservationRepo, g, recorder)

		deleted, err := app.Delete(context.Background(), 31)
		if err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if !deleted {
			t.Fatal("Delete() = false, want true")
		}
	})

	t.Run("error: payments block the delete", func(t *testing.T) {
		reservationRepo := reservationmocks.NewReservationRepository(t)
		g := guardmocks.NewGuard(t)
		recorder := auditmocks.NewRecorder(t)

		reservationRepo.On("FindByID", mock.Anything, uint64(31)).
			Return(&model.ReservationEntity{ID: 31}, nil).
			Once()
		g.On("AssertReservationDeletable", mock.Anything, uint64(31)).
			Return(cerr.SetCustomErrorf(constant.ErrConflict,
				"Cannot delete the reservation: it has 1 associated payment. Delete the dependent records first.")).
			Once()

		app := appreservation.NewReservationApp(reservationRepo, g, recorder)

		_, err := app.Delete(context.Background(), 31)
		assertErrCode(t, err, constant.ErrConflict)
	})

	t.Run("error: reservation not found", func(t *testing.T) {
		reservationRepo := reservationmocks.NewReservationRepository(t)
		g := guardmocks.NewGuard(t)
		recorder := auditmocks.NewRecorder(t)

		reservationRepo.On("FindByID", mock.Anything, uint64(99)).Return(nil, nil).Once()

		app := appreservation.NewReservationApp(reservationRepo, g, recorder)

		_, err := app.Delete(context.Background(), 99)
		assertErrCode(t, err, constant.ErrNotFound)
	})
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := model.ParseDate(value)
	if err != nil {
		t.Fatalf("ParseDate(%q) error = %v", value, err)
	}
	return parsed
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}
