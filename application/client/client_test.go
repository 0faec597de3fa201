package client_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	appclient "github.com/aquatour/crm-backend/application/client"
	"github.com/aquatour/crm-backend/application/uniqueness"
	"github.com/aquatour/crm-backend/constant"
	auditmocks "github.com/aquatour/crm-backend/mocks/application/audit"
	guardmocks "github.com/aquatour/crm-backend/mocks/application/guard"
	uniquemocks "github.com/aquatour/crm-backend/mocks/application/uniqueness"
	clientmocks "github.com/aquatour/crm-backend/mocks/repository/client"
	"github.com/aquatour/crm-backend/model"
	ctxutil "github.com/aquatour/crm-backend/utils/context"
	cerr "github.com/aquatour/crm-backend/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestClientApp_Create(t *testing.T) {
	type fields struct {
		clientRepo *clientmocks.ClientRepository
		unique     *uniquemocks.Validator
		guard      *guardmocks.Guard
		recorder   *auditmocks.Recorder
	}
	type args struct {
		ctx context.Context
		req *model.ClientCreateRequest
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
			name: "success: creator taken from the session",
			fields: fields{
				clientRepo: clientmocks.NewClientRepository(t),
				unique:     uniquemocks.NewValidator(t),
				guard:      guardmocks.NewGuard(t),
				recorder:   auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: ctxutil.WithUser(context.Background(), 6, constant.RoleEmployee),
				req: &model.ClientCreateRequest{
					FirstName:      "Mario",
					LastName:       "Salas",
					Email:          "Mario.Salas@Example.com",
					Phone:          "+57 310 555 0101",
					DocumentNumber: "cc-55-66",
				},
			},
			mockCall: func(f fields) {
				f.unique.On("CheckEmail", mock.Anything, "mario.salas@example.com", mock.Anything).Return(nil).Once()
				f.unique.On("CheckPhone", mock.Anything, "573105550101", mock.Anything).Return(nil).Once()
				f.unique.On("CheckDocument", mock.Anything, "CC5566", mock.Anything).Return(nil).Once()

				f.clientRepo.
					On("Insert", mock.Anything, mock.MatchedBy(func(req *model.ClientCreateRequest) bool {
						return req.Email == "mario.salas@example.com" &&
							req.Phone == "573105550101" &&
							req.DocumentNumber == "CC5566" &&
							req.CreatedByUserID == 6
					})).
					Return(uint64(11), nil).
					Once()

				f.clientRepo.
					On("FindByID", mock.Anything, uint64(11)).
					Return(&model.ClientEntity{ID: 11, FirstName: "Mario", LastName: "Salas"}, nil).
					Once()

				f.recorder.
					On("Record", mock.Anything, constant.AuditActionCreate, constant.EntityClient,
						uint64(11), "Mario Salas", "").
					Return().
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: no creator and no session",
			fields: fields{
				clientRepo: clientmocks.NewClientRepository(t),
				unique:     uniquemocks.NewValidator(t),
				guard:      guardmocks.NewGuard(t),
				recorder:   auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ClientCreateRequest{
					FirstName:      "Mario",
					LastName:       "Salas",
					Email:          "mario@example.com",
					Phone:          "3105550101",
					DocumentNumber: "CC5566",
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
			wantMsg:  "createdByUserId",
		},
		{
			name: "error: missing fields are listed together",
			fields: fields{
				clientRepo: clientmocks.NewClientRepository(t),
				unique:     uniquemocks.NewValidator(t),
				guard:      guardmocks.NewGuard(t),
				recorder:   auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ClientCreateRequest{FirstName: "Mario"},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
			wantMsg:  "Missing required fields: lastName, email, phone, documentNumber",
		},
		{
			name: "error: phone belongs to a contact",
			fields: fields{
				clientRepo: clientmocks.NewClientRepository(t),
				unique:     uniquemocks.NewValidator(t),
				guard:      guardmocks.NewGuard(t),
				recorder:   auditmocks.NewRecorder(t),
			},
			args: args{
				ctx: ctxutil.WithUser(context.Background(), 6, constant.RoleEmployee),
				req: &model.ClientCreateRequest{
					FirstName:      "Mario",
					LastName:       "Salas",
					Email:          "mario@example.com",
					Phone:          "3105550101",
					DocumentNumber: "CC5566",
				},
			},
			mockCall: func(f fields) {
				f.unique.On("CheckEmail", mock.Anything, "mario@example.com", mock.Anything).Return(nil).Once()
				f.unique.
					On("CheckPhone", mock.Anything, "3105550101", mock.Anything).
					Return(cerr.SetConflictError("The phone is already registered to a Contact",
						&model.ConflictDetail{Entity: string(constant.EntityContact)})).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appclient.NewClientApp(tt.fields.clientRepo, tt.fields.unique, tt.fields.guard, tt.fields.recorder)

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

			if got == nil || got.ID != 11 {
				t.Fatalf("Create() = %+v, want client 11", got)
			}
		})
	}
}

func TestClientApp_Update(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("success: empty patch is a no-op", func(t *testing.T) {
		clientRepo := clientmocks.NewClientRepository(t)
		unique := uniquemocks.NewValidator(t)
		g := guardmocks.NewGuard(t)
		recorder := auditmocks.NewRecorder(t)

		existing := &model.ClientEntity{ID: 11, FirstName: "Mario"}
		clientRepo.On("FindByID", mock.Anything, uint64(11)).Return(existing, nil).Once()

		app := appclient.NewClientApp(clientRepo, unique, g, recorder)

		got, err := app.Update(context.Background(), 11, &model.ClientPatch{})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if got != existing {
			t.Fatalf("Update() = %+v, want the unchanged record", got)
		}
	})

	t.Run("success: changed email is checked with self-exclusion", func(t *testing.T) {
		clientRepo := clientmocks.NewClientRepository(t)
		unique := uniquemocks.NewValidator(t)
		g := guardmocks.NewGuard(t)
		recorder := auditmocks.NewRecorder(t)

		clientRepo.On("FindByID", mock.Anything, uint64(11)).
			Return(&model.ClientEntity{ID: 11, FirstName: "Mario", LastName: "Salas"}, nil).
			Twice()

		unique.
			On("CheckEmail", mock.Anything, "new@example.com", mock.MatchedBy(func(opts *uniqueness.Options) bool {
				return opts != nil && opts.ExcludeEntity == constant.EntityClient && opts.ExcludeID == 11
			})).
			Return(nil).
			Once()

		clientRepo.
			On("Update", mock.Anything, uint64(11), mock.MatchedBy(func(p *model.ClientPatch) bool {
				return p.Email != nil && *p.Email == "new@example.com"
			})).
			Return(nil).
			Once()

		recorder.
			On("Record", mock.Anything, constant.AuditActionUpdate, constant.EntityClient,
				uint64(11), "Mario Salas", "").
			Return().
			Once()

		app := appclient.NewClientApp(clientRepo, unique, g, recorder)

		if _, err := app.Update(context.Background(), 11, &model.ClientPatch{Email: strPtr(" New@Example.com ")}); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	})

	t.Run("error: client not found", func(t *testing.T) {
		clientRepo := clientmocks.NewClientRepository(t)
		unique := uniquemocks.NewValidator(t)
		g := guardmocks.NewGuard(t)
		recorder := auditmocks.NewRecorder(t)

		clientRepo.On("FindByID", mock.Anything, uint64(99)).Return(nil, nil).Once()

		app := appclient.NewClientApp(clientRepo, unique, g, recorder)

		_, err := app.Update(context.Background(), 99, &model.ClientPatch{Email: strPtr("x@example.com")})
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("error code = %s, want not found", ce.ErrorCode())
		}
	})
}

func TestClientApp_Delete(t *testing.T) {
	t.Run("success: deletable client", func(t *testing.T) {
		clientRepo := clientmocks.NewClientRepository(t)
		unique := uniquemocks.NewValidator(t)
		g := guardmocks.NewGuard(t)
		recorder := auditmocks.NewRecorder(t)

		clientRepo.On("FindByID", mock.Anything, uint64(11)).
			Return(&model.ClientEntity{ID: 11, FirstName: "Mario", LastName: "Salas"}, nil).
			Once()
		g.On("AssertClientDeletable", mock.Anything, uint64(11)).Return(nil).Once()
		clientRepo.On("Delete", mock.Anything, uint64(11)).Return(true, nil).Once()
		recorder.
			On("Record", mock.Anything, constant.AuditActionDelete, constant.EntityClient,
				uint64(11), "Mario Salas", "").
			Return().
			Once()

		app := appclient.NewClientApp(clientRepo, unique, g, recorder)

		deleted, err := app.Delete(context.Background(), 11)
		if err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if !deleted {
			t.Fatal("Delete() = false, want true")
		}
	})

	t.Run("error: dependents block the delete", func(t *testing.T) {
		clientRepo := clientmocks.NewClientRepository(t)
		unique := uniquemocks.NewValidator(t)
		g := guardmocks.NewGuard(t)
		recorder := auditmocks.NewRecorder(t)

		clientRepo.On("FindByID", mock.Anything, uint64(11)).
			Return(&model.ClientEntity{ID: 11}, nil).
			Once()
		g.On("AssertClientDeletable", mock.Anything, uint64(11)).
			Return(cerr.SetCustomErrorf(constant.ErrConflict,
				"Cannot delete the client: it has 2 associated quotes. Delete the dependent records first.")).
			Once()

		app := appclient.NewClientApp(clientRepo, unique, g, recorder)

		_, err := app.Delete(context.Background(), 11)
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrConflict] {
			t.Fatalf("error code = %s, want conflict", ce.ErrorCode())
		}
	})
}
