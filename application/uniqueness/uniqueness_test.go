package uniqueness_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aquatour/crm-backend/application/uniqueness"
	"github.com/aquatour/crm-backend/constant"
	lookupmocks "github.com/aquatour/crm-backend/mocks/repository/lookup"
	"github.com/aquatour/crm-backend/model"
	lookuprepo "github.com/aquatour/crm-backend/repository/lookup"
	cerr "github.com/aquatour/crm-backend/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+57 (300) 123-4567", "573001234567"},
		{"300.123.4567", "3001234567"},
		{"no digits", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := uniqueness.NormalizePhone(tt.in); got != tt.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDocument(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cc-1020-30", "CC102030"},
		{"a1 b2.c3", "A1B2C3"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := uniqueness.NormalizeDocument(tt.in); got != tt.want {
			t.Fatalf("NormalizeDocument(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidator_CheckEmail(t *testing.T) {
	type fields struct {
		lookupRepo *lookupmocks.LookupRepository
	}
	type args struct {
		email string
		opts  *uniqueness.Options
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
			name:   "success: no record owns the value",
			fields: fields{lookupRepo: lookupmocks.NewLookupRepository(t)},
			args:   args{email: " New@Example.com "},
			mockCall: func(f fields) {
				f.lookupRepo.
					On("FindValueOwner", mock.Anything, constant.FieldEmail, "new@example.com", (*lookuprepo.Exclusion)(nil)).
					Return(nil, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:     "success: empty value never conflicts",
			fields:   fields{lookupRepo: lookupmocks.NewLookupRepository(t)},
			args:     args{email: "   "},
			mockCall: nil,
			wantErr:  false,
		},
		{
			name:   "success: exclusion lets a record keep its own email",
			fields: fields{lookupRepo: lookupmocks.NewLookupRepository(t)},
			args: args{
				email: "mine@example.com",
				opts:  &uniqueness.Options{ExcludeEntity: constant.EntityClient, ExcludeID: 12},
			},
			mockCall: func(f fields) {
				f.lookupRepo.
					On("FindValueOwner", mock.Anything, constant.FieldEmail, "mine@example.com",
						&lookuprepo.Exclusion{Entity: constant.EntityClient, ID: 12}).
					Return(nil, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:   "error: value owned by another record",
			fields: fields{lookupRepo: lookupmocks.NewLookupRepository(t)},
			args:   args{email: "taken@example.com"},
			mockCall: func(f fields) {
				f.lookupRepo.
					On("FindValueOwner", mock.Anything, constant.FieldEmail, "taken@example.com", (*lookuprepo.Exclusion)(nil)).
					Return(&model.ConflictDetail{
						Table:       "providers",
						Entity:      string(constant.EntityProvider),
						DisplayName: "Provider",
						Data:        &model.ConflictRow{ID: 5, Name: "Caribe Tours", Value: "taken@example.com"},
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name:   "error: lookup failure",
			fields: fields{lookupRepo: lookupmocks.NewLookupRepository(t)},
			args:   args{email: "any@example.com"},
			mockCall: func(f fields) {
				f.lookupRepo.
					On("FindValueOwner", mock.Anything, constant.FieldEmail, "any@example.com", (*lookuprepo.Exclusion)(nil)).
					Return(nil, errors.New("db error")).
					Once()
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
			v := uniqueness.NewValidator(tt.fields.lookupRepo)

			err := v.CheckEmail(context.Background(), tt.args.email, tt.args.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckEmail() error = %v, wantErr %v", err, tt.wantErr)
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
			if tt.errCode == constant.ErrConflict {
				if ce.Conflict() == nil || ce.Conflict().DisplayName != "Provider" {
					t.Fatalf("conflict detail = %+v, want owning Provider", ce.Conflict())
				}
			}
		})
	}
}

func TestValidator_CheckPhoneAndDocument(t *testing.T) {
	t.Run("phone is reduced to digits before the lookup", func(t *testing.T) {
		lookupRepo := lookupmocks.NewLookupRepository(t)
		lookupRepo.
			On("FindValueOwner", mock.Anything, constant.FieldPhone, "573001234567", (*lookuprepo.Exclusion)(nil)).
			Return(nil, nil).
			Once()

		v := uniqueness.NewValidator(lookupRepo)
		if err := v.CheckPhone(context.Background(), "+57 300 123 4567", nil); err != nil {
			t.Fatalf("CheckPhone() error = %v", err)
		}
	})

	t.Run("document is uppercased alphanumeric before the lookup", func(t *testing.T) {
		lookupRepo := lookupmocks.NewLookupRepository(t)
		lookupRepo.
			On("FindValueOwner", mock.Anything, constant.FieldDocument, "CC102030", (*lookuprepo.Exclusion)(nil)).
			Return(nil, nil).
			Once()

		v := uniqueness.NewValidator(lookupRepo)
		if err := v.CheckDocument(context.Background(), "cc-1020-30", nil); err != nil {
			t.Fatalf("CheckDocument() error = %v", err)
		}
	})

	t.Run("phone with no digits skips the lookup", func(t *testing.T) {
		lookupRepo := lookupmocks.NewLookupRepository(t)

		v := uniqueness.NewValidator(lookupRepo)
		if err := v.CheckPhone(context.Background(), "n/a", nil); err != nil {
			t.Fatalf("CheckPhone() error = %v", err)
		}
	})
}
