package uniqueness

import (
	"context"
	"strings"

	"github.com/aquatour/crm-backend/constant"
	lookuprepo "github.com/aquatour/crm-backend/repository/lookup"
	"github.com/aquatour/crm-backend/utils/errors"
	"github.com/aquatour/crm-backend/utils/logger"
	"go.uber.org/zap"
)

// Options carries the self-exclusion for update flows: the record being
// updated must be allowed to keep its own values.
type Options struct {
	ExcludeEntity constant.EntityKind
	ExcludeID     uint64
}

// Validator enforces the cross-entity uniqueness of email, phone and
// document values. It is stateless; every check goes to the database.
type Validator interface {
	CheckEmail(ctx context.Context, email string, opts *Options) error
	CheckPhone(ctx context.Context, phone string, opts *Options) error
	CheckDocument(ctx context.Context, document string, opts *Options) error
}

type ValidatorImpl struct {
	lookupRepo lookuprepo.LookupRepository
}

func NewValidator(lookupRepo lookuprepo.LookupRepository) Validator {
	return &ValidatorImpl{lookupRepo: lookupRepo}
}

// NormalizePhone strips everything but digits so "+57 300-123" and
// "57300123" collide.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeDocument keeps letters and digits and uppercases them, so
// document comparisons ignore separators and case.
func NormalizeDocument(document string) string {
	var b strings.Builder
	for _, r := range document {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (v *ValidatorImpl) CheckEmail(ctx context.Context, email string, opts *Options) error {
	value := strings.ToLower(strings.TrimSpace(email))
	return v.check(ctx, constant.FieldEmail, value, opts)
}

func (v *ValidatorImpl) CheckPhone(ctx context.Context, phone string, opts *Options) error {
	return v.check(ctx, constant.FieldPhone, NormalizePhone(phone), opts)
}

func (v *ValidatorImpl) CheckDocument(ctx context.Context, document string, opts *Options) error {
	return v.check(ctx, constant.FieldDocument, NormalizeDocument(document), opts)
}

func (v *ValidatorImpl) check(ctx context.Context, field constant.UniqueField, value string, opts *Options) error {
	// an empty normalized value never conflicts
	if value == "" {
		return nil
	}

	var exclude *lookuprepo.Exclusion
	if opts != nil {
		exclude = &lookuprepo.Exclusion{Entity: opts.ExcludeEntity, ID: opts.ExcludeID}
	}

	detail, err := v.lookupRepo.FindValueOwner(ctx, field, value, exclude)
	if err != nil {
		logger.Error("[CheckUnique] err lookupRepo.FindValueOwner",
			zap.String("field", string(field)), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil
	}

	return errors.SetConflictError(
		"The "+string(field)+" is already registered to a "+detail.DisplayName,
		detail,
	)
}
