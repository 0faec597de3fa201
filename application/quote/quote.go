package quote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aquatour/crm-backend/application/audit"
	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
	quoterepo "github.com/aquatour/crm-backend/repository/quote"
	txrepo "github.com/aquatour/crm-backend/repository/tx"
	ctxutil "github.com/aquatour/crm-backend/utils/context"
	"github.com/aquatour/crm-backend/utils/errors"
	"github.com/aquatour/crm-backend/utils/logger"
	"go.uber.org/zap"
)

type QuoteApp interface {
	List(ctx context.Context) ([]model.QuoteEntity, error)
	ListByEmployee(ctx context.Context, employeeID uint64) ([]model.QuoteEntity, error)
	Get(ctx context.Context, id uint64) (*model.QuoteEntity, error)
	Create(ctx context.Context, req *model.QuoteCreateRequest) (*model.QuoteEntity, error)
	Update(ctx context.Context, id uint64, patch *model.QuotePatch) (*model.QuoteEntity, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

type QuoteAppImpl struct {
	quoteRepo quoterepo.QuoteRepository
	txRepo    txrepo.TxRepository
	recorder  audit.Recorder
}

func NewQuoteApp(quoteRepo quoterepo.QuoteRepository, txRepo txrepo.TxRepository, recorder audit.Recorder) QuoteApp {
	return &QuoteAppImpl{
		quoteRepo: quoteRepo,
		txRepo:    txRepo,
		recorder:  recorder,
	}
}

func (s *QuoteAppImpl) List(ctx context.Context) ([]model.QuoteEntity, error) {
	quotes, err := s.quoteRepo.FindAll(ctx)
	if err != nil {
		logger.Error("[ListQuotes] err quoteRepo.FindAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.attachCompanions(ctx, quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (s *QuoteAppImpl) ListByEmployee(ctx context.Context, employeeID uint64) ([]model.QuoteEntity, error) {
	quotes, err := s.quoteRepo.FindByEmployee(ctx, employeeID)
	if err != nil {
		logger.Error("[ListQuotesByEmployee] err quoteRepo.FindByEmployee", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.attachCompanions(ctx, quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (s *QuoteAppImpl) Get(ctx context.Context, id uint64) (*model.QuoteEntity, error) {
	quote, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[GetQuote] err quoteRepo.FindByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if quote == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Quote %d not found", id)
	}

	companions, err := s.quoteRepo.FindCompanionsByQuote(ctx, id)
	if err != nil {
		logger.Error("[GetQuote] err quoteRepo.FindCompanionsByQuote", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	quote.Companions = companions
	return quote, nil
}

func (s *QuoteAppImpl) Create(ctx context.Context, req *model.QuoteCreateRequest) (*model.QuoteEntity, error) {
	missing := make([]string, 0, 3)
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

	writes, err := buildCompanionWrites(req.Companions)
	if err != nil {
		return nil, err
	}

	write := &model.QuoteWrite{
		StartDate:      &startDate,
		EndDate:        &endDate,
		EstimatedPrice: req.EstimatedPrice,
		PackageID:      req.PackageID,
		ClientID:       &req.ClientID,
		EmployeeID:     &req.EmployeeID,
	}

	id, err := s.quoteRepo.Insert(ctx, write)
	if err != nil {
		logger.Error("[CreateQuote] err quoteRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if len(writes) > 0 {
		if err := s.replaceCompanions(ctx, id, writes, false); err != nil {
			return nil, err
		}
	}

	created, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionCreate, constant.EntityQuote, id,
		fmt.Sprintf("Quote #%d", id), "")
	return created, nil
}

func (s *QuoteAppImpl) Update(ctx context.Context, id uint64, patch *model.QuotePatch) (*model.QuoteEntity, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return existing, nil
	}

	write := &model.QuoteWrite{
		EstimatedPrice: patch.EstimatedPrice,
		PackageID:      patch.PackageID,
		ClientID:       patch.ClientID,
	}

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

	if err := s.quoteRepo.Update(ctx, id, write); err != nil {
		logger.Error("[UpdateQuote] err quoteRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// a companions key in the payload replaces the whole set, an empty
	// list clears it
	if patch.HasCompanions {
		writes, err := buildCompanionWrites(patch.Companions)
		if err != nil {
			return nil, err
		}
		if err := s.replaceCompanions(ctx, id, writes, true); err != nil {
			return nil, err
		}
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, constant.AuditActionUpdate, constant.EntityQuote, id,
		fmt.Sprintf("Quote #%d", id), "")
	return updated, nil
}

func (s *QuoteAppImpl) Delete(ctx context.Context, id uint64) (bool, error) {
	existing, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteQuote] err quoteRepo.FindByID", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return false, errors.SetCustomErrorf(constant.ErrNotFound, "Quote %d not found", id)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteQuote] err txRepo.BeginTx", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	if _, err := s.quoteRepo.DeleteCompanionsByQuoteTx(ctx, tx, id); err != nil {
		s.txRepo.RollbackTx(tx)
		logger.Error("[DeleteQuote] err quoteRepo.DeleteCompanionsByQuoteTx", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	deleted, err := s.quoteRepo.DeleteTx(ctx, tx, id)
	if err != nil {
		s.txRepo.RollbackTx(tx)
		logger.Error("[DeleteQuote] err quoteRepo.DeleteTx", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteQuote] err txRepo.CommitTx", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	if deleted {
		s.recorder.Record(ctx, constant.AuditActionDelete, constant.EntityQuote, id,
			fmt.Sprintf("Quote #%d", id), "")
	}
	return deleted, nil
}

// replaceCompanions swaps the companion set inside one transaction so a
// failed insert never leaves the quote half-updated.
func (s *QuoteAppImpl) replaceCompanions(ctx context.Context, quoteID uint64, writes []model.CompanionWrite, clearFirst bool) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReplaceCompanions] err txRepo.BeginTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if clearFirst {
		if _, err := s.quoteRepo.DeleteCompanionsByQuoteTx(ctx, tx, quoteID); err != nil {
			s.txRepo.RollbackTx(tx)
			logger.Error("[ReplaceCompanions] err quoteRepo.DeleteCompanionsByQuoteTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	for i := range writes {
		if err := s.quoteRepo.InsertCompanionTx(ctx, tx, quoteID, &writes[i]); err != nil {
			s.txRepo.RollbackTx(tx)
			logger.Error("[ReplaceCompanions] err quoteRepo.InsertCompanionTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReplaceCompanions] err txRepo.CommitTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *QuoteAppImpl) attachCompanions(ctx context.Context, quotes []model.QuoteEntity) error {
	for i := range quotes {
		companions, err := s.quoteRepo.FindCompanionsByQuote(ctx, quotes[i].ID)
		if err != nil {
			logger.Error("[AttachCompanions] err quoteRepo.FindCompanionsByQuote", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		quotes[i].Companions = companions
	}
	return nil
}

func buildCompanionWrites(requests []model.CompanionRequest) ([]model.CompanionWrite, error) {
	writes := make([]model.CompanionWrite, 0, len(requests))
	for _, req := range requests {
		if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
			return nil, errors.SetCustomErrorf(constant.ErrValidation,
				"Each companion needs firstName and lastName")
		}

		write := model.CompanionWrite{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			DocumentNumber: req.DocumentNumber,
		}
		if req.Nationality != nil {
			write.Nationality = *req.Nationality
		}

		if req.BirthDate != nil && *req.BirthDate != "" {
			parsed, err := model.ParseDate(*req.BirthDate)
			if err != nil {
				return nil, errors.SetCustomErrorf(constant.ErrValidation,
					"Invalid companion birthDate: %s", *req.BirthDate)
			}
			write.BirthDate = &parsed
		}

		switch {
		case req.IsMinor != nil:
			write.IsMinor = *req.IsMinor
		case write.BirthDate != nil:
			write.IsMinor = isUnderage(*write.BirthDate)
		}

		writes = append(writes, write)
	}
	return writes, nil
}

func isUnderage(birthDate time.Time) bool {
	return birthDate.AddDate(18, 0, 0).After(time.Now())
}
