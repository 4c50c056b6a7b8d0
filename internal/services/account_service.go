package services

import (
	"context"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	"github.com/ezfinancial/go-entry-engine/internal/models"
	"github.com/ezfinancial/go-entry-engine/internal/monitoring"
)

type AccountService interface {
	// GetList reads the owner's chart of accounts, optionally narrowed to
	// one account type.
	GetList(ctx context.Context, req models.GetAccountsRequest) ([]models.Account, error)

	GetOneByID(ctx context.Context, ownerID, accountID string) (*models.Account, error)
}

type account service

var _ AccountService = (*account)(nil)

func (s *account) GetList(ctx context.Context, req models.GetAccountsRequest) (result []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if req.OwnerID == "" {
		return nil, common.ErrUnauthenticated
	}

	return s.srv.sqlRepo.GetAccountRepository().GetList(ctx, req)
}

func (s *account) GetOneByID(ctx context.Context, ownerID, accountID string) (result *models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if ownerID == "" {
		return nil, common.ErrUnauthenticated
	}

	return s.srv.sqlRepo.GetAccountRepository().GetOneByID(ctx, ownerID, accountID)
}
