package repositories

import (
	"context"

	"github.com/ezfinancial/go-entry-engine/internal/models"
	"github.com/ezfinancial/go-entry-engine/internal/monitoring"
)

// AccountDirectoryRepository resolves the chart of accounts for an owner.
// The internal flavour reads the locally synced copy; the external flavour
// asks the account directory service directly.
type AccountDirectoryRepository interface {
	GetOwnerAccounts(ctx context.Context, ownerID string) ([]models.Account, error)
}

type accountDirectoryInternal sqlRepo

var _ AccountDirectoryRepository = (*accountDirectoryInternal)(nil)

func (a *accountDirectoryInternal) GetOwnerAccounts(ctx context.Context, ownerID string) (accounts []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return a.r.GetAccountRepository().GetCachedList(ctx, ownerID)
}
