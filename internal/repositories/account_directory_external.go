package repositories

import (
	"context"

	"github.com/ezfinancial/go-entry-engine/internal/common/directory"
	"github.com/ezfinancial/go-entry-engine/internal/models"
)

type accountDirectoryExternal struct {
	directoryClient directory.Client
}

func (a *accountDirectoryExternal) GetOwnerAccounts(ctx context.Context, ownerID string) ([]models.Account, error) {
	return a.directoryClient.GetOwnerAccounts(ctx, ownerID)
}
