package directory

import "github.com/ezfinancial/go-entry-engine/internal/models"

const ServiceName string = "go-account-directory"

type ResponseGetOwnerAccounts struct {
	Kind     string          `json:"kind"`
	Contents []DetailAccount `json:"contents"`
}

type DetailAccount struct {
	Kind       string `json:"kind"`
	ID         string `json:"id"`
	OwnerID    string `json:"ownerId"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	IsBusiness bool   `json:"isBusiness"`
}

func (d DetailAccount) toModel() models.Account {
	return models.Account{
		ID:         d.ID,
		OwnerID:    d.OwnerID,
		Name:       d.Name,
		Type:       d.Type,
		IsBusiness: d.IsBusiness,
	}
}
