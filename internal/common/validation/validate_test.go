package validation

import (
	"testing"

	"github.com/ezfinancial/go-entry-engine/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	type args struct {
		toValidate interface{}
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "success ProposeEntryRequest",
			args: args{
				toValidate: models.ProposeEntryRequest{
					TransactionID: "txn-001",
					Description:   "COFFEE SHOP 0423",
					Amount:        "-4.50",
					Currency:      "USD",
					Date:          "2024-03-15",
				},
			},
			wantErr: false,
		},
		{
			name: "validate ProposeEntryRequest missing fields",
			args: args{
				toValidate: models.ProposeEntryRequest{
					Currency: "USD",
					Date:     "2024-03-15",
				},
			},
			wantErr: true,
		},
		{
			name: "validate CheckDuplicateRequest bad date",
			args: args{
				toValidate: models.CheckDuplicateRequest{
					Merchant: "COFFEE SHOP 0423",
					Amount:   "-4.50",
					Date:     "15/03/2024",
				},
			},
			wantErr: true,
		},
		{
			name: "validate currency must be alpha-3",
			args: args{
				toValidate: struct {
					Currency string `json:"currency" validate:"required,currency"`
				}{
					Currency: "usd",
				},
			},
			wantErr: true,
		},
		{
			name: "validate entry status",
			args: args{
				toValidate: struct {
					Status string `json:"status" validate:"required,entryStatus"`
				}{
					Status: "posted",
				},
			},
			wantErr: true,
		},
		{
			name: "validate error not register",
			args: args{
				toValidate: struct {
					Name string `json:"name" validate:"required,date"`
				}{
					Name: "12345678901234",
				},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.args.toValidate)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
