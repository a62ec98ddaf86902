package domain_test

import (
	"testing"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCustody_Exposure(t *testing.T) {
	tests := []struct {
		name    string
		custody domain.Custody
		want    decimal.Decimal
	}{
		{
			name: "active custody exposes its full amount",
			custody: domain.Custody{
				Amount: decimal.NewFromInt(1000),
				Status: domain.CustodyActive,
			},
			want: decimal.NewFromInt(1000),
		},
		{
			name: "consistently closed custody nets to zero",
			custody: domain.Custody{
				Amount:       decimal.NewFromInt(1000),
				Status:       domain.CustodyClosed,
				Expenses:     decimal.NewFromInt(750),
				ReturnAmount: decimal.NewFromInt(250),
			},
			want: decimal.Zero,
		},
		{
			name: "overspent close also nets to zero",
			custody: domain.Custody{
				Amount:       decimal.NewFromInt(500),
				Status:       domain.CustodyClosed,
				Expenses:     decimal.NewFromInt(620),
				ReturnAmount: decimal.NewFromInt(-120),
			},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.custody.Exposure()
			assert.True(t, got.Equal(tt.want), "exposure = %s, want %s", got, tt.want)
		})
	}
}

func TestTotalExposure(t *testing.T) {
	custodies := []domain.Custody{
		{Amount: decimal.NewFromInt(1000), Status: domain.CustodyActive},
		{Amount: decimal.NewFromInt(300), Status: domain.CustodyActive},
		{
			Amount:       decimal.NewFromInt(500),
			Status:       domain.CustodyClosed,
			Expenses:     decimal.NewFromInt(400),
			ReturnAmount: decimal.NewFromInt(100),
		},
	}

	total := domain.TotalExposure(custodies)
	assert.True(t, total.Equal(decimal.NewFromInt(1300)))

	assert.True(t, domain.TotalExposure(nil).IsZero())
}
