package domain_test

import (
	"testing"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClosingVariance(t *testing.T) {
	tests := []struct {
		name        string
		totalActual decimal.Decimal
		totalSystem decimal.Decimal
		want        decimal.Decimal
	}{
		{
			name:        "surplus is positive",
			totalActual: decimal.NewFromInt(5050),
			totalSystem: decimal.NewFromInt(5000),
			want:        decimal.NewFromInt(50),
		},
		{
			name:        "shortage is negative",
			totalActual: decimal.NewFromInt(4920),
			totalSystem: decimal.NewFromInt(5000),
			want:        decimal.NewFromInt(-80),
		},
		{
			name:        "exact match",
			totalActual: decimal.NewFromInt(5000),
			totalSystem: decimal.NewFromInt(5000),
			want:        decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ClosingVariance(tt.totalActual, tt.totalSystem)
			assert.True(t, got.Equal(tt.want), "variance = %s, want %s", got, tt.want)
		})
	}
}

func TestDailyClosing_SalesValue(t *testing.T) {
	withGross := domain.DailyClosing{
		GrossSales:  decimal.NewFromInt(5200),
		TotalSystem: decimal.NewFromInt(5000),
	}
	assert.True(t, withGross.SalesValue().Equal(decimal.NewFromInt(5200)))

	withoutGross := domain.DailyClosing{
		TotalSystem: decimal.NewFromInt(5000),
	}
	assert.True(t, withoutGross.SalesValue().Equal(decimal.NewFromInt(5000)), "falls back to the system total")
}
