package handlers

import (
	"testing"
	"time"

	"github.com/venaeki0-svg/vena/models"
)

func TestEvaluatePromoCondition(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		params    map[string]interface{}
		want      bool
		wantErr   bool
	}{
		{
			name:      "empty condition always passes",
			condition: "",
			params:    nil,
			want:      true,
		},
		{
			name:      "minimum total met",
			condition: "total >= 10000000",
			params:    map[string]interface{}{"total": int64(12000000)},
			want:      true,
		},
		{
			name:      "minimum total not met",
			condition: "total >= 10000000",
			params:    map[string]interface{}{"total": int64(5000000)},
			want:      false,
		},
		{
			name:      "project type restriction",
			condition: "projectType == 'Pernikahan' && total > 0",
			params:    map[string]interface{}{"total": int64(1000), "projectType": "Pernikahan"},
			want:      true,
		},
		{
			name:      "non-boolean result is an error",
			condition: "total + 1",
			params:    map[string]interface{}{"total": int64(5)},
			wantErr:   true,
		},
		{
			name:      "broken expression is an error",
			condition: "total >=",
			params:    map[string]interface{}{"total": int64(5)},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluatePromoCondition(tt.condition, tt.params)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPromoDiscount(t *testing.T) {
	tests := []struct {
		name  string
		promo models.PromoCode
		total int64
		want  int64
	}{
		{
			name:  "percentage",
			promo: models.PromoCode{DiscountType: models.DiscountPercentage, DiscountValue: 10},
			total: 20000000,
			want:  2000000,
		},
		{
			name:  "fixed",
			promo: models.PromoCode{DiscountType: models.DiscountFixed, DiscountValue: 500000},
			total: 20000000,
			want:  500000,
		},
		{
			name:  "fixed capped at total",
			promo: models.PromoCode{DiscountType: models.DiscountFixed, DiscountValue: 500000},
			total: 300000,
			want:  300000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := promoDiscount(&tt.promo, tt.total); got != tt.want {
				t.Errorf("promoDiscount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPromoUsableReason(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	two := 2

	tests := []struct {
		name   string
		promo  models.PromoCode
		usable bool
	}{
		{"active no limits", models.PromoCode{IsActive: true}, true},
		{"inactive", models.PromoCode{IsActive: false}, false},
		{"expired", models.PromoCode{IsActive: true, ExpiryDate: &past}, false},
		{"not yet expired", models.PromoCode{IsActive: true, ExpiryDate: &future}, true},
		{"usage exhausted", models.PromoCode{IsActive: true, MaxUsage: &two, UsageCount: 2}, false},
		{"usage remaining", models.PromoCode{IsActive: true, MaxUsage: &two, UsageCount: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason := promoUsableReason(&tt.promo)
			if (reason == "") != tt.usable {
				t.Errorf("promoUsableReason() = %q, usable = %v", reason, tt.usable)
			}
		})
	}
}
