package controllers

import (
	"testing"
	"time"
)

func TestBuildFeeStatusUpdate_DoubleToggle(t *testing.T) {
	t.Parallel()

	now := time.Now()

	// first toggle: mark paid, no explicit date -> stamped now
	paid := buildFeeStatusUpdate(feeStatusUpdate{HasPaidWeeklyFee: true}, now)
	if paid["hasPaidWeeklyFee"] != true {
		t.Fatalf("expected hasPaidWeeklyFee true, got %v", paid["hasPaidWeeklyFee"])
	}
	if paid["lastPaymentDate"] != now {
		t.Fatalf("expected lastPaymentDate stamped, got %v", paid["lastPaymentDate"])
	}

	// second toggle: back to unpaid -> payment date cleared
	unpaid := buildFeeStatusUpdate(feeStatusUpdate{HasPaidWeeklyFee: false}, now)
	if unpaid["hasPaidWeeklyFee"] != false {
		t.Fatalf("expected hasPaidWeeklyFee false, got %v", unpaid["hasPaidWeeklyFee"])
	}
	if unpaid["lastPaymentDate"] != nil {
		t.Fatalf("expected lastPaymentDate cleared, got %v", unpaid["lastPaymentDate"])
	}
}

func TestBuildFeeStatusUpdate_ExplicitDate(t *testing.T) {
	t.Parallel()

	now := time.Now()
	when := now.Add(-48 * time.Hour)

	set := buildFeeStatusUpdate(feeStatusUpdate{HasPaidWeeklyFee: true, LastPaymentDate: &when}, now)
	if set["lastPaymentDate"] != when {
		t.Fatalf("expected explicit payment date kept, got %v", set["lastPaymentDate"])
	}
	if set["updated_at"] != now {
		t.Fatalf("expected updated_at stamped, got %v", set["updated_at"])
	}
}
