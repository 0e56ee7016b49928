package rules

import (
	"testing"

	"github.com/dhruvm/spendwise/internal/model"
)

func TestMatchRuleContainedInMerchant(t *testing.T) {
	rs := []model.MerchantRule{{ID: "r1", OriginalName: "DMart", RenamedTo: "DMart"}}
	got := Match("DMart Benz Circle", rs)
	if got == nil || got.ID != "r1" {
		t.Fatalf("expected rule r1 to match, got %+v", got)
	}
}

func TestMatchMerchantContainedInRule(t *testing.T) {
	rs := []model.MerchantRule{{ID: "r1", OriginalName: "DMart Benz Circle", RenamedTo: "DMart"}}
	got := Match("DMart", rs)
	if got == nil || got.ID != "r1" {
		t.Fatalf("expected rule r1 to match, got %+v", got)
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	rs := []model.MerchantRule{{ID: "r1", OriginalName: "fasttag", RenamedTo: "FASTag"}}
	if got := Match("IDFC FASTTAG", rs); got == nil {
		t.Fatal("expected case-insensitive match")
	}
}

func TestMatchFirstRuleWins(t *testing.T) {
	rs := []model.MerchantRule{
		{ID: "r1", OriginalName: "Swiggy", RenamedTo: "Swiggy"},
		{ID: "r2", OriginalName: "Swiggy Instamart", RenamedTo: "Instamart"},
	}
	got := Match("Swiggy Instamart Order", rs)
	if got == nil || got.ID != "r1" {
		t.Fatalf("expected first rule to win, got %+v", got)
	}
}

func TestMatchNoHit(t *testing.T) {
	rs := []model.MerchantRule{{ID: "r1", OriginalName: "Swiggy", RenamedTo: "Swiggy"}}
	if got := Match("Apollo Pharmacy", rs); got != nil {
		t.Fatalf("expected no match, got %+v", got)
	}
	if got := Match("Apollo Pharmacy", nil); got != nil {
		t.Fatalf("expected no match with empty rules, got %+v", got)
	}
}

func TestMatchIgnoresDegenerateInput(t *testing.T) {
	rs := []model.MerchantRule{
		{ID: "bad", OriginalName: "   ", RenamedTo: "x"},
		{ID: "ok", OriginalName: "Uber", RenamedTo: "Uber"},
	}
	if got := Match("", rs); got != nil {
		t.Fatalf("empty merchant must not match, got %+v", got)
	}
	got := Match("Uber Trip", rs)
	if got == nil || got.ID != "ok" {
		t.Fatalf("blank-pattern rule must be skipped, got %+v", got)
	}
}
