package models

import "testing"

func TestToggleStatus(t *testing.T) {
	if got := ToggleStatus(StatusActive); got != StatusInactive {
		t.Errorf("ToggleStatus(active) = %q, want inactive", got)
	}
	if got := ToggleStatus(StatusInactive); got != StatusActive {
		t.Errorf("ToggleStatus(inactive) = %q, want active", got)
	}
	if got := ToggleStatus("garbage"); got != StatusActive {
		t.Errorf("ToggleStatus(garbage) = %q, want active", got)
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{StatusActive, StatusInactive} {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "Active", "disabled"} {
		if IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = true, want false", s)
		}
	}
}

func TestIsValidPricing(t *testing.T) {
	for _, s := range []string{PricingFree, PricingPaid} {
		if !IsValidPricing(s) {
			t.Errorf("IsValidPricing(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "Free", "trial"} {
		if IsValidPricing(s) {
			t.Errorf("IsValidPricing(%q) = true, want false", s)
		}
	}
}

func TestWidgetNormalize(t *testing.T) {
	w := Widget{MongoID: "651f00aa"}
	w.Normalize()
	if w.ID != "651f00aa" {
		t.Errorf("ID = %q, want _id fallback", w.ID)
	}

	c := WidgetCategory{ID: "cat-1", MongoID: "651f00bb"}
	c.Normalize()
	if c.ID != "cat-1" {
		t.Errorf("ID = %q, want id to win", c.ID)
	}
}

func TestUserNormalizeAndProvider(t *testing.T) {
	u := User{MongoID: "651f00cc", Email: "a@b.co"}
	u.Normalize()
	if u.ID != "651f00cc" {
		t.Errorf("ID = %q, want _id fallback", u.ID)
	}
	if u.Provider() != "local" {
		t.Errorf("Provider = %q, want local default", u.Provider())
	}
	u.AuthProvider = "google"
	if u.Provider() != "google" {
		t.Errorf("Provider = %q, want google", u.Provider())
	}
}
