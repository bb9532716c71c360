package models_test

import (
	"testing"

	"github.com/hyrahs/shopstore-api/app/models"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Packaging", models.StatusPackaging, true},
		{"InTransit", models.StatusInTransit, true},
		{"Delivered", models.StatusDelivered, true},
		{"In Transit", models.StatusInTransit, true}, // legacy spelling
		{"in transit", "", false},                    // casing is significant
		{"Shipped", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := models.ParseStatus(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("ParseStatus(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"  Jane@Example.COM ": "jane@example.com",
		"jane@example.com":    "jane@example.com",
		"JANE@EXAMPLE.COM":    "jane@example.com",
	}
	for in, want := range cases {
		if got := models.NormalizeEmail(in); got != want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUserPublicStripsPassword(t *testing.T) {
	u := models.User{Name: "Jane", Email: "jane@example.com", Password: "bcrypt-hash"}
	if pub := u.Public(); pub.Password != "" {
		t.Error("Public() must clear the password digest")
	}
}
