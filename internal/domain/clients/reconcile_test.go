package clients

import (
	"testing"
)

func TestReconcile_SynthesizesDisplayName(t *testing.T) {
	c := Reconcile(Client{GivenNames: " Ana  Maria ", Surnames: "Lopez"})
	if c.DisplayName != "Ana Maria Lopez" {
		t.Fatalf("expected synthesized display name, got %q", c.DisplayName)
	}
	if c.GivenNames != "Ana Maria" || c.Surnames != "Lopez" {
		t.Fatalf("parts must be kept, got %q / %q", c.GivenNames, c.Surnames)
	}
}

func TestReconcile_SplitsDisplayName(t *testing.T) {
	cases := []struct {
		display, given, surnames string
	}{
		{"Ana Lopez", "Ana", "Lopez"},
		{"  Ana   Maria Lopez ", "Ana", "Maria Lopez"},
		{"Ana", "Ana", ""},
		{"Ana\tLopez", "Ana", "Lopez"},
	}
	for _, tc := range cases {
		c := Reconcile(Client{DisplayName: tc.display})
		if c.GivenNames != tc.given || c.Surnames != tc.surnames {
			t.Fatalf("%q: expected %q/%q, got %q/%q", tc.display, tc.given, tc.surnames, c.GivenNames, c.Surnames)
		}
		// Dividir y volver a unir reproduce el nombre recortado.
		if JoinName(c.GivenNames, c.Surnames) != c.DisplayName {
			t.Fatalf("%q: rejoin %q != %q", tc.display, JoinName(c.GivenNames, c.Surnames), c.DisplayName)
		}
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	inputs := []Client{
		{},
		{DisplayName: "Pedro Paramo"},
		{GivenNames: "Pedro", Surnames: "Paramo Rulfo"},
		{Surnames: "Solo"},
		{DisplayName: "X Y", GivenNames: "Otro", Email: " ANA@Mail.COM ", Cedula: " 0102 "},
	}
	for _, in := range inputs {
		once := Reconcile(in)
		twice := Reconcile(once)
		if once != twice {
			t.Fatalf("not idempotent for %#v: %#v vs %#v", in, once, twice)
		}
	}
}

func TestReconcile_DefaultsAndNormalization(t *testing.T) {
	c := Reconcile(Client{Email: " ANA@Mail.COM ", Cedula: " 0102 "})
	if c.Email != "ana@mail.com" {
		t.Fatalf("expected lowercased email, got %q", c.Email)
	}
	if c.Cedula != "0102" {
		t.Fatalf("expected trimmed cedula, got %q", c.Cedula)
	}
	if c.Phone != "" || c.Address != "" || c.City != "" {
		t.Fatalf("optional fields must default to empty string")
	}
}
