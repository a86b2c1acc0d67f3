package configarray

import "testing"

func TestValidate_NilArrayIsValid(t *testing.T) {
	if errs := Validate(nil); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_UnknownEnvNameIsReported(t *testing.T) {
	array := New(&ConfigElement{
		Name: "a",
		Env:  map[string]bool{"browzer": true},
	})
	errs := Validate(array)
	if len(errs) != 1 || errs[0].Field != "env.browzer" {
		t.Fatalf("expected one env error, got %v", errs)
	}
}

func TestValidate_KnownEnvNameIsAccepted(t *testing.T) {
	array := New(&ConfigElement{
		Name: "a",
		Env:  map[string]bool{"browser": true, "node": true},
	})
	if errs := Validate(array); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_AccumulatesAcrossElementsAndOverrides(t *testing.T) {
	array := New(
		&ConfigElement{Name: "a", Env: map[string]bool{"bogus1": true}},
		&ConfigElement{
			Name: "b",
			Overrides: []OverrideEntry{
				{Files: nil},
			},
		},
	)
	errs := Validate(array)
	if len(errs) != 2 {
		t.Fatalf("expected 2 accumulated errors, got %v", errs)
	}
}

func TestValidate_OverrideWithoutFilesIsReported(t *testing.T) {
	array := New(&ConfigElement{
		Name:      "a",
		Overrides: []OverrideEntry{{Files: nil}},
	})
	errs := Validate(array)
	if len(errs) != 1 || errs[0].Field != "overrides" {
		t.Fatalf("expected one overrides error, got %v", errs)
	}
}

func TestValidationError_ErrorString(t *testing.T) {
	e := ValidationError{Field: "rules.no-undef", Message: "invalid severity"}
	if e.Error() != "rules.no-undef: invalid severity" {
		t.Fatalf("unexpected error string: %q", e.Error())
	}
}
