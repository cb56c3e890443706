package catalog

import (
	"errors"
	"testing"
)

func mustLookup(t *testing.T, key string) *Spec {
	t.Helper()
	spec, err := LookupKey(key)
	if err != nil {
		t.Fatalf("LookupKey(%q) error = %v", key, err)
	}
	return spec
}

func TestEncode_RequiredAndOptional(t *testing.T) {
	spec := mustLookup(t, "person.get")

	values, err := Encode(spec, Params{
		"linkedin_profile_url": "https://sg.linkedin.com/in/williamhgates",
		"use_cache":            "if-present",
	})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if got := values.Get("linkedin_profile_url"); got != "https://sg.linkedin.com/in/williamhgates" {
		t.Errorf("linkedin_profile_url = %q", got)
	}
	if got := values.Get("use_cache"); got != "if-present" {
		t.Errorf("use_cache = %q", got)
	}
}

func TestEncode_MissingRequired(t *testing.T) {
	spec := mustLookup(t, "person.get")

	_, err := Encode(spec, Params{"extra": "include"})

	var missingErr *MissingParameterError
	if !errors.As(err, &missingErr) {
		t.Fatalf("Encode() error = %v, want *MissingParameterError", err)
	}
	if missingErr.Parameter != "linkedin_profile_url" {
		t.Errorf("Parameter = %q, want linkedin_profile_url", missingErr.Parameter)
	}
	if missingErr.Endpoint != "person.get" {
		t.Errorf("Endpoint = %q, want person.get", missingErr.Endpoint)
	}
}

func TestEncode_MissingReportedInDeclaredOrder(t *testing.T) {
	spec := mustLookup(t, "person.resolve")

	// Both required params absent; the first declared one is reported.
	_, err := Encode(spec, Params{})

	var missingErr *MissingParameterError
	if !errors.As(err, &missingErr) {
		t.Fatalf("Encode() error = %v, want *MissingParameterError", err)
	}
	if missingErr.Parameter != "first_name" {
		t.Errorf("Parameter = %q, want first_name", missingErr.Parameter)
	}
}

func TestEncode_UnknownParameter(t *testing.T) {
	spec := mustLookup(t, "person.get")

	_, err := Encode(spec, Params{
		"linkedin_profile_url": "https://linkedin.com/in/someone",
		"linkedn_profile_url":  "typo",
	})

	var unknownErr *UnknownParameterError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("Encode() error = %v, want *UnknownParameterError", err)
	}
	if unknownErr.Parameter != "linkedn_profile_url" {
		t.Errorf("Parameter = %q, want linkedn_profile_url", unknownErr.Parameter)
	}
}

func TestEncode_NoParams(t *testing.T) {
	spec := mustLookup(t, "meta.balance")

	values, err := Encode(spec, nil)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if len(values) != 0 {
		t.Errorf("values = %v, want empty", values)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"string", "hello", "hello"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"uint", uint(9), "9"},
		{"float64", 1.5, "1.5"},
		{"float64 integral", float64(10), "10"},
		{"float32", float32(0.25), "0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(tt.value); got != tt.expected {
				t.Errorf("formatValue(%v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestEncode_ScalarStringification(t *testing.T) {
	spec := mustLookup(t, "company.search")

	values, err := Encode(spec, Params{
		"employee_count_min": 10,
		"employee_count_max": 500,
		"enrich_profiles":    "enrich",
	})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if got := values.Get("employee_count_min"); got != "10" {
		t.Errorf("employee_count_min = %q, want 10", got)
	}
	if got := values.Get("employee_count_max"); got != "500" {
		t.Errorf("employee_count_max = %q, want 500", got)
	}
}
