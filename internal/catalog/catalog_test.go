package catalog

import (
	"strings"
	"testing"
)

func TestLookupKey(t *testing.T) {
	spec, err := LookupKey("person.get")
	if err != nil {
		t.Fatalf("LookupKey() error = %v", err)
	}
	if spec.Path != "/api/v2/profile" {
		t.Errorf("Path = %s, want /api/v2/profile", spec.Path)
	}
	if len(spec.Required) != 1 || spec.Required[0] != "linkedin_profile_url" {
		t.Errorf("Required = %v, want [linkedin_profile_url]", spec.Required)
	}
}

func TestLookupKey_Unknown(t *testing.T) {
	if _, err := LookupKey("person.frobnicate"); err == nil {
		t.Error("expected error for unknown endpoint")
	}
}

func TestLookup(t *testing.T) {
	spec, err := Lookup("company", "employee_count")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if spec.Key() != "company.employee_count" {
		t.Errorf("Key() = %s", spec.Key())
	}
}

func TestAll_RegistryIntegrity(t *testing.T) {
	all := All()
	if len(all) < 24 {
		t.Errorf("registry has %d endpoints, want at least 24", len(all))
	}

	seenPaths := make(map[string]string)
	for _, s := range all {
		if s.Category == "" || s.Operation == "" {
			t.Errorf("endpoint %q has empty category or operation", s.Key())
		}
		if !strings.HasPrefix(s.Path, "/api/") {
			t.Errorf("endpoint %s has malformed path %q", s.Key(), s.Path)
		}
		if prev, dup := seenPaths[s.Path]; dup {
			t.Errorf("path %s shared by %s and %s", s.Path, prev, s.Key())
		}
		seenPaths[s.Path] = s.Key()

		declared := make(map[string]struct{})
		for _, p := range append(append([]string{}, s.Required...), s.Optional...) {
			if _, dup := declared[p]; dup {
				t.Errorf("endpoint %s declares parameter %q twice", s.Key(), p)
			}
			declared[p] = struct{}{}
		}
		if s.Cost < 0 {
			t.Errorf("endpoint %s has negative cost", s.Key())
		}
	}
}

func TestAll_Sorted(t *testing.T) {
	all := All()
	for i := 1; i < len(all); i++ {
		if all[i-1].Key() >= all[i].Key() {
			t.Fatalf("registry not sorted: %s before %s", all[i-1].Key(), all[i].Key())
		}
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	want := []string{"company", "customers", "job", "meta", "person", "school"}
	if len(cats) != len(want) {
		t.Fatalf("Categories() = %v, want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("Categories()[%d] = %s, want %s", i, cats[i], want[i])
		}
	}
}

func TestSplitKey(t *testing.T) {
	tests := []struct {
		key       string
		category  string
		operation string
		wantErr   bool
	}{
		{"person.get", "person", "get", false},
		{"company.employee_count", "company", "employee_count", false},
		{"noperiod", "", "", true},
		{".get", "", "", true},
		{"person.", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cat, op, err := SplitKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SplitKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if cat != tt.category || op != tt.operation {
				t.Errorf("SplitKey(%q) = (%q, %q), want (%q, %q)",
					tt.key, cat, op, tt.category, tt.operation)
			}
		})
	}
}
