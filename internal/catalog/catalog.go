// Package catalog holds the declarative endpoint registry and the
// parameter codec. Each endpoint is pure metadata: a (category,
// operation) key, an HTTP path, its parameter sets, and an
// informational credit cost. Adding an endpoint means adding an entry
// here; the request engine is never touched.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Spec describes a single API endpoint.
type Spec struct {
	Category  string
	Operation string
	Path      string
	Required  []string
	Optional  []string

	// Cost is the credit cost per successful call. Informational only;
	// the client does not enforce a credit budget.
	Cost float64
}

// Key returns the stable dotted identifier, e.g. "person.get".
func (s *Spec) Key() string {
	return s.Category + "." + s.Operation
}

// Allows reports whether name is a declared parameter of the endpoint.
func (s *Spec) Allows(name string) bool {
	for _, p := range s.Required {
		if p == name {
			return true
		}
	}
	for _, p := range s.Optional {
		if p == name {
			return true
		}
	}
	return false
}

var registry = buildRegistry()

func buildRegistry() map[string]*Spec {
	m := make(map[string]*Spec, len(specs))
	for i := range specs {
		s := &specs[i]
		if _, dup := m[s.Key()]; dup {
			panic("catalog: duplicate endpoint " + s.Key())
		}
		m[s.Key()] = s
	}
	return m
}

// Lookup returns the endpoint spec for a (category, operation) pair.
func Lookup(category, operation string) (*Spec, error) {
	return LookupKey(category + "." + operation)
}

// LookupKey returns the endpoint spec for a dotted key such as "person.get".
func LookupKey(key string) (*Spec, error) {
	s, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("unknown endpoint %q", key)
	}
	return s, nil
}

// All returns every registered endpoint, sorted by key.
func All() []*Spec {
	out := make([]*Spec, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key() < out[j].Key()
	})
	return out
}

// Categories returns the distinct endpoint categories, sorted.
func Categories() []string {
	seen := make(map[string]struct{})
	for _, s := range registry {
		seen[s.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// specs is the full endpoint catalog. Paths and parameter sets mirror
// the EnrichLayer REST API; all operations are HTTP GET.
var specs = []Spec{
	// Person endpoints.
	{
		Category: "person", Operation: "get",
		Path:     "/api/v2/profile",
		Required: []string{"linkedin_profile_url"},
		Optional: []string{
			"extra", "github_profile_id", "facebook_profile_id",
			"twitter_profile_id", "personal_contact_number", "personal_email",
			"inferred_salary", "skills", "use_cache", "fallback_to_cache",
		},
		Cost: 1,
	},
	{
		Category: "person", Operation: "search",
		Path:     "/api/v2/search/person",
		Required: []string{"country"},
		Optional: []string{
			"first_name", "last_name", "education_field_of_study",
			"education_degree_name", "education_school_name",
			"current_role_title", "past_role_title", "current_company_name",
			"past_company_name", "linkedin_groups", "languages", "region",
			"city", "headline", "summary", "industries", "interests",
			"skills", "current_company_country", "current_company_region",
			"current_company_city", "current_company_type",
			"current_company_employee_count_min",
			"current_company_employee_count_max", "page_size",
			"enrich_profiles", "after",
		},
		Cost: 3,
	},
	{
		Category: "person", Operation: "resolve",
		Path:     "/api/v2/profile/resolve",
		Required: []string{"first_name", "company_domain"},
		Optional: []string{"last_name", "title", "location", "similarity_checks", "enrich_profile"},
		Cost:     2,
	},
	{
		Category: "person", Operation: "resolve_by_email",
		Path:     "/api/v2/profile/resolve/email",
		Required: []string{"email"},
		Optional: []string{"lookup_depth", "enrich_profile"},
		Cost:     1,
	},
	{
		Category: "person", Operation: "resolve_by_phone",
		Path:     "/api/v2/resolve/phone",
		Required: []string{"phone_number"},
		Cost:     1,
	},
	{
		Category: "person", Operation: "lookup_email",
		Path:     "/api/v2/profile/email",
		Required: []string{"linkedin_profile_url"},
		Optional: []string{"callback_url"},
		Cost:     1,
	},
	{
		Category: "person", Operation: "personal_contact",
		Path:     "/api/v2/contact-api/personal-contact",
		Required: []string{"linkedin_profile_url"},
		Optional: []string{"page_size"},
		Cost:     1,
	},
	{
		Category: "person", Operation: "personal_email",
		Path:     "/api/v2/contact-api/personal-email",
		Required: []string{"linkedin_profile_url"},
		Optional: []string{"email_validation", "page_size"},
		Cost:     1,
	},
	{
		Category: "person", Operation: "profile_picture",
		Path:     "/api/v2/person/profile-picture",
		Required: []string{"linkedin_person_profile_url"},
		Cost:     0,
	},

	// Company endpoints.
	{
		Category: "company", Operation: "get",
		Path:     "/api/v2/company",
		Required: []string{"url"},
		Optional: []string{
			"categories", "funding_data", "exit_data", "acquisitions",
			"extra", "use_cache", "fallback_to_cache",
		},
		Cost: 1,
	},
	{
		Category: "company", Operation: "search",
		Path: "/api/v2/search/company",
		Optional: []string{
			"country", "region", "city", "name", "description", "type",
			"founded_after_year", "founded_before_year", "industry",
			"employee_count_min", "employee_count_max", "funding_amount_min",
			"funding_amount_max", "funding_raised_after",
			"funding_raised_before", "public_identifier_in_list",
			"public_identifier_not_in_list", "page_size", "enrich_profiles",
			"after",
		},
		Cost: 3,
	},
	{
		Category: "company", Operation: "resolve",
		Path:     "/api/v2/company/resolve",
		Required: []string{"company_name"},
		Optional: []string{"company_domain", "company_location", "enrich_profile"},
		Cost:     2,
	},
	{
		Category: "company", Operation: "find_job",
		Path: "/api/v2/company/job",
		Optional: []string{
			"job_type", "experience_level", "when", "flexibility",
			"geo_id", "keyword", "search_id",
		},
		Cost: 2,
	},
	{
		Category: "company", Operation: "job_count",
		Path: "/api/v2/company/job/count",
		Optional: []string{
			"job_type", "experience_level", "when", "flexibility",
			"geo_id", "keyword", "search_id",
		},
		Cost: 1,
	},
	{
		Category: "company", Operation: "employee_count",
		Path:     "/api/v2/company/employees/count",
		Required: []string{"url"},
		Optional: []string{"linkedin_employee_count", "employment_status"},
		Cost:     1,
	},
	{
		Category: "company", Operation: "employee_list",
		Path:     "/api/v2/company/employees",
		Required: []string{"url"},
		Optional: []string{
			"country", "enrich_profiles", "role_search", "page_size",
			"employment_status", "sort_by", "resolve_numeric_id", "after",
		},
		Cost: 3,
	},
	{
		Category: "company", Operation: "employee_search",
		Path:     "/api/v2/company/employee/search",
		Required: []string{"linkedin_company_profile_url", "keyword_regex"},
		Optional: []string{"page_size", "country", "enrich_profiles", "resolve_numeric_id", "after"},
		Cost:     3,
	},
	{
		Category: "company", Operation: "role_lookup",
		Path:     "/api/v2/find/company/role",
		Required: []string{"role", "company_name"},
		Optional: []string{"enrich_profile"},
		Cost:     3,
	},
	{
		Category: "company", Operation: "profile_picture",
		Path:     "/api/v2/company/profile-picture",
		Required: []string{"linkedin_company_profile_url"},
		Cost:     0,
	},

	// School endpoints.
	{
		Category: "school", Operation: "get",
		Path:     "/api/v2/school",
		Required: []string{"url"},
		Optional: []string{"use_cache"},
		Cost:     1,
	},
	{
		Category: "school", Operation: "student_list",
		Path:     "/api/v2/school/students",
		Required: []string{"linkedin_school_url"},
		Optional: []string{
			"country", "enrich_profiles", "page_size", "student_status",
			"sort_by", "resolve_numeric_id", "after",
		},
		Cost: 3,
	},

	// Job endpoint.
	{
		Category: "job", Operation: "get",
		Path:     "/api/v2/job",
		Required: []string{"url"},
		Cost:     1,
	},

	// Customer listing.
	{
		Category: "customers", Operation: "listing",
		Path:     "/api/v2/customers",
		Optional: []string{"linkedin_company_profile_url", "twitter_profile_url", "page_size", "after"},
		Cost:     1,
	},

	// Account metadata.
	{
		Category: "meta", Operation: "balance",
		Path: "/api/v2/credit-balance",
		Cost: 0,
	},
}

// SplitKey splits a dotted endpoint key into its category and operation.
func SplitKey(key string) (category, operation string, err error) {
	i := strings.IndexByte(key, '.')
	if i <= 0 || i == len(key)-1 {
		return "", "", fmt.Errorf("malformed endpoint key %q", key)
	}
	return key[:i], key[i+1:], nil
}
