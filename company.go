package enrichlayer

import "context"

// CompanyAPI groups the company enrichment endpoints.
type CompanyAPI struct {
	c *Client
}

// Get enriches a company profile. Requires url.
func (a CompanyAPI) Get(ctx context.Context, params Params) (Result, error) {
	return a.c.Call(ctx, "company.get", params)
}

// Search searches company profiles by attributes.
func (a CompanyAPI) Search(ctx context.Context, params Params) (Result, error) {
	return a.c.Call(ctx, "company.search", params)
}

// Resolve looks up a company from its name, domain, or location.
func (a CompanyAPI) Resolve(ctx context.Context, params Params) (Result, error) {
	return a.c.Call(ctx, "company.resolve", params)
}

// FindJob lists job postings for a company.
func (a CompanyAPI) FindJob(ctx context.Context, params Params) (Result, error) {
	return a.c.Call(ctx, "company.find_job", params)
}

// JobCount counts job postings for a company.
func (a CompanyAPI) JobCount(ctx context.Context, params Params) (Result, error) {
	return a.c.Call(ctx, "company.job_count", params)
}

// EmployeeCount counts a company's employees. Requires url.
func (a CompanyAPI) EmployeeCount(ctx context.Context, params Params) (Result, error) {
	return a.c.Call(ctx, "company.employee_count", params)
}

// EmployeeList lists a company's employees. Requires url.
func (a CompanyAPI) EmployeeList(ctx context.Context, params Params) (Result, error) {
	return a.c.Call(ctx, "company.employee_list", params)
}

// EmployeeSearch searches a company's employees by role keyword.
func (a CompanyAPI) EmployeeSearch(ctx context.Context, params Params) (Result, error) {
	return a.c.Call(ctx, "company.employee_search", params)
}

// RoleLookup finds the person holding a role at a company.
func (a CompanyAPI) RoleLookup(ctx context.Context, params Params) (Result, error) {
	return a.c.Call(ctx, "company.role_lookup", params)
}

// ProfilePicture returns the profile picture URL for a company.
func (a CompanyAPI) ProfilePicture(ctx context.Context, params Params) (Result, error) {
	return a.c.Call(ctx, "company.profile_picture", params)
}
