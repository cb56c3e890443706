package enrichlayer

import "context"

// SchoolAPI groups the school enrichment endpoints.
type SchoolAPI struct {
	c *Client
}

// Get enriches a school profile. Requires url.
func (s SchoolAPI) Get(ctx context.Context, params Params) (Result, error) {
	return s.c.Call(ctx, "school.get", params)
}

// StudentList lists a school's students. Requires linkedin_school_url.
func (s SchoolAPI) StudentList(ctx context.Context, params Params) (Result, error) {
	return s.c.Call(ctx, "school.student_list", params)
}
