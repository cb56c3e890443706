package enrichlayer

import "context"

// JobAPI groups the job posting endpoints.
type JobAPI struct {
	c *Client
}

// Get enriches a job posting. Requires url.
func (j JobAPI) Get(ctx context.Context, params Params) (Result, error) {
	return j.c.Call(ctx, "job.get", params)
}
