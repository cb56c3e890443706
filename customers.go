package enrichlayer

import "context"

// CustomersAPI groups the customer listing endpoints.
type CustomersAPI struct {
	c *Client
}

// Listing lists a company's customers.
func (a CustomersAPI) Listing(ctx context.Context, params Params) (Result, error) {
	return a.c.Call(ctx, "customers.listing", params)
}
