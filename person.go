package enrichlayer

import "context"

// PersonAPI groups the person enrichment endpoints. It is a thin
// read-only facade over the endpoint registry; every method forwards
// to the request engine with its registry entry.
type PersonAPI struct {
	c *Client
}

// Get enriches a person profile. Requires linkedin_profile_url.
func (p PersonAPI) Get(ctx context.Context, params Params) (Result, error) {
	return p.c.Call(ctx, "person.get", params)
}

// Search searches person profiles by attributes. Requires country.
func (p PersonAPI) Search(ctx context.Context, params Params) (Result, error) {
	return p.c.Call(ctx, "person.search", params)
}

// Resolve looks up a person from name and company domain.
func (p PersonAPI) Resolve(ctx context.Context, params Params) (Result, error) {
	return p.c.Call(ctx, "person.resolve", params)
}

// ResolveByEmail looks up a person from a work email address.
func (p PersonAPI) ResolveByEmail(ctx context.Context, params Params) (Result, error) {
	return p.c.Call(ctx, "person.resolve_by_email", params)
}

// ResolveByPhone looks up a person from a phone number.
func (p PersonAPI) ResolveByPhone(ctx context.Context, params Params) (Result, error) {
	return p.c.Call(ctx, "person.resolve_by_phone", params)
}

// LookupEmail finds the work email for a profile.
func (p PersonAPI) LookupEmail(ctx context.Context, params Params) (Result, error) {
	return p.c.Call(ctx, "person.lookup_email", params)
}

// PersonalContact lists personal phone numbers for a profile.
func (p PersonAPI) PersonalContact(ctx context.Context, params Params) (Result, error) {
	return p.c.Call(ctx, "person.personal_contact", params)
}

// PersonalEmail lists personal email addresses for a profile.
func (p PersonAPI) PersonalEmail(ctx context.Context, params Params) (Result, error) {
	return p.c.Call(ctx, "person.personal_email", params)
}

// ProfilePicture returns the profile picture URL for a person.
func (p PersonAPI) ProfilePicture(ctx context.Context, params Params) (Result, error) {
	return p.c.Call(ctx, "person.profile_picture", params)
}
