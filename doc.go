// Package enrichlayer provides a Go client SDK for the EnrichLayer
// data-enrichment API: person, company, school, and job lookups over
// HTTPS with transparent rate-limit backoff.
//
// The SDK offers three front-ends over one request engine, picked at
// construction time and never mixed within a client instance:
//
//   - Client: blocking calls. Run them on goroutines for concurrency.
//   - AsyncClient: calls return a *Future to await or cancel.
//   - Reactor: calls return a *Deferred with registered callbacks,
//     driven by an event loop that must be running for any progress.
//
// All three perform identical retry behavior: HTTP 429 responses are
// retried with exponential backoff (a server Retry-After hint takes
// precedence), bounded by a maximum attempt count; every other failure
// is terminal and surfaces immediately.
//
// Basic usage:
//
//	client, err := enrichlayer.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	person, err := client.Person().Get(ctx, enrichlayer.Params{
//	    "linkedin_profile_url": "https://sg.linkedin.com/in/williamhgates",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Occupation:", person["occupation"])
//
// Bulk runs launch every job as an independent logical call under a
// configurable concurrency bound and return ordered per-item outcomes;
// one job's failure never aborts its siblings:
//
//	results := client.DoBulk(ctx, jobs, enrichlayer.WithConcurrency(5))
//	for _, r := range results {
//	    if !r.Ok() {
//	        log.Println("failed:", r.Err)
//	    }
//	}
package enrichlayer
