package enrichlayer

import (
	"context"
	"os"

	"github.com/enrichlayer/client-go/internal/api"
	"github.com/enrichlayer/client-go/internal/catalog"
)

// Params holds the arguments for one endpoint call, keyed by the
// endpoint's declared parameter names. Values are scalars and are
// stringified for query encoding.
type Params = catalog.Params

// Result is the decoded JSON response of a successful call, passed
// through unmodified.
type Result = api.Result

// Client is the blocking EnrichLayer client. Calls read as synchronous
// blocking calls; run them on goroutines for concurrency. For the
// future-based and reactor front-ends see AsyncClient and Reactor.
type Client struct {
	api             *api.Client
	bulkConcurrency int
}

// buildEngine creates and configures a request engine from the given
// config. Shared by all three front-end constructors.
func buildEngine(apiKey string, cfg *clientConfig) (*api.Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	retry := &api.RetryConfig{
		MaxAttempts: cfg.maxAttempts,
		BaseDelay:   cfg.baseDelay,
		MaxDelay:    cfg.maxBackoff,
		Multiplier:  cfg.backoffFactor,
		Jitter:      cfg.backoffJitter,
	}

	opts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithRetryConfig(retry),
	}
	if cfg.timeout > 0 {
		opts = append(opts, api.WithTimeout(cfg.timeout))
	}
	if cfg.logger != nil {
		opts = append(opts, api.WithLogger(cfg.logger))
	}
	if cfg.metrics != nil {
		opts = append(opts, api.WithRecorder(cfg.metrics))
	}

	engine, err := api.New(apiKey, opts...)
	if err != nil {
		return nil, err
	}

	if cfg.httpClient != nil {
		engine.SetHTTPClient(cfg.httpClient)
	}

	return engine, nil
}

func applyOptions(opts []Option) *clientConfig {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// New creates a blocking client with an explicit API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := applyOptions(opts)
	engine, err := buildEngine(apiKey, cfg)
	if err != nil {
		return nil, err
	}
	return &Client{api: engine, bulkConcurrency: cfg.bulkConcurrency}, nil
}

// NewFromEnv creates a blocking client, resolving the API key from the
// ENRICHLAYER_API_KEY environment variable. The variable is read once,
// here; absence is a construction-time failure.
func NewFromEnv(opts ...Option) (*Client, error) {
	return New(os.Getenv(EnvAPIKey), opts...)
}

// Call executes one logical call against an endpoint identified by its
// dotted key, e.g. "person.get". It blocks the calling goroutine until
// the call resolves, transparently backing off and retrying on HTTP
// 429. Encoding failures are reported before any network I/O.
func (c *Client) Call(ctx context.Context, endpoint string, params Params) (Result, error) {
	spec, err := catalog.LookupKey(endpoint)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, spec, params)
}

func (c *Client) call(ctx context.Context, spec *catalog.Spec, params Params) (Result, error) {
	query, err := catalog.Encode(spec, params)
	if err != nil {
		return nil, wrapError(err)
	}

	result, err := c.api.Do(ctx, spec.Key(), spec.Path, query)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Balance returns the remaining credit balance for the API key.
func (c *Client) Balance(ctx context.Context) (Result, error) {
	return c.Call(ctx, "meta.balance", nil)
}

// Person returns the person endpoint group.
func (c *Client) Person() PersonAPI {
	return PersonAPI{c: c}
}

// Company returns the company endpoint group.
func (c *Client) Company() CompanyAPI {
	return CompanyAPI{c: c}
}

// School returns the school endpoint group.
func (c *Client) School() SchoolAPI {
	return SchoolAPI{c: c}
}

// Job returns the job endpoint group.
func (c *Client) Job() JobAPI {
	return JobAPI{c: c}
}

// Customers returns the customer listing endpoint group.
func (c *Client) Customers() CustomersAPI {
	return CustomersAPI{c: c}
}

// Endpoint describes one entry of the endpoint catalog.
type Endpoint struct {
	Key      string
	Path     string
	Required []string
	Optional []string

	// Cost is the credit cost per successful call. Informational only;
	// no budget is enforced client-side.
	Cost float64
}

// Endpoints returns the full endpoint catalog, sorted by key.
func Endpoints() []Endpoint {
	specs := catalog.All()
	out := make([]Endpoint, 0, len(specs))
	for _, s := range specs {
		out = append(out, Endpoint{
			Key:      s.Key(),
			Path:     s.Path,
			Required: append([]string(nil), s.Required...),
			Optional: append([]string(nil), s.Optional...),
			Cost:     s.Cost,
		})
	}
	return out
}
