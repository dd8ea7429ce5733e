package cryptoasset

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/imagaram/sfr-sdk-go/apiclient"
)

// DefaultTimeout applies unless the caller passes apiclient.WithTimeout.
const DefaultTimeout = 30 * time.Second

// DefaultTopHoldersLimit is used by TopHolders when no limit is given.
const DefaultTopHoldersLimit = 100

// Client is the crypto asset API SDK.
type Client struct {
	api *apiclient.Client
}

// New creates a crypto asset client for baseURL. Options are applied after the
// package defaults.
func New(baseURL string, logger zerolog.Logger, opts ...apiclient.Option) (*Client, error) {
	all := make([]apiclient.Option, 0, len(opts)+1)
	all = append(all, apiclient.WithTimeout(DefaultTimeout))
	all = append(all, opts...)

	api, err := apiclient.New(baseURL, logger.With().Str("sdk", "crypto").Logger(), all...)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto client: %w", err)
	}
	return &Client{api: api}, nil
}

// SetAuthToken sets the bearer token for subsequent calls.
func (c *Client) SetAuthToken(token string) {
	c.api.SetAccessToken(token)
}

// RemoveAuthToken removes the bearer token.
func (c *Client) RemoveAuthToken() {
	c.api.ClearAccessToken()
}

// Health probes the API.
func (c *Client) Health(ctx context.Context) (*apiclient.HealthStatus, error) {
	return c.api.Health(ctx)
}

// Config returns a copy of the executor configuration.
func (c *Client) Config() apiclient.Config {
	return c.api.Config()
}

func commonQuery(p QueryParams) *apiclient.Query {
	return apiclient.NewQuery().
		Int("page", p.Page).
		Int("limit", p.Limit).
		Str("fromDate", p.FromDate).
		Str("toDate", p.ToDate)
}

func withQuery(q *apiclient.Query, opts []apiclient.RequestOption) []apiclient.RequestOption {
	out := make([]apiclient.RequestOption, 0, len(opts)+1)
	out = append(out, q.Option())
	return append(out, opts...)
}
