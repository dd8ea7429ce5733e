package cryptoasset

import (
	"context"
	"fmt"

	"github.com/imagaram/sfr-sdk-go/apiclient"
)

// StatsOverview returns token-wide statistics.
func (c *Client) StatsOverview(ctx context.Context, reqOpts ...apiclient.RequestOption) (*StatsOverviewResponse, error) {
	var out StatsOverviewResponse
	if err := c.api.Get(ctx, "/statistics/overview", &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to get statistics overview: %w", err)
	}
	return &out, nil
}

// CirculationStats returns circulation per period. Empty arguments are omitted.
func (c *Client) CirculationStats(ctx context.Context, period StatsPeriod, fromDate, toDate string, reqOpts ...apiclient.RequestOption) (*CirculationStats, error) {
	q := apiclient.NewQuery().
		Str("period", string(period)).
		Str("fromDate", fromDate).
		Str("toDate", toDate)

	var out CirculationStats
	if err := c.api.Get(ctx, "/statistics/circulation", &out, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get circulation statistics: %w", err)
	}
	return &out, nil
}

// RewardStats returns reward totals grouped by day, week or month.
func (c *Client) RewardStats(ctx context.Context, fromDate, toDate, groupBy string, reqOpts ...apiclient.RequestOption) (*RewardStats, error) {
	q := apiclient.NewQuery().
		Str("fromDate", fromDate).
		Str("toDate", toDate).
		Str("groupBy", groupBy)

	var out RewardStats
	if err := c.api.Get(ctx, "/statistics/rewards", &out, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get reward statistics: %w", err)
	}
	return &out, nil
}

// TopHolders returns the largest balances. A non-positive limit uses
// DefaultTopHoldersLimit.
func (c *Client) TopHolders(ctx context.Context, limit int, reqOpts ...apiclient.RequestOption) (*TopHolders, error) {
	if limit <= 0 {
		limit = DefaultTopHoldersLimit
	}
	q := apiclient.NewQuery().Int("limit", &limit)

	var out TopHolders
	if err := c.api.Get(ctx, "/statistics/top-holders", &out, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get top holders: %w", err)
	}
	return &out, nil
}
