package cryptoasset

import (
	"context"
	"fmt"
	"net/url"

	"github.com/imagaram/sfr-sdk-go/apiclient"
)

// Collect collects tokens from one user.
func (c *Client) Collect(ctx context.Context, req *CollectionRequest, reqOpts ...apiclient.RequestOption) (*CollectionResponse, error) {
	var out CollectionResponse
	if err := c.api.Post(ctx, "/collections/collect", req, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to collect from %s: %w", req.UserID, err)
	}
	return &out, nil
}

// CollectMonthly runs the monthly collection.
func (c *Client) CollectMonthly(ctx context.Context, req *MonthlyCollectionRequest, reqOpts ...apiclient.RequestOption) (*MonthlyCollectionResponse, error) {
	var out MonthlyCollectionResponse
	if err := c.api.Post(ctx, "/collections/monthly", req, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to run monthly collection for %s: %w", req.TargetMonth, err)
	}
	return &out, nil
}

// BurnDecision asks for a burn or reserve decision on collected tokens.
func (c *Client) BurnDecision(ctx context.Context, req *BurnDecisionRequest, reqOpts ...apiclient.RequestOption) (*BurnDecisionResponse, error) {
	var out BurnDecisionResponse
	if err := c.api.Post(ctx, "/collections/burn-decision", req, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to request burn decision: %w", err)
	}
	return &out, nil
}

// CollectionHistory returns a page of collections from a user.
func (c *Client) CollectionHistory(ctx context.Context, userID string, params *CollectionHistoryParams, reqOpts ...apiclient.RequestOption) (*Paged[CollectionHistory], error) {
	q := apiclient.NewQuery()
	if params != nil {
		q = commonQuery(params.QueryParams).Str("destination", string(params.Destination))
	}

	var out Paged[CollectionHistory]
	if err := c.api.Get(ctx, "/collections/history/"+url.PathEscape(userID), &out, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get collection history of %s: %w", userID, err)
	}
	return &out, nil
}
