package cryptoasset

import (
	"context"
	"fmt"
	"net/url"

	"github.com/imagaram/sfr-sdk-go/apiclient"
)

// IssueReward issues a reward from the daily pool.
func (c *Client) IssueReward(ctx context.Context, req *RewardIssueRequest, reqOpts ...apiclient.RequestOption) (*RewardIssueResponse, error) {
	var out RewardIssueResponse
	if err := c.api.Post(ctx, "/rewards/issue", req, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to issue reward to %s: %w", req.UserID, err)
	}
	return &out, nil
}

// CalculateReward estimates a reward without issuing it.
func (c *Client) CalculateReward(ctx context.Context, req *RewardCalculateRequest, reqOpts ...apiclient.RequestOption) (*RewardCalculateResponse, error) {
	var out RewardCalculateResponse
	if err := c.api.Post(ctx, "/rewards/calculate", req, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to calculate reward for %s: %w", req.UserID, err)
	}
	return &out, nil
}

// DistributeDaily runs (or dry-runs) the daily distribution.
func (c *Client) DistributeDaily(ctx context.Context, req *DailyDistributionRequest, reqOpts ...apiclient.RequestOption) (*DailyDistributionResponse, error) {
	var out DailyDistributionResponse
	if err := c.api.Post(ctx, "/rewards/distribute", req, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to distribute rewards for %s: %w", req.TargetDate, err)
	}
	return &out, nil
}

// RewardHistory returns a page of rewards issued to a user.
func (c *Client) RewardHistory(ctx context.Context, userID string, params *QueryParams, reqOpts ...apiclient.RequestOption) (*Paged[RewardHistory], error) {
	q := apiclient.NewQuery()
	if params != nil {
		q = commonQuery(*params)
	}

	var out Paged[RewardHistory]
	if err := c.api.Get(ctx, "/rewards/history/"+url.PathEscape(userID), &out, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get reward history of %s: %w", userID, err)
	}
	return &out, nil
}
