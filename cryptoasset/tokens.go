package cryptoasset

import (
	"context"
	"fmt"
	"net/url"

	"github.com/imagaram/sfr-sdk-go/apiclient"
)

// Balance returns the token balance of a user.
func (c *Client) Balance(ctx context.Context, userID string, reqOpts ...apiclient.RequestOption) (*UserBalanceResponse, error) {
	var out UserBalanceResponse
	if err := c.api.Get(ctx, "/tokens/balance/"+url.PathEscape(userID), &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to get balance of %s: %w", userID, err)
	}
	return &out, nil
}

// BalanceHistory returns a page of balance changes for a user.
func (c *Client) BalanceHistory(ctx context.Context, userID string, params *BalanceHistoryParams, reqOpts ...apiclient.RequestOption) (*Paged[BalanceHistory], error) {
	q := apiclient.NewQuery()
	if params != nil {
		q = commonQuery(params.QueryParams).Str("transactionType", string(params.TransactionType))
	}

	var out Paged[BalanceHistory]
	path := "/tokens/balance/" + url.PathEscape(userID) + "/history"
	if err := c.api.Get(ctx, path, &out, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get balance history of %s: %w", userID, err)
	}
	return &out, nil
}

// Transfer moves tokens between two users.
func (c *Client) Transfer(ctx context.Context, req *TransferRequest, reqOpts ...apiclient.RequestOption) (*TransferResponse, error) {
	var out TransferResponse
	if err := c.api.Post(ctx, "/tokens/transfer", req, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to transfer tokens: %w", err)
	}
	return &out, nil
}
