package cryptoasset

import (
	"context"
	"fmt"
	"net/url"

	"github.com/imagaram/sfr-sdk-go/apiclient"
)

// OracleFeeds returns oracle data, optionally filtered by type and source.
func (c *Client) OracleFeeds(ctx context.Context, dataType OracleDataType, source string, reqOpts ...apiclient.RequestOption) (*OracleFeeds, error) {
	q := apiclient.NewQuery().
		Str("dataType", string(dataType)).
		Str("source", source)

	var out OracleFeeds
	if err := c.api.Get(ctx, "/oracle/feeds", &out, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get oracle feeds: %w", err)
	}
	return &out, nil
}

// UpdateOracleFeed pushes a new oracle value.
func (c *Client) UpdateOracleFeed(ctx context.Context, req *OracleFeedUpdateRequest, reqOpts ...apiclient.RequestOption) (*OracleFeedUpdateResponse, error) {
	var out OracleFeedUpdateResponse
	if err := c.api.Post(ctx, "/oracle/feeds", req, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to update %s feed from %s: %w", req.DataType, req.Source, err)
	}
	return &out, nil
}

// SystemParameters returns the tunable system parameters.
func (c *Client) SystemParameters(ctx context.Context, reqOpts ...apiclient.RequestOption) (*SystemParameters, error) {
	var out SystemParameters
	if err := c.api.Get(ctx, "/audit/parameters", &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to get system parameters: %w", err)
	}
	return &out, nil
}

// UpdateParameter changes one system parameter.
func (c *Client) UpdateParameter(ctx context.Context, parameterID string, req *ParameterUpdateRequest, reqOpts ...apiclient.RequestOption) (*ParameterUpdateResponse, error) {
	var out ParameterUpdateResponse
	if err := c.api.Put(ctx, "/audit/parameters/"+url.PathEscape(parameterID), req, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to update parameter %s: %w", parameterID, err)
	}
	return &out, nil
}

// AdjustmentLogs returns a page of parameter adjustments.
func (c *Client) AdjustmentLogs(ctx context.Context, params *AdjustmentLogsParams, reqOpts ...apiclient.RequestOption) (*Paged[AdjustmentLog], error) {
	q := apiclient.NewQuery()
	if params != nil {
		q = commonQuery(params.QueryParams).
			Str("parameterName", params.ParameterName).
			Str("triggerType", string(params.TriggerType))
	}

	var out Paged[AdjustmentLog]
	if err := c.api.Get(ctx, "/audit/adjustments", &out, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get adjustment logs: %w", err)
	}
	return &out, nil
}
