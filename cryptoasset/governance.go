package cryptoasset

import (
	"context"
	"fmt"
	"net/url"

	"github.com/imagaram/sfr-sdk-go/apiclient"
)

// CouncilMembers returns the current council.
func (c *Client) CouncilMembers(ctx context.Context, reqOpts ...apiclient.RequestOption) (*CouncilMembers, error) {
	var out CouncilMembers
	if err := c.api.Get(ctx, "/governance/council", &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to get council members: %w", err)
	}
	return &out, nil
}

// AppointCouncilMember appoints a user to the council.
func (c *Client) AppointCouncilMember(ctx context.Context, req *CouncilAppointRequest, reqOpts ...apiclient.RequestOption) (*CouncilAppointResponse, error) {
	var out CouncilAppointResponse
	if err := c.api.Post(ctx, "/governance/council/appoint", req, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to appoint %s: %w", req.UserID, err)
	}
	return &out, nil
}

// CreateProposal opens a governance proposal.
func (c *Client) CreateProposal(ctx context.Context, req *CreateProposalRequest, reqOpts ...apiclient.RequestOption) (*CreateProposalResponse, error) {
	var out CreateProposalResponse
	if err := c.api.Post(ctx, "/governance/proposals", req, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}
	return &out, nil
}

// Proposals returns a page of proposals.
func (c *Client) Proposals(ctx context.Context, params *ProposalsParams, reqOpts ...apiclient.RequestOption) (*Paged[Proposal], error) {
	q := apiclient.NewQuery()
	if params != nil {
		q = commonQuery(params.QueryParams).
			Str("status", string(params.Status)).
			Str("proposalType", string(params.ProposalType))
	}

	var out Paged[Proposal]
	if err := c.api.Get(ctx, "/governance/proposals", &out, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return &out, nil
}

func proposalPath(proposalID string) string {
	return "/governance/proposals/" + url.PathEscape(proposalID)
}

// Proposal returns one proposal with its votes.
func (c *Client) Proposal(ctx context.Context, proposalID string, reqOpts ...apiclient.RequestOption) (*ProposalDetailResponse, error) {
	var out ProposalDetailResponse
	if err := c.api.Get(ctx, proposalPath(proposalID), &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to get proposal %s: %w", proposalID, err)
	}
	return &out, nil
}

// Vote casts the caller's vote on a proposal.
func (c *Client) Vote(ctx context.Context, proposalID string, req *VoteRequest, reqOpts ...apiclient.RequestOption) (*VoteResponse, error) {
	var out VoteResponse
	if err := c.api.Post(ctx, proposalPath(proposalID)+"/vote", req, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to vote on proposal %s: %w", proposalID, err)
	}
	return &out, nil
}

// UserVotes returns a page of votes cast by a user.
func (c *Client) UserVotes(ctx context.Context, userID string, params *QueryParams, reqOpts ...apiclient.RequestOption) (*Paged[UserVote], error) {
	q := apiclient.NewQuery()
	if params != nil {
		q = commonQuery(*params)
	}

	var out Paged[UserVote]
	if err := c.api.Get(ctx, "/governance/votes/"+url.PathEscape(userID), &out, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get votes of %s: %w", userID, err)
	}
	return &out, nil
}
