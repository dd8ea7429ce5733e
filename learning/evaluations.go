package learning

import (
	"context"
	"fmt"

	"github.com/imagaram/sfr-sdk-go/apiclient"
)

// EvaluationsService manages ratings of content.
type EvaluationsService struct {
	api *apiclient.Client
}

// ListEvaluationsOptions pages and sorts List.
type ListEvaluationsOptions struct {
	Page      *int
	Size      *int
	SortBy    string // createdAt or rating
	SortOrder string // asc or desc
}

// UserEvaluationsOptions filters ByUser and ByCharacter.
type UserEvaluationsOptions struct {
	Page      *int
	Size      *int
	ContentID int64
}

// TopRatedOptions filters TopRated.
type TopRatedOptions struct {
	SpaceID        int64
	MinRating      float64
	MinEvaluations int
	Page           *int
	Size           *int
}

func evaluationPath(evaluationID int64) string {
	return fmt.Sprintf("/evaluations/%d", evaluationID)
}

// Submit stores a new evaluation.
func (s *EvaluationsService) Submit(ctx context.Context, eval *Evaluation, reqOpts ...apiclient.RequestOption) (*EvaluationResponse, error) {
	var out EvaluationResponse
	if err := s.api.Post(ctx, "/evaluations", eval, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to submit evaluation: %w", err)
	}
	return &out, nil
}

// List returns a page of evaluations of a content item.
func (s *EvaluationsService) List(ctx context.Context, contentID int64, opts *ListEvaluationsOptions, reqOpts ...apiclient.RequestOption) (*Page[EvaluationResponse], error) {
	q := apiclient.NewQuery().Int64("contentId", &contentID)
	if opts != nil {
		q.Int("page", opts.Page).
			Int("size", opts.Size).
			Str("sortBy", opts.SortBy).
			Str("sortOrder", opts.SortOrder)
	}

	var page Page[EvaluationResponse]
	if err := s.api.Get(ctx, "/evaluations", &page, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to list evaluations of content %d: %w", contentID, err)
	}
	return &page, nil
}

// Get returns one evaluation.
func (s *EvaluationsService) Get(ctx context.Context, evaluationID int64, reqOpts ...apiclient.RequestOption) (*EvaluationResponse, error) {
	var out EvaluationResponse
	if err := s.api.Get(ctx, evaluationPath(evaluationID), &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to get evaluation %d: %w", evaluationID, err)
	}
	return &out, nil
}

// Update applies a partial update to an evaluation.
func (s *EvaluationsService) Update(ctx context.Context, evaluationID int64, eval *Evaluation, reqOpts ...apiclient.RequestOption) (*EvaluationResponse, error) {
	var out EvaluationResponse
	if err := s.api.Put(ctx, evaluationPath(evaluationID), eval, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to update evaluation %d: %w", evaluationID, err)
	}
	return &out, nil
}

// Delete removes an evaluation.
func (s *EvaluationsService) Delete(ctx context.Context, evaluationID int64, reqOpts ...apiclient.RequestOption) error {
	if err := s.api.Delete(ctx, evaluationPath(evaluationID), nil, reqOpts...); err != nil {
		return fmt.Errorf("failed to delete evaluation %d: %w", evaluationID, err)
	}
	return nil
}

// ByUser returns evaluations written by userID, or by the caller when userID is empty.
func (s *EvaluationsService) ByUser(ctx context.Context, userID string, opts *UserEvaluationsOptions, reqOpts ...apiclient.RequestOption) (*Page[EvaluationResponse], error) {
	path := "/evaluations/me"
	q := apiclient.NewQuery()
	if userID != "" {
		path = "/evaluations/user"
		q.Str("userId", userID)
	}
	applyUserEvaluationOptions(q, opts)

	var page Page[EvaluationResponse]
	if err := s.api.Get(ctx, path, &page, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get user evaluations: %w", err)
	}
	return &page, nil
}

// ByCharacter returns evaluations written as a character.
func (s *EvaluationsService) ByCharacter(ctx context.Context, characterID string, opts *UserEvaluationsOptions, reqOpts ...apiclient.RequestOption) (*Page[EvaluationResponse], error) {
	q := apiclient.NewQuery().Str("characterId", characterID)
	applyUserEvaluationOptions(q, opts)

	var page Page[EvaluationResponse]
	if err := s.api.Get(ctx, "/evaluations/character", &page, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get evaluations of character %s: %w", characterID, err)
	}
	return &page, nil
}

func applyUserEvaluationOptions(q *apiclient.Query, opts *UserEvaluationsOptions) {
	if opts == nil {
		return
	}
	q.Int("page", opts.Page).Int("size", opts.Size)
	if opts.ContentID != 0 {
		q.Int64("contentId", &opts.ContentID)
	}
}

// Stats returns the rating summary of a content item.
func (s *EvaluationsService) Stats(ctx context.Context, contentID int64, reqOpts ...apiclient.RequestOption) (*EvaluationStats, error) {
	q := apiclient.NewQuery().Int64("contentId", &contentID)

	var stats EvaluationStats
	if err := s.api.Get(ctx, "/evaluations/stats", &stats, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get evaluation stats of content %d: %w", contentID, err)
	}
	return &stats, nil
}

// Vote marks an evaluation as helpful or not.
func (s *EvaluationsService) Vote(ctx context.Context, evaluationID int64, helpful bool, reqOpts ...apiclient.RequestOption) (*VoteResult, error) {
	var out VoteResult
	body := map[string]bool{"helpful": helpful}
	if err := s.api.Post(ctx, evaluationPath(evaluationID)+"/vote", body, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to vote on evaluation %d: %w", evaluationID, err)
	}
	return &out, nil
}

// Reply posts a reply to an evaluation.
func (s *EvaluationsService) Reply(ctx context.Context, evaluationID int64, reply string, reqOpts ...apiclient.RequestOption) (*EvaluationReply, error) {
	var out EvaluationReply
	body := map[string]string{"reply": reply}
	if err := s.api.Post(ctx, evaluationPath(evaluationID)+"/reply", body, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to reply to evaluation %d: %w", evaluationID, err)
	}
	return &out, nil
}

// Report flags an evaluation for moderation.
func (s *EvaluationsService) Report(ctx context.Context, evaluationID int64, reason ReportReason, details string, reqOpts ...apiclient.RequestOption) (*ReportResult, error) {
	body := struct {
		Reason  ReportReason `json:"reason"`
		Details string       `json:"details,omitempty"`
	}{Reason: reason, Details: details}

	var out ReportResult
	if err := s.api.Post(ctx, evaluationPath(evaluationID)+"/report", body, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to report evaluation %d: %w", evaluationID, err)
	}
	return &out, nil
}

// TopRated returns the best rated content, optionally within one space.
func (s *EvaluationsService) TopRated(ctx context.Context, opts *TopRatedOptions, reqOpts ...apiclient.RequestOption) (*Page[RatedContent], error) {
	q := apiclient.NewQuery()
	if opts != nil {
		if opts.SpaceID != 0 {
			q.Int64("spaceId", &opts.SpaceID)
		}
		if opts.MinRating != 0 {
			q.Float("minRating", &opts.MinRating)
		}
		if opts.MinEvaluations != 0 {
			q.Int("minEvaluations", &opts.MinEvaluations)
		}
		q.Int("page", opts.Page).Int("size", opts.Size)
	}

	var page Page[RatedContent]
	if err := s.api.Get(ctx, "/evaluations/top-rated", &page, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get top rated content: %w", err)
	}
	return &page, nil
}
