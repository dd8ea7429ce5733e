package learning

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/imagaram/sfr-sdk-go/apiclient"
)

// SpacesService manages learning spaces (courses).
type SpacesService struct {
	api *apiclient.Client
}

// ListSpacesOptions filters ListSpaces.
type ListSpacesOptions struct {
	Mode   Mode
	Status SpaceStatus
	Page   *int
	Size   *int
}

// SearchSpacesOptions filters Search.
type SearchSpacesOptions struct {
	Mode       Mode
	Difficulty string
	Page       *int
	Size       *int
}

// DefaultPopularLimit is the number of popular spaces returned when no limit is given.
const DefaultPopularLimit = 10

func spacePath(spaceID int64) string {
	return fmt.Sprintf("/spaces/%d", spaceID)
}

// List returns a page of spaces.
func (s *SpacesService) List(ctx context.Context, opts *ListSpacesOptions, reqOpts ...apiclient.RequestOption) (*Page[Space], error) {
	q := apiclient.NewQuery()
	if opts != nil {
		q.Str("mode", string(opts.Mode)).
			Str("status", string(opts.Status)).
			Int("page", opts.Page).
			Int("size", opts.Size)
	}

	var page Page[Space]
	if err := s.api.Get(ctx, "/spaces", &page, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to list spaces: %w", err)
	}
	return &page, nil
}

// Get returns a single space, including its members when the server sends them.
func (s *SpacesService) Get(ctx context.Context, spaceID int64, reqOpts ...apiclient.RequestOption) (*Space, error) {
	var space Space
	if err := s.api.Get(ctx, spacePath(spaceID), &space, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to get space %d: %w", spaceID, err)
	}
	return &space, nil
}

// Create creates a space.
func (s *SpacesService) Create(ctx context.Context, req *SpaceCreateRequest, reqOpts ...apiclient.RequestOption) (*Space, error) {
	var space Space
	if err := s.api.Post(ctx, "/spaces", req, &space, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to create space: %w", err)
	}
	return &space, nil
}

// Update applies a partial update to a space.
func (s *SpacesService) Update(ctx context.Context, spaceID int64, req *SpaceCreateRequest, reqOpts ...apiclient.RequestOption) (*Space, error) {
	var space Space
	if err := s.api.Put(ctx, spacePath(spaceID), req, &space, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to update space %d: %w", spaceID, err)
	}
	return &space, nil
}

// Delete removes a space.
func (s *SpacesService) Delete(ctx context.Context, spaceID int64, reqOpts ...apiclient.RequestOption) error {
	if err := s.api.Delete(ctx, spacePath(spaceID), nil, reqOpts...); err != nil {
		return fmt.Errorf("failed to delete space %d: %w", spaceID, err)
	}
	return nil
}

// Join enrolls the caller, optionally as one of their characters.
func (s *SpacesService) Join(ctx context.Context, spaceID int64, characterID string, reqOpts ...apiclient.RequestOption) (*JoinResult, error) {
	body := map[string]string{}
	if characterID != "" {
		body["characterId"] = characterID
	}

	var result JoinResult
	if err := s.api.Post(ctx, spacePath(spaceID)+"/join", body, &result, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to join space %d: %w", spaceID, err)
	}
	return &result, nil
}

// Leave removes the caller from a space.
func (s *SpacesService) Leave(ctx context.Context, spaceID int64, reqOpts ...apiclient.RequestOption) error {
	if err := s.api.Post(ctx, spacePath(spaceID)+"/leave", nil, nil, reqOpts...); err != nil {
		return fmt.Errorf("failed to leave space %d: %w", spaceID, err)
	}
	return nil
}

// Members returns the member list embedded in the space detail. It is empty
// when the server omits it.
func (s *SpacesService) Members(ctx context.Context, spaceID int64, reqOpts ...apiclient.RequestOption) ([]json.RawMessage, error) {
	space, err := s.Get(ctx, spaceID, reqOpts...)
	if err != nil {
		return nil, err
	}
	if space.Members == nil {
		return []json.RawMessage{}, nil
	}
	return space.Members, nil
}

// Config returns the space's free-form configuration.
func (s *SpacesService) Config(ctx context.Context, spaceID int64, reqOpts ...apiclient.RequestOption) (map[string]any, error) {
	var cfg map[string]any
	if err := s.api.Get(ctx, spacePath(spaceID)+"/config", &cfg, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to get config of space %d: %w", spaceID, err)
	}
	return cfg, nil
}

// UpdateConfig replaces the space's configuration and returns what the server stored.
func (s *SpacesService) UpdateConfig(ctx context.Context, spaceID int64, cfg map[string]any, reqOpts ...apiclient.RequestOption) (map[string]any, error) {
	var out map[string]any
	if err := s.api.Put(ctx, spacePath(spaceID)+"/config", cfg, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to update config of space %d: %w", spaceID, err)
	}
	return out, nil
}

// Search finds public spaces matching query.
func (s *SpacesService) Search(ctx context.Context, query string, opts *SearchSpacesOptions, reqOpts ...apiclient.RequestOption) (*Page[Space], error) {
	q := apiclient.NewQuery().Str("q", query)
	if opts != nil {
		q.Str("mode", string(opts.Mode)).
			Str("difficulty", opts.Difficulty).
			Int("page", opts.Page).
			Int("size", opts.Size)
	}

	var page Page[Space]
	if err := s.api.Get(ctx, "/spaces/search", &page, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to search spaces: %w", err)
	}
	return &page, nil
}

// Popular returns the most popular spaces. A non-positive limit uses DefaultPopularLimit.
func (s *SpacesService) Popular(ctx context.Context, limit int, reqOpts ...apiclient.RequestOption) ([]Space, error) {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	q := apiclient.NewQuery().Int("limit", &limit)

	var spaces []Space
	if err := s.api.Get(ctx, "/spaces/popular", &spaces, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get popular spaces: %w", err)
	}
	return spaces, nil
}

// Recommended returns spaces recommended for userID, or for the caller when empty.
func (s *SpacesService) Recommended(ctx context.Context, userID string, reqOpts ...apiclient.RequestOption) ([]Space, error) {
	q := apiclient.NewQuery().Str("userId", userID)

	var spaces []Space
	if err := s.api.Get(ctx, "/spaces/recommended", &spaces, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get recommended spaces: %w", err)
	}
	return spaces, nil
}
