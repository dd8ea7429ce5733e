package learning

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/imagaram/sfr-sdk-go/apiclient"
)

// Preset endpoints.
const (
	DevBaseURL  = "http://localhost:8080/api/learning"
	ProdBaseURL = "https://api.sfr.tokyo/api/learning"
)

// Client is the learning API SDK. The services share one executor, so a token
// set on the Client applies to all of them.
type Client struct {
	api *apiclient.Client

	Spaces      *SpacesService
	Content     *ContentService
	Evaluations *EvaluationsService
	Quiz        *QuizService
}

// New creates a learning SDK client for baseURL.
func New(baseURL string, logger zerolog.Logger, opts ...apiclient.Option) (*Client, error) {
	api, err := apiclient.New(baseURL, logger.With().Str("sdk", "learning").Logger(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create learning client: %w", err)
	}
	return newClient(api), nil
}

func newClient(api *apiclient.Client) *Client {
	return &Client{
		api:         api,
		Spaces:      &SpacesService{api: api},
		Content:     &ContentService{api: api},
		Evaluations: &EvaluationsService{api: api},
		Quiz:        &QuizService{api: api},
	}
}

// NewDev creates a client for a local server with debug logging on and a
// 15 second timeout. token may be empty.
func NewDev(logger zerolog.Logger, token string) (*Client, error) {
	return New(DevBaseURL, logger,
		apiclient.WithDebug(true),
		apiclient.WithTimeout(15000*time.Millisecond),
		apiclient.WithAccessToken(token),
	)
}

// NewProd creates a client for the production API. token is required;
// apiKey is sent when non-empty.
func NewProd(token, apiKey string, logger zerolog.Logger) (*Client, error) {
	if token == "" {
		return nil, apiclient.ErrTokenRequired
	}
	return New(ProdBaseURL, logger,
		apiclient.WithAPIKey(apiKey),
		apiclient.WithDebug(false),
		apiclient.WithTimeout(10000*time.Millisecond),
		apiclient.WithRetryAttempts(3),
		apiclient.WithAccessToken(token),
	)
}

// SetAccessToken sets the bearer token for subsequent calls.
func (c *Client) SetAccessToken(token string) {
	c.api.SetAccessToken(token)
}

// ClearAccessToken removes the bearer token.
func (c *Client) ClearAccessToken() {
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

// GetCourses lists spaces.
func (c *Client) GetCourses(ctx context.Context, opts *ListSpacesOptions) (*Page[Space], error) {
	return c.Spaces.List(ctx, opts)
}

// EnrollCourse joins a space, optionally as a character.
func (c *Client) EnrollCourse(ctx context.Context, spaceID int64, characterID string) (*JoinResult, error) {
	return c.Spaces.Join(ctx, spaceID, characterID)
}

// SubmitEvaluation rates a content item.
func (c *Client) SubmitEvaluation(ctx context.Context, eval *Evaluation) (*EvaluationResponse, error) {
	return c.Evaluations.Submit(ctx, eval)
}

// RecordProgress records a progress event on a content item.
func (c *Client) RecordProgress(ctx context.Context, spaceID, contentID int64, req *ProgressRecordRequest) error {
	_, err := c.Content.RecordProgress(ctx, spaceID, contentID, req)
	return err
}

// GetNextContent returns the next content item, or nil when the space is done.
func (c *Client) GetNextContent(ctx context.Context, spaceID int64) (*Content, error) {
	return c.Content.Next(ctx, spaceID)
}

// GetLearningStats combines progress and quiz statistics for a space.
func (c *Client) GetLearningStats(ctx context.Context, spaceID int64) (*Stats, error) {
	progress, err := c.Content.Progress(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	quizStats, err := c.Quiz.Stats(ctx, spaceID, "")
	if err != nil {
		return nil, err
	}

	return &Stats{
		Progress:       progress,
		QuizStats:      quizStats,
		CompletionRate: progress.OverallProgress,
		TotalTimeSpent: progress.TotalTimeSpent,
		Achievements:   progress.Achievements,
	}, nil
}

// GetCompleteSpaceInfo fetches a space, its content, the caller's progress and
// its quizzes concurrently. The first failure cancels the rest.
func (c *Client) GetCompleteSpaceInfo(ctx context.Context, spaceID int64) (*SpaceInfo, error) {
	var (
		space    *Space
		content  *Page[Content]
		progress *Progress
		quizzes  *QuizList
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		space, err = c.Spaces.Get(ctx, spaceID)
		return err
	})
	g.Go(func() (err error) {
		content, err = c.Content.List(ctx, spaceID, nil)
		return err
	})
	g.Go(func() (err error) {
		progress, err = c.Content.Progress(ctx, spaceID)
		return err
	})
	g.Go(func() (err error) {
		quizzes, err = c.Quiz.List(ctx, spaceID, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &SpaceInfo{
		Space:    space,
		Content:  content.Content,
		Progress: progress,
		Quizzes:  quizzes.Quizzes,
		Stats: SpaceSummary{
			ContentCount:   content.TotalElements,
			QuizCount:      quizzes.TotalCount,
			CompletionRate: progress.OverallProgress,
		},
	}, nil
}

// withQuery puts the query first so caller options can still add to it.
func withQuery(q *apiclient.Query, opts []apiclient.RequestOption) []apiclient.RequestOption {
	out := make([]apiclient.RequestOption, 0, len(opts)+1)
	out = append(out, q.Option())
	return append(out, opts...)
}
