package learning

import (
	"context"
	"fmt"

	"github.com/imagaram/sfr-sdk-go/apiclient"
)

// QuizService manages quizzes and attempts.
type QuizService struct {
	api *apiclient.Client
}

// ListQuizzesOptions filters List.
type ListQuizzesOptions struct {
	Difficulty QuizDifficulty
	Status     QuizStatus
	Page       *int
	Size       *int
}

// DefaultLeaderboardLimit is the leaderboard size used when no limit is given.
const DefaultLeaderboardLimit = 10

func quizzesPath(spaceID int64) string {
	return spacePath(spaceID) + "/quizzes"
}

func quizPath(spaceID, quizID int64) string {
	return fmt.Sprintf("%s/%d", quizzesPath(spaceID), quizID)
}

// List returns the quizzes of a space.
func (s *QuizService) List(ctx context.Context, spaceID int64, opts *ListQuizzesOptions, reqOpts ...apiclient.RequestOption) (*QuizList, error) {
	q := apiclient.NewQuery()
	if opts != nil {
		q.Str("difficulty", string(opts.Difficulty)).
			Str("status", string(opts.Status)).
			Int("page", opts.Page).
			Int("size", opts.Size)
	}

	var list QuizList
	if err := s.api.Get(ctx, quizzesPath(spaceID), &list, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to list quizzes of space %d: %w", spaceID, err)
	}
	return &list, nil
}

// Get returns a quiz with its questions.
func (s *QuizService) Get(ctx context.Context, spaceID, quizID int64, reqOpts ...apiclient.RequestOption) (*QuizDetail, error) {
	var quiz QuizDetail
	if err := s.api.Get(ctx, quizPath(spaceID, quizID), &quiz, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to get quiz %d: %w", quizID, err)
	}
	return &quiz, nil
}

// Create adds a quiz to a space.
func (s *QuizService) Create(ctx context.Context, spaceID int64, req *QuizCreateRequest, reqOpts ...apiclient.RequestOption) (*Quiz, error) {
	var quiz Quiz
	if err := s.api.Post(ctx, quizzesPath(spaceID), req, &quiz, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to create quiz in space %d: %w", spaceID, err)
	}
	return &quiz, nil
}

// Update applies a partial update to a quiz.
func (s *QuizService) Update(ctx context.Context, spaceID, quizID int64, req *QuizCreateRequest, reqOpts ...apiclient.RequestOption) (*Quiz, error) {
	var quiz Quiz
	if err := s.api.Put(ctx, quizPath(spaceID, quizID), req, &quiz, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to update quiz %d: %w", quizID, err)
	}
	return &quiz, nil
}

// Delete removes a quiz.
func (s *QuizService) Delete(ctx context.Context, spaceID, quizID int64, reqOpts ...apiclient.RequestOption) error {
	if err := s.api.Delete(ctx, quizPath(spaceID, quizID), nil, reqOpts...); err != nil {
		return fmt.Errorf("failed to delete quiz %d: %w", quizID, err)
	}
	return nil
}

// Submit grades a full set of answers.
func (s *QuizService) Submit(ctx context.Context, spaceID, quizID int64, answers *QuizAnswerRequest, reqOpts ...apiclient.RequestOption) (*QuizResult, error) {
	var result QuizResult
	if err := s.api.Post(ctx, quizPath(spaceID, quizID)+"/attempt", answers, &result, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to submit quiz %d: %w", quizID, err)
	}
	return &result, nil
}

// Result returns one attempt's result, or the latest when attemptID is 0.
func (s *QuizService) Result(ctx context.Context, spaceID, quizID, attemptID int64, reqOpts ...apiclient.RequestOption) (*QuizResult, error) {
	path := quizPath(spaceID, quizID) + "/results/latest"
	if attemptID != 0 {
		path = fmt.Sprintf("%s/results/%d", quizPath(spaceID, quizID), attemptID)
	}

	var result QuizResult
	if err := s.api.Get(ctx, path, &result, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to get result of quiz %d: %w", quizID, err)
	}
	return &result, nil
}

// Attempts returns every attempt the caller made on a quiz.
func (s *QuizService) Attempts(ctx context.Context, spaceID, quizID int64, reqOpts ...apiclient.RequestOption) ([]QuizResult, error) {
	var results []QuizResult
	if err := s.api.Get(ctx, quizPath(spaceID, quizID)+"/attempts", &results, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to get attempts of quiz %d: %w", quizID, err)
	}
	return results, nil
}

// Stats returns quiz statistics in a space for userID, or the caller when empty.
func (s *QuizService) Stats(ctx context.Context, spaceID int64, userID string, reqOpts ...apiclient.RequestOption) (*QuizStats, error) {
	q := apiclient.NewQuery().Str("userId", userID)

	var stats QuizStats
	if err := s.api.Get(ctx, quizzesPath(spaceID)+"/stats", &stats, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get quiz stats of space %d: %w", spaceID, err)
	}
	return &stats, nil
}

// Leaderboard returns the top results of a quiz. A non-positive limit uses
// DefaultLeaderboardLimit.
func (s *QuizService) Leaderboard(ctx context.Context, spaceID, quizID int64, limit int, reqOpts ...apiclient.RequestOption) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	q := apiclient.NewQuery().Int("limit", &limit)

	var entries []LeaderboardEntry
	if err := s.api.Get(ctx, quizPath(spaceID, quizID)+"/leaderboard", &entries, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get leaderboard of quiz %d: %w", quizID, err)
	}
	return entries, nil
}

// StartPractice opens an ungraded practice session.
func (s *QuizService) StartPractice(ctx context.Context, spaceID, quizID int64, reqOpts ...apiclient.RequestOption) (*PracticeSession, error) {
	var session PracticeSession
	if err := s.api.Post(ctx, quizPath(spaceID, quizID)+"/practice", nil, &session, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to start practice on quiz %d: %w", quizID, err)
	}
	return &session, nil
}

// SubmitPractice submits answers for a practice session.
func (s *QuizService) SubmitPractice(ctx context.Context, spaceID, quizID int64, sessionID string, answers *QuizAnswerRequest, reqOpts ...apiclient.RequestOption) (*PracticeResult, error) {
	path := fmt.Sprintf("%s/practice/%s/submit", quizPath(spaceID, quizID), sessionID)

	var result PracticeResult
	if err := s.api.Post(ctx, path, answers, &result, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to submit practice session %s: %w", sessionID, err)
	}
	return &result, nil
}

// ByDifficulty returns the quizzes of one difficulty.
func (s *QuizService) ByDifficulty(ctx context.Context, spaceID int64, difficulty QuizDifficulty, reqOpts ...apiclient.RequestOption) ([]Quiz, error) {
	q := apiclient.NewQuery().Str("difficulty", string(difficulty))

	var quizzes []Quiz
	if err := s.api.Get(ctx, quizzesPath(spaceID), &quizzes, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to get %s quizzes of space %d: %w", difficulty, spaceID, err)
	}
	return quizzes, nil
}

// Recommended returns quizzes recommended for the caller.
func (s *QuizService) Recommended(ctx context.Context, spaceID int64, reqOpts ...apiclient.RequestOption) ([]Quiz, error) {
	var quizzes []Quiz
	if err := s.api.Get(ctx, quizzesPath(spaceID)+"/recommended", &quizzes, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to get recommended quizzes of space %d: %w", spaceID, err)
	}
	return quizzes, nil
}
