package learning

import (
	"encoding/json"
	"io"
)

// Mode is the kind of learning space.
type Mode string

const (
	ModeSchool  Mode = "SCHOOL"
	ModeSalon   Mode = "SALON"
	ModeFanclub Mode = "FANCLUB"
)

// SpaceStatus is the lifecycle state of a learning space.
type SpaceStatus string

const (
	SpaceStatusActive    SpaceStatus = "ACTIVE"
	SpaceStatusPaused    SpaceStatus = "PAUSED"
	SpaceStatusCompleted SpaceStatus = "COMPLETED"
	SpaceStatusArchived  SpaceStatus = "ARCHIVED"
)

// SpaceRole is a member's role within a space.
type SpaceRole string

const (
	SpaceRoleOwner      SpaceRole = "OWNER"
	SpaceRoleInstructor SpaceRole = "INSTRUCTOR"
	SpaceRoleMember     SpaceRole = "MEMBER"
	SpaceRoleGuest      SpaceRole = "GUEST"
)

// ContentType is the media kind of a content item.
type ContentType string

const (
	ContentTypeText        ContentType = "TEXT"
	ContentTypeVideo       ContentType = "VIDEO"
	ContentTypeAudio       ContentType = "AUDIO"
	ContentTypeDocument    ContentType = "DOCUMENT"
	ContentTypeInteractive ContentType = "INTERACTIVE"
)

// ContentDifficulty grades a content item.
type ContentDifficulty string

const (
	ContentBeginner     ContentDifficulty = "BEGINNER"
	ContentIntermediate ContentDifficulty = "INTERMEDIATE"
	ContentAdvanced     ContentDifficulty = "ADVANCED"
	ContentExpert       ContentDifficulty = "EXPERT"
)

// QuizDifficulty grades a quiz.
type QuizDifficulty string

const (
	QuizEasy   QuizDifficulty = "EASY"
	QuizMedium QuizDifficulty = "MEDIUM"
	QuizHard   QuizDifficulty = "HARD"
)

// QuizStatus is the caller's progress on a quiz.
type QuizStatus string

const (
	QuizNotStarted QuizStatus = "NOT_STARTED"
	QuizInProgress QuizStatus = "IN_PROGRESS"
	QuizCompleted  QuizStatus = "COMPLETED"
)

// ProgressType is the kind of progress event being recorded.
type ProgressType string

const (
	ProgressStarted    ProgressType = "STARTED"
	ProgressInProgress ProgressType = "IN_PROGRESS"
	ProgressCompleted  ProgressType = "COMPLETED"
)

// QuestionType is the answer format of a quiz question.
type QuestionType string

const (
	QuestionSingleChoice   QuestionType = "SINGLE_CHOICE"
	QuestionMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	QuestionTrueFalse      QuestionType = "TRUE_FALSE"
	QuestionTextInput      QuestionType = "TEXT_INPUT"
)

// Page is the server's paginated envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
}

// Space is a learning space (course).
type Space struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Mode        Mode        `json:"mode"`
	Status      SpaceStatus `json:"status"`
	IsPublic    bool        `json:"isPublic"`
	MaxMembers  int         `json:"maxMembers"`
	MemberCount int         `json:"memberCount"`
	OwnerID     string      `json:"ownerId"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
	// Members is only present on the detail response; its shape is owned by the server.
	Members []json.RawMessage `json:"members,omitempty"`
}

// SpaceCreateRequest creates or (partially) updates a space.
type SpaceCreateRequest struct {
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Mode        Mode           `json:"mode,omitempty"`
	IsPublic    *bool          `json:"isPublic,omitempty"`
	MaxMembers  *int           `json:"maxMembers,omitempty"`
	Settings    *SpaceSettings `json:"settings,omitempty"`
}

// SpaceSettings are the behaviour switches of a space.
type SpaceSettings struct {
	AllowComments        *bool                 `json:"allowComments,omitempty"`
	AllowFileUpload      *bool                 `json:"allowFileUpload,omitempty"`
	ModerationRequired   *bool                 `json:"moderationRequired,omitempty"`
	AutoProgressTracking *bool                 `json:"autoProgressTracking,omitempty"`
	NotificationSettings *NotificationSettings `json:"notificationSettings,omitempty"`
}

// NotificationSettings toggles space notifications.
type NotificationSettings struct {
	NewContentNotification    *bool `json:"newContentNotification,omitempty"`
	AssignmentDueNotification *bool `json:"assignmentDueNotification,omitempty"`
	DiscussionNotification    *bool `json:"discussionNotification,omitempty"`
}

// JoinResult is returned when joining a space.
type JoinResult struct {
	Status  string `json:"status"` // JOINED or PENDING_APPROVAL
	Message string `json:"message"`
	SpaceID int64  `json:"spaceId"`
}

// Content is a learning content item.
type Content struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	ContentType ContentType       `json:"contentType"`
	ContentURL  string            `json:"contentUrl,omitempty"`
	Duration    *int              `json:"duration,omitempty"`
	Difficulty  ContentDifficulty `json:"difficulty"`
	Tags        []string          `json:"tags"`
	IsPublished bool              `json:"isPublished"`
	Order       int               `json:"order"`
	AuthorID    string            `json:"authorId"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}

// ContentCreateRequest creates or (partially) updates a content item. When
// File is set the request is sent as multipart/form-data.
type ContentCreateRequest struct {
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	ContentType ContentType       `json:"contentType,omitempty"`
	Content     string            `json:"content,omitempty"`
	Duration    *int              `json:"duration,omitempty"`
	Difficulty  ContentDifficulty `json:"difficulty,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	IsPublished *bool             `json:"isPublished,omitempty"`
	Order       *int              `json:"order,omitempty"`

	File     io.Reader `json:"-"`
	FileName string    `json:"-"`
}

// ContentProgress is the caller's progress on one content item.
type ContentProgress struct {
	IsCompleted    bool   `json:"isCompleted"`
	CompletedAt    string `json:"completedAt,omitempty"`
	TimeSpent      int    `json:"timeSpent"`
	LastAccessedAt string `json:"lastAccessedAt,omitempty"`
	Rating         *int   `json:"rating,omitempty"`
}

// ContentProgressItem pairs a content item with its progress.
type ContentProgressItem struct {
	ContentID    int64           `json:"contentId"`
	ContentTitle string          `json:"contentTitle"`
	Progress     ContentProgress `json:"progress"`
}

// Achievement is a badge earned in a space.
type Achievement struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	BadgeURL    string `json:"badgeUrl,omitempty"`
	EarnedAt    string `json:"earnedAt"`
}

// Progress is the caller's overall progress in a space.
type Progress struct {
	SpaceID               int64                 `json:"spaceId"`
	UserID                string                `json:"userId"`
	OverallProgress       float64               `json:"overallProgress"`
	CompletedContentCount int                   `json:"completedContentCount"`
	TotalContentCount     int                   `json:"totalContentCount"`
	TotalTimeSpent        int                   `json:"totalTimeSpent"`
	LastActivity          string                `json:"lastActivity,omitempty"`
	ContentProgress       []ContentProgressItem `json:"contentProgress"`
	Achievements          []Achievement         `json:"achievements"`
}

// ProgressRecordRequest records a progress event on a content item.
type ProgressRecordRequest struct {
	ProgressType ProgressType `json:"progressType"`
	TimeSpent    *int         `json:"timeSpent,omitempty"`
	Rating       *int         `json:"rating,omitempty"`
	Notes        string       `json:"notes,omitempty"`
}

// PrerequisiteCheck reports whether a content item may be accessed.
type PrerequisiteCheck struct {
	CanAccess            bool      `json:"canAccess"`
	MissingPrerequisites []Content `json:"missingPrerequisites"`
}

// Quiz is a quiz summary.
type Quiz struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	Difficulty    QuizDifficulty `json:"difficulty"`
	TimeLimit     int            `json:"timeLimit"`
	PassingScore  float64        `json:"passingScore"`
	QuestionCount int            `json:"questionCount"`
	AuthorID      string         `json:"authorId"`
	CreatedAt     string         `json:"createdAt"`
	UserAttempts  int            `json:"userAttempts"`
	BestScore     *float64       `json:"bestScore,omitempty"`
}

// QuizDetail is a quiz with its questions.
type QuizDetail struct {
	Quiz
	Questions []json.RawMessage `json:"questions"`
}

// QuizList is the quiz listing envelope.
type QuizList struct {
	Quizzes    []Quiz `json:"quizzes"`
	TotalCount int64  `json:"totalCount"`
}

// QuizQuestion is one question in a quiz definition.
type QuizQuestion struct {
	Question      string       `json:"question"`
	QuestionType  QuestionType `json:"questionType"`
	Options       []string     `json:"options"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation,omitempty"`
	Points        *int         `json:"points,omitempty"`
}

// QuizCreateRequest creates or (partially) updates a quiz.
type QuizCreateRequest struct {
	Title        string         `json:"title,omitempty"`
	Description  string         `json:"description,omitempty"`
	Difficulty   QuizDifficulty `json:"difficulty,omitempty"`
	TimeLimit    *int           `json:"timeLimit,omitempty"`
	PassingScore *float64       `json:"passingScore,omitempty"`
	Questions    []QuizQuestion `json:"questions,omitempty"`
}

// QuizAnswer answers one question by index.
type QuizAnswer struct {
	QuestionIndex int    `json:"questionIndex"`
	Answer        string `json:"answer"`
}

// QuizAnswerRequest is a full set of answers.
type QuizAnswerRequest struct {
	Answers []QuizAnswer `json:"answers"`
}

// QuestionResult is the grading of one answer.
type QuestionResult struct {
	QuestionIndex int    `json:"questionIndex"`
	IsCorrect     bool   `json:"isCorrect"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation,omitempty"`
}

// QuizResult is a graded attempt.
type QuizResult struct {
	QuizID          int64            `json:"quizId"`
	Score           float64          `json:"score"`
	TotalQuestions  int              `json:"totalQuestions"`
	CorrectAnswers  int              `json:"correctAnswers"`
	Passed          bool             `json:"passed"`
	TimeSpent       int              `json:"timeSpent"`
	SubmittedAt     string           `json:"submittedAt"`
	QuestionResults []QuestionResult `json:"questionResults"`
}

// BestScore is a user's best result on one quiz.
type BestScore struct {
	QuizID      int64   `json:"quizId"`
	QuizTitle   string  `json:"quizTitle"`
	Score       float64 `json:"score"`
	AttemptedAt string  `json:"attemptedAt"`
}

// QuizStats aggregates quiz results within a space.
type QuizStats struct {
	TotalQuizzes     int         `json:"totalQuizzes"`
	CompletedQuizzes int         `json:"completedQuizzes"`
	AverageScore     float64     `json:"averageScore"`
	TotalTimeSpent   int         `json:"totalTimeSpent"`
	BestScores       []BestScore `json:"bestScores"`
}

// LeaderboardEntry is one row of a quiz leaderboard.
type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	UserID      string  `json:"userId"`
	Username    string  `json:"username"`
	Score       float64 `json:"score"`
	TimeSpent   int     `json:"timeSpent"`
	CompletedAt string  `json:"completedAt"`
}

// PracticeSession is a started practice run.
type PracticeSession struct {
	SessionID string            `json:"sessionId"`
	Questions []json.RawMessage `json:"questions"`
	TimeLimit *int              `json:"timeLimit,omitempty"`
}

// PracticeFeedback is the per-question feedback of a practice run.
type PracticeFeedback struct {
	QuestionIndex int    `json:"questionIndex"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation"`
}

// PracticeResult grades a practice run.
type PracticeResult struct {
	CorrectAnswers int                `json:"correctAnswers"`
	TotalQuestions int                `json:"totalQuestions"`
	Feedback       []PracticeFeedback `json:"feedback"`
}

// Evaluation is a rating submission.
type Evaluation struct {
	ContentID   int64  `json:"contentId,omitempty"`
	Rating      int    `json:"rating,omitempty"`
	Comment     string `json:"comment,omitempty"`
	CharacterID string `json:"characterId,omitempty"`
}

// EvaluationResponse is a stored evaluation.
type EvaluationResponse struct {
	ID          int64  `json:"id"`
	ContentID   int64  `json:"contentId"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment,omitempty"`
	CharacterID string `json:"characterId,omitempty"`
	UserID      string `json:"userId"`
	CreatedAt   string `json:"createdAt"`
}

// EvaluationStats summarises the ratings of a content item.
type EvaluationStats struct {
	AverageRating      float64        `json:"averageRating"`
	TotalEvaluations   int64          `json:"totalEvaluations"`
	RatingDistribution map[string]int `json:"ratingDistribution"`
}

// VoteResult is the helpfulness tally after a vote.
type VoteResult struct {
	HelpfulVotes int `json:"helpfulVotes"`
	TotalVotes   int `json:"totalVotes"`
}

// EvaluationReply is a reply posted to an evaluation.
type EvaluationReply struct {
	ID        int64  `json:"id"`
	Reply     string `json:"reply"`
	AuthorID  string `json:"authorId"`
	CreatedAt string `json:"createdAt"`
}

// ReportReason classifies an evaluation report.
type ReportReason string

const (
	ReportSpam          ReportReason = "spam"
	ReportInappropriate ReportReason = "inappropriate"
	ReportHarassment    ReportReason = "harassment"
	ReportOther         ReportReason = "other"
)

// ReportResult acknowledges a report.
type ReportResult struct {
	ReportID int64  `json:"reportId"`
	Status   string `json:"status"`
}

// RatedContent is one row of the top-rated listing.
type RatedContent struct {
	ContentID        int64   `json:"contentId"`
	ContentTitle     string  `json:"contentTitle"`
	AverageRating    float64 `json:"averageRating"`
	TotalEvaluations int64   `json:"totalEvaluations"`
}

// Stats combines progress and quiz statistics for a space.
type Stats struct {
	Progress       *Progress     `json:"progress"`
	QuizStats      *QuizStats    `json:"quizStats"`
	CompletionRate float64       `json:"completionRate"`
	TotalTimeSpent int           `json:"totalTimeSpent"`
	Achievements   []Achievement `json:"achievements"`
}

// SpaceSummary holds the counts reported by GetCompleteSpaceInfo.
type SpaceSummary struct {
	ContentCount   int64   `json:"contentCount"`
	QuizCount      int64   `json:"quizCount"`
	CompletionRate float64 `json:"completionRate"`
}

// SpaceInfo is everything about a space fetched in one go.
type SpaceInfo struct {
	Space    *Space       `json:"space"`
	Content  []Content    `json:"content"`
	Progress *Progress    `json:"progress"`
	Quizzes  []Quiz       `json:"quizzes"`
	Stats    SpaceSummary `json:"stats"`
}
