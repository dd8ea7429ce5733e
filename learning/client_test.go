package learning

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imagaram/sfr-sdk-go/apiclient"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func newTestSDK(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sdk, err := New(server.URL+"/api/learning", zerolog.Nop(), apiclient.WithRetryAttempts(0))
	require.NoError(t, err)
	return sdk
}

func TestPresets(t *testing.T) {
	t.Run("dev", func(t *testing.T) {
		sdk, err := NewDev(zerolog.Nop(), "")
		require.NoError(t, err)
		cfg := sdk.Config()
		assert.Equal(t, DevBaseURL, cfg.BaseURL)
		assert.True(t, cfg.Debug)
		assert.Equal(t, 15*time.Second, cfg.Timeout)
	})

	t.Run("prod", func(t *testing.T) {
		sdk, err := NewProd("token", "key", zerolog.Nop())
		require.NoError(t, err)
		cfg := sdk.Config()
		assert.Equal(t, ProdBaseURL, cfg.BaseURL)
		assert.False(t, cfg.Debug)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Equal(t, 3, cfg.RetryAttempts)
		assert.Equal(t, "key", cfg.APIKey)
	})

	t.Run("prod requires token", func(t *testing.T) {
		_, err := NewProd("", "", zerolog.Nop())
		assert.ErrorIs(t, err, apiclient.ErrTokenRequired)
	})
}

func TestSpacesList(t *testing.T) {
	sdk := newTestSDK(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/learning/spaces", r.URL.Path)
		assert.Equal(t, "SCHOOL", r.URL.Query().Get("mode"))
		assert.Equal(t, "0", r.URL.Query().Get("page"))
		assert.False(t, r.URL.Query().Has("status"))
		assert.False(t, r.URL.Query().Has("size"))

		writeJSON(w, http.StatusOK, Page[Space]{
			Content:       []Space{{ID: 1, Name: "Go 101", Mode: ModeSchool}},
			TotalElements: 1,
			TotalPages:    1,
		})
	})

	page, err := sdk.GetCourses(context.Background(), &ListSpacesOptions{Mode: ModeSchool, Page: apiclient.Ptr(0)})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Go 101", page.Content[0].Name)
}

func TestSpacesJoinAndMembers(t *testing.T) {
	sdk := newTestSDK(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/learning/spaces/5/join":
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "char-1", body["characterId"])
			writeJSON(w, http.StatusOK, JoinResult{Status: "JOINED", SpaceID: 5})
		case "/api/learning/spaces/5":
			writeJSON(w, http.StatusOK, map[string]any{"id": 5, "name": "Salon"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	joined, err := sdk.EnrollCourse(context.Background(), 5, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "JOINED", joined.Status)

	members, err := sdk.Spaces.Members(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)
}

func TestContentNext(t *testing.T) {
	t.Run("returns content", func(t *testing.T) {
		sdk := newTestSDK(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/learning/spaces/3/content/next", r.URL.Path)
			writeJSON(w, http.StatusOK, Content{ID: 11, Title: "Channels"})
		})

		next, err := sdk.GetNextContent(context.Background(), 3)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, int64(11), next.ID)
	})

	t.Run("not found means done", func(t *testing.T) {
		sdk := newTestSDK(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "NOT_FOUND", "message": "no next content"})
		})

		next, err := sdk.GetNextContent(context.Background(), 3)
		require.NoError(t, err)
		assert.Nil(t, next)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		sdk := newTestSDK(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "FORBIDDEN", "message": "not a member"})
		})

		next, err := sdk.GetNextContent(context.Background(), 3)
		assert.Nil(t, next)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apiclient.ErrForbidden))
	})
}

func TestContentCreateMultipart(t *testing.T) {
	sdk := newTestSDK(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		assert.NoError(t, err)
		assert.Equal(t, "multipart/form-data", mediaType)

		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Intro", r.FormValue("title"))
		assert.Equal(t, "VIDEO", r.FormValue("contentType"))
		assert.Equal(t, "BEGINNER", r.FormValue("difficulty"))
		assert.Equal(t, `["go","basics"]`, r.FormValue("tags"))
		assert.Equal(t, "true", r.FormValue("isPublished"))
		assert.Empty(t, r.FormValue("order"))

		f, header, err := r.FormFile("file")
		if assert.NoError(t, err) {
			data, _ := io.ReadAll(f)
			f.Close()
			assert.Equal(t, "intro.mp4", header.Filename)
			assert.Equal(t, "video-bytes", string(data))
		}
		writeJSON(w, http.StatusCreated, Content{ID: 21, Title: "Intro"})
	})

	content, err := sdk.Content.Create(context.Background(), 2, &ContentCreateRequest{
		Title:       "Intro",
		ContentType: ContentTypeVideo,
		Difficulty:  ContentBeginner,
		Tags:        []string{"go", "basics"},
		IsPublished: apiclient.Ptr(true),
		File:        strings.NewReader("video-bytes"),
		FileName:    "intro.mp4",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), content.ID)
}

func TestContentUpdateWithoutFileIsJSONPut(t *testing.T) {
	sdk := newTestSDK(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/learning/spaces/2/content/21", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"title": "Renamed"}, body)
		writeJSON(w, http.StatusOK, Content{ID: 21, Title: "Renamed"})
	})

	content, err := sdk.Content.Update(context.Background(), 2, 21, &ContentCreateRequest{Title: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", content.Title)
}

func TestContentSearchQuery(t *testing.T) {
	sdk := newTestSDK(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/learning/spaces/2/content/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "goroutines", q.Get("q"))
		assert.Equal(t, "go,concurrency", q.Get("tags"))
		assert.Equal(t, "ADVANCED", q.Get("difficulty"))
		assert.False(t, q.Has("contentType"))
		writeJSON(w, http.StatusOK, Page[Content]{})
	})

	_, err := sdk.Content.Search(context.Background(), 2, "goroutines", &SearchContentOptions{
		Difficulty: ContentAdvanced,
		Tags:       []string{"go", "concurrency"},
	})
	require.NoError(t, err)
}

func TestEvaluationsByUser(t *testing.T) {
	var paths []string
	var mu sync.Mutex
	sdk := newTestSDK(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.String())
		mu.Unlock()
		writeJSON(w, http.StatusOK, Page[EvaluationResponse]{})
	})

	_, err := sdk.Evaluations.ByUser(context.Background(), "", nil)
	require.NoError(t, err)
	_, err = sdk.Evaluations.ByUser(context.Background(), "u-1", &UserEvaluationsOptions{ContentID: 4})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/api/learning/evaluations/me",
		"/api/learning/evaluations/user?contentId=4&userId=u-1",
	}, paths)
}

func TestQuizResultPaths(t *testing.T) {
	var got []string
	sdk := newTestSDK(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.URL.Path)
		writeJSON(w, http.StatusOK, QuizResult{QuizID: 8, Passed: true})
	})

	_, err := sdk.Quiz.Result(context.Background(), 1, 8, 0)
	require.NoError(t, err)
	_, err = sdk.Quiz.Result(context.Background(), 1, 8, 99)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/api/learning/spaces/1/quizzes/8/results/latest",
		"/api/learning/spaces/1/quizzes/8/results/99",
	}, got)
}

func TestGetLearningStats(t *testing.T) {
	sdk := newTestSDK(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/learning/spaces/7/progress":
			writeJSON(w, http.StatusOK, Progress{
				SpaceID:         7,
				OverallProgress: 62.5,
				TotalTimeSpent:  3600,
				Achievements:    []Achievement{{ID: 1, Title: "First steps"}},
			})
		case "/api/learning/spaces/7/quizzes/stats":
			writeJSON(w, http.StatusOK, QuizStats{TotalQuizzes: 4, CompletedQuizzes: 2})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	stats, err := sdk.GetLearningStats(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 62.5, stats.CompletionRate)
	assert.Equal(t, 3600, stats.TotalTimeSpent)
	assert.Len(t, stats.Achievements, 1)
	assert.Equal(t, 4, stats.QuizStats.TotalQuizzes)
}

func TestGetCompleteSpaceInfo(t *testing.T) {
	sdk := newTestSDK(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/learning/spaces/7":
			writeJSON(w, http.StatusOK, Space{ID: 7, Name: "Fan club"})
		case "/api/learning/spaces/7/content":
			writeJSON(w, http.StatusOK, Page[Content]{
				Content:       []Content{{ID: 1}, {ID: 2}},
				TotalElements: 12,
			})
		case "/api/learning/spaces/7/progress":
			writeJSON(w, http.StatusOK, Progress{OverallProgress: 40})
		case "/api/learning/spaces/7/quizzes":
			writeJSON(w, http.StatusOK, QuizList{Quizzes: []Quiz{{ID: 3}}, TotalCount: 5})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	info, err := sdk.GetCompleteSpaceInfo(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Fan club", info.Space.Name)
	assert.Len(t, info.Content, 2)
	assert.Len(t, info.Quizzes, 1)
	assert.Equal(t, SpaceSummary{ContentCount: 12, QuizCount: 5, CompletionRate: 40}, info.Stats)
}

func TestGetCompleteSpaceInfoFailsAsAWhole(t *testing.T) {
	sdk := newTestSDK(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/learning/spaces/7/progress" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "UNAUTHORIZED", "message": "login required"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{})
	})

	info, err := sdk.GetCompleteSpaceInfo(context.Background(), 7)
	assert.Nil(t, info)
	assert.ErrorIs(t, err, apiclient.ErrUnauthorized)
}
