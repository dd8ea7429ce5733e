package cryptoasset

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imagaram/sfr-sdk-go/apiclient"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...apiclient.Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]apiclient.Option{apiclient.WithRetryAttempts(0)}, opts...)
	client, err := New(server.URL+"/api/v1", zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client
}

func TestNewDefaults(t *testing.T) {
	client, err := New("http://localhost:8080/api/v1", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, client.Config().Timeout)

	client, err = New("http://localhost:8080/api/v1", zerolog.Nop(), apiclient.WithTimeout(5*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, client.Config().Timeout)

	_, err = New("/api/v1", zerolog.Nop())
	assert.Error(t, err)
}

func TestAuthToken(t *testing.T) {
	var auth []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = append(auth, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{"data": []any{}, "totalMembers": 0})
	})

	ctx := context.Background()
	client.SetAuthToken("abc")
	_, err := client.CouncilMembers(ctx)
	require.NoError(t, err)
	client.RemoveAuthToken()
	_, err = client.CouncilMembers(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer abc", ""}, auth)
}

func TestBalance(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/tokens/balance/user-1", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"timestamp":      "2025-01-01T00:00:00",
			"responseId":     "r-1",
			"status":         "SUCCESS",
			"userId":         "user-1",
			"currentBalance": "1234.56780000",
			"totalEarned":    "2000",
			"totalSpent":     "0.5",
			"totalCollected": "0",
			"frozen":         false,
		})
	})

	balance, err := client.Balance(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, balance.IsSuccess())
	assert.Equal(t, "r-1", balance.ResponseID)
	assert.Equal(t, "user-1", balance.UserID)
	assert.Equal(t, "1234.5678", balance.CurrentBalance.String())
	assert.True(t, balance.TotalSpent.Equal(decimal.RequireFromString("0.5")))
}

func TestBalanceHistoryQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tokens/balance/user-1/history", r.URL.Path)
		assert.Equal(t, "fromDate=2025-01-01&limit=20&page=2&transactionType=EARN", r.URL.RawQuery)
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "SUCCESS",
			"data": []map[string]any{
				{"historyId": "h-1", "transactionType": "EARN", "amount": "10"},
			},
			"pagination": map[string]any{"page": 2, "limit": 20, "totalPages": 3, "totalCount": 45, "hasNext": true, "hasPrevious": true},
		})
	})

	page, err := client.BalanceHistory(context.Background(), "user-1", &BalanceHistoryParams{
		QueryParams:     QueryParams{Page: apiclient.Ptr(2), Limit: apiclient.Ptr(20), FromDate: "2025-01-01"},
		TransactionType: TransactionEarn,
	})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, TransactionEarn, page.Data[0].TransactionType)

	next, ok := page.Pagination.NextPage()
	assert.True(t, ok)
	assert.Equal(t, 3, next)
}

func TestTransferBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/tokens/transfer", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "25.5", body["amount"])
		assert.NotContains(t, body, "note")

		writeJSON(w, http.StatusOK, map[string]any{"status": "SUCCESS", "transferId": "t-1", "amount": "25.5"})
	})

	resp, err := client.Transfer(context.Background(), &TransferRequest{
		FromUserID: "a",
		ToUserID:   "b",
		Amount:     decimal.RequireFromString("25.5"),
		Reason:     "gift",
	})
	require.NoError(t, err)
	assert.Equal(t, "t-1", resp.TransferID)
}

func TestProposalsAndVote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/governance/proposals":
			assert.Equal(t, "proposalType=POLICY&status=VOTING", r.URL.RawQuery)
			writeJSON(w, http.StatusOK, map[string]any{
				"data":       []map[string]any{{"proposalId": "p-1", "status": "VOTING"}},
				"pagination": map[string]any{"page": 1, "hasNext": false, "hasPrevious": false},
			})
		case "/api/v1/governance/proposals/p-1/vote":
			var body VoteRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, VoteYes, body.VoteChoice)
			writeJSON(w, http.StatusOK, map[string]any{"voteId": "v-1", "proposalStatusAfter": "PASSED"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	})

	ctx := context.Background()
	page, err := client.Proposals(ctx, &ProposalsParams{Status: ProposalVoting, ProposalType: ProposalPolicy})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	_, ok := page.Pagination.NextPage()
	assert.False(t, ok)

	vote, err := client.Vote(ctx, "p-1", &VoteRequest{VoteChoice: VoteYes})
	require.NoError(t, err)
	assert.Equal(t, ProposalPassed, vote.ProposalStatusAfter)
}

func TestStatisticsQueries(t *testing.T) {
	tests := []struct {
		name      string
		call      func(c *Client) error
		wantPath  string
		wantQuery string
	}{
		{
			name: "top holders default limit",
			call: func(c *Client) error {
				_, err := c.TopHolders(context.Background(), 0)
				return err
			},
			wantPath:  "/api/v1/statistics/top-holders",
			wantQuery: "limit=100",
		},
		{
			name: "circulation omits empty dates",
			call: func(c *Client) error {
				_, err := c.CirculationStats(context.Background(), PeriodDaily, "", "")
				return err
			},
			wantPath:  "/api/v1/statistics/circulation",
			wantQuery: "period=DAILY",
		},
		{
			name: "reward stats",
			call: func(c *Client) error {
				_, err := c.RewardStats(context.Background(), "2025-01-01", "2025-01-31", "week")
				return err
			},
			wantPath:  "/api/v1/statistics/rewards",
			wantQuery: "fromDate=2025-01-01&groupBy=week&toDate=2025-01-31",
		},
		{
			name: "oracle feeds without filters",
			call: func(c *Client) error {
				_, err := c.OracleFeeds(context.Background(), "", "")
				return err
			},
			wantPath:  "/api/v1/oracle/feeds",
			wantQuery: "",
		},
		{
			name: "adjustment logs",
			call: func(c *Client) error {
				_, err := c.AdjustmentLogs(context.Background(), &AdjustmentLogsParams{TriggerType: TriggerOracle})
				return err
			},
			wantPath:  "/api/v1/audit/adjustments",
			wantQuery: "triggerType=ORACLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				writeJSON(w, http.StatusOK, map[string]any{})
			})
			assert.NoError(t, tt.call(client))
		})
	}
}

func TestUpdateParameterUsesPut(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/audit/parameters/param-1", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{"parameterId": "param-1", "oldValue": "0.1", "newValue": "0.2", "validationPassed": true})
	})

	resp, err := client.UpdateParameter(context.Background(), "param-1", &ParameterUpdateRequest{ParameterValue: "0.2", UpdateReason: "tune"})
	require.NoError(t, err)
	assert.True(t, resp.ValidationPassed)
	assert.Equal(t, "0.2", resp.NewValue)
}

func TestErrorsAreWrapped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]any{"error": "FORBIDDEN", "message": "council only"})
	})

	_, err := client.AppointCouncilMember(context.Background(), &CouncilAppointRequest{UserID: "u-1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apiclient.ErrForbidden))

	apiErr, ok := apiclient.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "FORBIDDEN", apiErr.Code)
	assert.Equal(t, "council only", apiErr.Message)
}
