package format

import (
	"github.com/imagaram/sfr-sdk-go/apiclient"
	"github.com/imagaram/sfr-sdk-go/cryptoasset"
)

var transactionTypeNames = map[cryptoasset.TransactionType]string{
	cryptoasset.TransactionEarn:     "報酬獲得",
	cryptoasset.TransactionSpend:    "使用・支払い",
	cryptoasset.TransactionCollect:  "徴収",
	cryptoasset.TransactionBurn:     "バーン（焼却）",
	cryptoasset.TransactionTransfer: "送金・転送",
}

var proposalStatusNames = map[cryptoasset.ProposalStatus]string{
	cryptoasset.ProposalDraft:    "下書き",
	cryptoasset.ProposalVoting:   "投票中",
	cryptoasset.ProposalPassed:   "可決",
	cryptoasset.ProposalRejected: "否決",
	cryptoasset.ProposalExpired:  "期限切れ",
}

var voteChoiceNames = map[cryptoasset.VoteChoice]string{
	cryptoasset.VoteYes:     "賛成",
	cryptoasset.VoteNo:      "反対",
	cryptoasset.VoteAbstain: "棄権",
}

var statsPeriodNames = map[cryptoasset.StatsPeriod]string{
	cryptoasset.PeriodDaily:   "日次",
	cryptoasset.PeriodWeekly:  "週次",
	cryptoasset.PeriodMonthly: "月次",
}

// Unknown values are returned as-is by the display name functions.

func TransactionType(t cryptoasset.TransactionType) string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return string(t)
}

func ProposalStatus(s cryptoasset.ProposalStatus) string {
	if name, ok := proposalStatusNames[s]; ok {
		return name
	}
	return string(s)
}

func VoteChoice(c cryptoasset.VoteChoice) string {
	if name, ok := voteChoiceNames[c]; ok {
		return name
	}
	return string(c)
}

func StatsPeriod(p cryptoasset.StatsPeriod) string {
	if name, ok := statsPeriodNames[p]; ok {
		return name
	}
	return string(p)
}

// FallbackErrorMessage is shown when neither the code nor the server message
// is usable.
const FallbackErrorMessage = "エラーが発生しました"

var errorMessages = map[string]string{
	apiclient.CodeNetworkError: "ネットワークエラーが発生しました",
	"TIMEOUT_ERROR":            "リクエストがタイムアウトしました",
	"UNKNOWN_ERROR":            "予期しないエラーが発生しました",

	"UNAUTHORIZED":  "認証が必要です",
	"FORBIDDEN":     "この操作を行う権限がありません",
	"TOKEN_EXPIRED": "認証トークンが期限切れです",

	"VALIDATION_ERROR":    "入力内容に誤りがあります",
	"INVALID_AMOUNT":      "金額が無効です",
	"INVALID_USER_ID":     "ユーザーIDが無効です",
	"INVALID_PROPOSAL_ID": "提案IDが無効です",

	"INSUFFICIENT_BALANCE":      "残高が不足しています",
	"USER_NOT_FOUND":            "ユーザーが見つかりません",
	"PROPOSAL_NOT_FOUND":        "提案が見つかりません",
	"VOTING_CLOSED":             "投票期間が終了しています",
	"ALREADY_VOTED":             "既に投票済みです",
	"COLLECTION_NOT_ALLOWED":    "徴収できません",
	"REWARD_CALCULATION_FAILED": "報酬計算に失敗しました",

	"INTERNAL_SERVER_ERROR": "サーバー内部エラーが発生しました",
	"SERVICE_UNAVAILABLE":   "サービスが一時的に利用できません",
	"RATE_LIMIT_EXCEEDED":   "リクエスト制限を超過しました",
	"MAINTENANCE_MODE":      "メンテナンス中です",
}

// ErrorMessage returns a user-facing message for err. Known server codes are
// translated; otherwise the server message is used.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	apiErr, ok := apiclient.AsError(err)
	if !ok {
		return errorMessages["UNKNOWN_ERROR"]
	}
	if msg, ok := errorMessages[apiErr.Code]; ok {
		return msg
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return FallbackErrorMessage
}
