package cryptoasset

import (
	"github.com/shopspring/decimal"
)

// ResponseStatus is the outcome reported in every response envelope.
type ResponseStatus string

const (
	StatusSuccess        ResponseStatus = "SUCCESS"
	StatusPartialSuccess ResponseStatus = "PARTIAL_SUCCESS"
	StatusWarning        ResponseStatus = "WARNING"
	StatusError          ResponseStatus = "ERROR"
)

type TransactionType string

const (
	TransactionEarn     TransactionType = "EARN"
	TransactionSpend    TransactionType = "SPEND"
	TransactionCollect  TransactionType = "COLLECT"
	TransactionBurn     TransactionType = "BURN"
	TransactionTransfer TransactionType = "TRANSFER"
)

type CollectionDestination string

const (
	DestinationBurn         CollectionDestination = "BURN"
	DestinationReserve      CollectionDestination = "RESERVE"
	DestinationRedistribute CollectionDestination = "REDISTRIBUTE"
)

type BurnDecisionResult string

const (
	BurnDecisionBurn    BurnDecisionResult = "BURN"
	BurnDecisionReserve BurnDecisionResult = "RESERVE"
)

type ProposalType string

const (
	ProposalPolicy     ProposalType = "POLICY"
	ProposalParameter  ProposalType = "PARAMETER"
	ProposalFeature    ProposalType = "FEATURE"
	ProposalGovernance ProposalType = "GOVERNANCE"
)

type ProposalStatus string

const (
	ProposalDraft    ProposalStatus = "DRAFT"
	ProposalVoting   ProposalStatus = "VOTING"
	ProposalPassed   ProposalStatus = "PASSED"
	ProposalRejected ProposalStatus = "REJECTED"
	ProposalExpired  ProposalStatus = "EXPIRED"
)

type VoteChoice string

const (
	VoteYes     VoteChoice = "YES"
	VoteNo      VoteChoice = "NO"
	VoteAbstain VoteChoice = "ABSTAIN"
)

type CouncilStatus string

const (
	CouncilActive    CouncilStatus = "ACTIVE"
	CouncilCompleted CouncilStatus = "COMPLETED"
	CouncilResigned  CouncilStatus = "RESIGNED"
	CouncilRemoved   CouncilStatus = "REMOVED"
)

type StatsPeriod string

const (
	PeriodDaily   StatsPeriod = "DAILY"
	PeriodWeekly  StatsPeriod = "WEEKLY"
	PeriodMonthly StatsPeriod = "MONTHLY"
)

type OracleDataType string

const (
	OraclePrice     OracleDataType = "PRICE"
	OracleVolume    OracleDataType = "VOLUME"
	OracleLiquidity OracleDataType = "LIQUIDITY"
	OracleRate      OracleDataType = "RATE"
)

type ParameterType string

const (
	ParameterString  ParameterType = "STRING"
	ParameterNumber  ParameterType = "NUMBER"
	ParameterBoolean ParameterType = "BOOLEAN"
	ParameterJSON    ParameterType = "JSON"
)

type TriggerType string

const (
	TriggerManual     TriggerType = "MANUAL"
	TriggerAutoAI     TriggerType = "AUTO_AI"
	TriggerOracle     TriggerType = "ORACLE"
	TriggerGovernance TriggerType = "GOVERNANCE"
)

type EvaluationType string

const (
	EvaluationLearning     EvaluationType = "LEARNING"
	EvaluationCreation     EvaluationType = "CREATION"
	EvaluationContribution EvaluationType = "CONTRIBUTION"
	EvaluationGeneral      EvaluationType = "GENERAL"
)

// Response is the envelope carried by most responses.
type Response struct {
	Timestamp  string         `json:"timestamp"`
	ResponseID string         `json:"responseId"`
	Status     ResponseStatus `json:"status"`
}

// Pagination describes one page of a paged listing.
type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}

// Paged is a page of T with its envelope.
type Paged[T any] struct {
	Response
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Tokens

type UserBalance struct {
	UserID             string          `json:"userId"`
	CurrentBalance     decimal.Decimal `json:"currentBalance"`
	TotalEarned        decimal.Decimal `json:"totalEarned"`
	TotalSpent         decimal.Decimal `json:"totalSpent"`
	TotalCollected     decimal.Decimal `json:"totalCollected"`
	LastCollectionDate string          `json:"lastCollectionDate,omitempty"`
	CollectionExempt   bool            `json:"collectionExempt"`
	Frozen             bool            `json:"frozen"`
	UpdatedAt          string          `json:"updatedAt"`
}

type UserBalanceResponse struct {
	Response
	UserBalance
}

type BalanceHistory struct {
	HistoryID       string          `json:"historyId"`
	UserID          string          `json:"userId"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	BalanceBefore   decimal.Decimal `json:"balanceBefore"`
	BalanceAfter    decimal.Decimal `json:"balanceAfter"`
	Reason          string          `json:"reason"`
	ReferenceID     string          `json:"referenceId,omitempty"`
	CreatedAt       string          `json:"createdAt"`
}

type TransferRequest struct {
	FromUserID string          `json:"fromUserId"`
	ToUserID   string          `json:"toUserId"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	Note       string          `json:"note,omitempty"`
}

type TransferResponse struct {
	Response
	TransferID       string          `json:"transferId"`
	FromUserID       string          `json:"fromUserId"`
	ToUserID         string          `json:"toUserId"`
	Amount           decimal.Decimal `json:"amount"`
	FromBalanceAfter decimal.Decimal `json:"fromBalanceAfter"`
	ToBalanceAfter   decimal.Decimal `json:"toBalanceAfter"`
	ProcessedAt      string          `json:"processedAt"`
}

// Rewards

type RewardIssueRequest struct {
	UserID          string  `json:"userId"`
	ActivityScore   float64 `json:"activityScore"`
	EvaluationScore float64 `json:"evaluationScore"`
	RewardReason    string  `json:"rewardReason"`
	ForceIssue      *bool   `json:"forceIssue,omitempty"`
}

type RewardIssueResponse struct {
	Response
	RewardID           string          `json:"rewardId"`
	UserID             string          `json:"userId"`
	RewardAmount       decimal.Decimal `json:"rewardAmount"`
	PoolDate           string          `json:"poolDate"`
	CombinedScore      float64         `json:"combinedScore"`
	TotalPoolScore     float64         `json:"totalPoolScore"`
	CalculationDetails map[string]any  `json:"calculationDetails"`
	IssuedAt           string          `json:"issuedAt"`
}

type RewardCalculateRequest struct {
	UserID          string  `json:"userId"`
	ActivityScore   float64 `json:"activityScore"`
	EvaluationScore float64 `json:"evaluationScore"`
	TargetDate      string  `json:"targetDate,omitempty"`
}

type RewardCalculateResponse struct {
	UserID               string          `json:"userId"`
	EstimatedReward      decimal.Decimal `json:"estimatedReward"`
	CombinedScore        float64         `json:"combinedScore"`
	CurrentPoolTotal     decimal.Decimal `json:"currentPoolTotal"`
	CurrentPoolRemaining decimal.Decimal `json:"currentPoolRemaining"`
	TotalParticipants    int             `json:"totalParticipants"`
	CalculationDetails   map[string]any  `json:"calculationDetails"`
}

type DailyDistributionRequest struct {
	TargetDate          string `json:"targetDate"`
	DryRun              *bool  `json:"dryRun,omitempty"`
	ForceRedistribution *bool  `json:"forceRedistribution,omitempty"`
}

type DistributionDetail struct {
	UserID        string          `json:"userId"`
	RewardAmount  decimal.Decimal `json:"rewardAmount"`
	CombinedScore float64         `json:"combinedScore"`
}

type DailyDistributionResponse struct {
	Response
	TargetDate          string               `json:"targetDate"`
	TotalParticipants   int                  `json:"totalParticipants"`
	TotalDistributed    decimal.Decimal      `json:"totalDistributed"`
	AverageReward       decimal.Decimal      `json:"averageReward"`
	DistributionDetails []DistributionDetail `json:"distributionDetails"`
	ProcessedAt         string               `json:"processedAt"`
}

type RewardHistory struct {
	RewardID        string          `json:"rewardId"`
	PoolDate        string          `json:"poolDate"`
	RewardAmount    decimal.Decimal `json:"rewardAmount"`
	ActivityScore   float64         `json:"activityScore"`
	EvaluationScore float64         `json:"evaluationScore"`
	CombinedScore   float64         `json:"combinedScore"`
	RewardReason    string          `json:"rewardReason"`
	CreatedAt       string          `json:"createdAt"`
}

// Collections

type CollectionRequest struct {
	UserID           string   `json:"userId"`
	ForceCollection  *bool    `json:"forceCollection,omitempty"`
	CollectionRate   *float64 `json:"collectionRate,omitempty"`
	CollectionReason string   `json:"collectionReason,omitempty"`
}

type CollectionResponse struct {
	Response
	CollectionID     string                `json:"collectionId"`
	UserID           string                `json:"userId"`
	BalanceBefore    decimal.Decimal       `json:"balanceBefore"`
	CollectionAmount decimal.Decimal       `json:"collectionAmount"`
	CollectionRate   float64               `json:"collectionRate"`
	Destination      CollectionDestination `json:"destination"`
	AIDecisionID     string                `json:"aiDecisionId,omitempty"`
	ProcessedAt      string                `json:"processedAt"`
}

type MonthlyCollectionRequest struct {
	TargetMonth         string           `json:"targetMonth"`
	DryRun              *bool            `json:"dryRun,omitempty"`
	CollectionThreshold *decimal.Decimal `json:"collectionThreshold,omitempty"`
}

type MonthlyCollectionDetail struct {
	UserID           string                `json:"userId"`
	CollectionAmount decimal.Decimal       `json:"collectionAmount"`
	Destination      CollectionDestination `json:"destination"`
}

type MonthlyCollectionResponse struct {
	Response
	TargetMonth       string                    `json:"targetMonth"`
	TotalCollected    decimal.Decimal           `json:"totalCollected"`
	TotalBurned       decimal.Decimal           `json:"totalBurned"`
	TotalReserved     decimal.Decimal           `json:"totalReserved"`
	AffectedUsers     int                       `json:"affectedUsers"`
	CollectionDetails []MonthlyCollectionDetail `json:"collectionDetails"`
	ProcessedAt       string                    `json:"processedAt"`
}

type MarketData struct {
	Price     *float64 `json:"price,omitempty"`
	Volume    *float64 `json:"volume,omitempty"`
	Liquidity *float64 `json:"liquidity,omitempty"`
}

type BurnDecisionRequest struct {
	TriggerSource string      `json:"triggerSource"`
	MarketData    *MarketData `json:"marketData,omitempty"`
}

type BurnDecisionResponse struct {
	Response
	DecisionID       string             `json:"decisionId"`
	DecisionDate     string             `json:"decisionDate"`
	TotalCirculation decimal.Decimal    `json:"totalCirculation"`
	TotalIssued      decimal.Decimal    `json:"totalIssued"`
	AIConfidence     float64            `json:"aiConfidence"`
	DecisionResult   BurnDecisionResult `json:"decisionResult"`
	BurnedAmount     decimal.Decimal    `json:"burnedAmount"`
	ReservedAmount   decimal.Decimal    `json:"reservedAmount"`
	Reasoning        string             `json:"reasoning"`
	TriggeredBy      string             `json:"triggeredBy"`
	CreatedAt        string             `json:"createdAt"`
}

type CollectionHistory struct {
	CollectionID     string                `json:"collectionId"`
	UserID           string                `json:"userId"`
	CollectionDate   string                `json:"collectionDate"`
	CollectionAmount decimal.Decimal       `json:"collectionAmount"`
	Destination      CollectionDestination `json:"destination"`
	CollectionReason string                `json:"collectionReason,omitempty"`
	CreatedAt        string                `json:"createdAt"`
}

// Governance

type CouncilMember struct {
	TermID          string        `json:"termId"`
	UserID          string        `json:"userId"`
	StartDate       string        `json:"startDate"`
	EndDate         string        `json:"endDate"`
	Status          CouncilStatus `json:"status"`
	VotingPower     float64       `json:"votingPower"`
	EvaluationCount int           `json:"evaluationCount"`
	ProposalCount   int           `json:"proposalCount"`
}

type CouncilMembers struct {
	Data         []CouncilMember `json:"data"`
	TotalMembers int             `json:"totalMembers"`
}

type CouncilAppointRequest struct {
	UserID            string   `json:"userId"`
	StartDate         string   `json:"startDate"`
	EndDate           string   `json:"endDate"`
	VotingPower       *float64 `json:"votingPower,omitempty"`
	AppointmentReason string   `json:"appointmentReason"`
}

type CouncilAppointResponse struct {
	Response
	TermID        string        `json:"termId"`
	UserID        string        `json:"userId"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	VotingPower   float64       `json:"votingPower"`
	CouncilStatus CouncilStatus `json:"councilStatus"`
	AppointedAt   string        `json:"appointedAt"`
}

type CreateProposalRequest struct {
	Title               string       `json:"title"`
	Description         string       `json:"description"`
	ProposalType        ProposalType `json:"proposalType"`
	VotingDurationHours *int         `json:"votingDurationHours,omitempty"`
	QuorumRequired      *float64     `json:"quorumRequired,omitempty"`
	ApprovalThreshold   *float64     `json:"approvalThreshold,omitempty"`
}

type CreateProposalResponse struct {
	Response
	ProposalID     string         `json:"proposalId"`
	Title          string         `json:"title"`
	ProposalStatus ProposalStatus `json:"proposalStatus"`
	VotingStart    string         `json:"votingStart"`
	VotingEnd      string         `json:"votingEnd"`
	CreatedAt      string         `json:"createdAt"`
}

type VoteDetail struct {
	UserID      string     `json:"userId"`
	VoteChoice  VoteChoice `json:"voteChoice"`
	VotingPower float64    `json:"votingPower"`
	CastAt      string     `json:"castAt"`
}

type Proposal struct {
	ProposalID   string         `json:"proposalId"`
	Title        string         `json:"title"`
	ProposalType ProposalType   `json:"proposalType"`
	CreatedBy    string         `json:"createdBy"`
	Status       ProposalStatus `json:"status"`
	VotingStart  string         `json:"votingStart"`
	VotingEnd    string         `json:"votingEnd"`
	TotalVotes   int            `json:"totalVotes"`
	YesVotes     int            `json:"yesVotes"`
	NoVotes      int            `json:"noVotes"`
	CreatedAt    string         `json:"createdAt"`
}

type ProposalDetail struct {
	Proposal
	Description         string       `json:"description"`
	QuorumRequired      float64      `json:"quorumRequired"`
	ApprovalThreshold   float64      `json:"approvalThreshold"`
	AbstainVotes        int          `json:"abstainVotes"`
	CurrentApprovalRate float64      `json:"currentApprovalRate"`
	IsQuorumMet         bool         `json:"isQuorumMet"`
	VotesDetail         []VoteDetail `json:"votesDetail"`
	UpdatedAt           string       `json:"updatedAt"`
}

type ProposalDetailResponse struct {
	Response
	ProposalDetail
}

type VoteRequest struct {
	VoteChoice VoteChoice `json:"voteChoice"`
	Comment    string     `json:"comment,omitempty"`
}

type VoteResponse struct {
	Response
	VoteID              string         `json:"voteId"`
	ProposalID          string         `json:"proposalId"`
	UserID              string         `json:"userId"`
	VoteChoice          VoteChoice     `json:"voteChoice"`
	VotingPower         float64        `json:"votingPower"`
	VoteWeight          float64        `json:"voteWeight"`
	CastAt              string         `json:"castAt"`
	ProposalStatusAfter ProposalStatus `json:"proposalStatusAfter"`
}

type UserVote struct {
	VoteID        string     `json:"voteId"`
	ProposalID    string     `json:"proposalId"`
	ProposalTitle string     `json:"proposalTitle"`
	VoteChoice    VoteChoice `json:"voteChoice"`
	VotingPower   float64    `json:"votingPower"`
	Comment       string     `json:"comment,omitempty"`
	CastAt        string     `json:"castAt"`
}

// Statistics

type StatsOverview struct {
	TotalCirculation decimal.Decimal `json:"totalCirculation"`
	TotalIssued      decimal.Decimal `json:"totalIssued"`
	TotalBurned      decimal.Decimal `json:"totalBurned"`
	TotalHolders     int64           `json:"totalHolders"`
	ActiveHolders    int64           `json:"activeHolders"`
	AverageBalance   decimal.Decimal `json:"averageBalance"`
	MedianBalance    decimal.Decimal `json:"medianBalance"`
	DailyIssuance    decimal.Decimal `json:"dailyIssuance"`
	DailyCollection  decimal.Decimal `json:"dailyCollection"`
	BurnRate         float64         `json:"burnRate"`
	LastUpdated      string          `json:"lastUpdated"`
}

type StatsOverviewResponse struct {
	Response
	StatsOverview
}

type CirculationData struct {
	Date        string          `json:"date"`
	Circulation decimal.Decimal `json:"circulation"`
	Issued      decimal.Decimal `json:"issued"`
	Burned      decimal.Decimal `json:"burned"`
	Collected   decimal.Decimal `json:"collected"`
	Holders     int64           `json:"holders"`
}

type CirculationSummary struct {
	TotalChange          decimal.Decimal `json:"totalChange"`
	AverageDailyIssuance decimal.Decimal `json:"averageDailyIssuance"`
	AverageDailyBurn     decimal.Decimal `json:"averageDailyBurn"`
	GrowthRate           float64         `json:"growthRate"`
}

type CirculationStats struct {
	Response
	Period  StatsPeriod        `json:"period"`
	Data    []CirculationData  `json:"data"`
	Summary CirculationSummary `json:"summary"`
}

type RewardStatsData struct {
	Period         string          `json:"period"`
	TotalRewards   decimal.Decimal `json:"totalRewards"`
	RecipientCount int             `json:"recipientCount"`
	AverageReward  decimal.Decimal `json:"averageReward"`
	MaxReward      decimal.Decimal `json:"maxReward"`
	MinReward      decimal.Decimal `json:"minReward"`
}

type RewardStatsSummary struct {
	TotalPeriodRewards decimal.Decimal `json:"totalPeriodRewards"`
	TotalRecipients    int             `json:"totalRecipients"`
	OverallAverage     decimal.Decimal `json:"overallAverage"`
}

type RewardStats struct {
	Response
	FromDate string             `json:"fromDate"`
	ToDate   string             `json:"toDate"`
	GroupBy  string             `json:"groupBy"`
	Data     []RewardStatsData  `json:"data"`
	Summary  RewardStatsSummary `json:"summary"`
}

type TopHolder struct {
	Rank              int             `json:"rank"`
	UserID            string          `json:"userId"`
	CurrentBalance    decimal.Decimal `json:"currentBalance"`
	PercentageOfTotal float64         `json:"percentageOfTotal"`
	LastActivity      string          `json:"lastActivity,omitempty"`
}

type TopHolders struct {
	Data                    []TopHolder     `json:"data"`
	TotalRepresented        decimal.Decimal `json:"totalRepresented"`
	PercentageOfCirculation float64         `json:"percentageOfCirculation"`
	GeneratedAt             string          `json:"generatedAt"`
}

// Oracle and audit

type OracleFeed struct {
	FeedID     string          `json:"feedId"`
	Source     string          `json:"source"`
	DataType   OracleDataType  `json:"dataType"`
	Value      decimal.Decimal `json:"value"`
	Confidence float64         `json:"confidence"`
	Timestamp  string          `json:"timestamp"`
	Metadata   map[string]any  `json:"metadata,omitempty"`
}

type OracleFeeds struct {
	Data         []OracleFeed `json:"data"`
	LatestUpdate string       `json:"latestUpdate"`
}

type OracleFeedUpdateRequest struct {
	Source     string          `json:"source"`
	DataType   OracleDataType  `json:"dataType"`
	Value      decimal.Decimal `json:"value"`
	Confidence *float64        `json:"confidence,omitempty"`
	Metadata   map[string]any  `json:"metadata,omitempty"`
}

type OracleFeedUpdateResponse struct {
	Response
	FeedID     string          `json:"feedId"`
	Source     string          `json:"source"`
	DataType   OracleDataType  `json:"dataType"`
	Value      decimal.Decimal `json:"value"`
	Confidence float64         `json:"confidence"`
	CreatedAt  string          `json:"createdAt"`
	FeedStatus string          `json:"feedStatus"` // ACCEPTED, REJECTED or PENDING
}

type SystemParameter struct {
	ParameterID    string        `json:"parameterId"`
	ParameterName  string        `json:"parameterName"`
	ParameterValue string        `json:"parameterValue"`
	ParameterType  ParameterType `json:"parameterType"`
	Description    string        `json:"description,omitempty"`
	LastUpdatedBy  string        `json:"lastUpdatedBy,omitempty"`
	UpdatedAt      string        `json:"updatedAt"`
}

type SystemParameters struct {
	Data            []SystemParameter `json:"data"`
	TotalParameters int               `json:"totalParameters"`
}

type ParameterUpdateRequest struct {
	ParameterValue string `json:"parameterValue"`
	UpdateReason   string `json:"updateReason"`
	ForceUpdate    *bool  `json:"forceUpdate,omitempty"`
}

type ParameterUpdateResponse struct {
	Response
	ParameterID      string `json:"parameterId"`
	ParameterName    string `json:"parameterName"`
	OldValue         string `json:"oldValue"`
	NewValue         string `json:"newValue"`
	UpdatedBy        string `json:"updatedBy"`
	UpdateReason     string `json:"updateReason"`
	UpdatedAt        string `json:"updatedAt"`
	ValidationPassed bool   `json:"validationPassed"`
}

type AdjustmentLog struct {
	AdjustmentID     string      `json:"adjustmentId"`
	ParameterName    string      `json:"parameterName"`
	OldValue         string      `json:"oldValue,omitempty"`
	NewValue         string      `json:"newValue"`
	AdjustmentReason string      `json:"adjustmentReason,omitempty"`
	AdjustedBy       string      `json:"adjustedBy,omitempty"`
	TriggerType      TriggerType `json:"triggerType"`
	CreatedAt        string      `json:"createdAt"`
}

// Query parameters

// QueryParams are the paging and date filters shared by history listings.
type QueryParams struct {
	Page     *int
	Limit    *int
	FromDate string
	ToDate   string
}

type BalanceHistoryParams struct {
	QueryParams
	TransactionType TransactionType
}

type CollectionHistoryParams struct {
	QueryParams
	Destination CollectionDestination
}

type ProposalsParams struct {
	QueryParams
	Status       ProposalStatus
	ProposalType ProposalType
}

type AdjustmentLogsParams struct {
	QueryParams
	ParameterName string
	TriggerType   TriggerType
}
