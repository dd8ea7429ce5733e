package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imagaram/sfr-sdk-go/cryptoasset"
	"github.com/imagaram/sfr-sdk-go/format"
	"github.com/imagaram/sfr-sdk-go/validate"
)

var (
	proposalStatus string
	proposalType   string

	checkAmount string
	checkUUID   string
	checkEmail  string
	checkDate   string
)

var cryptoCmd = &cobra.Command{
	Use:   "crypto",
	Short: "Work with the SFR token API",
}

var cryptoBalanceCmd = &cobra.Command{
	Use:   "balance <user-id>",
	Short: "Show a user's token balance",
	Args:  cobra.ExactArgs(1),
	RunE:  runCryptoBalance,
}

var cryptoProposalsCmd = &cobra.Command{
	Use:   "proposals",
	Short: "List governance proposals",
	Args:  cobra.NoArgs,
	RunE:  runCryptoProposals,
}

var cryptoValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check input values before sending them to the API",
	Long: `Check an amount, user ID, e-mail address or date with the same rules
the API applies. Only the flags that are given are checked.`,
	Args: cobra.NoArgs,
	// Runs offline: no configuration or clients needed.
	PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
	PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
	RunE:               runCryptoValidate,
}

func init() {
	cryptoProposalsCmd.Flags().StringVar(&proposalStatus, "status", "", "proposal status (DRAFT, VOTING, PASSED, REJECTED, EXPIRED)")
	cryptoProposalsCmd.Flags().StringVar(&proposalType, "type", "", "proposal type (POLICY, PARAMETER, FEATURE, GOVERNANCE)")
	cryptoProposalsCmd.Flags().IntVar(&page, "page", -1, "page number")
	cryptoProposalsCmd.Flags().IntVar(&pageSize, "limit", -1, "page size")
	addFilterFlags(cryptoProposalsCmd)

	cryptoValidateCmd.Flags().StringVar(&checkAmount, "amount", "", "token amount")
	cryptoValidateCmd.Flags().StringVar(&checkUUID, "uuid", "", "user or proposal ID")
	cryptoValidateCmd.Flags().StringVar(&checkEmail, "email", "", "e-mail address")
	cryptoValidateCmd.Flags().StringVar(&checkDate, "date", "", "date (YYYY-MM-DD)")

	cryptoCmd.AddCommand(cryptoBalanceCmd)
	cryptoCmd.AddCommand(cryptoProposalsCmd)
	cryptoCmd.AddCommand(cryptoValidateCmd)
}

func runCryptoBalance(cmd *cobra.Command, args []string) error {
	userID := args[0]
	if err := validate.UUID(userID).Err(); err != nil {
		return err
	}

	balance, err := cryptoClient.Balance(cmd.Context(), userID)
	if err != nil {
		return printAPIError(err)
	}

	fmt.Printf("\nBalance of %s:\n", balance.UserID)
	fmt.Printf("- Current:   %s\n", format.Amount(balance.CurrentBalance.String()))
	fmt.Printf("- Earned:    %s\n", format.Amount(balance.TotalEarned.String()))
	fmt.Printf("- Spent:     %s\n", format.Amount(balance.TotalSpent.String()))
	fmt.Printf("- Collected: %s\n", format.Amount(balance.TotalCollected.String()))
	if balance.LastCollectionDate != "" {
		fmt.Printf("- Last collection: %s\n", format.Date(balance.LastCollectionDate, format.Medium))
	}
	if balance.Frozen {
		fmt.Println("⚠️  This account is frozen.")
	}
	return nil
}

func runCryptoProposals(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	result, err := cryptoClient.Proposals(ctx, &cryptoasset.ProposalsParams{
		QueryParams:  cryptoasset.QueryParams{Page: optionalInt(page), Limit: optionalInt(pageSize)},
		Status:       cryptoasset.ProposalStatus(strings.ToUpper(proposalStatus)),
		ProposalType: cryptoasset.ProposalType(strings.ToUpper(proposalType)),
	})
	if err != nil {
		return printAPIError(err)
	}

	proposals, err := applyFilter(ctx, result.Data)
	if err != nil {
		return fmt.Errorf("failed to filter proposals: %w", err)
	}

	if len(proposals) == 0 {
		fmt.Println("No proposals found.")
		return nil
	}

	p := result.Pagination
	fmt.Printf("\nFound %d proposals (page %d of %d, %d total):\n", len(proposals), p.Page, p.TotalPages, p.TotalCount)
	fmt.Println(strings.Repeat("-", 80))
	for _, r := range proposals {
		status := format.ProposalStatus(cryptoasset.ProposalStatus(fmt.Sprint(r["status"])))
		fmt.Printf("• %v [%s]\n", r["title"], status)
		fmt.Printf("  Votes: %v (%s %v / %s %v)  Ends: %s\n",
			r["totalVotes"],
			format.VoteChoice(cryptoasset.VoteYes), r["yesVotes"],
			format.VoteChoice(cryptoasset.VoteNo), r["noVotes"],
			format.DateTime(fmt.Sprint(r["votingEnd"]), format.Medium, false))
	}
	if next, ok := p.NextPage(); ok {
		fmt.Printf("\nMore results: --page %d\n", next)
	}
	return nil
}

func runCryptoValidate(cmd *cobra.Command, args []string) error {
	var results []validate.Result
	check := func(name, value string, fn func(string) validate.Result) {
		if !cmd.Flags().Changed(name) {
			return
		}
		r := fn(value)
		if r.Valid {
			fmt.Printf("✓ %s\n", name)
		} else {
			fmt.Printf("✗ %s: %s\n", name, strings.Join(r.Errors, ", "))
		}
		results = append(results, r)
	}

	check("amount", checkAmount, validate.Amount)
	check("uuid", checkUUID, validate.UUID)
	check("email", checkEmail, validate.Email)
	check("date", checkDate, validate.Date)

	if len(results) == 0 {
		return fmt.Errorf("nothing to validate: pass --amount, --uuid, --email or --date")
	}
	if checkAmount != "" && validate.Amount(checkAmount).Valid {
		fmt.Printf("  %s\n", format.Amount(checkAmount))
	}
	return validate.Merge(results...).Err()
}
