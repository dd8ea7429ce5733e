package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imagaram/sfr-sdk-go/apiclient"
	"github.com/imagaram/sfr-sdk-go/format"
	"github.com/imagaram/sfr-sdk-go/learning"
)

var (
	spaceMode   string
	spaceStatus string
	page        int
	pageSize    int
)

var learningCmd = &cobra.Command{
	Use:   "learning",
	Short: "Work with the learning API",
}

var learningSpacesCmd = &cobra.Command{
	Use:   "spaces",
	Short: "List learning spaces",
	Args:  cobra.NoArgs,
	RunE:  runLearningSpaces,
}

var learningNextCmd = &cobra.Command{
	Use:   "next <space-id>",
	Short: "Show the next content item to study in a space",
	Args:  cobra.ExactArgs(1),
	RunE:  runLearningNext,
}

var learningStatsCmd = &cobra.Command{
	Use:   "stats <space-id>",
	Short: "Show progress and quiz statistics for a space",
	Args:  cobra.ExactArgs(1),
	RunE:  runLearningStats,
}

func init() {
	learningSpacesCmd.Flags().StringVar(&spaceMode, "mode", "", "space mode (SCHOOL, SALON, FANCLUB)")
	learningSpacesCmd.Flags().StringVar(&spaceStatus, "status", "", "space status (ACTIVE, PAUSED, COMPLETED, ARCHIVED)")
	learningSpacesCmd.Flags().IntVar(&page, "page", -1, "page number")
	learningSpacesCmd.Flags().IntVar(&pageSize, "size", -1, "page size")
	addFilterFlags(learningSpacesCmd)

	learningCmd.AddCommand(learningSpacesCmd)
	learningCmd.AddCommand(learningNextCmd)
	learningCmd.AddCommand(learningStatsCmd)
}

// optionalInt maps the -1 flag default to "not set".
func optionalInt(v int) *int {
	if v < 0 {
		return nil
	}
	return apiclient.Ptr(v)
}

func parseSpaceID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid space id %q", arg)
	}
	return id, nil
}

func runLearningSpaces(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	result, err := learningClient.GetCourses(ctx, &learning.ListSpacesOptions{
		Mode:   learning.Mode(strings.ToUpper(spaceMode)),
		Status: learning.SpaceStatus(strings.ToUpper(spaceStatus)),
		Page:   optionalInt(page),
		Size:   optionalInt(pageSize),
	})
	if err != nil {
		return printAPIError(err)
	}

	spaces, err := applyFilter(ctx, result.Content)
	if err != nil {
		return fmt.Errorf("failed to filter spaces: %w", err)
	}

	if len(spaces) == 0 {
		fmt.Println("No spaces found.")
		return nil
	}

	fmt.Printf("\nFound %d spaces (page %d of %d, %d total):\n", len(spaces), result.Number+1, result.TotalPages, result.TotalElements)
	fmt.Println(strings.Repeat("-", 80))
	for _, s := range spaces {
		fmt.Printf("• [%v] %v (%v, %v)\n", s["id"], s["name"], s["mode"], s["status"])
		fmt.Printf("  Members: %v/%v  Created: %s\n", s["memberCount"], s["maxMembers"], format.Date(fmt.Sprint(s["createdAt"]), format.Medium))
	}
	return nil
}

func runLearningNext(cmd *cobra.Command, args []string) error {
	spaceID, err := parseSpaceID(args[0])
	if err != nil {
		return err
	}

	next, err := learningClient.GetNextContent(cmd.Context(), spaceID)
	if err != nil {
		return printAPIError(err)
	}
	if next == nil {
		fmt.Println("✓ All content in this space is complete.")
		return nil
	}

	fmt.Printf("Next: %s\n", next.Title)
	fmt.Printf("  Type: %s  Difficulty: %s\n", next.ContentType, next.Difficulty)
	if next.Duration != nil {
		fmt.Printf("  Duration: %d min\n", *next.Duration)
	}
	if len(next.Tags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(next.Tags, ", "))
	}
	return nil
}

func runLearningStats(cmd *cobra.Command, args []string) error {
	spaceID, err := parseSpaceID(args[0])
	if err != nil {
		return err
	}

	stats, err := learningClient.GetLearningStats(cmd.Context(), spaceID)
	if err != nil {
		return printAPIError(err)
	}

	fmt.Printf("\nLearning statistics for space %d:\n", spaceID)
	fmt.Printf("- Completion: %s\n", format.Percentage(stats.CompletionRate/100, 1, false))
	fmt.Printf("- Time spent: %d min\n", stats.TotalTimeSpent)
	if stats.Progress != nil {
		fmt.Printf("- Content completed: %d/%d\n", stats.Progress.CompletedContentCount, stats.Progress.TotalContentCount)
	}
	if stats.QuizStats != nil {
		fmt.Printf("- Quizzes completed: %d/%d (average %.1f)\n", stats.QuizStats.CompletedQuizzes, stats.QuizStats.TotalQuizzes, stats.QuizStats.AverageScore)
	}
	if len(stats.Achievements) > 0 {
		fmt.Printf("\nAchievements:\n")
		for _, a := range stats.Achievements {
			fmt.Printf("  • %s (%s)\n", a.Title, format.Date(a.EarnedAt, format.Short))
		}
	}
	return nil
}
