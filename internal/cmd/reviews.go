package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barhopapp/barhop/internal/api"
	"github.com/barhopapp/barhop/internal/errors"
	"github.com/barhopapp/barhop/internal/gate"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Read and write bar reviews",
	Long: `Read and write bar reviews.

Examples:
  barhop reviews list <bar-id>
  barhop reviews add <bar-id> --rating 5 --comment "Great cocktails"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var reviewsListCmd = &cobra.Command{
	Use:   "list <bar-id>",
	Short: "List reviews for a bar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		reviews, err := a.client.ListReviews(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if len(reviews) == 0 {
			fmt.Println("No reviews yet.")
			return nil
		}

		for _, r := range reviews {
			fmt.Printf("%s  %s\n", strings.Repeat("★", r.Rating), r.UserName)
			fmt.Printf("  %s\n\n", r.Comment)
		}
		return nil
	},
}

var reviewsAddCmd = &cobra.Command{
	Use:   "add <bar-id>",
	Short: "Review a bar",
	Long: `Review a bar. Requires being signed in.

Examples:
  barhop reviews add <bar-id> --rating 4 --comment "Good beer selection"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rating, _ := cmd.Flags().GetInt("rating")
		comment, _ := cmd.Flags().GetString("comment")

		if rating < 1 || rating > 5 {
			return errors.NewValidationError("rating must be between 1 and 5")
		}

		a, err := newResolvedApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := gate.Check(a.session.Status(), a.session.User(), ""); err != nil {
			return err
		}

		review, err := a.client.CreateReview(cmd.Context(), args[0], api.CreateReviewRequest{
			Rating:  rating,
			Comment: comment,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Review posted (%s).\n", strings.Repeat("★", review.Rating))
		return nil
	},
}

func init() {
	reviewsCmd.AddCommand(reviewsListCmd)
	reviewsCmd.AddCommand(reviewsAddCmd)

	reviewsAddCmd.Flags().Int("rating", 0, "Rating from 1 to 5 (required)")
	reviewsAddCmd.Flags().String("comment", "", "Review text")

	rootCmd.AddCommand(reviewsCmd)
}
