package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/barhopapp/barhop/internal/api"
)

var barsCmd = &cobra.Command{
	Use:   "bars",
	Short: "Browse bars",
	Long: `Browse the bars on barhop.

Examples:
  barhop bars list
  barhop bars list --city Portland
  barhop bars show <bar-id>`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var barsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bars, optionally filtered by city",
	RunE: func(cmd *cobra.Command, args []string) error {
		city, _ := cmd.Flags().GetString("city")

		a, err := newApp()
		if err != nil {
			return err
		}

		bars, err := a.client.ListBars(cmd.Context(), city)
		if err != nil {
			return err
		}

		if len(bars) == 0 {
			fmt.Println("No bars found.")
			return nil
		}

		printBarTable(bars)
		return nil
	},
}

var barsShowCmd = &cobra.Command{
	Use:   "show <bar-id>",
	Short: "Show a single bar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		bar, err := a.client.GetBar(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", bar.Name)
		fmt.Printf("  City:    %s\n", bar.City)
		fmt.Printf("  Address: %s\n", bar.Address)
		if bar.ReviewCount > 0 {
			fmt.Printf("  Rating:  %.1f (%d reviews)\n", bar.Rating, bar.ReviewCount)
		} else {
			fmt.Printf("  Rating:  no reviews yet\n")
		}
		if bar.Description != "" {
			fmt.Printf("\n%s\n", bar.Description)
		}
		return nil
	},
}

func printBarTable(bars []api.Bar) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCITY\tRATING\tREVIEWS")
	for _, b := range bars {
		rating := "-"
		if b.Rating > 0 {
			rating = fmt.Sprintf("%.1f", b.Rating)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", b.ID, b.Name, b.City, rating, b.ReviewCount)
	}
	w.Flush()
}

func init() {
	barsCmd.AddCommand(barsListCmd)
	barsCmd.AddCommand(barsShowCmd)

	barsListCmd.Flags().String("city", "", "Filter by city")

	rootCmd.AddCommand(barsCmd)
}
