package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/barhopapp/barhop/internal/api"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse upcoming events",
	Long: `Browse upcoming events across all bars, or at a single bar.

Examples:
  barhop events list
  barhop events list --bar <bar-id>`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming events",
	RunE: func(cmd *cobra.Command, args []string) error {
		barID, _ := cmd.Flags().GetString("bar")

		a, err := newApp()
		if err != nil {
			return err
		}

		var events []api.Event
		if barID != "" {
			events, err = a.client.ListBarEvents(cmd.Context(), barID)
		} else {
			events, err = a.client.ListEvents(cmd.Context())
		}
		if err != nil {
			return err
		}

		if len(events) == 0 {
			fmt.Println("No upcoming events.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tTITLE\tBAR")
		for _, e := range events {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.StartsAt.Format("Mon Jan 2 15:04"), e.Title, e.BarName)
		}
		w.Flush()
		return nil
	},
}

func init() {
	eventsCmd.AddCommand(eventsListCmd)

	eventsListCmd.Flags().String("bar", "", "Only events at this bar")

	rootCmd.AddCommand(eventsCmd)
}
