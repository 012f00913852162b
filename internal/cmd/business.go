package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/barhopapp/barhop/internal/api"
	"github.com/barhopapp/barhop/internal/tui"
)

var businessCmd = &cobra.Command{
	Use:   "business",
	Short: "Manage your bars (business accounts only)",
	Long: `Manage your bars and their events.

Every business subcommand requires a signed-in business account. Regular
accounts get an error explaining the required account type.

Examples:
  barhop business bars
  barhop business create-bar --name "The Anchor" --city Portland --address "12 Dock St"
  barhop business update-bar <bar-id> --description "Under new management"
  barhop business delete-bar <bar-id>
  barhop business create-event --bar <bar-id> --title "Quiz Night" --starts-at 2026-09-12T20:00`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var businessBarsCmd = &cobra.Command{
	Use:   "bars",
	Short: "List the bars you own",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newResolvedApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireBusiness(); err != nil {
			return err
		}

		bars, err := a.client.MyBars(cmd.Context())
		if err != nil {
			return err
		}

		if len(bars) == 0 {
			fmt.Println("You have no bars yet.")
			fmt.Println()
			fmt.Println("Use 'barhop business create-bar' to add one.")
			return nil
		}

		printBarTable(bars)
		return nil
	},
}

var businessCreateBarCmd = &cobra.Command{
	Use:   "create-bar",
	Short: "Create a new bar listing",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")
		address, _ := cmd.Flags().GetString("address")
		city, _ := cmd.Flags().GetString("city")
		photoURL, _ := cmd.Flags().GetString("photo-url")

		if name == "" {
			return fmt.Errorf("--name is required")
		}
		if city == "" {
			return fmt.Errorf("--city is required")
		}

		a, err := newResolvedApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireBusiness(); err != nil {
			return err
		}

		bar, err := a.client.CreateBar(cmd.Context(), api.CreateBarRequest{
			Name:        name,
			Description: description,
			Address:     address,
			City:        city,
			PhotoURL:    photoURL,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created bar %q (%s).\n", bar.Name, bar.ID)
		return nil
	},
}

var businessUpdateBarCmd = &cobra.Command{
	Use:   "update-bar <bar-id>",
	Short: "Update one of your bars",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")
		address, _ := cmd.Flags().GetString("address")
		city, _ := cmd.Flags().GetString("city")
		photoURL, _ := cmd.Flags().GetString("photo-url")

		if name == "" && description == "" && address == "" && city == "" && photoURL == "" {
			return fmt.Errorf("nothing to update, pass at least one field flag")
		}

		a, err := newResolvedApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireBusiness(); err != nil {
			return err
		}

		bar, err := a.client.UpdateBar(cmd.Context(), args[0], api.UpdateBarRequest{
			Name:        name,
			Description: description,
			Address:     address,
			City:        city,
			PhotoURL:    photoURL,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Updated bar %q.\n", bar.Name)
		return nil
	},
}

var businessDeleteBarCmd = &cobra.Command{
	Use:   "delete-bar <bar-id>",
	Short: "Delete one of your bars",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newResolvedApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireBusiness(); err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && tui.ShouldPrompt() {
			confirmed, err := tui.PromptForConfirmation("Delete this bar and all its events?", false)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := a.client.DeleteBar(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Println("Bar deleted.")
		return nil
	},
}

var businessCreateEventCmd = &cobra.Command{
	Use:   "create-event",
	Short: "Create an event at one of your bars",
	RunE: func(cmd *cobra.Command, args []string) error {
		barID, _ := cmd.Flags().GetString("bar")
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		startsAtStr, _ := cmd.Flags().GetString("starts-at")
		endsAtStr, _ := cmd.Flags().GetString("ends-at")

		if barID == "" {
			return fmt.Errorf("--bar is required")
		}
		if title == "" {
			return fmt.Errorf("--title is required")
		}
		if startsAtStr == "" {
			return fmt.Errorf("--starts-at is required")
		}

		startsAt, err := parseEventTime(startsAtStr)
		if err != nil {
			return fmt.Errorf("invalid --starts-at: %w", err)
		}

		endsAt := startsAt.Add(3 * time.Hour)
		if endsAtStr != "" {
			endsAt, err = parseEventTime(endsAtStr)
			if err != nil {
				return fmt.Errorf("invalid --ends-at: %w", err)
			}
		}

		a, err := newResolvedApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireBusiness(); err != nil {
			return err
		}

		event, err := a.client.CreateEvent(cmd.Context(), api.CreateEventRequest{
			BarID:       barID,
			Title:       title,
			Description: description,
			StartsAt:    startsAt,
			EndsAt:      endsAt,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created event %q on %s.\n", event.Title, event.StartsAt.Format("Mon Jan 2 15:04"))
		return nil
	},
}

// parseEventTime accepts a local "YYYY-MM-DDTHH:MM" timestamp or a full
// RFC 3339 one.
func parseEventTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02T15:04", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func init() {
	businessCmd.AddCommand(businessBarsCmd)
	businessCmd.AddCommand(businessCreateBarCmd)
	businessCmd.AddCommand(businessUpdateBarCmd)
	businessCmd.AddCommand(businessDeleteBarCmd)
	businessCmd.AddCommand(businessCreateEventCmd)

	businessCreateBarCmd.Flags().String("name", "", "Bar name (required)")
	businessCreateBarCmd.Flags().String("description", "", "Description")
	businessCreateBarCmd.Flags().String("address", "", "Street address")
	businessCreateBarCmd.Flags().String("city", "", "City (required)")
	businessCreateBarCmd.Flags().String("photo-url", "", "Photo URL")

	businessUpdateBarCmd.Flags().String("name", "", "New name")
	businessUpdateBarCmd.Flags().String("description", "", "New description")
	businessUpdateBarCmd.Flags().String("address", "", "New street address")
	businessUpdateBarCmd.Flags().String("city", "", "New city")
	businessUpdateBarCmd.Flags().String("photo-url", "", "New photo URL")

	businessDeleteBarCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	businessCreateEventCmd.Flags().String("bar", "", "Bar ID (required)")
	businessCreateEventCmd.Flags().String("title", "", "Event title (required)")
	businessCreateEventCmd.Flags().String("description", "", "Event description")
	businessCreateEventCmd.Flags().String("starts-at", "", "Start time, e.g. 2026-09-12T20:00 (required)")
	businessCreateEventCmd.Flags().String("ends-at", "", "End time (defaults to three hours after start)")

	rootCmd.AddCommand(businessCmd)
}
