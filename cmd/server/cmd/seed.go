package cmd

import (
	"fmt"

	"github.com/gatherly/server/internal/config"
	"github.com/gatherly/server/internal/domain/events"
	"github.com/gatherly/server/internal/domain/locations"
	"github.com/gatherly/server/internal/domain/participants"
	"github.com/gatherly/server/internal/domain/users"
	"github.com/gatherly/server/internal/storage/jsonfile"
	"github.com/spf13/cobra"
)

var seedPath string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a store file populated with sample data",
	Long: `Creates a fresh JSON store at the given path and fills it with a small
set of sample users, events, locations, and participants for local
development. Fails if the file already exists.`,
	RunE:         runSeed,
	SilenceUsage: true,
}

func init() {
	seedCmd.Flags().StringVar(&seedPath, "store", "", "JSON store file path (default: from config)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	path := cfg.Store.Path
	if seedPath != "" {
		path = seedPath
	}

	logger := config.NewLogger(cfg.Logging)
	store, err := jsonfile.Create(path, logger)
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}

	ctx := cmd.Context()

	alice, err := store.Users().Create(ctx, users.Input{Username: "alice", Email: "alice@example.com"})
	if err != nil {
		return err
	}
	bob, err := store.Users().Create(ctx, users.Input{Username: "bob", Email: "bob@example.com"})
	if err != nil {
		return err
	}

	hq, err := store.Locations().Create(ctx, locations.Input{
		Name: "City Hall",
		Desc: "Downtown civic center",
		Lat:  52.5186,
		Lng:  13.4083,
	})
	if err != nil {
		return err
	}

	meetup, err := store.Events().Create(ctx, events.Input{
		Title:      "Monthly Meetup",
		Desc:       "Open community gathering",
		Date:       "2026-09-15",
		From:       "18:00",
		To:         "21:00",
		LocationID: hq.ID,
		UserID:     alice.ID,
	})
	if err != nil {
		return err
	}

	if _, err := store.Participants().Create(ctx, participants.Input{UserID: bob.ID, EventID: meetup.ID}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded store at %s\n", store.Path())
	return nil
}
