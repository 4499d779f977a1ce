package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/lingolog/lingolog/config"
	"github.com/lingolog/lingolog/database"
	"github.com/spf13/cobra"
)

var resetCmdFlags struct {
	UserID uint
	Yes    bool
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the watch history of a user",
	Long:  `This command deletes all watch records of a user, resetting their daily progress and level. Target history and the video catalogue are untouched.`,
	Run:   reset,
}

func init() {
	resetCmd.Flags().UintVar(&resetCmdFlags.UserID, "user-id", 0, "ID of the user whose watch history should be reset")
	resetCmd.Flags().BoolVar(&resetCmdFlags.Yes, "yes", false, "Skip the confirmation check")
	_ = resetCmd.MarkFlagRequired("user-id")

	rootCmd.AddCommand(resetCmd)
}

func reset(cmd *cobra.Command, _ []string) {
	if !resetCmdFlags.Yes {
		log.Fatal("refusing to delete watch history without --yes")
	}

	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close() //nolint:errcheck

	user, err := db.GetUserByID(cmd.Context(), resetCmdFlags.UserID)
	if err != nil {
		log.Fatalf("failed to load user: %v", err)
	}

	if err := db.DeleteWatchRecords(cmd.Context(), user.ID); err != nil {
		log.Fatalf("failed to delete watch records: %v", err)
	}

	log.Info("watch history reset", "username", user.Username)
}
