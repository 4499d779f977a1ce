package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/lingolog/lingolog/api/auth"
	"github.com/lingolog/lingolog/config"
	"github.com/lingolog/lingolog/database"
	"github.com/spf13/cobra"
)

var createAdminCmdFlags struct {
	Username string
	Password string
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin user",
	Long:  `Create an admin user that can add videos and set daily targets for other users.`,
	Run:   createAdmin,
}

func init() {
	createAdminCmd.Flags().StringVarP(&createAdminCmdFlags.Username, "username", "u", "", "Username of the admin user")
	createAdminCmd.Flags().StringVarP(&createAdminCmdFlags.Password, "password", "p", "", "Password of the admin user")
	_ = createAdminCmd.MarkFlagRequired("username")
	_ = createAdminCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(createAdminCmd)
}

func createAdmin(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close() //nolint:errcheck

	hash, err := auth.HashPassword(createAdminCmdFlags.Password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	user, err := db.CreateUser(cmd.Context(), createAdminCmdFlags.Username, hash, true)
	if err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	log.Info("admin user created", "username", user.Username, "id", user.ID)
}
