package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var generateSessionKeyCmd = &cobra.Command{
	Use:   "generate-session-key",
	Short: "Generate a session encryption key",
	Long: `Generate a random key for encrypting session cookies.

Add the generated key to your configuration file as session_key.`,
	RunE: generateSessionKey,
}

func init() {
	rootCmd.AddCommand(generateSessionKeyCmd)
}

func generateSessionKey(_ *cobra.Command, _ []string) error {
	key := strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")
	fmt.Printf("session_key: %q\n", key)
	return nil
}
