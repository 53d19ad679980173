package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and database schema, then exit",
	Long: `Check verifies that all required environment variables are set and
that the Notion database defines the Command, Action and Status properties.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if _, err := buildGateway(); err != nil {
		return err
	}

	fmt.Println("✓ Configuration complete")
	fmt.Println("✓ Database schema has required properties")
	return nil
}
