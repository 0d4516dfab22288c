package commands

import (
	"fmt"

	"restaurante/internal/infra"

	"github.com/spf13/cobra"
)

var migrarCmd = &cobra.Command{
	Use:   "migrar",
	Short: "Aplica el esquema SQL (idempotente)",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer infra.CloseDatabase(db)

		// NewDatabase already migrated; running again is a no-op and
		// confirms the schema is current.
		if err := infra.RunMigrations(db); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "esquema aplicado")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrarCmd)
}
