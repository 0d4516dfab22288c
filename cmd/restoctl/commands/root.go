package commands

import (
	"fmt"
	"os"

	"restaurante/internal/config"
	"restaurante/internal/infra"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	// Global flags
	dbURL string
)

var rootCmd = &cobra.Command{
	Use:   "restoctl",
	Short: "Herramientas de operación del API del restaurante",
	Long: `restoctl prepara la base de datos y las cuentas iniciales del API.

Sin --db se usa DATABASE_URL (o el valor por defecto de la configuración).`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "URL de conexión a PostgreSQL")
}

// openDB connects and applies the schema.
func openDB() (*gorm.DB, error) {
	dsn := dbURL
	if dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		dsn = cfg.DatabaseURL
	}
	db, err := infra.NewDatabase(dsn, true)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
