package main

import (
	"fmt"
	"log"
	"os"

	"github.com/h4ks-com/ewallet/internal/config"
	"github.com/h4ks-com/ewallet/internal/database"
	"github.com/h4ks-com/ewallet/internal/seeder"
	"github.com/spf13/cobra"
)

var (
	seedFile   string
	seedStrict bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Provision roles, accounts, admin users and memberships",
	Long: `Seed the core database with the roles, accounts, admin users and
memberships needed to log in to the admin panel.

Without --file the built-in defaults are used. A seed file is YAML with
optional roles, accounts, admins and memberships sections; missing sections
keep their defaults. Running the seeder again reports existing records as
warnings and reassigns memberships.`,
	Example: `  ewallet seed
  ewallet seed -f seeds.yaml
  ewallet seed -f seeds.yaml --strict`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSeed(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML seed file (defaults to SEED_FILE, then built-in data)")
	seedCmd.Flags().BoolVar(&seedStrict, "strict", false, "Exit with an error if any record failed")
}

func runSeed() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	data := seeder.DefaultData()
	path := seedFile
	if path == "" {
		path = cfg.SeedFile
	}
	if path != "" {
		data, err = seeder.LoadFile(path)
		if err != nil {
			return err
		}
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	summary := seeder.New(db, seeder.NewReporter(os.Stdout)).Run(data)
	if seedStrict && summary.Failed() {
		return fmt.Errorf("%d records failed to seed", summary.Error+summary.Unparseable)
	}
	return nil
}
