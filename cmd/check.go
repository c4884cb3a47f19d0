package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"migrt/internal/dialect"
	"migrt/internal/mapping"
	"migrt/internal/schema"

	"github.com/spf13/cobra"
)

var (
	checkMapping string
	checkDSN     string
	checkDriver  string
	checkSchema  string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check mapping rows against the live source database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := GetDBConfig("source")
		if err != nil {
			// Fall back to CLI flags when no config file is present.
			if checkDSN == "" {
				return fmt.Errorf("no source database: %w (or use --dsn and --driver)", err)
			}
			config = &DBConfig{Name: "CLI Wrapper", Driver: checkDriver, DSN: checkDSN, Role: "source"}
		}

		fmt.Printf("🔌 Connecting to source via %s (%s)\n", config.Driver, config.Name)

		db, err := sql.Open(config.Driver, config.DSN)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}

		d := dialect.GetDialect(config.Driver)
		log.Printf("Using Dialect: %s\n", config.Driver)

		schemaName := checkSchema
		if schemaName == "" && config.Driver == "mysql" {
			if err := db.QueryRow("SELECT DATABASE()").Scan(&schemaName); err != nil {
				return fmt.Errorf("failed to get database name: %w", err)
			}
		}

		log.Println("Analyzing source schema...")
		tables, err := schema.Analyze(db, d, schemaName)
		if err != nil {
			return err
		}
		log.Printf("Found %d tables", len(tables))

		rows, err := mapping.LoadRows(checkMapping)
		if err != nil {
			return err
		}

		results := schema.CheckRows(tables, rows)

		fmt.Println("\n🔍 Mapping Check Results:")
		failed := 0
		for _, r := range results {
			if r.OK() {
				fmt.Printf("[✓] [%02d/%02d] %-20s -> %s\n", r.RowIndex, len(results), r.SourceTable, r.TargetTable)
				continue
			}
			failed++
			fmt.Printf("[!] [%02d/%02d] %-20s -> %s\n", r.RowIndex, len(results), r.SourceTable, r.TargetTable)
			for _, f := range r.Findings {
				fmt.Printf("    └ %s\n", f)
			}
		}
		fmt.Println("--------------------------------------------------")
		fmt.Printf("OK: %d, With findings: %d\n", len(results)-failed, failed)

		if failed > 0 {
			return fmt.Errorf("mapping check found problems in %d of %d rows", failed, len(results))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkMapping, "mapping", "m", "sample_mapping.csv", "Mapping file (.csv or .json)")
	checkCmd.Flags().StringVar(&checkDSN, "dsn", "", "Source database DSN (overrides config)")
	checkCmd.Flags().StringVar(&checkDriver, "driver", "mysql", "Source database driver (mysql, postgres, sqlserver, oracle)")
	checkCmd.Flags().StringVar(&checkSchema, "schema", "", "Schema name (defaults per driver)")
}
