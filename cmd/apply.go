package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var applyDir string

var applyCmd = &cobra.Command{
	Use:   "apply [script...]",
	Short: "Run generated migration scripts against the target Oracle database",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := GetDBConfig("target")
		if err != nil {
			return err
		}
		if config.Driver != "oracle" {
			return fmt.Errorf("apply targets Oracle only, got driver %q", config.Driver)
		}

		fmt.Printf("🔌 Connecting to target %s (%s)\n", config.Name, config.Driver)

		db, err := sql.Open(config.Driver, config.DSN)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}

		scripts := args
		if len(scripts) == 0 {
			dir := applyDir
			if dir == "" {
				dir = viper.GetString("generator.output_dir")
			}
			scripts, err = listScripts(dir)
			if err != nil {
				return err
			}
		}
		if len(scripts) == 0 {
			return fmt.Errorf("no scripts to apply")
		}

		log.Printf("Applying %d scripts...", len(scripts))
		start := time.Now()

		for i, path := range scripts {
			text, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			stmts := splitScript(string(text))
			log.Printf("[%02d/%02d] %s (%d statements)", i+1, len(scripts), filepath.Base(path), len(stmts))

			for _, stmt := range stmts {
				if _, err := db.Exec(stmt); err != nil {
					return fmt.Errorf("failed applying %s: %w", filepath.Base(path), err)
				}
			}
		}

		log.Printf("Apply Done! Time Elapsed: %s", time.Since(start))
		return nil
	},
}

// listScripts returns the .sql files of a generation output directory,
// sorted by name so package scripts run before the controller script of the
// same run.
func listScripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output dir %s: %w", dir, err)
	}

	var scripts []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			scripts = append(scripts, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(scripts)
	return scripts, nil
}

// splitScript cuts a generated script into executable units on slash
// terminator lines, dropping SQL*Plus-only directives the driver would
// reject.
func splitScript(text string) []string {
	var stmts []string
	var b strings.Builder

	flush := func() {
		stmt := strings.TrimSpace(b.String())
		b.Reset()
		if stmt != "" {
			stmts = append(stmts, stmt)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "/" {
			flush()
			continue
		}
		if strings.HasPrefix(strings.ToUpper(trimmed), "SET SERVEROUTPUT") {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	flush()

	return stmts
}

func init() {
	RootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVarP(&applyDir, "dir", "d", "", "Directory of generated scripts (overrides config)")
}
