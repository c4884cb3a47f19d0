package cmd

import (
	"fmt"
	"log"
	"time"

	"migrt/internal/generate"
	"migrt/internal/mapping"
	"migrt/internal/output"
	"migrt/internal/plsql"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	mappingFile string
	outDir      string
	batchSize   int
	pkgPrefix   string
	genDryRun   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate PL/SQL migration packages from a mapping file",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := mapping.LoadRows(mappingFile)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return fmt.Errorf("mapping file %s contains no rows", mappingFile)
		}

		// Flag > Config > Default, resolved through Viper bindings.
		cfg := plsql.Config{
			BatchSize:     viper.GetInt("generator.batch_size"),
			PackagePrefix: viper.GetString("generator.package_prefix"),
		}
		dir := outDir
		if dir == "" {
			dir = viper.GetString("generator.output_dir")
		}

		log.Printf("Generating migration code for %d mapping rows (batch size %d)...", len(rows), cfg.BatchSize)
		start := time.Now()

		uiprogress.Start()
		bar := uiprogress.AddBar(len(rows)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Generating: "
		})

		results, summary, err := generate.Run(rows, generate.NewDeterministic(cfg), func() {
			bar.Incr()
		})

		uiprogress.Stop()

		if err != nil {
			return err
		}

		var written []output.ManifestEntry
		if !genDryRun {
			var packages []plsql.Package
			for _, r := range results {
				if !r.Failed() {
					packages = append(packages, plsql.Package{
						Name:        r.PackageName,
						SourceTable: r.SourceTable,
						TargetTable: r.TargetTable,
					})
				}
			}

			ts := output.Timestamp(time.Now())
			written, err = output.WriteScripts(dir, ts, results, plsql.ControllerScript(packages))
			if err != nil {
				return err
			}
			if err := output.AppendIndex(dir, written); err != nil {
				return err
			}
		}

		elapsed := time.Since(start)

		fmt.Println("\n📜 Generation Report (input order):")
		for _, r := range results {
			if r.Failed() {
				fmt.Printf("[!] [%02d/%02d] %-20s : %s\n", r.RowIndex, len(results), r.SourceTable, r.ErrKind)
				fmt.Printf("    └ Error: %s\n", r.ErrMessage)
				continue
			}
			fmt.Printf("[✓] [%02d/%02d] %-20s -> %-20s : %s\n",
				r.RowIndex, len(results), r.SourceTable, r.TargetTable, r.PackageName)
		}
		fmt.Println("--------------------------------------------------")
		fmt.Printf("Succeeded: %d, Failed: %d\n", summary.Succeeded, summary.Failed)
		if genDryRun {
			log.Println("[SIMULATION] Dry-Run Mode Active: No files were written.")
		} else {
			fmt.Printf("Wrote %d files to %s\n", len(written), dir)
		}
		log.Printf("Generation Done! Time Elapsed: %s", elapsed)

		if summary.Failed > 0 {
			return fmt.Errorf("%d of %d mapping rows failed", summary.Failed, len(results))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&mappingFile, "mapping", "m", "sample_mapping.csv", "Mapping file (.csv or .json)")
	generateCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (overrides config)")
	generateCmd.Flags().IntVar(&batchSize, "batch", 0, "BULK COLLECT batch size (overrides config)")
	generateCmd.Flags().StringVar(&pkgPrefix, "prefix", "", "Package name prefix (overrides config)")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Generate and report without writing files")

	viper.BindPFlag("generator.batch_size", generateCmd.Flags().Lookup("batch"))
	viper.BindPFlag("generator.package_prefix", generateCmd.Flags().Lookup("prefix"))
	viper.SetDefault("generator.batch_size", 1000)
	viper.SetDefault("generator.package_prefix", "migrt_")
	viper.SetDefault("generator.output_dir", "generated_code")
}
