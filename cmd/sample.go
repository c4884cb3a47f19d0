package cmd

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"
)

var (
	samplePath  string
	sampleExtra int
	sampleForce bool
)

var sampleHeader = []string{
	"source_table", "target_table", "source_columns", "target_columns",
	"transformations", "where_condition", "related_inserts",
}

var sampleRows = [][]string{
	{
		"CUSTOMERS_OLD", "CUSTOMERS_NEW",
		"ID,NAME,EMAIL,REG_DATE,STATUS",
		"ID,FULL_NAME,EMAIL,REGISTRATION_DATE,STATUS_CODE",
		"NAME->FULL_NAME,REG_DATE->REGISTRATION_DATE,STATUS->STATUS_CODE (MAP: 'A'->1,'I'->0)",
		"STATUS <> 'D'",
		"KEY:migrt_key(ID):NAME",
	},
	{
		"ORDERS_OLD", "ORDERS_NEW",
		"ORDER_ID,CUST_ID,ORDER_DATE,TOTAL_AMOUNT,PAYMENT_METHOD",
		"ID,CUSTOMER_ID,ORDER_DATE,AMOUNT,PAYMENT_TYPE",
		"ORDER_ID->ID,CUST_ID->CUSTOMER_ID,TOTAL_AMOUNT->AMOUNT,PAYMENT_METHOD->PAYMENT_TYPE",
		"TOTAL_AMOUNT > 0",
		"",
	},
	{
		"ORDER_ITEMS_OLD", "ORDER_ITEMS_NEW",
		"ITEM_ID,ORDER_ID,PRODUCT_ID,QUANTITY,UNIT_PRICE",
		"ID,ORDER_ID,PRODUCT_ID,QTY,PRICE",
		"ITEM_ID->ID,QUANTITY->QTY,UNIT_PRICE->PRICE",
		"",
		"",
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a sample mapping file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(samplePath); err == nil && !sampleForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", samplePath)
		}

		f, err := os.Create(samplePath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", samplePath, err)
		}
		defer f.Close()

		w := csv.NewWriter(f)
		if err := w.Write(sampleHeader); err != nil {
			return err
		}
		for _, row := range sampleRows {
			if err := w.Write(row); err != nil {
				return err
			}
		}
		for i := 0; i < sampleExtra; i++ {
			if err := w.Write(fakeMappingRow()); err != nil {
				return err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("failed to write %s: %w", samplePath, err)
		}

		log.Printf("Wrote sample mapping file %s (%d rows)", samplePath, len(sampleRows)+sampleExtra)
		return nil
	},
}

var fakeColumnPool = []string{
	"NAME", "EMAIL", "STATUS", "CREATED_DATE", "UPDATED_DATE",
	"AMOUNT", "PRICE", "QUANTITY", "CATEGORY", "DESCRIPTION",
}

// fakeMappingRow makes up a plausible mapping row for load and demo runs.
func fakeMappingRow() []string {
	table := strings.ToUpper(gofakeit.Word())

	cols := []string{"ID"}
	for _, c := range fakeColumnPool {
		if gofakeit.Bool() {
			cols = append(cols, c)
		}
		if len(cols) >= 5 {
			break
		}
	}

	list := strings.Join(cols, ",")
	return []string{table + "_OLD", table + "_NEW", list, list, "", "", ""}
}

func init() {
	RootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().StringVarP(&samplePath, "path", "p", "sample_mapping.csv", "Where to write the sample file")
	sampleCmd.Flags().IntVar(&sampleExtra, "extra", 0, "Append N randomized mapping rows")
	sampleCmd.Flags().BoolVar(&sampleForce, "force", false, "Overwrite an existing file")
}
