package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ce-es/dashboard/internal/books"
	"github.com/ce-es/dashboard/internal/config"
	"github.com/ce-es/dashboard/internal/export"
	"github.com/ce-es/dashboard/internal/seed"
	"github.com/ce-es/dashboard/internal/sqlite"
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("out", "o", ".", "Output directory for the CSV files")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the bookkeeping CSV exports to disk",
	Long: `Write the bookkeeping CSV exports to disk without starting the server:
the bank statement, the DATEV journal, the Lexware sync protocol and the
audit trail. Files use semicolon separation and a UTF-8 BOM so Excel
opens them correctly.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	date := cfg.DemoDate
	if date == "" {
		date = time.Now().Format(time.DateOnly)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}
	defer db.Close()

	for _, e := range seed.AuditLog() {
		if err := db.AppendAuditEvent(e); err != nil {
			return fmt.Errorf("seed audit log: %w", err)
		}
	}
	audit, err := db.AuditEvents()
	if err != nil {
		return fmt.Errorf("read audit log: %w", err)
	}

	b := books.New(seed.Account(), seed.BankTransactions(), seed.DatevEntries(), seed.SyncLog())
	reports := []export.Report{
		export.BankStatement(b.Account(), b.Transactions(), date),
		export.DatevJournal(b.DatevEntries(), date),
		export.LexwareSyncLog(b.SyncLog(), date),
		export.AuditLog(audit, date),
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, rep := range reports {
		path := filepath.Join(outDir, rep.Filename)
		if err := os.WriteFile(path, []byte(rep.CSV), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", rep.Filename, err)
		}
		fmt.Fprintf(os.Stdout, "✅ %s\n", path)
	}
	return nil
}
