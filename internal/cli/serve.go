package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ce-es/dashboard/internal/api"
	"github.com/ce-es/dashboard/internal/auth"
	"github.com/ce-es/dashboard/internal/books"
	"github.com/ce-es/dashboard/internal/config"
	"github.com/ce-es/dashboard/internal/deadline"
	"github.com/ce-es/dashboard/internal/domain"
	"github.com/ce-es/dashboard/internal/ledger"
	"github.com/ce-es/dashboard/internal/seed"
	"github.com/ce-es/dashboard/internal/sqlite"
	"github.com/ce-es/dashboard/internal/store"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	Long: `Start the dashboard API server.

On first run the SQLite database is created and seeded with the demo
dataset. The AI proxy requires ANTHROPIC_API_KEY, read from the
environment or a .env file next to the binary.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return fmt.Errorf(`%w

Der KI-Assistent benötigt einen Anthropic API-Schlüssel.
Legen Sie eine .env-Datei neben dem Binary an:

    ANTHROPIC_API_KEY=sk-ant-...

oder exportieren Sie die Variable in der Shell.`, err)
	}

	clock, err := buildClock(cfg)
	if err != nil {
		return err
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}
	defer db.Close()

	st, persister, err := openStore(db, cfg)
	if err != nil {
		return err
	}
	detach := persister.Attach(func(err error) {
		log.Printf("snapshot persistence failed: %v", err)
	})
	defer detach()

	for _, e := range seed.AuditLog() {
		if err := db.AppendAuditEvent(e); err != nil {
			return fmt.Errorf("seed audit log: %w", err)
		}
	}
	// Every store mutation leaves an audit row alongside the snapshot.
	defer st.Subscribe(auditRecorder(db))()

	b := books.New(seed.Account(), seed.BankTransactions(), seed.DatevEntries(), seed.SyncLog())
	users := auth.NewRegistry(auth.SeedUsers())

	srv := api.NewServer(st, ledger.New(st), deadline.NewTracker(st, clock), b, users, db, clock)
	srv.SetUpstream(cfg.AnthropicBaseURL, cfg.AnthropicAPIKey)
	if cfg.StaticDir != "" {
		srv.SetStaticDir(cfg.StaticDir)
	}
	if cfg.EnableMetrics {
		srv.EnableMetrics()
	}

	httpSrv := &http.Server{Addr: cfg.Addr, Handler: srv.Handler()}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Ce-eS Dashboard API läuft auf http://localhost%s", cfg.Addr)
		log.Printf("KI-Proxy aktiv (API-Key: %s)", cfg.RedactedKey())
		if cfg.DemoDate != "" {
			log.Printf("Demo-Modus: Referenzdatum %s", cfg.DemoDate)
		}
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Println("Beende Server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}

// buildClock pins "today" to the configured demo date, or tracks real
// time when none is set.
func buildClock(cfg config.Config) (deadline.Clock, error) {
	if cfg.DemoDate == "" {
		return deadline.RealClock{}, nil
	}
	if _, err := time.Parse(time.DateOnly, cfg.DemoDate); err != nil {
		return nil, fmt.Errorf("invalid demo date %q: want YYYY-MM-DD", cfg.DemoDate)
	}
	return deadline.FixedClock{Date: cfg.DemoDate}, nil
}

// openStore restores the persisted snapshot, seeding the demo dataset on
// a fresh database.
func openStore(db *sqlite.DB, cfg config.Config) (*store.Store, *sqlite.Persister, error) {
	snap, ok, err := sqlite.RestoreSnapshot(db)
	if err != nil {
		return nil, nil, fmt.Errorf("restore snapshot: %w", err)
	}
	if !ok {
		log.Println("Neue Datenbank, Demo-Datensatz wird geladen")
		snap = store.Snapshot{
			Clients:      seed.Clients(),
			Appointments: seed.Appointments(),
			Invoices:     seed.Invoices(),
			Offers:       seed.Offers(),
			CaseFiles:    seed.CaseFiles(),
			Creditors:    seed.Creditors(),
			Progress:     seed.Progress(),
			Deadlines:    seed.Deadlines(),
		}
	}

	st := store.New(snap)
	if cfg.DemoDate != "" {
		date := cfg.DemoDate
		st.SetToday(func() string { return date })
	}

	persister := sqlite.NewPersister(db, st)
	if !ok {
		if err := persister.Persist(); err != nil {
			return nil, nil, fmt.Errorf("persist seed snapshot: %w", err)
		}
	}
	return st, persister, nil
}

// auditRecorder turns store mutations into audit rows. Handlers do not
// attribute a user at this layer, so rows carry the system identity.
func auditRecorder(db *sqlite.DB) store.Subscriber {
	return func(ev store.Event) {
		risk := domain.RiskLow
		if ev.Op == store.OpDelete {
			risk = domain.RiskMedium
		}
		e := domain.AuditEvent{
			ID:        "AU-" + uuid.NewString(),
			Timestamp: time.Now().Format("2006-01-02T15:04:05"),
			User:      "System",
			Action:    fmt.Sprintf("%s %s", ev.Collection, ev.Op),
			Details:   fmt.Sprintf("Datensatz %s", ev.ID),
			Risk:      risk,
		}
		if err := db.AppendAuditEvent(e); err != nil {
			log.Printf("audit append failed: %v", err)
		}
	}
}
