package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shipdesk/delaymail/internal/config"
	emailsvc "github.com/shipdesk/delaymail/internal/email/service"
	eventssvc "github.com/shipdesk/delaymail/internal/events/service"
	"github.com/shipdesk/delaymail/internal/ledger"
	"github.com/shipdesk/delaymail/internal/logger"
	"github.com/shipdesk/delaymail/internal/markup"
	"github.com/shipdesk/delaymail/internal/notify/domain"
	notifysvc "github.com/shipdesk/delaymail/internal/notify/service"
	"github.com/shipdesk/delaymail/internal/platform/validation"
	"github.com/shipdesk/delaymail/internal/roster"
	"github.com/shipdesk/delaymail/internal/table"
	"github.com/shipdesk/delaymail/internal/version"
)

var (
	dataPath     string
	rosterPath   string
	templatePath string
	ledgerPath   string
	dryRun       bool
	htmlDir      string
)

var rootCmd = &cobra.Command{
	Use:   "delaymail",
	Short: "Generate and send delivery-delay notifications per partner",
	Long: `delaymail filters an order/shipment export down to rows with no delay
classification, groups them per partner, resolves each partner's contact
address from a roster, renders a templated message, and sends it over SMTP
while appending an audit ledger of every outcome.`,
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "order/shipment export CSV (required)")
	rootCmd.PersistentFlags().StringVar(&rosterPath, "roster", "", "partner address roster CSV (required)")
	rootCmd.PersistentFlags().StringVar(&templatePath, "template", "", "mail template file (built-in template when omitted)")

	previewCmd.Flags().StringVar(&htmlDir, "html-dir", "", "also write the HTML rendering per partner into this directory")

	sendCmd.Flags().StringVar(&ledgerPath, "ledger", "", "audit ledger file (overrides LEDGER_PATH)")
	sendCmd.Flags().BoolVar(&dryRun, "dry-run", false, "log messages instead of sending them")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the delaymail version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render every partner's message without sending anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log := logger.New(cfg.AppEnv)

		items, _, err := buildItems(log)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("no undecided items")
			return nil
		}

		for _, item := range items {
			to := item.Resolution.Address()
			if to == "" {
				to = "(no address)"
			}
			fmt.Printf("==== %s (%d rows) -> %s ====\n", item.PartnerName, item.Count, to)
			fmt.Println(item.Body)
			fmt.Println()

			if htmlDir != "" {
				if err := os.MkdirAll(htmlDir, 0o755); err != nil {
					return err
				}
				name := filepath.Join(htmlDir, safeFileName(item.PartnerName)+".html")
				if err := os.WriteFile(name, []byte(markup.ToHTML(item.Body)), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", name, err)
				}
			}
		}
		return nil
	},
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Generate, send, and record notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if dryRun {
			cfg.MailProvider = "log"
		}
		if ledgerPath != "" {
			cfg.LedgerPath = ledgerPath
		}
		if err := validation.Struct(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %s", validation.Describe(err))
		}
		log := logger.New(cfg.AppEnv)
		log.Info().Stringer("config", cfg).Msg("starting dispatch")

		items, _, err := buildItems(log)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("no undecided items; nothing to send")
			return nil
		}

		dispatcher := notifysvc.NewDispatcher(
			emailsvc.NewRouter(cfg, log),
			ledger.NewStore(cfg.LedgerPath),
			eventssvc.NewLogger(),
			log,
		)
		ctx := log.WithContext(context.Background())
		sum, err := dispatcher.Dispatch(ctx, items)
		if err != nil {
			return err
		}

		for partner, out := range sum.Outcomes {
			if out.Status == domain.StatusFail {
				fmt.Printf("FAILED  %s: %s\n", partner, out.Reason)
			}
		}
		fmt.Printf("done: %d sent, %d failed, %d skipped\n", sum.Sent, sum.Failed, sum.Skipped)
		return nil
	},
}

func buildItems(log zerolog.Logger) ([]domain.MailItem, domain.Report, error) {
	if dataPath == "" || rosterPath == "" {
		return nil, domain.Report{}, fmt.Errorf("--data and --roster are required")
	}

	t, err := table.LoadCSV(dataPath)
	if err != nil {
		return nil, domain.Report{}, err
	}
	rt, err := table.LoadCSV(rosterPath)
	if err != nil {
		return nil, domain.Report{}, err
	}
	ros, err := roster.FromTable(rt)
	if err != nil {
		return nil, domain.Report{}, err
	}

	tpl := notifysvc.DefaultTemplate
	if templatePath != "" {
		raw, err := os.ReadFile(templatePath)
		if err != nil {
			return nil, domain.Report{}, fmt.Errorf("read template: %w", err)
		}
		tpl = string(raw)
	}

	return notifysvc.NewBuilder(log).Build(t, ros, tpl)
}

func safeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
