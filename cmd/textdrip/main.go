package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"

	"github.com/QuangTung97/textdrip/config"
	"github.com/QuangTung97/textdrip/pkg/imessage"
	"github.com/QuangTung97/textdrip/repository"
	"github.com/QuangTung97/textdrip/service/campaign"
)

func main() {
	rootCmd := cobra.Command{
		Use: "textdrip",
	}
	rootCmd.AddCommand(
		sendCommand(),
		stateCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func sendCommand() *cobra.Command {
	var dryRun bool
	var only string
	var rate int

	cmd := &cobra.Command{
		Use:   "send",
		Short: "run the campaign once: initial messages and due follow-ups",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(dryRun, only, rate)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"log actions instead of sending (state is still committed)")
	cmd.Flags().StringVar(&only, "only", "",
		"process a single contact, by phone number")
	cmd.Flags().IntVar(&rate, "rate-per-minute", 0,
		"sends per minute, overrides config")
	return cmd
}

func runSend(dryRun bool, only string, rate int) error {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	contacts, err := repository.LoadContacts(conf.Campaign.ContactsPath, logger)
	if err != nil {
		return err
	}

	db, err := conf.ChatDB.Open()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	oracle := campaign.NewOracle(repository.NewHistory(db), logger)
	scheduler := campaign.NewScheduler(oracle)
	store := repository.NewFileStateStore(conf.Campaign.StatePath)

	var transport campaign.Transport = imessage.New(conf.Campaign.ScriptPath)
	if dryRun {
		transport = campaign.NewDryRunTransport(logger)
	}

	if rate <= 0 {
		rate = conf.Campaign.RatePerMinute
	}

	dispatcher := campaign.NewDispatcher(scheduler, store, transport, logger)

	ctx := context.Background()
	sent, err := dispatcher.Run(ctx, contacts, campaign.Options{
		Only:          only,
		RatePerMinute: rate,
	})
	if err != nil {
		return err
	}

	logger.Info("done", zap.Int("sent", sent))
	return nil
}

func stateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "print the persisted campaign state table",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.Load()

			store := repository.NewFileStateStore(conf.Campaign.StatePath)
			states, err := store.Load()
			if err != nil {
				return err
			}

			keys := make([]string, 0, len(states))
			for key := range states {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			for _, key := range keys {
				state := states[key]
				fmt.Printf("%s: stage=%d halted=%v started_at=%s next_due=%s\n",
					key, state.Stage, state.Halted,
					formatUnix(state.StartedAt), formatUnix(state.NextDue))
			}
			return nil
		},
	}
}

func formatUnix(ts *int64) string {
	if ts == nil {
		return "-"
	}
	return time.Unix(*ts, 0).UTC().Format(time.RFC3339)
}
