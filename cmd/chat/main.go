// Command chat runs turns against the results document locally, without the
// dialogue engine, and inspects the document itself.
//
// Usage:
//
//	scoracle-chat ask "show me the laliga standings"
//	scoracle-chat ask --sport basketball --team lakers "did they win?"
//	scoracle-chat ask --action action_get_fixture --matchday "Matchday 3"
//	scoracle-chat dataset
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/scoracle-chat/internal/config"
	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/query"
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	if err := newRootCmd(config.Load()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "scoracle-chat",
		Short:        "Ask football and basketball results questions locally",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringSliceVar(&cfg.DatasetPaths, "dataset", cfg.DatasetPaths, "Results document candidates, tried in order")

	root.AddCommand(askCmd(cfg))
	root.AddCommand(datasetCmd(cfg))
	return root
}

// --------------------------------------------------------------------------
// ask command
// --------------------------------------------------------------------------

type askOptions struct {
	slots  query.Slots
	player string
	action string
}

func askCmd(cfg *config.Config) *cobra.Command {
	var opts askOptions
	cmd := &cobra.Command{
		Use:   "ask [message]",
		Short: "Run one turn through the sport router or a named action",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cfg.NewLogger()
			engine := query.NewDefaultEngine(dataset.NewLoader(cfg.DatasetPaths, logger), logger)
			return runAsk(cmd.OutOrStdout(), engine, opts, strings.Join(args, " "))
		},
	}
	cmd.Flags().StringVar(&opts.slots.Sport, "sport", "", "Sport slot (football, basketball)")
	cmd.Flags().StringVar(&opts.slots.League, "league", "", "League slot")
	cmd.Flags().StringVar(&opts.slots.Team, "team", "", "Team slot")
	cmd.Flags().StringVar(&opts.slots.Matchday, "matchday", "", "Matchday slot (Matchday N, Week N, Round N)")
	cmd.Flags().StringVar(&opts.player, "player", "", "Player entity")
	cmd.Flags().StringVar(&opts.action, "action", "", "Run this action instead of the sport router")
	return cmd
}

func runAsk(w io.Writer, engine *query.Engine, opts askOptions, text string) error {
	turn := query.Turn{Text: text, Slots: opts.slots}
	if opts.player != "" {
		turn.Entities = append(turn.Entities, query.Entity{Type: query.EntityPlayer, Value: opts.player})
	}

	var res *query.Result
	if opts.action == "" {
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("a message is required unless --action is given")
		}
		res = engine.Converse(turn)
	} else {
		var err error
		if res, err = engine.Run(opts.action, turn); err != nil {
			return fmt.Errorf("run %s: %w (known: %s)", opts.action, err, strings.Join(engine.Actions(), ", "))
		}
	}

	for _, m := range res.Messages {
		fmt.Fprintln(w, m)
	}
	return nil
}

// --------------------------------------------------------------------------
// dataset command
// --------------------------------------------------------------------------

func datasetCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "dataset",
		Short: "Summarize the first loadable results document",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := dataset.NewLoader(cfg.DatasetPaths, cfg.NewLogger())
			return runDataset(cmd.OutOrStdout(), loader)
		},
	}
}

func runDataset(w io.Writer, loader *dataset.Loader) error {
	d, source, err := loader.LoadWithSource()
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	fmt.Fprintf(w, "source: %s\n%s\n\n", source, d.Summary())
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SPORT\tLEAGUE\tSTANDINGS\tMATCHDAYS\tMATCHES\tUPCOMING")
	for _, l := range d.Leagues() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\n", l.Sport, l.League, l.Standings, l.Matchdays, l.Matches, l.Upcoming)
	}
	return tw.Flush()
}
