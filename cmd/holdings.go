package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/config"
	"github.com/etnz/wealth/renderer"
	"github.com/etnz/wealth/view"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	cfg    *config.Config
	cfgErr error

	file      string
	groupBy   string
	valueIn   string
	hideEmpty bool
	sortKey   string
	desc      bool
	json      bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display holdings grouped with sub-totals and totals" }
func (*holdingsCmd) Usage() string {
	return `wlt holdings -f <contract.json> [-g <group>] [-v <perspective>] [-hide] [-s <key>] [-desc] [-json]

  Displays the positions of a contract grouped by category, market, currency,
  sector or asset, with sub-totals per group and the grand total.
  Closed positions hidden with -hide are still counted in the totals.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	c.cfg, c.cfgErr = settings()
	if c.cfgErr != nil {
		c.cfg = config.NewDefaultConfig()
	}
	h := c.cfg.Holdings
	f.StringVar(&c.file, "f", "", "Contract file (json) to report on")
	f.StringVar(&c.groupBy, "g", h.GroupBy, "Group positions by: category, market, currency, sector, asset or a property path")
	f.StringVar(&c.valueIn, "v", h.ValueIn, "Currency perspective: portfolio, base or trade")
	f.BoolVar(&c.hideEmpty, "hide", h.HideEmpty, "Hide closed positions (they are still counted in totals)")
	f.StringVar(&c.sortKey, "s", h.SortKey, "Sort positions by this field within groups, empty to keep the feed order")
	f.BoolVar(&c.desc, "desc", h.SortDirection == wealth.Descending.String(), "Sort in descending order")
	f.BoolVar(&c.json, "json", false, "Print the holdings as json")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.cfgErr != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", c.cfgErr)
		return subcommands.ExitFailure
	}
	logger := newLogger(c.cfg)

	groupBy, err := wealth.ParseGroupBy(c.groupBy)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing -g: %v\n", err)
		return subcommands.ExitUsageError
	}
	valueIn, err := wealth.ParseValueIn(c.valueIn)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing -v: %v\n", err)
		return subcommands.ExitUsageError
	}
	key := wealth.ParseSortKey(c.sortKey)
	if key == wealth.SortByAssetCode && !strings.EqualFold(strings.TrimSpace(c.sortKey), key.String()) {
		logger.Warn().Str("key", c.sortKey).Msg("unknown sort key, sorting by code")
	}

	contract, err := loadContract(logger, c.file)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading contract: %v\n", err)
		return subcommands.ExitFailure
	}

	opts := view.Options{GroupBy: groupBy, ValueIn: valueIn, HideEmpty: c.hideEmpty}
	state := c.cfg.ViewState()
	state.Sort = wealth.SortConfig{Key: key, Direction: wealth.Ascending}
	if c.desc {
		state.Sort.Direction = wealth.Descending
	}
	m, err := view.Compute(contract, opts, state, nil, nil)
	if err != nil {
		fmt.Fprintf(stderr, "Error computing holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.Debug().Int("groups", len(m.Holdings.HoldingGroups)).Msg("holdings computed")

	if c.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m.Holdings); err != nil {
			fmt.Fprintf(stderr, "Error encoding holdings: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderHoldings(renderer.NewHoldings(m.Holdings)))
	return subcommands.ExitSuccess
}
