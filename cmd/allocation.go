package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/config"
	"github.com/etnz/wealth/renderer"
	"github.com/etnz/wealth/view"
	"github.com/google/subcommands"
)

// allocationCmd holds the flags for the 'allocation' subcommand.
type allocationCmd struct {
	cfg    *config.Config
	cfgErr error

	file      string
	groupBy   string
	valueIn   string
	currency  string
	rates     string
	ratesPath string
	manual    string
	exclude   string
	chart     string
	json      bool
}

func (*allocationCmd) Name() string { return "allocation" }
func (*allocationCmd) Synopsis() string {
	return "display the breakdown of the portfolio value in percentages"
}
func (*allocationCmd) Usage() string {
	return `wlt allocation -f <contract.json> [-g <group>] [-v <perspective>] [-c <currency>] [-rates <rates.json>] [-manual <manual.json>] [-x <key,...>] [-chart <file.png|file.svg>] [-json]

  Displays the share of each group in the portfolio market value. Groups
  without a positive value are left out. Manual assets (a json object of
  group to value, in the currency of the perspective) are merged into the
  groups of the same name. Values are converted to -c with the rates file or url.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {
	c.cfg, c.cfgErr = settings()
	if c.cfgErr != nil {
		c.cfg = config.NewDefaultConfig()
	}
	a := c.cfg.Allocation
	f.StringVar(&c.file, "f", "", "Contract file (json) to report on")
	f.StringVar(&c.groupBy, "g", a.GroupBy, "Group positions by: category, market, currency, sector, asset or a property path")
	f.StringVar(&c.valueIn, "v", c.cfg.Holdings.ValueIn, "Currency perspective: portfolio, base or trade")
	f.StringVar(&c.currency, "c", a.DisplayCurrency, "Display currency, defaults to the currency of the perspective")
	f.StringVar(&c.rates, "rates", c.cfg.Rates.File, "FX rates file (json), or an http(s) url fetched once a day")
	f.StringVar(&c.ratesPath, "rates-path", c.cfg.Rates.Path, "jsonpath of the rates in the rates file")
	f.StringVar(&c.manual, "manual", a.ManualFile, "Manual assets file (json)")
	f.StringVar(&c.exclude, "x", strings.Join(a.Exclude, ","), "Comma separated groups to hide")
	f.StringVar(&c.chart, "chart", "", "Write a pie chart to this file, SVG if the extension is .svg, PNG otherwise")
	f.BoolVar(&c.json, "json", false, "Print the allocation as json")
}

func (c *allocationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	contract, err := loadContract(logger, c.file)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading contract: %v\n", err)
		return subcommands.ExitFailure
	}

	var rates wealth.RateSource
	if c.rates != "" {
		var r wealth.Rates
		if wealth.IsURL(c.rates) {
			r, err = wealth.FetchRates(ctx, wealth.NewDailyClient(""), c.rates, c.ratesPath)
		} else {
			r, err = wealth.LoadRates(c.rates, c.ratesPath)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error loading rates: %v\n", err)
			return subcommands.ExitFailure
		}
		logger.Debug().Str("source", c.rates).Int("rates", len(r)).Msg("fx rates loaded")
		rates = r
	}

	var manual wealth.ManualAssets
	if c.manual != "" {
		manual, err = wealth.LoadManualAssets(c.manual)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading manual assets: %v\n", err)
			return subcommands.ExitFailure
		}
		logger.Debug().Str("file", c.manual).Int("assets", len(manual)).Msg("manual assets loaded")
	}

	opts := view.Options{
		GroupBy:         groupBy,
		ValueIn:         valueIn,
		HideEmpty:       c.cfg.Holdings.HideEmpty,
		DisplayCurrency: strings.ToUpper(c.currency),
	}
	state := view.State{
		Mode:               view.Allocation,
		AllocationGroupBy:  groupBy,
		ExcludedCategories: splitList(c.exclude),
	}
	m, err := view.Compute(contract, opts, state, rates, manual)
	if err != nil {
		fmt.Fprintf(stderr, "Error computing allocation: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(m.Allocation.Empty) > 0 {
		logger.Info().Strs("groups", m.Allocation.Empty).Msg("groups without a positive value are left out")
	}

	report := renderer.NewAllocation(m)
	if c.chart != "" {
		if err := writeChart(c.chart, report); err != nil {
			fmt.Fprintf(stderr, "Error writing chart %q: %v\n", c.chart, err)
			return subcommands.ExitFailure
		}
		logger.Info().Str("file", c.chart).Msg("chart written")
	}

	if c.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m.Allocation); err != nil {
			fmt.Fprintf(stderr, "Error encoding allocation: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderAllocation(report))
	return subcommands.ExitSuccess
}

func writeChart(name string, a *renderer.Allocation) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := renderer.RenderPieChart(f, a, renderer.ChartFormat(name)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
