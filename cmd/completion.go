package cmd

import (
	"github.com/etnz/wealth"
	"github.com/etnz/wealth/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line of the application for shell completion.
func Completion() *complete.Command {
	var groups, perspectives []string
	for _, g := range wealth.AllGroupBy {
		groups = append(groups, g.String())
	}
	for _, v := range wealth.AllValuesIn {
		perspectives = append(perspectives, v.String())
	}
	jsonFiles := predict.Files("*.json")
	topics, _ := docs.All()

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"holdings": {
				Flags: map[string]complete.Predictor{
					"f":    jsonFiles,
					"g":    predict.Set(groups),
					"v":    predict.Set(perspectives),
					"hide": predict.Nothing,
					"s":    predict.Set(wealth.SortKeys()),
					"desc": predict.Nothing,
					"json": predict.Nothing,
				},
			},
			"allocation": {
				Flags: map[string]complete.Predictor{
					"f":          jsonFiles,
					"g":          predict.Set(groups),
					"v":          predict.Set(perspectives),
					"c":          predict.Something,
					"rates":      jsonFiles,
					"rates-path": predict.Something,
					"manual":     jsonFiles,
					"x":          predict.Something,
					"chart":      predict.Or(predict.Files("*.png"), predict.Files("*.svg")),
					"json":       predict.Nothing,
				},
			},
			"groups": {},
			"topic":  {Args: predict.Set(append(topics, "*"))},
			"help":   {},
		},
		Flags: map[string]complete.Predictor{
			"config":  predict.Files("*.toml"),
			"verbose": predict.Nothing,
			"raw":     predict.Nothing,
		},
	}
}
