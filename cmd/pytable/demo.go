package main

import (
	"time"

	"github.com/biswanathroul/pytable-formatter/table"
	"github.com/biswanathroul/pytable-formatter/tui"
)

// demoSource builds a showcase table without needing an input file: mixed
// value kinds, alignment, styles, colors, a spanning summary row, and a
// nested table.
func demoSource() tui.Source {
	return func(opts table.Options) (*table.Table, error) {
		if opts.Title == "" {
			opts.Title = "service fleet"
		}
		if opts.Footer == "" {
			opts.Footer = "updated hourly"
		}

		incidents := table.New(table.Options{
			Padding:      opts.Padding,
			Border:       opts.Border,
			ColorEnabled: opts.ColorEnabled,
			Logger:       opts.Logger,
		})
		if err := incidents.AddRow("oom restart", 26*time.Minute); err != nil {
			return nil, err
		}
		if err := incidents.AddRow("node drain", 3*time.Hour+10*time.Minute); err != nil {
			return nil, err
		}

		t := table.New(opts)
		if err := t.SetHeaders("Service", "Region", "Requests", "Uptime %", "Notes"); err != nil {
			return nil, err
		}
		rows := [][]any{
			{
				table.Cell{Value: "api-gateway", Style: table.StyleBold},
				"us-east-1",
				table.Cell{Value: 1284902, Align: table.AlignRight},
				table.Cell{Value: 99.99, Align: table.AlignRight, FgColor: table.ColorGreen},
				"healthy",
			},
			{
				"billing",
				"eu-west-1",
				table.Cell{Value: 83211, Align: table.AlignRight},
				table.Cell{Value: 97.3, Align: table.AlignRight, FgColor: table.ColorYellow},
				"latency regression under investigation since the morning deploy",
			},
			{
				"search",
				"ap-south-1",
				table.Cell{Value: 412780, Align: table.AlignRight},
				table.Cell{Value: 91.2, Align: table.AlignRight, Style: table.StyleBold, FgColor: table.ColorRed},
				incidents,
			},
			{
				table.Cell{
					Value: "3 services, 1.78M requests in the last hour",
					Span:  5,
					Align: table.AlignCenter,
					Style: table.StyleItalic,
				},
			},
		}
		for _, row := range rows {
			if err := t.AddRow(row...); err != nil {
				return nil, err
			}
		}
		return t, nil
	}
}
