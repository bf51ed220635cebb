// SPDX-License-Identifier: MIT

// matexpr is a small demonstration of lazy matrix expressions.
//
// It builds the tree (2*-m1 + m2)/2 + m2 - 3*[[5,2],[4,1]] with
// m1=[[1,2],[3,4]] and m2=[[0,1],[1,2]], materializes it once and prints the
// result row by row (tab-separated by default, or as a table).
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"gopkg.in/urfave/cli.v1"

	"github.com/katalvlaran/matexpr/matrix"
)

var (
	formatFlag = cli.StringFlag{
		Name:  "format",
		Usage: `Output format: "tsv" or "table"`,
		Value: formatTSV,
	}
	workersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "Goroutines used to materialize the result",
		Value: matrix.DefaultWorkers,
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 3,
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "matexpr"
	app.Usage = "evaluate a sample lazy matrix expression"
	app.Flags = []cli.Flag{formatFlag, workersFlag, verbosityFlag}
	app.Before = func(ctx *cli.Context) error {
		setupLogging(ctx.GlobalInt(verbosityFlag.Name))
		return nil
	}
	app.Action = run

	return app
}

// setupLogging installs a terminal handler on stderr, coloured when stderr is a TTY.
func setupLogging(verbosity int) {
	useColor := (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) &&
		os.Getenv("TERM") != "dumb"
	output := colorable.NewColorableStderr()
	if !useColor {
		output = os.Stderr
	}
	handler := log.NewTerminalHandlerWithLevel(output, log.FromLegacyLevel(verbosity), useColor)
	log.SetDefault(log.NewLogger(handler))
}

func run(ctx *cli.Context) error {
	format := ctx.GlobalString(formatFlag.Name)
	workers := ctx.GlobalInt(workersFlag.Name)
	if workers < 1 {
		return fmt.Errorf("invalid --%s %d: must be >= 1", workersFlag.Name, workers)
	}
	render, ok := renderers[format]
	if !ok {
		return fmt.Errorf("unknown --%s %q", formatFlag.Name, format)
	}

	expr := sampleExpr()
	log.Debug("Built expression", "tree", expr.String())

	out, err := expr.Materialize(matrix.WithWorkers(workers))
	if err != nil {
		return err
	}
	log.Info("Materialized expression", "rows", out.Rows(), "cols", out.Cols(), "workers", workers)

	return render(os.Stdout, out)
}

// sampleExpr returns (2*-m1 + m2)/2 + m2 - 3*[[5,2],[4,1]].
func sampleExpr() matrix.BinaryExpr[float64] {
	m1 := matrix.MustFromRows([][]float64{{1, 2}, {3, 4}})
	m2 := matrix.MustFromRows([][]float64{{0, 1}, {1, 2}})
	m3 := matrix.MustFromRows([][]float64{{5, 2}, {4, 1}})

	return matrix.ScalarMul[float64](2, m1.Neg()).Add(m2).Div(2).Add(m2).Sub(matrix.ScalarMul[float64](3, m3))
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
