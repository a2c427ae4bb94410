package main

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var traceFlag *string

var rootCmd = &cobra.Command{
	Use:   "gacalc",
	Short: "Simplify symbolic expressions of conformal Geometric Algebra",
	Long: `gacalc rewrites expressions over the conformal basis {e1, e2, e3, no, ni}
until they reach their simplest form. Expressions are built from scalar
literals, symbolic scalars ($a), vectors, and the operators
+ - * / ^ . inv rev.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initDisplay()
		gtrace.SyntaxTracer = gologadapter.New()
		tracer().SetTraceLevel(traceLevel(*traceFlag))
	},
}

func init() {
	traceFlag = rootCmd.PersistentFlags().StringP("trace", "t", "Error", "trace level [Debug|Info|Error]")
}

// Execute runs the selected subcommand.
func Execute() error {
	return rootCmd.Execute()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  =",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
