package main

import (
	"strings"

	"github.com/npillmayer/gamath/galang"
	"github.com/npillmayer/gamath/simplify"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var simplifyFlags = struct {
	maxIters *int
	maxSize  *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "simplify <expression>",
		Short:   "Simplify one expression and print its canonical form",
		Example: `  gacalc simplify "(e1+e2)*e3"`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runSimplify,
	}
	simplifyFlags.maxIters = cmd.Flags().Int("max-iters", 0, "stop after this many rewrites (0 = unlimited)")
	simplifyFlags.maxSize = cmd.Flags().Int("max-size", 0, "abort when the tree outgrows this node count (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func runSimplify(cmd *cobra.Command, args []string) error {
	input := strings.TrimSpace(strings.Join(args, " "))
	root, err := galang.Parse(input)
	if err != nil {
		return err
	}
	opts := &simplify.Options{
		MaxIters:    *simplifyFlags.maxIters,
		MaxTreeSize: *simplifyFlags.maxSize,
		Log: func(event string) {
			tracer().Infof(event)
		},
	}
	result, err := simplify.SimplifyTree(root, opts)
	if err != nil {
		return err
	}
	pterm.Info.Println(result.ExpressionText())
	return nil
}
