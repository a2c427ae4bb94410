package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/gamath"
	"github.com/npillmayer/gamath/galang"
	"github.com/npillmayer/gamath/simplify"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Enter expressions interactively",
		RunE:  runRepl,
	}
	rootCmd.AddCommand(cmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	repl, err := readline.New("gacalc> ")
	if err != nil {
		return err
	}
	pterm.Info.Println("Welcome to gacalc")
	tracer().Infof("Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if line == ":quit" {
			break
		}
		if err := eval(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	println("Good bye!")
	return nil
}

// eval handles one REPL line: an expression to simplify, or one of the
// inspection commands ":grade <expr>" and ":tree <expr>".
func eval(line string) error {
	switch {
	case strings.HasPrefix(line, ":grade "):
		root, err := galang.Parse(strings.TrimPrefix(line, ":grade "))
		if err != nil {
			return err
		}
		g, known, err := root.Grade()
		if err != nil {
			return err
		}
		if !known {
			pterm.Info.Println("grade undefined (mixed multivector)")
			return nil
		}
		pterm.Info.Println(fmt.Sprintf("grade %d", g))
		return nil
	case strings.HasPrefix(line, ":tree "):
		root, err := galang.Parse(strings.TrimPrefix(line, ":tree "))
		if err != nil {
			return err
		}
		printTree(root, 0)
		return nil
	}
	root, err := galang.Parse(line)
	if err != nil {
		return err
	}
	result, err := simplify.SimplifyTree(root, &simplify.Options{
		Log: func(event string) {
			tracer().Infof(event)
		},
	})
	if err != nil {
		return err
	}
	pterm.Info.Println(result.ExpressionText())
	return nil
}

func printTree(node *gamath.Node, indent int) {
	fmt.Printf("%s%s\n", strings.Repeat("   ", indent), node.DisplayText())
	for _, child := range node.Children {
		printTree(child, indent+1)
	}
}
