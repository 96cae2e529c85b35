// Command rill is the thin front door over the rill language core: a
// file-argument runner and a line-editing REPL. It carries no language
// semantics of its own — every behavior here is a call into the rill
// package.
//
// Grounded on daios-ai-msg/cmd/msg/main.go's subcommand/REPL shape:
// github.com/peterh/liner for history-backed line editing, signal-based
// Ctrl-C handling, and a persistent-history file in the user's home
// directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	rill "github.com/rill-lang/rill"
)

const historyFile = ".rill_history"

func main() {
	tokensFlag := flag.Bool("tokens", false, "print the token stream instead of evaluating")
	astFlag := flag.Bool("ast", false, "print the parsed statement count instead of evaluating")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		os.Exit(runRepl())
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "rill: %s\n", err)
		os.Exit(1)
	}

	if *tokensFlag {
		printTokens(string(src))
		return
	}
	if *astFlag {
		printAST(string(src))
		return
	}

	os.Exit(int(rill.Evaluate(string(src), os.Stderr)))
}

func printTokens(src string) {
	toks, errs := rill.Tokenize(src)
	for _, t := range toks {
		fmt.Printf("%d:%d %v %q\n", t.Line, t.Col, t.Type, t.Lexeme)
	}
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e.Error())
	}
}

func printAST(src string) {
	prog, errs := rill.Parse(src)
	if prog != nil {
		fmt.Printf("parsed %d top-level statement(s)\n", len(prog.Stmts))
	}
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e.Error())
	}
}

func runRepl() int {
	fmt.Println("rill REPL — Ctrl+C cancels input, Ctrl+D exits.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	interp := rill.NewInterp()

	for {
		line, ok := readLine(ln)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == ":quit" {
			return 0
		}

		prog, errs := rill.Parse(line)
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		if prog != nil {
			interp.Run(prog)
			interp.Diagnostics().Flush(os.Stderr, line)
		}
		ln.AppendHistory(strings.ReplaceAll(line, "\n", " "))
	}
}

func readLine(ln *liner.State) (string, bool) {
	line, err := ln.Prompt("==> ")
	if errors.Is(err, io.EOF) {
		return "", false
	}
	if err != nil {
		return "", true
	}
	return line, true
}
