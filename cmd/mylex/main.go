package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mylang-lang/mylang/internal/config"
	"github.com/mylang-lang/mylang/internal/report"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mylex <command> [options]\n")
		fmt.Fprintf(os.Stderr, "\nCommands:\n")
		fmt.Fprintf(os.Stderr, "  scan <file>     Scan a MyLang source file and print the full report\n")
		fmt.Fprintf(os.Stderr, "  tokens <file>   Print only the token stream\n")
		fmt.Fprintf(os.Stderr, "  repl            Tokenize lines interactively\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	configPath := flag.String("config", "mylang.toml", "project configuration file")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "scan":
		runScan(args, *configPath)
	case "tokens":
		runTokens(args)
	case "repl":
		runRepl()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func readSource(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file %s: %v\n", path, err)
		os.Exit(1)
	}
	return string(data)
}

func runScan(args []string, configPath string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: mylex scan <file>\n")
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rep := report.Scan(readSource(args[0]))

	if cfg.Report.Tokens {
		fmt.Print(rep.FormatTokens())
		fmt.Println()
	}
	if cfg.Report.SymbolTable {
		fmt.Print(rep.Table.FormatReport())
		fmt.Println()
	}
	if cfg.Report.Statistics {
		fmt.Print(rep.Stats.FormatReport())
		fmt.Println()
	}
	if cfg.Report.Errors {
		fmt.Print(rep.Reporter.FormatReport())
	}

	if rep.Reporter.HasErrors() {
		os.Exit(1)
	}
}

func runTokens(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: mylex tokens <file>\n")
		os.Exit(1)
	}
	rep := report.Scan(readSource(args[0]))
	fmt.Print(rep.FormatTokens())
}
