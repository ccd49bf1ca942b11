package main

import (
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"

	"github.com/mylang-lang/mylang/internal/lexer"
)

// runRepl tokenizes one line at a time. Each line is an independent
// scan: no cursor or symbol state carries over.
func runRepl() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println("MyLang tokenizer. Ctrl-D to exit.")

	for {
		input, err := line.Prompt("mylex> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			return
		}
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		sc := lexer.New(input)
		for _, tok := range sc.ScanAll() {
			if tok.Type == lexer.END_OF_INPUT {
				break
			}
			fmt.Println(tok)
		}
		for _, e := range sc.Errors {
			fmt.Println(e.ToDiagnostic())
		}
	}
}
