package main

// implements the lilt repl and script runner

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"lilt/eval"
)

var VERSION string
var LOGO = `
 ___ ___      |
| | |_| |_    | lilt language
|_|_|_|_ _|   | version: $VERSION
`

func sliceVersion(v string) string {
	m := 10
	if len(v) < 10 {
		m = len(v)
	}
	return v[0:m]
}

func reportErrors(errors []error) {
	for _, err := range errors {
		fmt.Fprintf(os.Stderr, "%s\n", err)
	}
}

func main() {
	if len(os.Args) > 1 {
		os.Exit(runFile(os.Args[1]))
	}
	repl()
}

func runFile(filename string) int {
	src, err := ioutil.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}
	ic := eval.NewInteractiveContext(filename, os.Stdout, nil)
	if _, errs := ic.Run(string(src)); errs != nil {
		reportErrors(errs)
		return 1
	}
	return 0
}

func repl() {
	fmt.Println(strings.Replace(LOGO, "$VERSION", sliceVersion(VERSION), 1))
	rl, err := readline.New("> ")
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	ic := eval.NewInteractiveContext("<stdin>", os.Stdout, nil)
	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rv, errs := ic.Run(line)
		if errs != nil {
			reportErrors(errs)
			continue
		}
		fmt.Println(eval.Inspect(rv))
	}
}
