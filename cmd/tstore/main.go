// Copyright 2016 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command tstore is a REPL around a single in-process engine.Engine. It
// reads one command per prompt, one of:
//
//	load <path>
//	select <query>
//	count <query>
//	help
//	quit
//
// A select/count query whose pattern block opens a '{' on the prompt
// line but hasn't closed it yet keeps reading further lines until the
// matching '}' appears, so a multi-line query pasted from a file runs
// as a single statement. Invoking tstore with -o prints the join order
// chosen for every select/count alongside its results.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sixway/bgpstore/engine"
	"github.com/sixway/bgpstore/tracer"
)

const prompt = "tstore> "

func main() {
	e := engine.New()

	outputJoinOrder := len(os.Args) > 1 && os.Args[1] == "-o"
	if outputJoinOrder {
		tracer.SetVerbosity(2)
		e.Trace = os.Stdout
	} else if v := os.Getenv("TSTORE_TRACE"); v != "" {
		e.Trace = os.Stderr
	}

	fmt.Println("tstore REPL. Commands: load <path>, select <query>, count <query>, help, quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			break
		}
		keyword, details := splitCommand(strings.TrimSpace(scanner.Text()))

		// Allow more lines of input once we've seen '{' but not yet '}',
		// so a query block pasted from a file runs as one statement.
		for strings.Contains(details, "{") && !strings.Contains(details, "}") {
			if !scanner.Scan() {
				break
			}
			details = strings.TrimSpace(details + " " + scanner.Text())
		}

		if quit := dispatch(e, keyword, details); quit {
			return
		}
	}
	fmt.Println()
}

// dispatch runs one statement and reports whether the REPL should exit.
func dispatch(e *engine.Engine, cmd, rest string) bool {
	switch cmd {
	case "":
		// blank line
	case "quit":
		fmt.Println("Bye.")
		return true
	case "help":
		printHelp()
	case "load":
		runLoad(e, rest)
	case "select":
		runQuery(e, rest, true)
	case "count":
		runQuery(e, rest, false)
	default:
		fmt.Printf("[ERROR] unknown command %q. Type help for a list of commands.\n", cmd)
	}
	return false
}

func splitCommand(stmt string) (cmd, rest string) {
	fields := strings.SplitN(stmt, " ", 2)
	cmd = strings.ToLower(fields[0])
	if len(fields) == 2 {
		rest = strings.TrimSpace(fields[1])
	}
	return cmd, rest
}

func runLoad(e *engine.Engine, path string) {
	if path == "" {
		fmt.Println("[ERROR] usage: load <path>")
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("[ERROR] %s\n", err)
		return
	}
	stats, err := e.LoadTriples(string(data))
	if err != nil {
		fmt.Printf("[ERROR] %s\n", err)
		fmt.Printf("Input file processing terminated due to error. %d triples already processed are retained.\n", stats.Count)
		return
	}
	fmt.Printf("%d triples loaded in %d ms.\n", stats.Count, stats.Elapsed.Milliseconds())
}

// runQuery implements evaluate_query(text, print_rows): it always prints
// the header and separator lines, but only emits rows when printRows is
// set; count runs the same plan and suppresses the rows entirely.
func runQuery(e *engine.Engine, query string, printRows bool) {
	if query == "" {
		fmt.Println("[ERROR] usage: select|count <query>")
		return
	}

	var rows []string
	emit := func(row []string) {
		if printRows {
			rows = append(rows, strings.Join(row, "\t"))
		}
	}
	proj, stats, err := e.Select(query, emit)
	if err != nil {
		fmt.Printf("[ERROR] %s\n", err)
		return
	}

	header := make([]string, len(proj))
	for i, v := range proj {
		header[i] = "?" + string(v)
	}

	fmt.Println(strings.Join(header, "\t"))
	fmt.Println("----------")
	for _, row := range rows {
		fmt.Println(row)
	}
	fmt.Println("----------")
	fmt.Printf("%d results returned in %d ms.\n", stats.Count, stats.Elapsed.Milliseconds())
}

func printHelp() {
	fmt.Println()
	fmt.Println("load <path>     - loads N-Triples from the given file into the index.")
	fmt.Println("select <query>  - runs a query and prints its rows.")
	fmt.Println("count <query>   - runs a query and prints only the result count.")
	fmt.Println("help            - prints this message.")
	fmt.Println("quit            - exits the REPL.")
	fmt.Println()
}
