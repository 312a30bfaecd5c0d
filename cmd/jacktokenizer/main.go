// Command jacktokenizer performs the Jack lexical scan over raw .jack
// source and emits the *_myT.xml token dump internal/token.Load (and so
// jackc) expects. It is kept as an independent binary so the
// compilation engine never depends on it.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/libklein/nand2tetris/jackcompiler/internal/diag"
	"github.com/libklein/nand2tetris/jackcompiler/internal/lexer"

	"github.com/teris-io/cli"
)

var description = strings.ReplaceAll(`
jacktokenizer scans one or more .jack source files and writes an XML
token dump beside each, suitable as input to jackc.
`, "\n", " ")

var app = cli.New(description).
	WithArg(cli.NewArg("path", "a .jack file, or a directory containing them").WithType(cli.TypeString)).
	WithAction(handle)

func main() {
	os.Exit(app.Run(os.Args, os.Stdout))
}

func handle(args []string, options map[string]string) int {
	if len(args) < 1 || args[0] == "" {
		fmt.Println("ERROR: missing required <path> argument, use --help")
		return 2
	}

	files, err := collectJackFiles(args[0])
	if err != nil {
		fmt.Println("ERROR:", err)
		return 2
	}
	if len(files) == 0 {
		fmt.Printf("ERROR: no .jack files found at %q\n", args[0])
		return 2
	}

	var totalErrors, totalWarnings int
	for _, file := range files {
		fmt.Printf("[INFO] Tokenizing: %s\n", file)
		outPath, errs, warns := tokenizeFile(file)
		totalErrors += errs
		totalWarnings += warns
		fmt.Printf("[OK] Saved: %s\n", outPath)
	}

	fmt.Println("[SUMMARY]")
	fmt.Printf(" Files processed: %d\n", len(files))
	fmt.Printf(" Total errors: %d\n", totalErrors)
	fmt.Printf(" Total warnings: %d\n", totalWarnings)
	return 0
}

func collectJackFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("path %q does not exist", path)
	}
	if !info.IsDir() {
		if filepath.Ext(path) != ".jack" {
			return nil, fmt.Errorf("input file %q must have a .jack extension", path)
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("could not read directory %q: %w", path, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".jack" {
			continue
		}
		files = append(files, filepath.Join(path, e.Name()))
	}
	return files, nil
}

func outputPath(jackFile string) string {
	return strings.TrimSuffix(jackFile, filepath.Ext(jackFile)) + "_myT.xml"
}

func tokenizeFile(path string) (outPath string, errs, warns int) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("ERROR:", err)
		return "", 1, 0
	}

	sink := diag.NewSink(path)
	tokens := lexer.Scan(src, sink)

	outPath = outputPath(path)
	f, err := os.Create(outPath)
	if err != nil {
		fmt.Println("ERROR:", err)
		return outPath, sink.Errors() + 1, sink.Warnings()
	}
	defer f.Close()

	if err := lexer.WriteXML(tokens, f); err != nil {
		fmt.Println("ERROR:", err)
	}

	sink.Report(os.Stdout)
	return outPath, sink.Errors(), sink.Warnings()
}
