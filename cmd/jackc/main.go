// Command jackc compiles already-tokenized Jack classes (one *_myT.xml
// file per class) down to Hack VM instructions.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/libklein/nand2tetris/jackcompiler/internal/compiler"
	"github.com/libklein/nand2tetris/jackcompiler/internal/diag"
	"github.com/libklein/nand2tetris/jackcompiler/internal/symtab"
	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
	"github.com/libklein/nand2tetris/jackcompiler/internal/vmwriter"

	"github.com/teris-io/cli"
)

const tokenSuffix = "_myT.xml"

var description = strings.ReplaceAll(`
jackc compiles one or more tokenized Jack classes into the Hack VM's
textual stack-machine format. Each input is a *_myT.xml token dump
produced by a Jack tokenizer; the matching output is written beside it
with a .vm extension.
`, "\n", " ")

var app = cli.New(description).
	WithArg(cli.NewArg("path", "a *_myT.xml file, or a directory containing them").WithType(cli.TypeString)).
	WithOption(cli.NewOption("stdout", "also echo compiled VM instructions to stdout").WithType(cli.TypeBool)).
	WithOption(cli.NewOption("werror", "exit 1 if any input produced an error").WithType(cli.TypeBool)).
	WithAction(handle)

func main() {
	os.Exit(app.Run(os.Args, os.Stdout))
}

func handle(args []string, options map[string]string) int {
	if len(args) < 1 || args[0] == "" {
		fmt.Println("ERROR: missing required <path> argument, use --help")
		return 2
	}

	files, err := collectTokenFiles(args[0])
	if err != nil {
		fmt.Println("ERROR:", err)
		return 2
	}
	if len(files) == 0 {
		fmt.Printf("ERROR: no %s files found at %q\n", tokenSuffix, args[0])
		return 2
	}

	_, echo := options["stdout"]
	_, werror := options["werror"]

	var totalErrors, totalWarnings int
	for _, file := range files {
		fmt.Printf("[INFO] Compiling: %s\n", file)
		outPath, errs, warns := compileFile(file, echo)
		totalErrors += errs
		totalWarnings += warns
		fmt.Printf("[OK] Saved: %s\n", outPath)
	}

	fmt.Println("[SUMMARY]")
	fmt.Printf(" Files processed: %d\n", len(files))
	fmt.Printf(" Total errors: %d\n", totalErrors)
	fmt.Printf(" Total warnings: %d\n", totalWarnings)

	if werror && totalErrors > 0 {
		return 1
	}
	return 0
}

// collectTokenFiles resolves the positional argument into a concrete
// list of *_myT.xml files. A single file argument must itself carry the
// suffix; a directory is scanned non-recursively.
func collectTokenFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("path %q does not exist", path)
	}

	if !info.IsDir() {
		if !strings.HasSuffix(path, tokenSuffix) {
			return nil, fmt.Errorf("input file %q must end in %q", path, tokenSuffix)
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("could not read directory %q: %w", path, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), tokenSuffix) {
			continue
		}
		files = append(files, filepath.Join(path, e.Name()))
	}
	return files, nil
}

func outputPath(tokenFile string) string {
	base := strings.TrimSuffix(tokenFile, tokenSuffix)
	return base + ".vm"
}

func compileFile(path string, echo bool) (outPath string, errs, warns int) {
	sink := diag.NewSink(path)
	tokens := token.Load(path, sink)

	cursor := token.NewCursor(tokens)
	syms := symtab.New()
	out := vmwriter.New()

	compiler.New(cursor, sink, syms, out).Compile()

	lines := out.Lines()
	outPath = outputPath(path)
	if err := out.Save(outPath); err != nil {
		fmt.Println("ERROR:", err)
	}

	if echo {
		for _, line := range lines {
			fmt.Println(line)
		}
	}

	sink.Report(os.Stdout)
	return outPath, sink.Errors(), sink.Warnings()
}
