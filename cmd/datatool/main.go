package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"smartfit/internal/errors"
)

// Supported subcommands:
// - validate: Check a JSON export against the document key rules
// - import:   Write a JSON export into the configured store
// - export:   Dump a subtree of the configured store as JSON

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)

	validateFile := validateCmd.String("file", "", "JSON export to check")

	importFile := importCmd.String("file", "", "JSON export to write")
	importPath := importCmd.String("path", "", "Store path to write under (default: root)")
	importDryRun := importCmd.Bool("dry-run", false, "Validate and report without writing")

	exportPath := exportCmd.String("path", "", "Store path to dump (default: every known collection)")
	exportOutput := exportCmd.String("output", "", "Output file (default: stdout)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	flags := datatoolFlags{
		Validate: validateFlags{cmd: validateCmd, file: validateFile},
		Import:   importFlags{cmd: importCmd, file: importFile, path: importPath, dryRun: importDryRun},
		Export:   exportFlags{cmd: exportCmd, path: exportPath, output: exportOutput},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type datatoolFlags struct {
	Validate validateFlags
	Import   importFlags
	Export   exportFlags
}

type validateFlags struct {
	cmd  *flag.FlagSet
	file *string
}

type importFlags struct {
	cmd    *flag.FlagSet
	file   *string
	path   *string
	dryRun *bool
}

type exportFlags struct {
	cmd    *flag.FlagSet
	path   *string
	output *string
}

func runSubcommand(ctx context.Context, flags *datatoolFlags) error {
	switch os.Args[1] {
	case "validate":
		return handleValidate(flags)
	case "import":
		return handleImport(ctx, flags)
	case "export":
		return handleExport(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleValidate(flags *datatoolFlags) error {
	if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}
	if *flags.Validate.file == "" {
		return errors.New("--file flag is required for validate command")
	}

	return runValidate(os.Stdout, *flags.Validate.file)
}

func handleImport(ctx context.Context, flags *datatoolFlags) error {
	if err := flags.Import.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse import flags")
	}
	if *flags.Import.file == "" {
		return errors.New("--file flag is required for import command")
	}

	return runImport(ctx, os.Stdout, *flags.Import.file, *flags.Import.path, *flags.Import.dryRun)
}

func handleExport(ctx context.Context, flags *datatoolFlags) error {
	if err := flags.Export.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse export flags")
	}

	return runExport(ctx, *flags.Export.path, *flags.Export.output)
}

func printUsage() {
	fmt.Println("Usage: datatool <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  validate    Check a JSON export against the document key rules")
	fmt.Println("  import      Write a JSON export into the configured store")
	fmt.Println("  export      Dump a subtree of the configured store as JSON")
	fmt.Println("")
	fmt.Println("The store is selected by the service configuration (store.provider).")
	fmt.Println("Use 'datatool <command> -h' for more information about a command.")
}
