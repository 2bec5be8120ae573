package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"smartfit/config"
	"smartfit/internal/errors"
	"smartfit/internal/infra/docstore"
	"smartfit/internal/infra/firebase"
	logs "smartfit/internal/infra/log"

	"go.uber.org/fx"
)

// openStore builds the configured store the same way the services do.
func openStore(ctx context.Context) (docstore.Store, func(), error) {
	var store docstore.Store

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
		),
		firebase.Module,
		docstore.Module,
		fx.Populate(&store),
	)
	if err := app.Start(ctx); err != nil {
		return nil, nil, errors.Wrap(err, "failed to open store")
	}

	return store, func() {
		_ = app.Stop(context.Background())
	}, nil
}

func runImport(ctx context.Context, w io.Writer, file, path string, dryRun bool) error {
	tree, err := loadTree(file)
	if err != nil {
		return err
	}

	report := inspectTree(tree)
	if len(report.Problems) > 0 {
		return errors.Errorf("export has %d invalid keys, run validate for details", len(report.Problems))
	}
	if dryRun {
		fmt.Fprintf(w, "Dry run: %d collections, %d nodes\n", len(tree), report.Nodes)

		return nil
	}

	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	// One collection per write so a single oversized request does not fail the whole import.
	for _, name := range sortedNames(tree) {
		target := docstore.Join(path, name)
		if err := store.Create(ctx, target, "", tree[name]); err != nil {
			return errors.Wrapf(err, "write %s", target)
		}
		fmt.Fprintf(w, "  wrote %s\n", target)
	}

	fmt.Fprintf(w, "Import complete: %d collections\n", len(tree))

	return nil
}

func runExport(ctx context.Context, path, output string) error {
	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	dump, err := readTree(ctx, store, path)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return errors.Wrapf(err, "create %s", output)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(dump))
}

// readTree reads path, or every known collection when path is empty.
func readTree(ctx context.Context, store docstore.Store, path string) (any, error) {
	if path != "" {
		var raw json.RawMessage
		if err := store.Read(ctx, path, &raw); err != nil {
			return nil, errors.Wrapf(err, "read %q", path)
		}

		return raw, nil
	}

	tree := map[string]json.RawMessage{}
	for name := range collections {
		var raw json.RawMessage
		err := store.Read(ctx, name, &raw)
		switch {
		case err == nil:
			tree[name] = raw
		case errors.Is(err, docstore.ErrNotFound):
		default:
			return nil, errors.Wrapf(err, "read %q", name)
		}
	}

	return tree, nil
}
