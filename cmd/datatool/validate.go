package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"smartfit/internal/errors"
	"smartfit/internal/infra/docstore"
)

// collections are the top-level nodes the services read. Others are reported but allowed.
//
//nolint:gochecknoglobals
var collections = map[string]bool{
	"employees":               true,
	"employeeActivations":     true,
	"shop":                    true,
	"customers":               true,
	"admins":                  true,
	"shoe":                    true,
	"wishlist":                true,
	"carts":                   true,
	"devices":                 true,
	"ar_customization_models": true,
	"credentials":             true,
}

// treeReport summarizes a document tree.
type treeReport struct {
	Nodes    int
	Problems []string
	Unknown  []string
}

func runValidate(w io.Writer, file string) error {
	fmt.Fprintf(w, "Validating export: %s\n", file)

	tree, err := loadTree(file)
	if err != nil {
		return err
	}

	report := inspectTree(tree)
	for _, name := range report.Unknown {
		fmt.Fprintf(w, "  unknown collection: %s\n", name)
	}
	for _, problem := range report.Problems {
		fmt.Fprintf(w, "  invalid: %s\n", problem)
	}
	if len(report.Problems) > 0 {
		return errors.Errorf("%d invalid keys in %d nodes", len(report.Problems), report.Nodes)
	}

	fmt.Fprintf(w, "Validation passed: %d nodes\n", report.Nodes)

	return nil
}

func loadTree(file string) (map[string]any, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", file)
	}

	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, errors.Wrapf(err, "decode %s", file)
	}

	return tree, nil
}

// inspectTree checks every key against the store's key rules.
func inspectTree(tree map[string]any) treeReport {
	var report treeReport

	for _, name := range sortedNames(tree) {
		if !collections[name] {
			report.Unknown = append(report.Unknown, name)
		}
		walk(name, name, tree[name], &report)
	}

	return report
}

func walk(path, key string, value any, report *treeReport) {
	report.Nodes++
	if err := docstore.ValidateKey(key); err != nil {
		report.Problems = append(report.Problems, path+": "+err.Error())
	}

	children, ok := value.(map[string]any)
	if !ok {
		return
	}
	for _, name := range sortedNames(children) {
		walk(path+"/"+name, name, children[name], report)
	}
}

func sortedNames(m map[string]any) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
