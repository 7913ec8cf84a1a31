package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	contract "github.com/contractkit/contract"
	"github.com/contractkit/contract/i18n"
	"github.com/contractkit/contract/profile"
	"github.com/contractkit/contract/source"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	case "describe":
		describeCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "contractcheck CLI\n\nUsage:\n  contractcheck validate -schema profile.yaml -doc doc.json [-lang en|ja]\n  contractcheck describe -schema profile.yaml\n\nNotes:\n  - Schema profiles and documents may be YAML or JSON; the extension decides.")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaPath, docPath, lang string
	fs.StringVar(&schemaPath, "schema", "", "schema profile file (yaml/json)")
	fs.StringVar(&docPath, "doc", "", "document file to validate (yaml/json)")
	fs.StringVar(&lang, "lang", "en", "failure message language")
	_ = fs.Parse(args)
	if schemaPath == "" || docPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)

	c := loadSchema(schemaPath)
	data, err := os.ReadFile(docPath)
	if err != nil {
		fatalf("read document: %v", err)
	}

	ctx := context.Background()
	if isYAML(docPath) {
		err = source.CheckYAML(ctx, c, data)
	} else {
		err = source.CheckJSON(ctx, c, data)
	}
	if err != nil {
		if f, ok := contract.AsFailure(err); ok {
			where := f.Path
			if where == "" {
				where = "(document)"
			}
			fmt.Fprintf(os.Stderr, "invalid: %s: %s [%s]\n", where, f.Message, f.Code)
			os.Exit(1)
		}
		fatalf("check: %v", err)
	}
	fmt.Println("ok")
}

func describeCmd(args []string) {
	fs := flag.NewFlagSet("describe", flag.ExitOnError)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "", "schema profile file (yaml/json)")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	fmt.Println(loadSchema(schemaPath).String())
}

func loadSchema(path string) contract.Contract {
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("read schema: %v", err)
	}
	var c contract.Contract
	if isYAML(path) {
		c, err = profile.FromYAML(data)
	} else {
		c, err = profile.FromJSON(data)
	}
	if err != nil {
		fatalf("build schema: %v", err)
	}
	return c
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
