package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/netnote/lazytab/datasource/parser/dsv"
	"github.com/netnote/lazytab/local"
	"github.com/netnote/lazytab/logging"
	"github.com/netnote/lazytab/schema"
	"github.com/spf13/cobra"
)

// loadFlags are the flags shared by every command which loads a file
type loadFlags struct {
	sep             string
	listSep         string
	schema          string
	config          string
	noHeader        bool
	nulls           []string
	listBrackets    string
	itemQuote       string
	workers         int
	ignoreRowErrors bool
	verbose         bool
}

func envOr(key string, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func addLoadFlags(cmd *cobra.Command, f *loadFlags) {
	nulls := []string{`\N`}
	if v, ok := os.LookupEnv("LAZYTAB_NULL"); ok {
		nulls = strings.Split(v, ",")
	}
	cmd.Flags().StringVar(&f.sep, "sep", envOr("LAZYTAB_SEP", ","), "Field separator (a single character, or \\t)")
	cmd.Flags().StringVar(&f.listSep, "list-sep", envOr("LAZYTAB_LIST_SEP", ","), "Separator between items of a list cell")
	cmd.Flags().StringVar(&f.schema, "schema", "", "Column declarations, e.g. 'id:int64,tags:list<string>'")
	cmd.Flags().StringVar(&f.config, "config", "", "YAML loader configuration file")
	cmd.Flags().BoolVar(&f.noHeader, "no-header", false, "The first line is data, not a header")
	cmd.Flags().StringSliceVar(&f.nulls, "null", nulls, "Strings which represent null values")
	cmd.Flags().StringVar(&f.listBrackets, "list-brackets", "[]", "Prefix and suffix of list cells, as two characters (empty disables stripping)")
	cmd.Flags().StringVar(&f.itemQuote, "item-quote", `"`, "Quote character around list items (empty disables stripping)")
	cmd.Flags().IntVar(&f.workers, "workers", envIntOr("LAZYTAB_WORKERS", 0), "Number of files loaded concurrently (defaults to the number of CPUs)")
	cmd.Flags().BoolVar(&f.ignoreRowErrors, "ignore-row-errors", false, "Log row transformation errors instead of failing")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log stage progress")
}

// loadConf builds a LoadConf from a config file (if any), overridden by flags which were set explicitly
func (f *loadFlags) loadConf(cmd *cobra.Command) (*dsv.LoadConf, error) {
	conf := &dsv.LoadConf{}
	if len(f.config) > 0 {
		var err error
		if conf, err = dsv.ReadConfFile(f.config); err != nil {
			return nil, err
		}
	}
	// flags override the config file only when they were given, or when there is no config file
	use := func(name string) bool {
		return len(f.config) == 0 || cmd.Flags().Changed(name)
	}
	if use("sep") {
		r, err := parseRune(f.sep)
		if err != nil {
			return nil, fmt.Errorf("--sep: %w", err)
		}
		conf.Separator = r
	}
	if use("list-sep") {
		conf.ListSeparator = f.listSep
	}
	if use("no-header") {
		conf.NoHeader = f.noHeader
	}
	if use("null") {
		conf.NullValues = f.nulls
	}
	if use("list-brackets") {
		switch utf8.RuneCountInString(f.listBrackets) {
		case 0:
			conf.ListEncapsulation = dsv.NoEncapsulation()
		case 2:
			r, size := utf8.DecodeRuneInString(f.listBrackets)
			conf.ListEncapsulation = &dsv.Encapsulation{Prefix: string(r), Suffix: f.listBrackets[size:]}
		default:
			return nil, fmt.Errorf("--list-brackets must be empty or two characters, not %q", f.listBrackets)
		}
	}
	if use("item-quote") {
		conf.ItemEncapsulation = &dsv.Encapsulation{Prefix: f.itemQuote, Suffix: f.itemQuote}
	}
	if len(f.schema) > 0 {
		decls, err := schema.ParseDeclarations(f.schema)
		if err != nil {
			return nil, err
		}
		if conf.Schema, err = schema.FromDeclarations(decls); err != nil {
			return nil, err
		}
	}
	return conf, nil
}

func (f *loadFlags) options() *local.Options {
	opts := &local.Options{
		NumWorkers:      f.workers,
		IgnoreRowErrors: f.ignoreRowErrors,
	}
	if f.verbose {
		opts.LogLevel = logging.DebugLevel
	}
	return opts
}

func parseRune(value string) (rune, error) {
	if value == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("must be a single character, not %q", value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}
