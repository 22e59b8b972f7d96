package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/accumulators"
	"github.com/netnote/lazytab/datasource/parser/dsv"
	"github.com/netnote/lazytab/local"
	"github.com/netnote/lazytab/operations/util"
	"github.com/spf13/cobra"
)

func newHeadCmd() *cobra.Command {
	var f loadFlags
	var numRows int
	cmd := &cobra.Command{
		Use:   "head [path]",
		Short: "Print the first rows of a file, with list columns decoded",
		Long: `Print the first rows of the files matching path (a glob), with list columns decoded.

Example: lazytab head 'data/*.psv' --sep '|' --schema 'id:int64,tags:list<string>' -n 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if numRows <= 0 {
				return fmt.Errorf("-n must be positive")
			}
			frame, err := load(cmd, &f, args[0])
			if err != nil {
				return err
			}
			// every collected Partition holds at least one row
			frame, err = frame.To(util.Collect(numRows))
			if err != nil {
				return err
			}
			res, err := local.Run(cmd.Context(), frame, f.options())
			if err != nil {
				return err
			}
			return printRows(cmd.OutOrStdout(), res.Schema, res.Collected, numRows)
		},
	}
	addLoadFlags(cmd, &f)
	cmd.Flags().IntVarP(&numRows, "rows", "n", 10, "Number of rows to print")
	return cmd
}

func newCountCmd() *cobra.Command {
	var f loadFlags
	var nullsOf string
	cmd := &cobra.Command{
		Use:   "count [path]",
		Short: "Count the rows of a file",
		Long: `Count the rows of the files matching path (a glob). With --nulls, the number of
nil values in a column is printed after the row count.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frame, err := load(cmd, &f, args[0])
			if err != nil {
				return err
			}
			var counter lazytab.AccumulatorFactory = accumulators.Counter
			if len(nullsOf) > 0 {
				if !frame.GetSchema().HasColumn(nullsOf) {
					return fmt.Errorf("No column named %s", nullsOf)
				}
				counter = accumulators.NullCounter(nullsOf)
			}
			frame, err = frame.To(util.Accumulate(counter))
			if err != nil {
				return err
			}
			res, err := local.Run(cmd.Context(), frame, f.options())
			if err != nil {
				return err
			}
			count := res.Accumulated.(*accumulators.Count)
			if len(nullsOf) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\n", count.GetCount(), count.GetNullCount())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), count.GetCount())
			}
			return nil
		},
	}
	addLoadFlags(cmd, &f)
	cmd.Flags().StringVar(&nullsOf, "nulls", "", "Also count nil values in this column")
	return cmd
}

func newDescribeCmd() *cobra.Command {
	var f loadFlags
	cmd := &cobra.Command{
		Use:   "describe [path] [column]",
		Short: "Print descriptive statistics for a numeric or list column",
		Long: `Print descriptive statistics for a column. Numeric columns are described by value,
and list columns by length.

Example: lazytab describe tags.psv tags --sep '|' --schema 'id:int64,tags:list<string>'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			frame, err := load(cmd, &f, args[0])
			if err != nil {
				return err
			}
			frame, err = frame.To(util.Accumulate(accumulators.Describer(args[1])))
			if err != nil {
				return err
			}
			res, err := local.Run(cmd.Context(), frame, f.options())
			if err != nil {
				return err
			}
			desc, err := res.Accumulated.(*accumulators.Describe).GetDescription()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), desc.String())
			return nil
		},
	}
	addLoadFlags(cmd, &f)
	return cmd
}

func load(cmd *cobra.Command, f *loadFlags, path string) (lazytab.DataFrame, error) {
	conf, err := f.loadConf(cmd)
	if err != nil {
		return nil, err
	}
	return dsv.LoadLazy(path, conf)
}

// printRows writes up to limit rows as tab-separated values, preceded by column names
func printRows(w io.Writer, s lazytab.Schema, parts []lazytab.CollectedPartition, limit int) error {
	names := s.ColumnNames()
	types := s.ColumnTypes()
	if _, err := fmt.Fprintln(w, strings.Join(names, "\t")); err != nil {
		return err
	}
	printed := 0
	values := make([]string, len(names))
	for _, part := range parts {
		for i := 0; i < part.GetNumRows() && printed < limit; i++ {
			row := part.GetRow(i)
			for j, name := range names {
				if row.IsNil(name) {
					values[j] = "null"
					continue
				}
				v, err := row.Get(name)
				if err != nil {
					return err
				}
				values[j] = formatValue(types[j], v)
			}
			if _, err := fmt.Fprintln(w, strings.Join(values, "\t")); err != nil {
				return err
			}
			printed++
		}
	}
	return nil
}

// formatValue renders a value for tab-separated output. Strings are printed unquoted.
func formatValue(colType lazytab.ColumnType, v interface{}) string {
	switch t := colType.(type) {
	case *lazytab.VarStringColumnType:
		return v.(string)
	case *lazytab.ListColumnType:
		items := v.([]interface{})
		res := make([]string, len(items))
		for i, item := range items {
			if item == nil {
				res[i] = "null"
			} else {
				res[i] = formatValue(t.Inner, item)
			}
		}
		return "[" + strings.Join(res, ", ") + "]"
	default:
		return colType.ToString(v)
	}
}
