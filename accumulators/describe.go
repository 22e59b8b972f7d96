package accumulators

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/netnote/lazytab"
)

// Describer returns a factory for Describe Accumulators over the given numeric (or list) column
func Describer(colName string) lazytab.AccumulatorFactory {
	return func() lazytab.Accumulator {
		return &Describe{colName: colName}
	}
}

// Describe gathers the values of a numeric column in order to compute descriptive
// statistics. List columns are described by their lengths.
type Describe struct {
	colName string
	values  []float64
	nulls   uint64
}

// Description summarizes the distribution of a column
type Description struct {
	Column string
	Count  int
	Nulls  uint64
	Mean   float64
	StdDev float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// String renders a Description as a table
func (d *Description) String() string {
	var res strings.Builder
	fmt.Fprintf(&res, "column  %s\n", d.Column)
	fmt.Fprintf(&res, "count   %d\n", d.Count)
	fmt.Fprintf(&res, "nulls   %d\n", d.Nulls)
	if d.Count == 0 {
		return res.String()
	}
	fmt.Fprintf(&res, "mean    %g\n", d.Mean)
	fmt.Fprintf(&res, "std     %g\n", d.StdDev)
	fmt.Fprintf(&res, "min     %g\n", d.Min)
	fmt.Fprintf(&res, "25%%     %g\n", d.Q1)
	fmt.Fprintf(&res, "50%%     %g\n", d.Median)
	fmt.Fprintf(&res, "75%%     %g\n", d.Q3)
	fmt.Fprintf(&res, "max     %g\n", d.Max)
	return res.String()
}

// Accumulate adds a row to this Accumulator
func (a *Describe) Accumulate(row lazytab.Row) error {
	v, ok, err := numericValue(row, a.colName)
	if err != nil {
		return err
	} else if !ok {
		a.nulls++
		return nil
	}
	a.values = append(a.values, v)
	return nil
}

// Merge merges another Accumulator into this one
func (a *Describe) Merge(o lazytab.Accumulator) error {
	da, ok := o.(*Describe)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Describe Accumulator")
	}
	a.values = append(a.values, da.values...)
	a.nulls += da.nulls
	return nil
}

// GetDescription computes descriptive statistics from the gathered values.
// The standard deviation is the sample standard deviation.
func (a *Describe) GetDescription() (*Description, error) {
	d := &Description{Column: a.colName, Count: len(a.values), Nulls: a.nulls}
	if d.Count == 0 {
		return d, nil
	}
	var err error
	if d.Mean, err = stats.Mean(a.values); err != nil {
		return nil, err
	}
	if d.Count > 1 {
		if d.StdDev, err = stats.StandardDeviationSample(a.values); err != nil {
			return nil, err
		}
	}
	if d.Min, err = stats.Min(a.values); err != nil {
		return nil, err
	}
	if d.Max, err = stats.Max(a.values); err != nil {
		return nil, err
	}
	if d.Median, err = stats.Median(a.values); err != nil {
		return nil, err
	}
	quartiles, err := stats.Quartile(a.values)
	if err != nil {
		return nil, err
	}
	d.Q1, d.Q3 = quartiles.Q1, quartiles.Q3
	return d, nil
}
