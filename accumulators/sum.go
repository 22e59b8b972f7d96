package accumulators

import (
	"fmt"

	"github.com/netnote/lazytab"
)

// Adder returns a factory for Sum Accumulators over the given numeric column
func Adder(colName string) lazytab.AccumulatorFactory {
	return func() lazytab.Accumulator {
		return &Sum{colName: colName}
	}
}

// Sum sums the values of a numeric column. Nil values are skipped.
type Sum struct {
	colName string
	sum     float64
}

// GetSum returns the sum from this Accumulator
func (a *Sum) GetSum() float64 {
	return a.sum
}

// Accumulate adds a row to this Accumulator
func (a *Sum) Accumulate(row lazytab.Row) error {
	v, ok, err := numericValue(row, a.colName)
	if err != nil {
		return err
	} else if ok {
		a.sum += v
	}
	return nil
}

// Merge merges another Accumulator into this one
func (a *Sum) Merge(o lazytab.Accumulator) error {
	sa, ok := o.(*Sum)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Sum Accumulator")
	}
	a.sum += sa.sum
	return nil
}
