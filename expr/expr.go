package expr

import (
	"fmt"
	"strings"

	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/errors"
)

// step is a single transform within an Expr
type step struct {
	name       string
	eval       func(v interface{}) (interface{}, error)
	outputType func(in lazytab.ColumnType) (lazytab.ColumnType, error)
}

// Expr is an immutable chain of transforms applied to the values of a column, or to the items of a list
type Expr struct {
	column string
	alias  string
	steps  []step
}

// Col starts an expression which reads the column with the given name
func Col(name string) *Expr {
	return &Expr{column: name}
}

// Element starts an expression which is applied to every item of a list, via Eval
func Element() *Expr {
	return &Expr{}
}

// Column returns the name of the column this expression reads, or "" for an Element expression
func (e *Expr) Column() string {
	return e.column
}

// Name returns the name of the column this expression writes: its alias, if it has one, or the column it reads
func (e *Expr) Name() string {
	if len(e.alias) > 0 {
		return e.alias
	}
	return e.column
}

// String returns a textual representation of this expression
func (e *Expr) String() string {
	var res strings.Builder
	if len(e.column) > 0 {
		fmt.Fprintf(&res, "col(%s)", e.column)
	} else {
		res.WriteString("element()")
	}
	for _, s := range e.steps {
		fmt.Fprintf(&res, ".%s", s.name)
	}
	if len(e.alias) > 0 {
		fmt.Fprintf(&res, ".alias(%s)", e.alias)
	}
	return res.String()
}

// with produces a copy of this expression with an additional step
func (e *Expr) with(s step) *Expr {
	steps := make([]step, len(e.steps), len(e.steps)+1)
	copy(steps, e.steps)
	return &Expr{column: e.column, alias: e.alias, steps: append(steps, s)}
}

// Alias produces a copy of this expression which writes its result to a different column
func (e *Expr) Alias(name string) *Expr {
	return &Expr{column: e.column, alias: name, steps: e.steps}
}

// Apply evaluates this expression against a single value. Nil values produce nil.
func (e *Expr) Apply(v interface{}) (interface{}, error) {
	var err error
	for _, s := range e.steps {
		if v == nil {
			return nil, nil
		}
		if v, err = s.eval(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// OutputType computes the type of the values produced by this expression, given the type of its input
func (e *Expr) OutputType(in lazytab.ColumnType) (lazytab.ColumnType, error) {
	var err error
	for _, s := range e.steps {
		if in, err = s.outputType(in); err != nil {
			return nil, fmt.Errorf("%s: %w", e.String(), err)
		}
	}
	return in, nil
}

func requireString(op string) func(in lazytab.ColumnType) (lazytab.ColumnType, error) {
	return func(in lazytab.ColumnType) (lazytab.ColumnType, error) {
		if _, ok := in.(*lazytab.VarStringColumnType); !ok {
			return nil, fmt.Errorf("%s requires a string input, not %s", op, typeName(in))
		}
		return in, nil
	}
}

func typeName(t lazytab.ColumnType) string {
	if t == nil {
		return "nil"
	}
	return t.Name()
}

// StripPrefix removes prefix from the start of a string, if present. An absent prefix is not an error.
func (e *Expr) StripPrefix(prefix string) *Expr {
	return e.with(step{
		name: fmt.Sprintf("strip_prefix(%q)", prefix),
		eval: func(v interface{}) (interface{}, error) {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("strip_prefix expected a string, got %T", v)
			}
			return strings.TrimPrefix(s, prefix), nil
		},
		outputType: requireString("strip_prefix"),
	})
}

// StripSuffix removes suffix from the end of a string, if present. An absent suffix is not an error.
func (e *Expr) StripSuffix(suffix string) *Expr {
	return e.with(step{
		name: fmt.Sprintf("strip_suffix(%q)", suffix),
		eval: func(v interface{}) (interface{}, error) {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("strip_suffix expected a string, got %T", v)
			}
			return strings.TrimSuffix(s, suffix), nil
		},
		outputType: requireString("strip_suffix"),
	})
}

// Split divides a string into a list of strings on every occurrence of sep. An empty string produces an empty list.
func (e *Expr) Split(sep string) *Expr {
	return e.with(step{
		name: fmt.Sprintf("split(%q)", sep),
		eval: func(v interface{}) (interface{}, error) {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("split expected a string, got %T", v)
			}
			if len(s) == 0 {
				return []interface{}{}, nil
			}
			parts := strings.Split(s, sep)
			items := make([]interface{}, len(parts))
			for i, p := range parts {
				items[i] = p
			}
			return items, nil
		},
		outputType: func(in lazytab.ColumnType) (lazytab.ColumnType, error) {
			if len(sep) == 0 {
				return nil, fmt.Errorf("split separator must not be empty")
			}
			if _, err := requireString("split")(in); err != nil {
				return nil, err
			}
			return &lazytab.ListColumnType{Inner: &lazytab.VarStringColumnType{}}, nil
		},
	})
}

// Eval applies an Element expression to every item of a list. Nil items stay nil.
func (e *Expr) Eval(sub *Expr) *Expr {
	return e.with(step{
		name: fmt.Sprintf("eval(%s)", sub.String()),
		eval: func(v interface{}) (interface{}, error) {
			items, ok := v.([]interface{})
			if !ok {
				return nil, fmt.Errorf("eval expected a list, got %T", v)
			}
			res := make([]interface{}, len(items))
			for i, item := range items {
				out, err := sub.Apply(item)
				if err != nil {
					return nil, err
				}
				res[i] = out
			}
			return res, nil
		},
		outputType: func(in lazytab.ColumnType) (lazytab.ColumnType, error) {
			if len(sub.column) > 0 {
				return nil, fmt.Errorf("eval requires an element() expression, not %s", sub.String())
			}
			list, ok := in.(*lazytab.ListColumnType)
			if !ok {
				return nil, fmt.Errorf("eval requires a list input, not %s", typeName(in))
			}
			inner, err := sub.OutputType(list.Inner)
			if err != nil {
				return nil, err
			}
			return &lazytab.ListColumnType{Inner: inner}, nil
		},
	})
}

// Cast parses string values as the given scalar type. Casting a value to its own type is a no-op.
func (e *Expr) Cast(to lazytab.ScalarColumnType) *Expr {
	return e.with(step{
		name: fmt.Sprintf("cast(%s)", typeName(to)),
		eval: func(v interface{}) (interface{}, error) {
			s, ok := v.(string)
			if !ok {
				return v, nil
			}
			if _, isString := to.(*lazytab.VarStringColumnType); isString {
				return s, nil
			}
			res, err := to.Parse(s)
			if err != nil {
				return nil, &errors.ParseError{Value: s, Err: err}
			}
			return res, nil
		},
		outputType: func(in lazytab.ColumnType) (lazytab.ColumnType, error) {
			if to == nil {
				return nil, fmt.Errorf("cannot cast to a nil type")
			}
			if in != nil && in.Name() == to.Name() {
				return to, nil
			}
			if _, ok := in.(*lazytab.VarStringColumnType); !ok {
				return nil, fmt.Errorf("cast to %s requires a string input, not %s", to.Name(), typeName(in))
			}
			return to, nil
		},
	})
}
