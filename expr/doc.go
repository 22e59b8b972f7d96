// Package expr provides small, composable per-value transforms which can be
// attached to a DataFrame and evaluated lazily, when the DataFrame is run.
//
// An expression starts from a column (Col) or from the items of a list (Element),
// and is extended with transforms:
//
//	expr.Col("tags").StripPrefix("[").StripSuffix("]").Split(",").Eval(
//		expr.Element().StripPrefix("\"").StripSuffix("\"").Cast(&lazytab.Int64ColumnType{}),
//	)
//
// Nil values pass through every transform unchanged.
package expr
