// Package accumulators provides Accumulators which fold the rows of a DataFrame into a single result, for use with util.Accumulate
package accumulators
