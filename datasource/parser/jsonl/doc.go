// Package jsonl parses JSON Lines DataSources. This parser uses https://github.com/tidwall/gjson to process data, and supports Schema column names formatted as gjson paths.
// JSON arrays are parsed into list columns.
package jsonl
