package dsv

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/datasource"
	"github.com/netnote/lazytab/datasource/file"
	"github.com/netnote/lazytab/datasource/memory"
	"github.com/netnote/lazytab/expr"
	"github.com/netnote/lazytab/operations/transform"
	"github.com/netnote/lazytab/schema"
)

// Encapsulation is a prefix and suffix surrounding a value
type Encapsulation struct {
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`
}

// NoEncapsulation returns an empty Encapsulation, which disables stripping
func NoEncapsulation() *Encapsulation {
	return &Encapsulation{}
}

// LoadConf configures LoadLazy. Zero values are replaced by defaults.
type LoadConf struct {
	Separator         rune           // The single-byte separator between fields. Defaults to ,
	ListSeparator     string         // The separator between items in a list cell. Defaults to ,
	Schema            lazytab.Schema // The declared Schema. If nil, all columns are inferred and no list decoding happens.
	NoHeader          bool           // If true, the first line is data. Defaults to false.
	NullValues        []string       // Strings which represent nil values. Defaults to ["\N"]. Empty values are always nil.
	ListEncapsulation *Encapsulation // Stripped from list cells. Defaults to [ and ].
	ItemEncapsulation *Encapsulation // Stripped from list items. Defaults to " and ".
	PartitionSize     int            // The maximum number of rows per Partition. Defaults to 128.
	InferSchemaLength int            // The number of rows sampled when inferring column types. Defaults to 100.
	Comment           rune           // Lines beginning with the comment character are ignored. Defaults to none.
}

// withDefaults returns a copy of this LoadConf with defaults filled in
func (c *LoadConf) withDefaults() (*LoadConf, error) {
	res := &LoadConf{}
	if c != nil {
		*res = *c
	}
	if res.Separator == 0 {
		res.Separator = ','
	}
	if len(res.ListSeparator) == 0 {
		res.ListSeparator = ","
	}
	if res.NullValues == nil {
		res.NullValues = []string{`\N`}
	}
	if res.ListEncapsulation == nil {
		res.ListEncapsulation = &Encapsulation{Prefix: "[", Suffix: "]"}
	}
	if res.ItemEncapsulation == nil {
		res.ItemEncapsulation = &Encapsulation{Prefix: `"`, Suffix: `"`}
	}
	if res.PartitionSize <= 0 {
		res.PartitionSize = 128
	}
	if res.InferSchemaLength <= 0 {
		res.InferSchemaLength = 100
	}
	if res.Separator >= utf8.RuneSelf || res.Separator == '\n' || res.Separator == '\r' {
		return nil, fmt.Errorf("Separator %q must be a single byte, and not a line break", res.Separator)
	}
	if res.Comment != 0 && res.Comment == res.Separator {
		return nil, fmt.Errorf("Comment character %q cannot be the same as the Separator", res.Comment)
	}
	return res, nil
}

// sampler opens the first input, for reading the header and inference sample
type sampler func() (r io.ReadCloser, sourceName string, err error)

// LoadLazy produces a DataFrame over the delimited files matching path (a glob). Files ending in
// .lz4 are decompressed. Only the header and inference sample of the first file are read here:
// data rows, including list decoding, are materialized when the DataFrame is run.
func LoadLazy(path string, conf *LoadConf) (lazytab.DataFrame, error) {
	source := file.CreateDataSource(path)
	return load(source, func() (io.ReadCloser, string, error) {
		files, err := source.Files()
		if err != nil {
			return nil, "", err
		}
		r, err := file.Open(files[0])
		if err != nil {
			return nil, "", err
		}
		return r, files[0], nil
	}, conf)
}

// LoadLazyBytes is LoadLazy over in-memory buffers, each of which is treated as a separate file
func LoadLazyBytes(data [][]byte, conf *LoadConf) (lazytab.DataFrame, error) {
	return load(memory.CreateDataSource(data), func() (io.ReadCloser, string, error) {
		if len(data) == 0 {
			return nil, "", fmt.Errorf("No buffers to load")
		}
		return io.NopCloser(bytes.NewReader(data[0])), "memory[0]", nil
	}, conf)
}

func load(source lazytab.DataSource, sample sampler, conf *LoadConf) (lazytab.DataFrame, error) {
	conf, err := conf.withDefaults()
	if err != nil {
		return nil, err
	}
	declared := conf.Schema
	if declared != nil {
		if err := schema.Validate(declared); err != nil {
			return nil, err
		}
	}
	var header []string
	var rows [][]string
	if declared == nil || !conf.NoHeader {
		header, rows, err = readSample(sample, conf)
		if err != nil {
			return nil, err
		}
	}
	resolved, err := resolveSchema(declared, header, rows, conf)
	if err != nil {
		return nil, err
	}
	if err := checkListSeparator(resolved, conf); err != nil {
		return nil, err
	}
	headerLines := 1
	if conf.NoHeader {
		headerLines = 0
	}
	parser := CreateParser(&ParserConf{
		PartitionSize: conf.PartitionSize,
		HeaderLines:   headerLines,
		CheckHeader:   !conf.NoHeader,
		Delimiter:     conf.Separator,
		Comment:       conf.Comment,
		NilValues:     conf.NullValues,
	})
	scan, err := ScanSchema(resolved)
	if err != nil {
		return nil, err
	}
	frame := datasource.CreateDataFrame(source, parser, scan)
	decoders := listDecoders(resolved, conf)
	if len(decoders) == 0 {
		return frame, nil
	}
	return frame.To(transform.WithColumns(decoders...))
}

// checkListSeparator ensures list items can be told apart from fields
func checkListSeparator(s lazytab.Schema, conf *LoadConf) error {
	for _, t := range s.ColumnTypes() {
		if lazytab.IsList(t) && strings.ContainsRune(conf.ListSeparator, conf.Separator) {
			return fmt.Errorf("ListSeparator %q cannot contain the Separator %q", conf.ListSeparator, conf.Separator)
		}
	}
	return nil
}

// ScanSchema derives the Schema used to scan delimited text from a declared Schema.
// List columns are scanned as raw strings. Every other column keeps its type.
func ScanSchema(declared lazytab.Schema) (lazytab.Schema, error) {
	scan := schema.CreateSchema()
	err := declared.ForEachColumn(func(name string, col lazytab.Column) error {
		colType := col.Type()
		if lazytab.IsList(colType) {
			colType = &lazytab.VarStringColumnType{}
		}
		_, err := scan.CreateColumn(name, colType)
		return err
	})
	if err != nil {
		return nil, err
	}
	return scan, nil
}

// ListDecoder produces an expression which decodes the raw strings of a list column into items of
// type inner. Missing prefixes and suffixes are ignored. Nil cells stay nil.
func ListDecoder(col string, inner lazytab.ScalarColumnType, conf *LoadConf) (*expr.Expr, error) {
	conf, err := conf.withDefaults()
	if err != nil {
		return nil, err
	}
	return listDecoder(col, inner, conf), nil
}

func listDecoder(col string, inner lazytab.ScalarColumnType, conf *LoadConf) *expr.Expr {
	item := strip(expr.Element(), conf.ItemEncapsulation).Cast(inner)
	return strip(expr.Col(col), conf.ListEncapsulation).Split(conf.ListSeparator).Eval(item)
}

func strip(e *expr.Expr, enc *Encapsulation) *expr.Expr {
	if len(enc.Prefix) > 0 {
		e = e.StripPrefix(enc.Prefix)
	}
	if len(enc.Suffix) > 0 {
		e = e.StripSuffix(enc.Suffix)
	}
	return e
}

// listDecoders produces a decoding expression for every list column in a Schema
func listDecoders(s lazytab.Schema, conf *LoadConf) []*expr.Expr {
	var res []*expr.Expr
	s.ForEachColumn(func(name string, col lazytab.Column) error {
		if list, ok := col.Type().(*lazytab.ListColumnType); ok {
			// validated schemas only hold scalar list items
			res = append(res, listDecoder(name, list.Inner.(lazytab.ScalarColumnType), conf))
		}
		return nil
	})
	return res
}
