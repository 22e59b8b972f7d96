package dsv

import (
	"io"

	"github.com/netnote/lazytab"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	PartitionSize int      // The maximum number of rows per Partition. Defaults to 128.
	HeaderLines   int      // The number of (non-blank, non-comment) lines to ignore from the beginning of each file. Defaults to 0.
	CheckHeader   bool     // If true, the last header line of each file must name the schema's columns, in order.
	Delimiter     rune     // The delimiter separating columns in the file. Defaults to ,
	Comment       rune     // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValues     []string // Special strings which represent nil values in the dataset. Empty values are always nil.
}

// Parser produces partitions from DSV data. Quotes are never interpreted.
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.PartitionSize == 0 {
		conf.PartitionSize = 128
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// PartitionSize returns the maximum size in rows of Partitions produced by this Parser
func (p *Parser) PartitionSize() int {
	return p.conf.PartitionSize
}

// Parse parses DSV data to produce Partitions. Rows are not read until Partitions are requested.
func (p *Parser) Parse(r io.Reader, source lazytab.DataSource, sourceName string, schema lazytab.Schema, onIteratorEnd func()) (lazytab.PartitionIterator, error) {
	iterator := &dsvFilePartitionIterator{
		parser:       p,
		reader:       newLineReader(r, p.conf.Delimiter, p.conf.Comment),
		hasNext:      true,
		source:       source,
		sourceName:   sourceName,
		schema:       schema,
		endListeners: []func(){},
	}
	if onIteratorEnd != nil {
		iterator.OnEnd(onIteratorEnd)
	}
	return iterator, nil
}
