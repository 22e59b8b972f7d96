package dsv

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/netnote/lazytab/schema"
	"gopkg.in/yaml.v3"
)

// confFile is the YAML representation of a LoadConf
type confFile struct {
	Separator         string               `yaml:"separator"`
	ListSeparator     string               `yaml:"list_separator"`
	NoHeader          bool                 `yaml:"no_header"`
	NullValues        []string             `yaml:"null_values"`
	ListEncapsulation *Encapsulation       `yaml:"list_encapsulation"`
	ItemEncapsulation *Encapsulation       `yaml:"item_encapsulation"`
	PartitionSize     int                  `yaml:"partition_size"`
	InferSchemaLength int                  `yaml:"infer_schema_length"`
	Comment           string               `yaml:"comment"`
	Columns           []schema.Declaration `yaml:"columns"`
}

// ReadConfFile reads a LoadConf from a YAML file, such as:
//
//	separator: "|"
//	null_values: ["\\N", "NA"]
//	item_encapsulation: {prefix: "", suffix: ""}
//	columns:
//	  - {name: id, type: int64}
//	  - {name: tags, type: list<string>}
func ReadConfFile(path string) (*LoadConf, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	conf, err := ParseConf(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return conf, nil
}

// ParseConf reads a LoadConf from YAML
func ParseConf(data []byte) (*LoadConf, error) {
	var cf confFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	conf := &LoadConf{
		ListSeparator:     cf.ListSeparator,
		NoHeader:          cf.NoHeader,
		NullValues:        cf.NullValues,
		ListEncapsulation: cf.ListEncapsulation,
		ItemEncapsulation: cf.ItemEncapsulation,
		PartitionSize:     cf.PartitionSize,
		InferSchemaLength: cf.InferSchemaLength,
	}
	var err error
	if conf.Separator, err = singleRune("separator", cf.Separator); err != nil {
		return nil, err
	}
	if conf.Comment, err = singleRune("comment", cf.Comment); err != nil {
		return nil, err
	}
	if len(cf.Columns) > 0 {
		if conf.Schema, err = schema.FromDeclarations(cf.Columns); err != nil {
			return nil, err
		}
	}
	return conf, nil
}

// singleRune converts a one-character setting into a rune. An empty setting is 0.
func singleRune(field string, value string) (rune, error) {
	if len(value) == 0 {
		return 0, nil
	}
	if value == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("%s must be a single character, not %q", field, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}
