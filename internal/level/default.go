package level

import (
	_ "embed"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

//go:embed levels.yaml
var builtin []byte

//go:embed schema.json
var schemaSource string

type document struct {
	Levels []game.Level `yaml:"levels"`
}

type DefaultParser struct {
	schema *jsonschema.Schema
}

func (p *DefaultParser) Parse(file string) (*Catalog, error) {
	if file == "" {
		return p.Decode(builtin)
	}
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, errors.Wrapf(err, "read %s", file)
	}
	c, err := p.Decode(data)
	if nil != err {
		return nil, errors.Wrap(err, file)
	}
	return c, nil
}

// Decode validates a YAML catalog against the schema and decodes it.
func (p *DefaultParser) Decode(data []byte) (*Catalog, error) {
	if err := p.validate(data); nil != err {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); nil != err {
		return nil, errors.Wrap(err, "decode levels")
	}

	c := &Catalog{levels: make(map[int]game.Level, len(doc.Levels))}
	for _, l := range doc.Levels {
		if _, ok := c.levels[l.Level]; ok {
			return nil, errors.Errorf("level %d defined twice", l.Level)
		}
		c.levels[l.Level] = l.Normalize()
	}
	return c, nil
}

// validate runs the schema over the document. The YAML tree is passed through
// JSON first so the validator sees JSON value types.
func (p *DefaultParser) validate(data []byte) error {
	if nil == p.schema {
		s, err := jsonschema.CompileString("schema.json", schemaSource)
		if nil != err {
			return errors.Wrap(err, "compile level schema")
		}
		p.schema = s
	}

	var tree interface{}
	if err := yaml.Unmarshal(data, &tree); nil != err {
		return errors.Wrap(err, "parse levels")
	}
	raw, err := json.Marshal(tree)
	if nil != err {
		return errors.Wrap(err, "convert levels")
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); nil != err {
		return errors.Wrap(err, "convert levels")
	}
	if err := p.schema.Validate(v); nil != err {
		return errors.Wrap(err, "invalid levels")
	}
	return nil
}
