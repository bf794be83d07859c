package jsonvalue

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ParseYAML builds a tree from the first document in data. Mapping order
// is kept; anchors and aliases are expanded.
func ParseYAML(data []byte) (*Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "jsonvalue: parse yaml")
	}
	v := &Value{}
	if err := v.UnmarshalYAML(&doc); err != nil {
		return nil, err
	}
	return v, nil
}

// ToYAML renders v as a YAML document.
func ToYAML(v *Value) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "jsonvalue: render yaml")
	}
	return out, nil
}

// UnmarshalYAML replaces v with the content of n.
func (v *Value) UnmarshalYAML(n *yaml.Node) error {
	c, err := fromYAML(n, 0)
	if err != nil {
		return err
	}
	v.Move(c)
	return nil
}

// MarshalYAML returns v as a yaml.Node so mappings keep their order.
func (v *Value) MarshalYAML() (interface{}, error) {
	return v.yamlNode(), nil
}

const maxYAMLDepth = 1000

func fromYAML(n *yaml.Node, depth int) (*Value, error) {
	if depth > maxYAMLDepth {
		return nil, errors.Errorf("jsonvalue: yaml nested deeper than %d at line %d", maxYAMLDepth, n.Line)
	}
	switch n.Kind {
	case 0:
		return &Value{}, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return &Value{}, nil
		}
		return fromYAML(n.Content[0], depth+1)
	case yaml.AliasNode:
		return fromYAML(n.Alias, depth+1)
	case yaml.SequenceNode:
		a := New(Array)
		for _, c := range n.Content {
			e, err := fromYAML(c, depth+1)
			if err != nil {
				return nil, err
			}
			a.array().Append(a.adopt(e))
		}
		return a, nil
	case yaml.MappingNode:
		o := New(Object)
		for i := 0; i+1 < len(n.Content); i += 2 {
			e, err := fromYAML(n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			o.Member(n.Content[i].Value).Move(e)
		}
		return o, nil
	case yaml.ScalarNode:
		return scalarFromYAML(n)
	}
	return nil, errors.Errorf("jsonvalue: unexpected yaml node kind %d at line %d", n.Kind, n.Line)
}

func scalarFromYAML(n *yaml.Node) (*Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return &Value{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, errors.Wrapf(err, "jsonvalue: yaml line %d", n.Line)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return Int(i), nil
		}
		fallthrough
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, errors.Wrapf(err, "jsonvalue: yaml line %d", n.Line)
		}
		return Float(f), nil
	default:
		return Str(n.Value), nil
	}
}

func (v *Value) yamlNode() *yaml.Node {
	switch v.Type() {
	case Boolean:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.value.(bool))}
	case Integer:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v.value.(int64), 10)}
	case Number:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: yamlFloat(v.value.(float64))}
	case String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.value.(string)}
	case Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, c := range v.array().All() {
			n.Content = append(n.Content, c.yamlNode())
		}
		return n
	case Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, c := range v.object().All() {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				c.yamlNode())
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		s += ".0"
	}
	return s
}
