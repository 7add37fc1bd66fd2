package value

import (
	"bytes"
	"encoding/base64"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SerializeYAML renders v as a YAML document. Map keys are sorted the same
// way as in Serialize; record type names are dropped. If encoding fails the
// canonical debug form is returned instead.
func SerializeYAML(v Value) string {
	node := yamlNode(v)

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(IndentWidth)

	if err := enc.Encode(node); err != nil {
		return Serialize(v)
	}

	if err := enc.Close(); err != nil {
		return Serialize(v)
	}

	return strings.TrimSuffix(buf.String(), "\n")
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

//nolint:cyclop // One case per variant.
func yamlNode(v Value) *yaml.Node {
	switch x := v.(type) {
	case nil, Null:
		return scalar("!!null", "null")
	case Bool:
		return scalar("!!bool", strconv.FormatBool(bool(x)))
	case Int:
		return scalar("!!int", strconv.FormatInt(int64(x), 10))
	case Uint:
		return scalar("!!int", strconv.FormatUint(uint64(x), 10))
	case Float:
		return scalar("!!float", yamlFloat(float64(x)))
	case String:
		node := scalar("!!str", string(x))
		if blockEligible(string(x)) {
			node.Style = yaml.LiteralStyle
		}

		return node
	case Bytes:
		return scalar("!!binary", base64.StdEncoding.EncodeToString(x))
	case Seq:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if len(x) == 0 {
			node.Style = yaml.FlowStyle
		}

		for _, item := range x {
			node.Content = append(node.Content, yamlNode(item))
		}

		return node
	case Record:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if len(x.Fields) == 0 {
			node.Style = yaml.FlowStyle
		}

		for _, f := range x.Fields {
			node.Content = append(node.Content, scalar("!!str", f.Key), yamlNode(f.Value))
		}

		return node
	case Map:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if len(x) == 0 {
			node.Style = yaml.FlowStyle
		}

		for _, e := range sortedEntries(x) {
			node.Content = append(node.Content, yamlKey(e.entry.Key, e.key), yamlNode(e.entry.Value))
		}

		return node
	case Opaque:
		var w writer

		w.opaque(x)

		return scalar("!!str", w.String())
	}

	return scalar("!!null", "null")
}

// yamlKey keeps scalar keys typed and flattens composite keys to their
// canonical debug text.
func yamlKey(key Value, serialized string) *yaml.Node {
	switch key.(type) {
	case Seq, Record, Map:
		return scalar("!!str", serialized)
	}

	return yamlNode(key)
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

	return FormatFloat(f)
}
