package codecs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/plugreg/pkg/errors"
	"github.com/arthur-debert/plugreg/pkg/plugin"
)

// xmlCodec wraps a document-oriented encoder behind the same interface
// as the streaming codecs. It handles map- and slice-shaped values, the
// common case for config-style data; everything else is stringified.
type xmlCodec struct{}

func (xmlCodec) Name() string { return "xml" }
func (xmlCodec) Extensions() []string { return []string{".xml"} }

func (xmlCodec) Marshal(v any) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("document")
	buildElement(root, v)
	doc.Indent(2)

	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodecEncode, "could not encode XML")
	}
	return data, nil
}

func (xmlCodec) Unmarshal(data []byte, v any) error {
	out, ok := v.(*map[string]any)
	if !ok {
		return errors.New(errors.ErrCodecDecode, "xml codec can only decode into *map[string]any")
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return errors.Wrap(err, errors.ErrCodecDecode, "could not decode XML")
	}
	root := doc.Root()
	if root == nil {
		return errors.New(errors.ErrCodecDecode, "XML document has no root element")
	}

	parsed, ok := parseElement(root).(map[string]any)
	if !ok {
		return errors.New(errors.ErrCodecDecode, "XML root element holds no child elements")
	}
	*out = parsed
	return nil
}

// buildElement fills parent from v. Map keys become child elements in
// sorted order so output is deterministic; slice entries become
// repeated <item> elements.
func buildElement(parent *etree.Element, v any) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			buildElement(parent.CreateElement(k), val[k])
		}
	case []any:
		for _, entry := range val {
			buildElement(parent.CreateElement("item"), entry)
		}
	default:
		parent.SetText(fmt.Sprint(val))
	}
}

// parseElement is the inverse of buildElement: leaves come back as
// trimmed strings, repeated <item> children as a slice, anything else
// as a map.
func parseElement(el *etree.Element) any {
	children := el.ChildElements()
	if len(children) == 0 {
		return strings.TrimSpace(el.Text())
	}

	allItems := true
	for _, child := range children {
		if child.Tag != "item" {
			allItems = false
			break
		}
	}
	if allItems {
		items := make([]any, 0, len(children))
		for _, child := range children {
			items = append(items, parseElement(child))
		}
		return items
	}

	m := make(map[string]any, len(children))
	for _, child := range children {
		m[child.Tag] = parseElement(child)
	}
	return m
}

func init() {
	// Builder-form registration: a failed build drops only this codec.
	plugin.Register[Codec](func() (Codec, error) {
		return xmlCodec{}, nil
	})
}
