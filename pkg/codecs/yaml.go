package codecs

import (
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/plugreg/pkg/errors"
	"github.com/arthur-debert/plugreg/pkg/plugin"
)

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }
func (yamlCodec) Extensions() []string { return []string{".yaml", ".yml"} }

func (yamlCodec) Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodecEncode, "could not encode YAML")
	}
	return data, nil
}

func (yamlCodec) Unmarshal(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, errors.ErrCodecDecode, "could not decode YAML")
	}
	return nil
}

func init() {
	plugin.MustRegister[Codec](yamlCodec{})
}
