package codecs

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/plugreg/pkg/errors"
	"github.com/arthur-debert/plugreg/pkg/plugin"
)

type tomlCodec struct{}

func (tomlCodec) Name() string { return "toml" }
func (tomlCodec) Extensions() []string { return []string{".toml"} }

func (tomlCodec) Marshal(v any) ([]byte, error) {
	data, err := toml.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodecEncode, "could not encode TOML")
	}
	return data, nil
}

func (tomlCodec) Unmarshal(data []byte, v any) error {
	if err := toml.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, errors.ErrCodecDecode, "could not decode TOML")
	}
	return nil
}

func init() {
	plugin.MustRegister[Codec](tomlCodec{})
}
