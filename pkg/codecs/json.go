package codecs

import (
	"encoding/json"

	"github.com/arthur-debert/plugreg/pkg/errors"
	"github.com/arthur-debert/plugreg/pkg/plugin"
)

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }
func (jsonCodec) Extensions() []string { return []string{".json"} }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodecEncode, "could not encode JSON")
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, errors.ErrCodecDecode, "could not decode JSON")
	}
	return nil
}

func init() {
	plugin.MustRegister[Codec](jsonCodec{})
}
