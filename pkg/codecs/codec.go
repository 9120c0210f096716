// Package codecs is a realistic plug-in family: serialization formats
// that register themselves at link time. Consumers pick a codec by name
// or file extension and never see the concrete types.
package codecs

import (
	"github.com/arthur-debert/plugreg/pkg/errors"
	"github.com/arthur-debert/plugreg/pkg/plugin"
)

// Codec is the capability interface for serialization plug-ins
type Codec interface {
	// Name returns the codec's short name, e.g. "json"
	Name() string

	// Extensions returns the file extensions this codec handles,
	// including the leading dot
	Extensions() []string

	// Marshal encodes a value into the codec's format
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into the value pointed to by v
	Unmarshal(data []byte, v any) error
}

// All returns every registered codec, in registration order
func All() []Codec {
	return plugin.Plugins[Codec]()
}

// Lookup finds a codec by name or by file extension
func Lookup(name string) (Codec, error) {
	var found Codec
	plugin.Each[Codec](func(c Codec) bool {
		if c.Name() == name {
			found = c
			return false
		}
		for _, ext := range c.Extensions() {
			if ext == name {
				found = c
				return false
			}
		}
		return true
	})

	if found == nil {
		return nil, errors.Newf(errors.ErrNotFound, "no codec registered for %q", name)
	}
	return found, nil
}
