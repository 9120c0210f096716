// Package animals is the demonstration plug-in family: a handful of
// talking animals that register themselves at link time. Importing this
// package (even blank) is all it takes to make every animal available
// through the family registry.
package animals

import (
	"github.com/arthur-debert/plugreg/pkg/plugin"
)

// Animal is the capability interface for the demo family. Implementations
// register themselves from init() and are never referenced by name
// outside this package.
type Animal interface {
	// Name returns the animal's display name
	Name() string

	// Sound returns what the animal says
	Sound() string
}

// All returns every registered animal, in registration order
func All() []Animal {
	return plugin.Plugins[Animal]()
}
