package animals

import (
	"github.com/arthur-debert/plugreg/pkg/plugin"
)

type cat struct{}

func (cat) Name() string  { return "Cat" }
func (cat) Sound() string { return "Meow" }

func init() {
	plugin.MustRegister[Animal](cat{})
}
