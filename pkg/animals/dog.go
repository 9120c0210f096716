package animals

import (
	"github.com/arthur-debert/plugreg/pkg/plugin"
)

type dog struct{}

func (dog) Name() string  { return "Dog" }
func (dog) Sound() string { return "Woof" }

func init() {
	plugin.MustRegister[Animal](dog{})
}
