package animals

import (
	"github.com/arthur-debert/plugreg/pkg/plugin"
)

type bird struct{}

func (bird) Name() string  { return "Bird" }
func (bird) Sound() string { return "Tweet" }

func init() {
	plugin.MustRegister[Animal](bird{})
}
