package animals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/plugreg/pkg/animals"
	"github.com/arthur-debert/plugreg/pkg/plugin"
)

func TestAll(t *testing.T) {
	all := animals.All()
	require.Len(t, all, 3)

	pairs := make(map[string]string, len(all))
	for _, a := range all {
		pairs[a.Name()] = a.Sound()
	}

	assert.Equal(t, map[string]string{
		"Cat":  "Meow",
		"Dog":  "Woof",
		"Bird": "Tweet",
	}, pairs)
}

func TestEnumerationIsStable(t *testing.T) {
	first := animals.All()
	second := animals.All()

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i], second[i], "position %d changed between enumerations", i)
	}
}

func TestRecordsMatchInstances(t *testing.T) {
	records := plugin.Records[animals.Animal]()
	instances := animals.All()

	require.Equal(t, len(instances), len(records))
	for i, rec := range records {
		assert.Equal(t, instances[i], rec.Instance())
	}
}

func TestUnrelatedFamilyIsUnaffected(t *testing.T) {
	// A family nobody registers into stays empty no matter how
	// populated its neighbors are.
	type command interface{ Run() error }

	assert.Empty(t, plugin.Plugins[command]())
	assert.Len(t, animals.All(), 3)
}
