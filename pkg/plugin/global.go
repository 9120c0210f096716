package plugin

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/arthur-debert/plugreg/pkg/logging"
)

// sized is the family-erased view of a registry kept in the global
// index, so Families can report counts without knowing P.
type sized interface {
	Len() int
}

// Global per-family registries, keyed by the reflect.Type of the family
// interface. Each value is the *Registry[P] for its key's P. Registries
// are created lazily on first access and live until process teardown.
var (
	globalMu sync.RWMutex
	global   = make(map[reflect.Type]sized)
)

func familyType[P any]() reflect.Type {
	return reflect.TypeOf((*P)(nil)).Elem()
}

// For returns the process-wide registry for family P, creating it on
// first access. Querying a family that nothing has registered into is
// fine: the registry exists and enumerates as empty.
func For[P any]() *Registry[P] {
	key := familyType[P]()

	globalMu.RLock()
	reg, ok := global[key]
	globalMu.RUnlock()
	if ok {
		return reg.(*Registry[P])
	}

	globalMu.Lock()
	defer globalMu.Unlock()

	if reg, ok := global[key]; ok {
		return reg.(*Registry[P])
	}
	r := New[P]()
	global[key] = r
	return r
}

// Register constructs a plug-in instance with build and appends it to
// family P's registry. Meant to be called from an init() function in
// the implementing package, so every plug-in is registered before main
// runs and enumeration order is init order (import order, then file
// order within a package).
//
// A build error, panic, or nil result is swallowed: the failure is
// logged at warn level and the plug-in simply never appears in the
// family's enumeration. Sibling registrations are unaffected. This is
// deliberate policy, not a bug: one broken plug-in must not take down
// program startup or block the rest of the set, at the cost that
// consumers cannot tell a dropped plug-in from one that was never
// compiled in.
func Register[P any](build func() (P, error)) {
	logger := logging.GetLogger("plugin")
	family := familyType[P]().String()

	defer func() {
		if r := recover(); r != nil {
			logger.Warn().
				Str("family", family).
				Interface("panic", r).
				Msg("Plugin constructor panicked, plugin not registered")
		}
	}()

	instance, err := build()
	if err != nil {
		logger.Warn().
			Str("family", family).
			Err(err).
			Msg("Plugin constructor failed, plugin not registered")
		return
	}
	if isNil(instance) {
		logger.Warn().
			Str("family", family).
			Msg("Plugin constructor returned nil, plugin not registered")
		return
	}

	if err := For[P]().Register(newRecord(instance)); err != nil {
		logger.Warn().
			Str("family", family).
			Err(err).
			Msg("Plugin registration rejected, plugin not registered")
	}
}

// MustRegister appends an already-constructed instance to family P's
// registry, panicking on nil. Intended for init() functions where a nil
// instance is a programming error.
func MustRegister[P any](instance P) {
	if isNil(instance) {
		panic(fmt.Sprintf("plugin: nil instance registered for family %s", familyType[P]()))
	}
	if err := For[P]().Register(newRecord(instance)); err != nil {
		panic(fmt.Sprintf("plugin: %v", err))
	}
}

// Plugins returns every instance registered for family P, in
// registration order. Empty non-nil slice when nothing is registered.
func Plugins[P any]() []P {
	return For[P]().Plugins()
}

// Records returns every registration record for family P, in
// registration order.
func Records[P any]() []*Record[P] {
	return For[P]().Records()
}

// Each calls fn for every instance registered for family P, in
// registration order, stopping early if fn returns false.
func Each[P any](fn func(P) bool) {
	For[P]().Each(fn)
}

// Count returns the number of plug-ins registered for family P.
func Count[P any]() int {
	return For[P]().Len()
}

// FamilyInfo describes one family registry in the global index.
type FamilyInfo struct {
	Name  string // interface type name, e.g. "animals.Animal"
	Count int    // number of registered plug-ins
}

// Families returns every family registry created so far, sorted by
// name. Both registering into and querying a family creates its
// registry, so the list reflects observation as well as registration.
func Families() []FamilyInfo {
	globalMu.RLock()
	defer globalMu.RUnlock()

	infos := make([]FamilyInfo, 0, len(global))
	for t, reg := range global {
		infos = append(infos, FamilyInfo{Name: t.String(), Count: reg.Len()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// isNil reports whether v is nil either directly or through a typed
// nil pointer, which would otherwise hide behind a non-nil interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
