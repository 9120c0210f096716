package plugin

// noCopy makes `go vet`'s copylocks check flag any value copy of the
// enclosing struct.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Record binds one concrete plug-in instance to its family registry.
// The record owns its instance for the life of the process; consumers
// only ever borrow it through Instance. A record's identity is its
// address, which is what the registry holds, so records must not be
// copied (the noCopy field makes go vet reject copies).
type Record[P any] struct {
	noCopy   noCopy
	instance P
}

// newRecord wraps an already-constructed instance. Records only come
// into existence through registration, so construction stays internal.
func newRecord[P any](instance P) *Record[P] {
	return &Record[P]{instance: instance}
}

// Instance returns the owned plug-in typed as the family interface.
// It never fails for a record obtained from a registry.
func (r *Record[P]) Instance() P {
	return r.instance
}
