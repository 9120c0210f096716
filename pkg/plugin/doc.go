// Package plugin provides link-time plug-in registration: concrete
// implementations add themselves to a per-interface family registry
// from init() functions, and consumers enumerate a family through
// its interface type without ever naming the concrete types.
package plugin
