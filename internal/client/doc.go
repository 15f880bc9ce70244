// Package client implements the interactive admin application runtime.
//
// It wires configuration, the credential store, the HTTP adapter, the
// session store, services, and the terminal UI into a single process
// lifecycle. Because the adapter's credential is fixed at construction,
// a login or logout ends the current UI run and the runtime rebuilds the
// whole wiring from the freshly persisted token.
package client
