// Package cli provides the interactive TaskKeeper command-line client.
//
// It wires configuration, the local store, the session context and the task
// list controller into a REPL. Typical flow: register or log in, then manage
// the task list; destructive commands (delete, clear) ask for confirmation
// before they take effect.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
