// Package cli provides the interactive TeamUp command-line client.
//
// It wires configuration, the persisted session store, the API client and
// the per-page controllers into an interactive REPL. Typical flow: resume
// the persisted session if one validates, otherwise prompt for credentials,
// then execute page commands.
//
// Key features:
//   - Register / Login / Logout with a persisted session
//   - Home feed of popular posts, post detail with comments
//   - Join requests: send, and accept/reject received ones
//   - Profile, teams, courses and messages dashboards
//   - Debounce-free interactive course and post search
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
