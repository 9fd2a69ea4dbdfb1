// Package cli provides the interactive investprofile command-line client.
//
// It wires configuration, the local SQLite store and the application
// services, then runs a REPL. A session persisted by an earlier run is
// restored on start.
//
// Commands:
//   - register / login / logout / whoami
//   - questionnaire, profile, suggest, select <n>, portfolio
//   - catalog <category> (English or Portuguese category name)
//   - users / doctors / patients (no access control)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
