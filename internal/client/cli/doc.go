// Package cli provides the interactive BlogsApp terminal client.
//
// It wires configuration, local token storage, the REST API client, the
// session store and the services into a REPL whose commands mirror the
// app's views: the home page with search, post details with threaded
// comments, login and registration, the user's dashboard and profile.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
