// Package cli provides the interactive gophfund command-line client.
//
// It wires configuration, the local cache, the server transport and an
// interactive REPL that keeps working offline. Typical flow: restore the
// saved browsing preferences, start a background connectivity watcher,
// load the first page of the chosen filter and execute user commands.
//
// Key features:
//   - Filtered "load more" browsing of the campaign listing
//   - Category, search and sort refinement of what is loaded
//   - Card screens sized to the terminal width
//   - Campaign details and categories, from the cache when offline
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
