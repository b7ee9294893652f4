// Package cli implements the interactive SmartFridge terminal client: a small
// REPL that registers, logs in and out, shows the current session and reads
// or changes the app theme. The session token lives only in memory.
package cli
