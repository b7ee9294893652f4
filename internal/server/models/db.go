// Package models defines server-side rows persisted in PostgreSQL.
package models
