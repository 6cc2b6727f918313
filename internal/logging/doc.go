// Package logging provides a unified logging interface for the application.
// It abstracts the underlying zerolog implementation, allowing consistent
// structured logging across components while keeping call sites free of the
// backend's builder API.
package logging
