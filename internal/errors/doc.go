// Package apperrors defines the typed errors and process exit codes shared by
// every layer of the application.
//
// The statistics core distinguishes two failure families that must never be
// conflated: [ValidationError], raised when a numeric sequence is empty or
// contains an unusable element, and [ParseError], raised by the front ends
// when raw user text cannot be turned into numbers at all. Configuration
// problems surface as [ConfigError].
package apperrors
