// Package api implements the HTTP dispatcher shared by all facade services:
// bearer authentication, parameter serialization, rate-limited sending, and
// error envelope parsing.
package api
