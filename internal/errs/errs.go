// Package errs defines the error types the API returns to clients.
//
// Every error that reaches the client is an HTTPError: a JSON shape with a
// machine-readable code, a human-readable message, and the HTTP status. The
// global error handler in the middleware package funnels all handler errors
// through these types.
package errs
