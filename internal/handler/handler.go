// Package handler is the first entry point for business logic after the
// router.
//
// It binds and validates requests using the validation package, calls the
// appropriate service, and writes JSON responses. It acts as the interface
// between the HTTP request and the core business logic.
package handler
