// Package service contains the business logic.
//
// It sits between the handler layer and the dataset store: it receives
// validated data from handlers, queries the store, and translates store-level
// absences into the API's error types.
package service
