// Package activities adapts HTTP requests to the activity registry.
//
// Each handler parses its inputs first and answers 422 before the registry is
// consulted; registry failures map to 404 or 400 with the registry's message
// as the "detail" member.
package activities
