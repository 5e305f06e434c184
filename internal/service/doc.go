// Package service implements the signup use case on top of the domain
// contracts.
package service
