// Package form decodes url-encoded form values into tagged structs.
package form
