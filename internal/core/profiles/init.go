// Package profiles registers the built-in field-extraction profiles with the
// core registry and loads additional profiles from YAML files.
// Import this package to ensure the built-ins are registered.
package profiles
