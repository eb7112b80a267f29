// Package assets provides the embedded output templates and stylesheet for
// wallet sheet rendering.
package assets
