// Package textutil holds small generic helpers shared by the presentation
// packages.
package textutil
