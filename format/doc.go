// Package format names the output formats of tree dumps.
package format
