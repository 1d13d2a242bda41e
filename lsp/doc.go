// Package lsp serves red trees to editors over the Language Server
// Protocol. Documents are synced in full: every change reparses the text,
// and requests are answered by walking the red tree of the latest
// version.
package lsp
