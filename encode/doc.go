// Package encode writes dumps of red trees: every element with its kind,
// absolute text range and, for tokens, text.
//
//	encode.Encode(root, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// The text format indents one level per tree level and can be colorized
// with EncodeColors(NewColors()).
package encode
