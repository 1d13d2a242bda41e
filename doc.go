// Package syntree ties the layers of the module together: text is parsed
// by package parse into an immutable green tree, wrapped by package red
// for positions and navigation, and edited by path copying.
//
// A Document holds a text and its red root. Elements of a document are
// addressed by a Path of child indices:
//
//	doc, _ := syntree.Parse([]byte(`{a: 1, b: 2}`))
//	e, _ := doc.Get(syntree.MustPath("0.4.3"))  // the token "2"
//	doc2, _, _ := doc.Replace(syntree.MustPath("0.4.3"), []byte("[2, 3]"))
//
// Replace never modifies doc: both versions remain usable and share every
// green node off the edited path.
package syntree
