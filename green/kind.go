package green

import (
	"strconv"
	"sync"
)

// Kind classifies a green node or token. The green layer attaches no
// meaning to a Kind; languages define their own values and may give them
// names with NameKind.
type Kind uint16

var kindNames sync.Map // Kind -> string

// NameKind associates a display name with k. It is intended to be called
// from package init functions of language front ends.
func NameKind(k Kind, name string) {
	kindNames.Store(k, name)
}

func (k Kind) String() string {
	if v, ok := kindNames.Load(k); ok {
		return v.(string)
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
