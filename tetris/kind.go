package tetris

// Kind identifies one of the seven canonical tetrominoes. The zero value is
// reserved for "no piece" so that an empty Cell has Kind None.
type Kind uint8

const (
	None Kind = iota
	I
	O
	T
	S
	Z
	L
	J
)

// Kinds lists the canonical kinds in catalog order.
var Kinds = [...]Kind{I, O, T, S, Z, L, J}

var kindNames = [...]string{"None", "I", "O", "T", "S", "Z", "L", "J"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Valid reports whether k is one of the seven canonical kinds.
func (k Kind) Valid() bool {
	return k >= I && k <= J
}
