package tetris

import (
	"fmt"
)

// baseShapes holds the spawn orientation of every kind, tight to its cells.
var baseShapes = map[Kind]Shape{
	I: MustShape("####"),
	O: MustShape("##", "##"),
	T: MustShape(".#.", "###"),
	S: MustShape("##.", ".##"),
	Z: MustShape(".##", "##."),
	L: MustShape("#..", "###"),
	J: MustShape("..#", "###"),
}

// BaseShape returns the spawn orientation of k.
func BaseShape(k Kind) Shape {
	return baseShapes[k]
}

// Rand is the random source the catalog draws kinds from. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// Randomizer selects how the catalog orders kinds.
type Randomizer string

const (
	// RandomUniform draws every kind independently with equal probability.
	RandomUniform Randomizer = "uniform"
	// RandomBag deals all seven kinds in a shuffled order before reshuffling.
	RandomBag Randomizer = "bag"
)

func (r Randomizer) Valid() bool {
	return r == RandomUniform || r == RandomBag
}

// Catalog produces new pieces. It keeps one kind drawn ahead so callers can
// preview the next piece.
type Catalog struct {
	rng        Rand
	randomizer Randomizer
	spawnRow   int
	cols       int

	bag  []Kind
	next Kind
}

// NewCatalog returns a catalog that spawns pieces centered on a board with cols
// columns at spawnRow.
func NewCatalog(rng Rand, randomizer Randomizer, cols, spawnRow int) (*Catalog, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	if !randomizer.Valid() {
		return nil, fmt.Errorf("%w: unknown randomizer %q", ErrInvalidConfig, randomizer)
	}
	if cols <= 0 {
		return nil, fmt.Errorf("%w: %d columns", ErrInvalidDimensions, cols)
	}

	c := &Catalog{rng: rng, randomizer: randomizer, cols: cols, spawnRow: spawnRow}
	c.next = c.draw()
	return c, nil
}

// Next returns the kind the following Spawn will produce.
func (c *Catalog) Next() Kind {
	return c.next
}

// Spawn returns a new piece of the previewed kind and draws the one after it.
func (c *Catalog) Spawn() Piece {
	k := c.next
	c.next = c.draw()
	return c.Place(k)
}

// Place returns a piece of kind k at the spawn position: horizontally centered
// on the board, top edge at the spawn row.
func (c *Catalog) Place(k Kind) Piece {
	shape := baseShapes[k]
	return Piece{
		Kind:   k,
		Shape:  shape,
		Anchor: Point{X: (c.cols - shape.Cols()) / 2, Y: c.spawnRow},
	}
}

// Reset discards any partially dealt bag and draws a fresh preview.
func (c *Catalog) Reset() {
	c.bag = c.bag[:0]
	c.next = c.draw()
}

func (c *Catalog) draw() Kind {
	if c.randomizer == RandomUniform {
		return Kinds[c.rng.IntN(len(Kinds))]
	}

	if len(c.bag) == 0 {
		c.bag = append(c.bag[:0], Kinds[:]...)
		for i := len(c.bag) - 1; i > 0; i-- {
			j := c.rng.IntN(i + 1)
			c.bag[i], c.bag[j] = c.bag[j], c.bag[i]
		}
	}

	k := c.bag[0]
	c.bag = c.bag[1:]
	return k
}
