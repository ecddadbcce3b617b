package bax

const (
	idLength   = 16
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// RandSource supplies the randomness for annotation identifiers. *rand.Rand
// satisfies it; tests supply a deterministic implementation.
type RandSource interface {
	Intn(n int) int
}

// IDGenerator produces annotation identifiers: 16 characters, each drawn
// independently and uniformly from the uppercase ASCII letters.
type IDGenerator struct {
	src RandSource
}

// NewIDGenerator constructs a generator backed by the given source.
func NewIDGenerator(src RandSource) *IDGenerator {
	return &IDGenerator{src: src}
}

// Next returns a fresh identifier. Collisions are not checked; the 26^16
// space makes independent draws sufficient.
func (g *IDGenerator) Next() string {
	buf := make([]byte, idLength)
	for i := range buf {
		buf[i] = idAlphabet[g.src.Intn(len(idAlphabet))]
	}
	return string(buf)
}
