package emotion

import (
	"math/rand/v2"
	"sync"
)

// Picker es la fuente de aleatoriedad para elegir frases y tips.
// *rand.Rand la satisface.
type Picker interface {
	IntN(n int) int
}

type sharedPicker struct{}

func (sharedPicker) IntN(n int) int {
	return rand.IntN(n)
}

// SharedPicker usa la fuente global de math/rand/v2, segura para uso concurrente.
var SharedPicker Picker = sharedPicker{}

type lockedPicker struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (p *lockedPicker) IntN(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.r.IntN(n)
}

// NewSeededPicker crea un Picker determinístico y seguro entre goroutines.
func NewSeededPicker(seed uint64) Picker {
	return &lockedPicker{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func pick(p Picker, pool []string) string {
	switch len(pool) {
	case 0:
		return ""
	case 1:
		return pool[0]
	}
	if p == nil {
		p = SharedPicker
	}
	return pool[p.IntN(len(pool))]
}
