package stats

// Window é um buffer circular de amostras com capacidade potência de 2.
// Quando cheio, a amostra mais antiga é sobrescrita. Não é thread-safe:
// só o loop principal escreve e lê.
type Window struct {
	entries []float32
	mask    uint64
	next    uint64 // Total de amostras já escritas
}

// NewWindow cria uma janela com a capacidade dada (arredondada para potência de 2).
func NewWindow(capacity int) *Window {
	actualCap := nextPowerOfTwo(capacity)
	return &Window{
		entries: make([]float32, actualCap),
		mask:    uint64(actualCap - 1),
	}
}

// Push adiciona uma amostra.
func (w *Window) Push(v float32) {
	w.entries[w.next&w.mask] = v
	w.next++
}

// Cap retorna a capacidade efetiva.
func (w *Window) Cap() int { return len(w.entries) }

// Len retorna quantas amostras válidas existem.
func (w *Window) Len() int {
	if w.next < uint64(len(w.entries)) {
		return int(w.next)
	}
	return len(w.entries)
}

// Mean retorna a média das amostras válidas (0 se vazia).
func (w *Window) Mean() float32 {
	n := w.Len()
	if n == 0 {
		return 0
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += w.entries[i]
	}
	return sum / float32(n)
}

// Max retorna a maior amostra válida (0 se vazia).
func (w *Window) Max() float32 {
	var m float32
	for i := 0; i < w.Len(); i++ {
		if w.entries[i] > m {
			m = w.entries[i]
		}
	}
	return m
}

// Reset descarta todas as amostras.
func (w *Window) Reset() {
	w.next = 0
}

func nextPowerOfTwo(x int) int {
	res := 2
	for res < x {
		res <<= 1
	}
	return res
}
