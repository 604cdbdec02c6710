package debugui

// frameHistory is a fixed-size ring of frame times in milliseconds.
type frameHistory struct {
	samples []float32
	index   int
	filled  int
}

func newFrameHistory(size int) *frameHistory {
	if size < 1 {
		size = 1
	}
	return &frameHistory{samples: make([]float32, size)}
}

func (h *frameHistory) push(ms float32) {
	h.samples[h.index] = ms
	h.index = (h.index + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// average is taken over the samples pushed so far.
func (h *frameHistory) average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, s := range h.samples[:h.filled] {
		sum += s
	}
	return sum / float32(h.filled)
}

func (h *frameHistory) max() float32 {
	var m float32
	for _, s := range h.samples[:h.filled] {
		m = max(m, s)
	}
	return m
}
