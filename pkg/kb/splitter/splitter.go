package splitter

import "strings"

// separators in priority order: paragraph, then line, then word.
var separators = []string{"\n\n", "\n", " "}

// Splitter cuts a document into rune-bounded chunks. Consecutive chunks share
// Overlap runes: the tail of one chunk is repeated as the head of the next so
// answers spanning a boundary stay retrievable. Splitting is deterministic:
// the same text and parameters always yield the same chunk sequence.
type Splitter struct {
	chunkSize int
	overlap   int
}

func New(chunkSize, overlap int) Splitter {
	if chunkSize <= 0 {
		chunkSize = 600
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= chunkSize {
		overlap = chunkSize / 2
	}
	return Splitter{chunkSize: chunkSize, overlap: overlap}
}

func (s Splitter) ChunkSize() int { return s.chunkSize }
func (s Splitter) Overlap() int   { return s.overlap }

// Split returns the chunk sequence for text. Whitespace-only chunks are
// dropped; everything else is kept verbatim, untrimmed, so the overlap
// between consecutive chunks is exact.
func (s Splitter) Split(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + s.chunkSize
		if end >= len(runes) {
			end = len(runes)
		} else {
			end = s.breakPoint(runes, start, end)
		}

		piece := string(runes[start:end])
		if strings.TrimSpace(piece) != "" {
			chunks = append(chunks, piece)
		}

		if end == len(runes) {
			break
		}
		start = end - s.overlap
	}
	return chunks
}

// breakPoint picks the cut position inside (start, limit]. It prefers the
// highest-priority separator whose last occurrence still leaves room for the
// overlap to make forward progress; failing all separators it hard-cuts at
// limit.
func (s Splitter) breakPoint(runes []rune, start, limit int) int {
	window := string(runes[start:limit])
	// a cut at p only makes progress if p-overlap > start
	minCut := s.overlap + 1
	for _, sep := range separators {
		idx := strings.LastIndex(window, sep)
		if idx < 0 {
			continue
		}
		// cut after the separator
		cut := len([]rune(window[:idx])) + len([]rune(sep))
		if cut >= minCut {
			return start + cut
		}
	}
	return limit
}
