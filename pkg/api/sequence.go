package api

import "sync"

// Sequence is a constructed monotonic counter. The tour owns one for
// defaulted step ids and one for content-container uniquing; there is no
// module-level counter state anywhere in the library.
//
// The zero value is ready to use. The first Next call returns 0 and the
// counter is never reset for the life of the process.
type Sequence struct {
	mu sync.Mutex
	n  int64
}

// Next returns the next value.
func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.n
	s.n++
	return n
}
