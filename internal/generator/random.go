package generator

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// source draws uniform indexes from a byte stream.
type source struct {
	r   io.Reader
	buf [4]byte
}

// intn returns a uniform integer in [0, n). Words that fall in the biased
// tail of the uint32 range are rejected and redrawn.
func (s *source) intn(n int) (int, error) {
	if n <= 0 || uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("random range %d out of bounds", n)
	}

	bound := uint64(n)
	limit := (math.MaxUint32 + 1) - (math.MaxUint32+1)%bound
	for {
		if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
			return 0, fmt.Errorf("reading random source: %w", err)
		}
		if v := uint64(binary.BigEndian.Uint32(s.buf[:])); v < limit {
			return int(v % bound), nil
		}
	}
}

// shuffle permutes b in place with Fisher–Yates.
func (s *source) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := s.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
