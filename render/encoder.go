package render

import (
	"io"
	"sync"

	json "github.com/json-iterator/go"
	"github.com/oomph-ac/skitter/internal"
)

// Encoder writes frames as JSON lines. It is safe for concurrent use; each value is written
// to the underlying writer in a single call.
type Encoder struct {
	mu sync.Mutex
	w  io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes v followed by a newline.
func (e *Encoder) Encode(v any) error {
	buf := internal.GetBuffer()
	defer internal.PutBuffer(buf)

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	_, err := e.w.Write(buf.Bytes())
	return err
}
