// Package responsewriter wraps http.ResponseWriter to capture the
// status code and bytes written for logging and metrics.
package responsewriter

import "net/http"

type Wrapper struct {
	http.ResponseWriter
	status int
	bytes  int
}

// Wrap returns a Wrapper recording what the handler writes. Status
// defaults to 200 when the handler never calls WriteHeader.
func Wrap(w http.ResponseWriter) *Wrapper {
	return &Wrapper{ResponseWriter: w, status: http.StatusOK}
}

func (w *Wrapper) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *Wrapper) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *Wrapper) StatusCode() int { return w.status }

func (w *Wrapper) BytesWritten() int { return w.bytes }
