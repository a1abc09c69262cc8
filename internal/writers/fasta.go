// internal/writers/fasta.go
package writers

import (
	"io"

	"abnum/internal/output"
)

// StartFASTAWriter spins up a FASTA writer goroutine. Broken pipes end the
// stream quietly; the input is drained after any error.
func StartFASTAWriter(out io.Writer, bufSize int) (chan<- output.FASTARecord, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.FASTARecord, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := output.StreamFASTA(out, in)
		for range in {
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}
