package output

import (
	"fmt"
	"io"
)

// FASTARecord is one output sequence; ID is written after '>' verbatim.
type FASTARecord struct {
	ID  string
	Seq string
}

// StreamFASTA streams FASTA records from a channel to the writer.
// Records with an empty sequence are skipped.
func StreamFASTA(w io.Writer, in <-chan FASTARecord) error {
	for r := range in {
		if err := writeFASTARecord(w, r); err != nil {
			return err
		}
	}
	return nil
}

// WriteFASTA writes a slice of records to the writer, one line per sequence.
func WriteFASTA(w io.Writer, list []FASTARecord) error {
	for _, r := range list {
		if err := writeFASTARecord(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeFASTARecord(w io.Writer, r FASTARecord) error {
	if r.Seq == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, ">%s\n%s\n", r.ID, r.Seq)
	return err
}
