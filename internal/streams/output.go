package streams

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

// StdStream is the name used on the command line for standard input / output
const StdStream = "-"

// NamedWriter implements the io.WriteCloser interface as well as fmt.Stringer. It allows the caller to setup
// a name for the stream which will be returned when outputing the stream with `%v`.
// It also makes sure that `Close()` can be called safely multiple times. Calling `Close()` on a closed object
// will simply succeed without an error.
type NamedWriter struct {
	io.WriteCloser
	name   string
	closed bool
}

// NewNamedWriter will, unsurprisingly, create a new NamedWriter with a given name
func NewNamedWriter(wrapped io.WriteCloser, name string) *NamedWriter {
	return &NamedWriter{
		WriteCloser: wrapped,
		name:        name,
	}
}

// OpenOutput opens (and truncates) the given file for writing. StdStream returns the standard output,
// which is never closed.
func OpenOutput(filename string) (*NamedWriter, error) {
	if filename == "" || filename == StdStream {
		return NewNamedWriter(nopCloser{os.Stdout}, "stdout"), nil
	}
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open %s for writing", filename)
	}
	return NewNamedWriter(f, filename), nil
}

// Close will close the underlying stream. If the Close has already been called, it will do nothing
func (nw *NamedWriter) Close() error {
	if nw.closed {
		return nil
	}
	nw.closed = true
	if err := nw.WriteCloser.Close(); err != nil {
		log.Debugf("Could not close %v: %v", nw, err)
		return errors.WithStack(err)
	}
	return nil
}

// Closed will return `true` if NamedWriter.Close has been called at least once
func (nw *NamedWriter) Closed() bool {
	return nw.closed
}

func (nw *NamedWriter) String() string {
	return nw.name
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

// WriteOutput writes all of data into the named output and closes it
func WriteOutput(filename string, data []byte) error {
	w, err := OpenOutput(filename)
	if err != nil {
		return err
	}
	defer w.Close()

	if _, err := w.Write(data); err != nil {
		return errors.Wrapf(err, "Could not write to %v", w)
	}
	log.Debugf("Written %d bytes to %v", len(data), w)

	return w.Close()
}
