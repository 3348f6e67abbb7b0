package streams

import (
	"github.com/pkg/errors"
	"io/ioutil"
	"os"
)

// ReadInput reads the whole file into memory. StdStream reads the standard input until EOF.
func ReadInput(filename string) ([]byte, error) {
	if filename == StdStream {
		data, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not read standard input")
		}
		return data, nil
	}

	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read %s", filename)
	}
	return data, nil
}
