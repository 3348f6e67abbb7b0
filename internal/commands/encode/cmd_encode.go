package encode

import (
	"github.com/bokysan/b64/internal/codec"
	"github.com/bokysan/b64/internal/logging"
	"github.com/bokysan/b64/internal/streams"
	log "github.com/sirupsen/logrus"
)

// Command reads a file and writes its Base64 representation
type Command struct {
	Output string `yaml:"output" short:"o" long:"output" env:"B64_OUTPUT" description:"Output file, '-' for standard output. Defaults to standard output."`

	Args struct {
		Input string `positional-arg-name:"FILE" description:"Input file, '-' for standard input"`
	} `yaml:"-" positional-args:"yes" required:"yes"`

	codec codec.Codec
}

func NewCommand() *Command {
	return &Command{
		codec: codec.StdEncoding,
	}
}

//noinspection GoUnusedParameter
func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	data, err := streams.ReadInput(c.Args.Input)
	if err != nil {
		return err
	}
	log.Debugf("Read %d bytes from %s", len(data), c.Args.Input)

	encoded := c.codec.Encode(data)
	log.Tracef("%v: %d bytes -> %d characters", c.codec, len(data), len(encoded))

	return streams.WriteOutput(c.Output, []byte(encoded+"\n"))
}
