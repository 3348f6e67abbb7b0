package decode

import (
	"github.com/bokysan/b64/internal/codec"
	"github.com/bokysan/b64/internal/logging"
	"github.com/bokysan/b64/internal/streams"
	"github.com/bokysan/b64/internal/util"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command reads a Base64 text file and writes the raw bytes it represents
type Command struct {
	Output  string            `yaml:"output"  short:"o" long:"output"  env:"B64_OUTPUT"  description:"Output file, '-' for standard output. Defaults to standard output."`
	Padding codec.PaddingMode `yaml:"padding"          long:"padding" env:"B64_PADDING" description:"How to treat padding inside a full group: 'truncate' drops the padded bytes, 'passthrough' decodes padding as zero bits like the classic base64 tool. Defaults to truncate." choice:"truncate" choice:"passthrough"`
	Strict  bool              `yaml:"strict"           long:"strict"  env:"B64_STRICT"  description:"Fail on characters outside of the alphabet and on misplaced padding instead of decoding them as zero"`

	Args struct {
		Input string `positional-arg-name:"FILE" description:"Input file, '-' for standard input"`
	} `yaml:"-" positional-args:"yes" required:"yes"`
}

func NewCommand() *Command {
	return &Command{}
}

// Options returns the codec options built from the command line / configuration
func (c *Command) Options() codec.Options {
	return codec.Options{
		Padding: c.Padding,
		Strict:  c.Strict,
	}
}

//noinspection GoUnusedParameter
func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	options := c.Options()
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Decoding with options: %s", spew.Sdump(options))
	}

	decoder, err := codec.NewEncoding(options)
	if err != nil {
		return err
	}

	data, err := streams.ReadInput(c.Args.Input)
	if err != nil {
		return err
	}
	text := util.StripWhitespace(string(data))
	log.Debugf("Read %d bytes from %s, %d characters after removing whitespace", len(data), c.Args.Input, len(text))

	decoded, err := decoder.Decode(text)
	if err != nil {
		return errors.Wrapf(err, "Could not decode %s", c.Args.Input)
	}
	log.Tracef("%v: %d characters -> %d bytes", decoder, len(text), len(decoded))

	return streams.WriteOutput(c.Output, decoded)
}
