package main

import (
	"fmt"
	"github.com/bokysan/b64/internal/args"
	"github.com/bokysan/b64/internal/commands/decode"
	"github.com/bokysan/b64/internal/commands/encode"
	"github.com/bokysan/b64/internal/commands/version"
	b64Flags "github.com/bokysan/b64/internal/flags"
	"github.com/bokysan/b64/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// B64 is the main executable
type B64 struct {
	parser *flags.Parser
}

// NewB64 will create a new instance of B64 and initialize the parser
func NewB64() *B64 {
	executablePath := path.Base(os.Args[0])

	b := &B64{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	b.setupGeneral()
	b.setupVersion()
	b.setupEncode()
	b.setupDecode()

	return b
}

// setupGeneral will configure general options
func (b *B64) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

// setupVersion adds the `version` command
func (b *B64) setupVersion() {
	_, err := b.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		&version.Command{},
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (b *B64) setupEncode() {
	_, err := b.parser.AddCommand(
		"encode",
		"Encode a file",
		"Read a file and print its Base64 encoding",
		encode.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (b *B64) setupDecode() {
	_, err := b.parser.AddCommand(
		"decode",
		"Decode a file",
		"Read a Base64 encoded file, ignoring any whitespace, and print the decoded bytes",
		decode.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupConfiguration makes the `--config` option read the given YAML file into the commands
func (b *B64) setupConfiguration() {
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			return &flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: fmt.Sprintf("Configuration file %s does not exist.", file),
			}
		}

		args.General.ConfigurationFilePath = file
		return b64Flags.NewYamlParser(b.parser).ParseFile(file)
	}
}

func main() {
	b := NewB64()
	b.setupConfiguration()

	_, err := b.parser.Parse()
	util.MustErrorNilOrExit(err)
}
