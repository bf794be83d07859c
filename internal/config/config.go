package config

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	jv "github.com/d1ced/jsonvalue"
	"github.com/d1ced/jsonvalue/internal/exit"
	"github.com/d1ced/jsonvalue/schema"
)

// Stdin names standard input as the input file.
const Stdin = "-"

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrArguments      = errors.New("wrong number of arguments")
)

// command bounds the positional arguments of a command. The last one names
// the input file for commands that read a document.
type command struct {
	min, max int
	input    bool
}

var commands = map[string]command{
	"fmt":     {0, 1, true},
	"get":     {1, 2, true},
	"query":   {1, 2, true},
	"yaml":    {0, 1, true},
	"default": {1, 2, false},
	"type":    {2, 2, false},
}

// Config is the parsed command line of jsonv.
type Config struct {
	Command string
	Args    []string
	Input   string

	Indent  string
	Compact bool
	Sorted  bool

	FromYAML  bool
	Reference bool
	ZeroIndex bool
	Paths     bool
	MaxDepth  int
}

// Format returns the rendering selected by the output flags.
func (c *Config) Format() jv.Format {
	if c.Compact {
		return jv.Format{Sorted: c.Sorted}
	}
	return jv.Format{Indent: c.Indent, FirstIndent: c.Indent, EOL: "\n", Sorted: c.Sorted}
}

// SchemaOptions returns the options used to load schemas.
func (c *Config) SchemaOptions() schema.Options {
	return schema.Options{MaxDepth: c.MaxDepth}
}

// Validate checks the arguments against the command.
func (c *Config) Validate() error {
	cmd, ok := commands[c.Command]
	if !ok {
		return errors.Wrap(ErrUnknownCommand, c.Command)
	}
	if n := len(c.Args); n < cmd.min || n > cmd.max {
		return errors.Wrapf(ErrArguments, "%s takes %d to %d", c.Command, cmd.min, cmd.max)
	}
	for _, path := range c.files() {
		if _, err := os.Stat(path); err != nil {
			return errors.Wrapf(err, "input %s", path)
		}
	}
	if c.MaxDepth < 0 {
		return errors.Errorf("max-depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

func (c *Config) files() []string {
	if !commands[c.Command].input {
		return c.Args[:1]
	}
	if c.Input != Stdin {
		return []string{c.Input}
	}
	return nil
}

// Parse parses the command line args, args[0] being the program name.
// Help requests and mistakes are returned as an exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) < 2 {
		return nil, exit.Usage("Error: %v\n\n%s", ErrNoCommand, Usage())
	}
	switch args[1] {
	case "-h", "-help", "--help", "help":
		return nil, exit.Success(Usage())
	}

	fs := flag.NewFlagSet(args[0]+" "+args[1], flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		indent    = fs.String("indent", "  ", "Indentation unit")
		compact   = fs.Bool("compact", false, "Write compact JSON")
		sorted    = fs.Bool("sort", false, "Write object members sorted by name")
		fromYAML  = fs.Bool("from-yaml", false, "Read the input as YAML")
		reference = fs.Bool("ref", false, "Follow in-document references")
		zeroIndex = fs.Bool("zero-index", false, "Resolve every array index as 0")
		paths     = fs.Bool("paths", false, "Prefix query results with their JSON Pointer")
		maxDepth  = fs.Int("max-depth", schema.DefaultMaxDepth, "Nesting bound for schema resolution")
	)

	if err := fs.Parse(args[2:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Usage("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	c := &Config{
		Command:   args[1],
		Args:      fs.Args(),
		Input:     Stdin,
		Indent:    *indent,
		Compact:   *compact,
		Sorted:    *sorted,
		FromYAML:  *fromYAML,
		Reference: *reference,
		ZeroIndex: *zeroIndex,
		Paths:     *paths,
		MaxDepth:  *maxDepth,
	}
	if cmd := commands[c.Command]; cmd.input && len(c.Args) == cmd.max {
		c.Input = c.Args[cmd.max-1]
		c.Args = c.Args[:cmd.max-1]
	}
	if err := c.Validate(); err != nil {
		return nil, exit.Usage("Error: %v\n\n%s", err, Usage())
	}
	return c, nil
}

// Usage returns the help text.
func Usage() string {
	return strings.TrimLeft(`
jsonv - inspect JSON documents and schemas

Usage: jsonv <command> [options] <args>

Commands:
  fmt [file]                   Reformat a document
  get <pointer> [file]         Print the value at a JSON Pointer
  query <jsonpath> [file]      Print the values matching a JSONPath expression
  yaml [file]                  Convert a document to YAML
  default <schema> [pointer]   Print the default document of a schema
  type <schema> <pointer>      Print the type name a schema gives to a pointer

Options:
  --indent STR      Indentation unit (default: two spaces)
  --compact         Write compact JSON
  --sort            Write object members sorted by name
  --from-yaml       Read the input as YAML
  --ref             Follow in-document references (get)
  --zero-index      Resolve every array index as 0 (get)
  --paths           Prefix results with their JSON Pointer (query)
  --max-depth N     Nesting bound for schema resolution (default: 64)
  -h, --help        Show this help message

Without a file, or with "-", the document is read from standard input.
`, "\n")
}
