// Package cli runs the jsonv commands.
package cli

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	jv "github.com/d1ced/jsonvalue"
	"github.com/d1ced/jsonvalue/internal/config"
	"github.com/d1ced/jsonvalue/internal/exit"
	"github.com/d1ced/jsonvalue/schema"
)

// Runner executes one parsed command line.
type Runner struct {
	cfg    *config.Config
	stdin  io.Reader
	logger *log.Logger
}

// New returns a Runner reading documents from stdin when the command
// line names no file. Schema warnings go to logger.
func New(cfg *config.Config, stdin io.Reader, logger *log.Logger) *Runner {
	return &Runner{cfg: cfg, stdin: stdin, logger: logger}
}

// Run executes the command and returns its outcome.
func (r *Runner) Run() *exit.Result {
	out, err := r.run()
	if err != nil {
		return exit.FromError("jsonv", err)
	}
	return exit.Success(out)
}

func (r *Runner) run() (string, error) {
	switch r.cfg.Command {
	case "fmt":
		v, err := r.document()
		if err != nil {
			return "", err
		}
		return r.render(v), nil
	case "get":
		return r.get()
	case "query":
		return r.query()
	case "yaml":
		v, err := r.document()
		if err != nil {
			return "", err
		}
		data, err := jv.ToYAML(v)
		return string(data), err
	case "default":
		s, err := r.schema()
		if err != nil {
			return "", err
		}
		ptr := ""
		if len(r.cfg.Args) > 1 {
			ptr = r.cfg.Args[1]
		}
		d := s.DefaultFor(ptr)
		r.warn(s)
		if d == nil {
			return "", errors.Errorf("%s: not described by the schema", ptr)
		}
		return r.render(d), nil
	case "type":
		s, err := r.schema()
		if err != nil {
			return "", err
		}
		r.warn(s)
		return s.TypeName(r.cfg.Args[1]) + "\n", nil
	}
	return "", errors.Wrap(config.ErrUnknownCommand, r.cfg.Command)
}

func (r *Runner) get() (string, error) {
	v, err := r.document()
	if err != nil {
		return "", err
	}
	ptr := r.cfg.Args[0]
	n := v.EvalPointer(ptr, r.cfg.ZeroIndex)
	if n == nil {
		return "", errors.Errorf("%s: no such value", ptr)
	}
	if r.cfg.Reference {
		n = n.Reference()
	}
	return r.render(n), nil
}

func (r *Runner) query() (string, error) {
	v, err := r.document()
	if err != nil {
		return "", err
	}
	nodes, err := v.Query(r.cfg.Args[0])
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, n := range nodes {
		if r.cfg.Paths {
			b.WriteString(n.Pointer())
			b.WriteByte('\t')
		}
		b.WriteString(jv.Stringify(n, r.cfg.Sorted))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// document reads the input file, or stdin, as JSON or YAML.
func (r *Runner) document() (*jv.Value, error) {
	var (
		data []byte
		err  error
	)
	if r.cfg.Input == config.Stdin {
		data, err = io.ReadAll(r.stdin)
	} else {
		data, err = os.ReadFile(r.cfg.Input)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	if r.cfg.FromYAML {
		return jv.ParseYAML(data)
	}
	v, err := jv.ReadJSON(strings.NewReader(string(data)))
	if err != nil {
		return nil, errors.WithMessage(err, r.name())
	}
	return v, nil
}

func (r *Runner) name() string {
	if r.cfg.Input == config.Stdin {
		return "stdin"
	}
	return r.cfg.Input
}

func (r *Runner) schema() (*schema.Schema, error) {
	path := r.cfg.Args[0]
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read schema")
		}
		return schema.FromYAML(data, r.cfg.SchemaOptions())
	}
	return schema.Load(path, r.cfg.SchemaOptions())
}

func (r *Runner) warn(s *schema.Schema) {
	for _, w := range s.Warnings() {
		r.logger.Printf("warning: %s", w)
	}
}

func (r *Runner) render(v *jv.Value) string {
	return jv.PrettyStringify(v, r.cfg.Format()) + "\n"
}
