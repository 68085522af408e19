// Command sqlbind inspects and rewrites SQL bind parameters and types values
// from the command line.
//
//	sqlbind scan   "SELECT * FROM t WHERE id = :id"
//	sqlbind bind   -driver postgres "SELECT * FROM t WHERE id = :id" id=5
//	sqlbind infer  2025-07-09 123 '#ff0000'
//	sqlbind format -type decimal 1234567.89
//
// SQL given as "-" is read from stdin.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Konsultn-Engineering/sqlbind"
	"github.com/Konsultn-Engineering/sqlbind/dialect"
	"github.com/Konsultn-Engineering/sqlbind/engine"
	"github.com/Konsultn-Engineering/sqlbind/types"
	"go.uber.org/zap"
)

var errUsage = errors.New("usage: sqlbind [-config file] [-v] scan|bind|infer|format ...")

func main() {
	configPath := flag.String("config", "", "YAML config file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync() //nolint:errcheck

	if err := run(flag.Args(), *configPath, logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("sqlbind failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func run(args []string, configPath string, logger *zap.Logger, stdin io.Reader, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cfg := sqlbind.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = sqlbind.LoadConfig(configPath); err != nil {
			return err
		}
		logger.Debug("config loaded", zap.String("path", configPath))
	}

	e, err := sqlbind.New(cfg, logger)
	if err != nil {
		return err
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "scan":
		return runScan(e, rest, stdin, out)
	case "bind":
		return runBind(e, rest, stdin, out)
	case "infer":
		return runInfer(e, rest, out)
	case "format":
		return runFormat(e, rest, out)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func readSQL(arg string, stdin io.Reader) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

func runScan(e *engine.Engine, args []string, stdin io.Reader, out io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	sql, err := readSQL(args[0], stdin)
	if err != nil {
		return err
	}

	p := e.Prepare(sql)
	for _, s := range p.Slots {
		fmt.Fprintf(out, "%-12s %-10s %s\n", s.SlotKey, s.Kind, s.Describe())
	}
	return nil
}

func runBind(e *engine.Engine, args []string, stdin io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("bind", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	tplFlag := fs.String("template", "", "placeholder template ($n, :name, @name, $name, {name}, ?)")
	driverFlag := fs.String("driver", "", "driver name; selects its template and literal style")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%v: %w", err, errUsage)
	}
	if fs.NArg() < 1 {
		return errUsage
	}

	sql, err := readSQL(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	values := parseValues(fs.Args()[1:])

	var d dialect.Dialect
	tpl := e.Template()
	switch {
	case *driverFlag != "":
		if d, err = dialect.ForDriver(*driverFlag); err != nil {
			return err
		}
		tpl = d.Template()
	case *tplFlag != "":
		if tpl, err = dialect.ParseTemplate(*tplFlag); err != nil {
			return err
		}
	}

	b := e.Bind(sql, tpl, values)
	fmt.Fprintln(out, b.SQL)
	for i, a := range b.Args {
		label, rendered := strconv.Itoa(i+1), fmt.Sprintf("%v", a)
		if d != nil {
			label, rendered = d.Placeholder(i+1), d.RenderValue(a)
		}
		if b.Names[i] != "" {
			fmt.Fprintf(out, "  %s %s = %s\n", label, b.Names[i], rendered)
			continue
		}
		fmt.Fprintf(out, "  %s = %s\n", label, rendered)
	}
	for _, o := range b.Skipped {
		fmt.Fprintf(out, "  skipped %s at %d\n", o.Literal(), o.Position)
	}
	return nil
}

// parseValues reads key=value pairs into a value dictionary.
func parseValues(pairs []string) sqlbind.Values {
	values := sqlbind.Values{}
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			continue
		}
		values[k] = v
	}
	return values
}

func runInfer(e *engine.Engine, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	for _, a := range args {
		t, _ := e.Infer(a)
		fmt.Fprintf(out, "%-10s %-10s %-10s %s\n", t, types.ToBaseType(t), types.ToGeneralType(t), e.Format(a, t))
	}
	return nil
}

func runFormat(e *engine.Engine, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	typ := fs.String("type", "", "canonical or database type; inferred when empty")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%v: %w", err, errUsage)
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	for _, a := range fs.Args() {
		t := types.Type(*typ)
		if t == "" {
			t, _ = e.Infer(a)
		}
		fmt.Fprintln(out, e.Format(a, t))
	}
	return nil
}
