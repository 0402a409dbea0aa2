// Command strfunc evaluates the SQL string built-ins from the command line,
// runs batches of cases with golden digests, and queries an in-memory SQLite
// database that has the functions registered.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/strfunc/core/runner"
	"github.com/FocuswithJustin/strfunc/core/sqlite"
	"github.com/FocuswithJustin/strfunc/core/strfunc"
	"github.com/FocuswithJustin/strfunc/internal/literal"
	"github.com/FocuswithJustin/strfunc/internal/logging"
)

const version = "0.1.0"

// Injectable for testing.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// CLI defines the command-line interface for strfunc.
type CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" default:"auto" enum:"auto,json,text" help:"Log format (auto, json, text)"`

	Eval    EvalCmd    `cmd:"" help:"Apply one operation to one literal"`
	List    ListCmd    `cmd:"" help:"List operations, categories and SQL names"`
	Batch   BatchCmd   `cmd:"" help:"Run a YAML batch of cases and print the transcript"`
	SQL     SQLCmd     `cmd:"" name:"sql" help:"Run a query against in-memory SQLite with the functions registered"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// AfterApply configures logging once the global flags are known.
func (c *CLI) AfterApply() error {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return err
	}
	logging.InitLogger(level, format, stderr)
	return nil
}

// EvalCmd applies one operation to one literal.
type EvalCmd struct {
	Op      string `arg:"" help:"Operation name or SQL alias (e.g. UCASE, character_length)"`
	Literal string `arg:"" help:"Argument literal: null, 'c', \"text\", 42 or 1.5"`
}

func (c *EvalCmd) Run() error {
	op, err := strfunc.ParseOperation(c.Op)
	if err != nil {
		return err
	}
	arg, err := literal.Parse(c.Literal)
	if err != nil {
		return err
	}
	result, err := strfunc.Evaluate(op, arg)
	if err != nil {
		logging.EvaluationFailed(op.String(), err, "arg", literal.Format(arg))
		return err
	}
	if result.IsNull() && !arg.IsNull() {
		logging.Info("null_result", "operation", op.String(), "arg", literal.Format(arg))
	}
	fmt.Fprintln(stdout, literal.Format(result))
	return nil
}

// ListCmd lists every operation.
type ListCmd struct{}

func (c *ListCmd) Run() error {
	fmt.Fprintf(stdout, "%-12s %-9s %s\n", "OPERATION", "ACCEPTS", "SQL NAMES")
	for _, op := range strfunc.Operations() {
		names := append([]string{op.String()}, op.Aliases()...)
		fmt.Fprintf(stdout, "%-12s %-9s %s\n", op, op.Category(), strings.Join(names, ", "))
	}
	return nil
}

// BatchCmd runs a batch file.
type BatchCmd struct {
	File   string `arg:"" help:"YAML batch file" type:"existingfile"`
	Digest bool   `help:"Print the BLAKE3 digest of the transcript"`
	Expect string `help:"Fail unless the transcript digest equals this hex value" placeholder:"HEX"`
}

func (c *BatchCmd) Run() error {
	b, err := runner.LoadBatch(c.File)
	if err != nil {
		return err
	}

	logging.Debug("batch_loaded", "source", c.File, "cases", len(b.Cases))

	t := runner.Run(b)
	if _, err := t.WriteTo(stdout); err != nil {
		return err
	}

	digest := t.Digest()
	if c.Digest {
		fmt.Fprintf(stdout, "blake3: %s\n", digest)
	}
	logging.BatchCompleted(c.File, len(t.Entries), t.Failures(), digest)

	if c.Expect != "" {
		if err := t.CheckGolden(c.Expect); err != nil {
			logging.Error("golden_check_failed", "source", c.File, "error", err.Error())
			return err
		}
	}
	return nil
}

// SQLCmd runs a query.
type SQLCmd struct {
	Query string `arg:"" help:"SQL query, e.g. \"SELECT UCASE('straße')\""`
}

func (c *SQLCmd) Run() error {
	db, err := sqlite.OpenMemory()
	if err != nil {
		return err
	}
	defer db.Close()

	logging.Debug("sql_query", "query", c.Query, "driver", sqlite.DriverName())
	rows, err := db.Query(c.Query)
	if err != nil {
		logging.Warn("sql_failed", "query", c.Query, "error", err.Error())
		return fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	n := 0
	for rows.Next() {
		n++
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}
		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = formatCell(v)
		}
		fmt.Fprintln(stdout, strings.Join(cells, "\t"))
	}
	if err := rows.Err(); err != nil {
		logging.Warn("sql_failed", "query", c.Query, "error", err.Error())
		return fmt.Errorf("query failed: %w", err)
	}
	logging.Info("sql_completed", "columns", len(cols), "rows", n)
	return nil
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Fprintf(stdout, "strfunc version %s (sqlite driver: %s)\n", version, sqlite.GetInfo().Package)
	return nil
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	opts := append([]kong.Option{
		kong.Name("strfunc"),
		kong.Description("SQL string built-ins from the command line"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}, options...)
	return kong.New(cli, opts...)
}

// run parses args and executes the selected command.
func run(parser *kong.Kong, args []string) error {
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run()
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	parser.FatalIfErrorf(run(parser, os.Args[1:]))
}
