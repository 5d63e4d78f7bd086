// Package command runs the line oriented command language against a DB:
//
//	create type <name> <n> <field1> ... <fieldn>
//	delete type <name>
//	list type
//	create record <type> <key> <value> ...
//	delete record <type> <key>
//	update record <type> <key> <value> ...
//	search record <type> <key>
//	list record <type>
package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	storagemanager "github.com/fatih-iver/Storage-Manager"
)

var (
	ErrBadCommand = errors.New("malformed command")
)

// rejected errors leave the line without output, the run goes on
var rejected = []error{
	ErrBadCommand,
	storagemanager.ErrDuplicateType,
	storagemanager.ErrTypeNotFound,
	storagemanager.ErrSchemaTooWide,
	storagemanager.ErrFieldTooLong,
	storagemanager.ErrInvalidName,
	storagemanager.ErrRecordTooWide,
	storagemanager.ErrEmptyRecord,
	storagemanager.ErrKeyMismatch,
}

type Interpreter struct {
	db     *storagemanager.DB
	logger *log.Logger
}

func NewInterpreter(db *storagemanager.DB, logger *log.Logger) *Interpreter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Interpreter{db: db, logger: logger}
}

// Run executes every line of r, writing results to w. It stops on the first
// error that is not a rejected command.
func (it *Interpreter) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		err := it.Execute(scanner.Text(), w)
		if err == nil {
			continue
		}
		if IsRejected(err) {
			it.logger.Printf("line %d: %v", lineNo, err)
			continue
		}
		return fmt.Errorf("line %d: %w", lineNo, err)
	}
	return scanner.Err()
}

func IsRejected(err error) bool {
	for _, target := range rejected {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Execute runs one command line, blank lines are ignored.
func (it *Interpreter) Execute(line string, w io.Writer) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	if len(args) < 2 {
		return badCommand(line)
	}

	action, kind := args[0], args[1]
	switch kind {
	case "type":
		return it.typeCommand(action, args[2:], line, w)
	case "record":
		return it.recordCommand(action, args[2:], line, w)
	default:
		return badCommand(line)
	}
}

func (it *Interpreter) typeCommand(action string, args []string, line string, w io.Writer) error {
	switch {
	case action == "create" && len(args) >= 2:
		// the declared field count is informative only, the listed names win
		if _, err := strconv.Atoi(args[1]); err != nil {
			return badCommand(line)
		}
		return it.db.CreateType(args[0], args[2:])
	case action == "delete" && len(args) == 1:
		return it.db.DeleteType(args[0])
	case action == "list" && len(args) == 0:
		names, err := it.db.ListTypes()
		if err != nil {
			return err
		}
		for _, name := range names {
			if _, err = fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
		return nil
	default:
		return badCommand(line)
	}
}

func (it *Interpreter) recordCommand(action string, args []string, line string, w io.Writer) error {
	if len(args) == 0 {
		return badCommand(line)
	}
	typeName := args[0]

	if action == "list" {
		if len(args) != 1 {
			return badCommand(line)
		}
		list, err := it.db.ListRecords(typeName)
		if err != nil {
			return err
		}
		for _, values := range list {
			if err = writeValues(w, values); err != nil {
				return err
			}
		}
		return nil
	}

	values, err := parseValues(args[1:])
	if err != nil || len(values) == 0 {
		return badCommand(line)
	}
	key := values[0]

	switch {
	case action == "create":
		return it.db.CreateRecord(typeName, values)
	case action == "update":
		return it.db.UpdateRecord(typeName, key, values)
	case action == "delete" && len(values) == 1:
		return it.db.DeleteRecord(typeName, key)
	case action == "search" && len(values) == 1:
		found, ok, err := it.db.SearchRecord(typeName, key)
		if err != nil || !ok {
			return err
		}
		return writeValues(w, found)
	default:
		return badCommand(line)
	}
}

func parseValues(args []string) ([]int64, error) {
	values := make([]int64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func writeValues(w io.Writer, values []int64) error {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

func badCommand(line string) error {
	return fmt.Errorf("%w: %q", ErrBadCommand, strings.TrimSpace(line))
}
