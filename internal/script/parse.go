// Package script parses and replays vector operation scripts.
//
// A script is one operation per line; blank lines and text after '#'
// are ignored:
//
//	append 1
//	insert 1 9   # index, value
//	erase 0
//	pop
//	reserve 16
//	resize 4
//	clear
//	at 2
//	set 0 7
//	print
//
// Values are single whitespace-free tokens.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Op names a script operation.
type Op string

const (
	OpAppend  Op = "append"
	OpInsert  Op = "insert"
	OpErase   Op = "erase"
	OpPop     Op = "pop"
	OpReserve Op = "reserve"
	OpResize  Op = "resize"
	OpClear   Op = "clear"
	OpAt      Op = "at"
	OpSet     Op = "set"
	OpPrint   Op = "print"
)

// arity is the number of arguments each operation takes.
var arity = map[Op]int{
	OpAppend:  1,
	OpInsert:  2,
	OpErase:   1,
	OpPop:     0,
	OpReserve: 1,
	OpResize:  1,
	OpClear:   0,
	OpAt:      1,
	OpSet:     2,
	OpPrint:   0,
}

// Mutates reports whether the operation can modify the vector.
func (op Op) Mutates() bool {
	switch op {
	case OpAt, OpPrint:
		return false
	}
	return true
}

// Instr is one parsed script line.
type Instr struct {
	Line int      // 1-based source line
	Op   Op       // operation
	Args []string // raw arguments
}

// String renders the instruction as it would appear in a script.
func (in Instr) String() string {
	if len(in.Args) == 0 {
		return string(in.Op)
	}
	return string(in.Op) + " " + strings.Join(in.Args, " ")
}

// Parse reads a script from r.
func Parse(r io.Reader) ([]Instr, error) {
	var instrs []Instr
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		op := Op(strings.ToLower(fields[0]))
		want, ok := arity[op]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown operation %q", line, fields[0])
		}
		args := fields[1:]
		if len(args) != want {
			return nil, fmt.Errorf("line %d: %s takes %d argument(s), got %d", line, op, want, len(args))
		}
		instrs = append(instrs, Instr{Line: line, Op: op, Args: args})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return instrs, nil
}
