package lib

import "fmt"

// ParsedPath is one dialect's split of a path string. Name is the base without its extension.
type ParsedPath struct {
	Root string
	Dir  string
	Base string
	Name string
	Ext  string
}

// Dialect splits path strings according to one platform's syntax.
// Implementations must be safe for concurrent use.
type Dialect interface {
	Parse(path string) ParsedPath
	Separator() string
}

// DialectFuncs adapts a parse function and a separator into a Dialect.
type DialectFuncs struct {
	ParseFunc func(path string) ParsedPath
	Sep       string
}

func (d DialectFuncs) Parse(path string) ParsedPath { return d.ParseFunc(path) }

func (d DialectFuncs) Separator() string { return d.Sep }

var (
	// Posix uses forward slashes and a single "/" root.
	Posix Dialect = posixDialect{}
	// Windows understands drive letters, UNC shares and \\?\ / \\.\ namespace prefixes.
	Windows Dialect = windowsDialect{}
)

// DialectByName returns the dialect for "native", "posix" or "windows". Empty means native.
func DialectByName(name string) (Dialect, error) {
	switch name {
	case "", "native":
		return Native, nil
	case "posix":
		return Posix, nil
	case "windows":
		return Windows, nil
	}
	return nil, fmt.Errorf("unknown dialect: %s", name)
}

func checkDialect(dialect Dialect) error {
	if dialect == nil {
		return fmt.Errorf("%w: dialect is nil", ErrInvalidDialect)
	}
	if funcs, ok := dialect.(DialectFuncs); ok && funcs.ParseFunc == nil {
		return fmt.Errorf("%w: missing parse function", ErrInvalidDialect)
	}
	if funcs, ok := dialect.(*DialectFuncs); ok && (funcs == nil || funcs.ParseFunc == nil) {
		return fmt.Errorf("%w: missing parse function", ErrInvalidDialect)
	}
	if dialect.Separator() == "" {
		return fmt.Errorf("%w: empty separator", ErrInvalidDialect)
	}
	return nil
}

// splitBase scans path backwards from its end down to stop and finds the last
// entry name, skipping trailing separators. It returns the index where the entry
// starts (stop when no separator precedes it), the end of the entry (-1 when there
// is none) and the index of the dot that starts the extension (-1 when none).
func splitBase(path string, stop int, isSep func(byte) bool) (startPart, end, extDot int) {
	startPart = stop
	end = -1
	startDot := -1
	matchedSep := true
	// 0: no dot seen yet or only dots, 1: a dot follows another dot, -1: a regular char precedes the dot.
	preDotState := 0
	for i := len(path) - 1; i >= stop; i-- {
		c := path[i]
		if isSep(c) {
			if !matchedSep {
				startPart = i + 1
				break
			}
			continue
		}
		if end == -1 {
			matchedSep = false
			end = i + 1
		}
		if c == '.' {
			if startDot == -1 {
				startDot = i
			} else if preDotState != 1 {
				preDotState = 1
			}
		} else if startDot != -1 {
			preDotState = -1
		}
	}
	if end == -1 {
		return startPart, -1, -1
	}
	if startDot == -1 || preDotState == 0 ||
		(preDotState == 1 && startDot == end-1 && startDot == startPart+1) {
		return startPart, end, -1
	}
	return startPart, end, startDot
}

func fillBase(ret *ParsedPath, path string, start, end, extDot int) {
	if end == -1 {
		return
	}
	ret.Base = path[start:end]
	if extDot == -1 {
		ret.Name = ret.Base
		return
	}
	ret.Name = path[start:extDot]
	ret.Ext = path[extDot:end]
}
