package weld

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Directive prefixes recognized by the preprocessor. A directive occupies one
// physical line and is consumed, never emitted.
const (
	directiveInclude = "#include"
	directiveIf      = "#IF "
	directiveEndif   = "#ENDIF"
)

// condState tracks the conditional-inclusion state while scanning one file.
// There is deliberately no nesting support: a single flag pair mirrors the
// documented single-#IF contract, so an inner #IF overwrites the outer
// condition and the first #ENDIF clears both.
type condState struct {
	inIf bool
	skip bool
}

// ProcessFile preprocesses sourcePath for target and writes the fully resolved
// text to destPath. A pre-existing destination file is removed first, so no
// stale content or permissions survive across runs.
//
// The source's own lines are emitted first (directives consumed, constants
// substituted, false-conditional blocks dropped). Then each library collected
// from #include lines is appended in first-occurrence order, preceded by a
// marker comment naming it. Libraries are run through the same #IF/#ENDIF and
// substitution logic unless preprocessLibrary is false, in which case their
// raw bytes are copied through. A library's own #include lines are not honored
// as directives; they pass through as ordinary text.
func (w *Weld) ProcessFile(sourcePath, destPath, target string, preprocessLibrary bool) error {
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove stale output %s: %w", destPath, err)
		}
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open source %s: %w", sourcePath, err)
	}

	dst, err := os.Create(destPath)
	if err != nil {
		src.Close()
		return fmt.Errorf("failed to create output %s: %w", destPath, err)
	}

	names := w.constantNames()

	libNames, err := w.scanInto(src, dst, target, names, true)
	src.Close()
	if err != nil {
		dst.Close()
		return fmt.Errorf("failed to process %s: %w", sourcePath, err)
	}

	for _, libName := range libNames {
		if err := w.appendLibrary(dst, libName, target, names, preprocessLibrary); err != nil {
			dst.Close()
			return fmt.Errorf("failed to process %s: %w", sourcePath, err)
		}
	}

	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to close output %s: %w", destPath, err)
	}
	return nil
}

// appendLibrary writes the marker comment for libName followed by the
// library's resolved (or raw) content.
func (w *Weld) appendLibrary(dst io.Writer, libName, target string, names []string, preprocess bool) error {
	libPath, err := w.LibraryPath(libName)
	if err != nil {
		return err
	}

	lib, err := os.Open(libPath)
	if err != nil {
		return fmt.Errorf("failed to open library %s: %w", libPath, err)
	}
	defer lib.Close()

	if _, err := fmt.Fprintf(dst, "\n\n// ~~~ IMPORTED FROM %s ~~~\n", libName); err != nil {
		return fmt.Errorf("failed to write library marker: %w", err)
	}

	if !preprocess {
		if _, err := io.Copy(dst, lib); err != nil {
			return fmt.Errorf("failed to copy library %s: %w", libPath, err)
		}
		return nil
	}

	// #include is not honored inside a library fragment
	if _, err := w.scanInto(lib, dst, target, names, false); err != nil {
		return fmt.Errorf("failed to process library %s: %w", libPath, err)
	}
	return nil
}

// scanInto runs the line scanner over r, emitting resolved lines to dst.
// When collectIncludes is true, #include lines are consumed and their library
// names returned in order of first occurrence, duplicates preserved.
//
// Lines are read with their original endings intact so the output preserves
// the source's whitespace and newline formation byte for byte.
func (w *Weld) scanInto(r io.Reader, dst io.Writer, target string, names []string, collectIncludes bool) ([]string, error) {
	var libNames []string
	var st condState

	br := newLineIter(r)
	for {
		line, err := br.next()
		if err == io.EOF {
			// Reaching EOF inside an open conditional is a silent
			// implicit close.
			return libNames, nil
		}
		if err != nil {
			return nil, err
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case collectIncludes && strings.HasPrefix(trimmed, directiveInclude) && !st.skip:
			libName := strings.TrimSpace(trimmed[len(directiveInclude):])
			libNames = append(libNames, libName)
		case strings.HasPrefix(trimmed, directiveIf):
			keep, err := w.evalCondition(trimmed, target)
			if err != nil {
				return nil, err
			}
			st.inIf = true
			st.skip = !keep
		case strings.HasPrefix(trimmed, directiveEndif):
			st.inIf = false
			st.skip = false
		case !(st.inIf && st.skip):
			// Skipped lines are dropped before substitution, so a
			// malformed placeholder inside a dead block never errors.
			resolved, err := w.substitute(line, target, names)
			if err != nil {
				return nil, err
			}
			if _, err := io.WriteString(dst, resolved); err != nil {
				return nil, fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
}

// evalCondition evaluates a trimmed "#IF <lhs> == <rhs>" line. The left-hand
// side must name a known constant with a value for the active target; the
// right-hand side is a literal, surrounding double quotes stripped.
func (w *Weld) evalCondition(trimmed, target string) (bool, error) {
	cond := strings.TrimSpace(trimmed[len(directiveIf):])
	lhs, rhs, found := strings.Cut(cond, "==")
	if !found {
		return false, fmt.Errorf("malformed condition %q: expected <constant> == <literal>", trimmed)
	}

	name := strings.TrimSpace(lhs)
	values, ok := w.config.Constants[name]
	if !ok {
		return false, fmt.Errorf("unknown constant %s in condition %q", name, trimmed)
	}
	value, ok := values[target]
	if !ok {
		return false, fmt.Errorf("constant %s has no value for target %s", name, target)
	}

	lit := strings.TrimSpace(rhs)
	if len(lit) >= 2 && strings.HasPrefix(lit, `"`) && strings.HasSuffix(lit, `"`) {
		lit = lit[1 : len(lit)-1]
	}

	return value == lit, nil
}

// substitute replaces every occurrence of every known constant token in line
// with its value for target. Replacement is plain text matching: a token
// appearing inside an unrelated literal or comment is still replaced, which is
// the documented contract. Unrelated text is left byte-identical.
func (w *Weld) substitute(line, target string, names []string) (string, error) {
	for _, name := range names {
		if !strings.Contains(line, name) {
			continue
		}
		value, ok := w.config.Constants[name][target]
		if !ok {
			return "", fmt.Errorf("constant %s has no value for target %s", name, target)
		}
		line = strings.ReplaceAll(line, name, value)
	}
	return line, nil
}

// constantNames returns the constant tokens in sorted order, so substitution
// is deterministic and reprocessing the same input yields identical output.
func (w *Weld) constantNames() []string {
	names := make([]string, 0, len(w.config.Constants))
	for name := range w.config.Constants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
