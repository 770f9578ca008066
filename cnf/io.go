package cnf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Write emits the DIMACS text form of c to w.
func (c *Cnf) Write(w io.Writer) error {
	_, err := io.WriteString(w, c.AsString())
	return err
}

// WriteFile writes the DIMACS text form of c to filename, truncating any
// existing content.
func (c *Cnf) WriteFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cnf: write %s: %w", filename, err)
	}
	defer f.Close()
	return c.Write(f)
}

// Read parses the DIMACS text form from r. Comment lines ("c ...") and
// blank lines are ignored. A mismatch between the declared clause count and
// the number actually read is reported as a warning on warn (pass nil to
// silence it), not as an error, per the DIMACS convention this module
// follows.
func Read(r io.Reader, warn io.Writer) (*Cnf, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)

	varCount := -1
	declaredClauses := -1
	var clauses [][]int
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return nil, fmt.Errorf("cnf: malformed header %q: %w", line, ErrParse)
			}
			vc, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("cnf: malformed header %q: %w", line, ErrParse)
			}
			cc, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("cnf: malformed header %q: %w", line, ErrParse)
			}
			varCount, declaredClauses = vc, cc
			continue
		}
		fields := strings.Fields(line)
		clause := make([]int, 0, len(fields))
		for _, f := range fields {
			lit, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("cnf: malformed clause %q: %w", line, ErrParse)
			}
			clause = append(clause, lit)
		}
		if len(clause) > 0 && clause[len(clause)-1] == 0 {
			clause = clause[:len(clause)-1]
		}
		clauses = append(clauses, clause)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cnf: read: %w", err)
	}
	if varCount < 0 {
		return nil, fmt.Errorf("cnf: missing header: %w", ErrParse)
	}
	if declaredClauses != len(clauses) && warn != nil {
		fmt.Fprintf(warn, "warning: inconsistent clause count (declared %d, read %d)\n",
			declaredClauses, len(clauses))
	}
	return New(varCount, clauses), nil
}

// ReadFile opens filename and parses its DIMACS content.
func ReadFile(filename string, warn io.Writer) (*Cnf, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cnf: open %s: %w", filename, err)
	}
	defer f.Close()
	return Read(f, warn)
}
