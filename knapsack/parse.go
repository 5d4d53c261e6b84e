package knapsack

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseProblem reads a problem in the textual format
//
//	<item_count> <capacity>
//	<value_0> <weight_0>
//	...
//	<value_n-1> <weight_n-1>
//
// Blank lines are ignored. Extra lines after the last item are rejected.
// All parse failures wrap ErrMalformedInput with the offending line number;
// the decoded record is then validated like Load does.
func ParseProblem(r io.Reader) (Problem, error) {
	var (
		sc     = bufio.NewScanner(r)
		lineNo int
		p      Problem
		count  = -1
	)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		a, b, err := parsePairLine(line)
		if err != nil {
			return Problem{}, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, lineNo, err)
		}

		if count < 0 {
			if a <= 0 {
				return Problem{}, fmt.Errorf("%w: line %d: item count must be positive, got %d", ErrMalformedInput, lineNo, a)
			}
			count = int(a)
			p.Capacity = b
			p.Items = make([]Pair, 0, min(count, 1<<16))
			continue
		}
		if len(p.Items) == count {
			return Problem{}, fmt.Errorf("%w: line %d: more than %d items", ErrMalformedInput, lineNo, count)
		}
		p.Items = append(p.Items, Pair{Value: a, Weight: b})
	}
	if err := sc.Err(); err != nil {
		return Problem{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	if count < 0 {
		return Problem{}, fmt.Errorf("%w: missing header line", ErrMalformedInput)
	}
	if len(p.Items) != count {
		return Problem{}, fmt.Errorf("%w: header declares %d items, found %d", ErrMalformedInput, count, len(p.Items))
	}
	if err := validateProblem(p); err != nil {
		return Problem{}, err
	}

	return p, nil
}

// parsePairLine splits a line into exactly two base-10 int64 fields.
func parsePairLine(line string) (int64, int64, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	a, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

// WriteResult prints r in the answer format
//
//	<value> 0
//	<bit> <bit> ... <bit>
//
// The second field of the first line is a reserved flag and is always 0.
func WriteResult(w io.Writer, r Result) error {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(r.Value, 10))
	sb.WriteString(" 0\n")
	for i, bit := range r.Taken {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(bit))
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())

	return err
}
