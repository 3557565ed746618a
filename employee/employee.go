// Package employee models a worker record with id-based equality, a
// value-score ordering and a one-line text format:
//
//	<name>, <experience>, <wage>, <uid>
//
// Names containing commas cannot be round-tripped through the text format.
package employee

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"math"
	"rollcall/seqs"
	"strconv"
	"strings"
)

var (
	ErrFieldCount   = errors.New("employee: want 4 comma separated fields")
	ErrInvalidField = errors.New("employee: invalid numeric field")
)

// Employee is a record of a worker at a company.
type Employee struct {
	// Name is the display name; it takes no part in equality or ordering.
	Name string
	// Experience is time worked at the company, in months.
	Experience uint32
	// Wage is the hourly rate.
	Wage uint32
	// UID uniquely identifies the employee.
	UID uint32
}

// Equal reports whether e and other are the same employee, i.e. share a UID.
func (e Employee) Equal(other Employee) bool {
	return e.UID == other.UID
}

// Value is Experience / Wage with integer division.
// An employee with a zero wage has value math.MaxUint32; Compare still ranks
// them above an employee whose quotient is math.MaxUint32.
func (e Employee) Value() uint32 {
	if e.Wage == 0 {
		return math.MaxUint32
	}
	return e.Experience / e.Wage
}

// Compare orders employees by Value, treating equal UIDs as equal.
// A zero wage sorts above every nonzero wage; two zero wages compare as 0.
//
// Two different employees with the same Value also compare as 0 while
// Equal still reports false for them. Compare is suitable for slices.SortFunc,
// slices.MaxFunc and similar.
func Compare(a, b Employee) int {
	if a.UID == b.UID {
		return 0
	}
	switch {
	case a.Wage == 0 && b.Wage == 0:
		return 0
	case a.Wage == 0:
		return 1
	case b.Wage == 0:
		return -1
	}
	return cmp.Compare(a.Value(), b.Value())
}

// String formats e as "<name>, <experience>, <wage>, <uid>".
func (e Employee) String() string {
	return fmt.Sprintf("%s, %d, %d, %d", e.Name, e.Experience, e.Wage, e.UID)
}

// Parse reads an employee from a line such as "Billy, 4, 5, 345".
// Whitespace around each field is trimmed. Errors wrap ErrFieldCount or
// ErrInvalidField.
func Parse(line string) (Employee, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 4 {
		return Employee{}, fmt.Errorf("%w: got %d in %q", ErrFieldCount, len(fields), line)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	experience, err := parseUint32("experience", fields[1])
	if err != nil {
		return Employee{}, err
	}
	wage, err := parseUint32("wage", fields[2])
	if err != nil {
		return Employee{}, err
	}
	uid, err := parseUint32("uid", fields[3])
	if err != nil {
		return Employee{}, err
	}

	return Employee{
		Name:       fields[0],
		Experience: experience,
		Wage:       wage,
		UID:        uid,
	}, nil
}

// ParseAll parses each line lazily. Lines that fail are yielded with their
// error and a zero Employee; iteration continues while the consumer keeps pulling.
func ParseAll(lines iter.Seq[string]) iter.Seq2[Employee, error] {
	return seqs.TryMap(lines, Parse)
}

// parseUint32 accepts a single leading '+' in addition to what strconv.ParseUint takes.
func parseUint32(field, s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %s %q: %w", ErrInvalidField, field, s, err)
	}
	return uint32(v), nil
}
