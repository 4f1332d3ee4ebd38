// Package textio reads and writes the line-oriented instance and solution
// files. Lines whose first non-blank character is '#' are comments and blank
// lines are ignored everywhere.
//
// Instance layout:
//
//	N
//	D
//	R_s
//	R_p
//	x y    (N lines)
//
// Solution layout:
//
//	# Penalty: <value>
//	M
//	x y    (M lines)
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signalsfoundry/tower-placement/model"
)

// ErrMalformed reports input that does not follow the file layout. Errors
// wrapping it name the offending line.
var ErrMalformed = errors.New("textio: malformed input")

// ParseInstance reads an instance and validates it with model.NewInstance.
func ParseInstance(r io.Reader) (*model.Instance, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) < 4 {
		return nil, fmt.Errorf("%w: instance header needs N, D, R_s and R_p, got %d lines", ErrMalformed, len(lines))
	}

	n, err := lines[0].asInt()
	if err != nil {
		return nil, err
	}
	d, err := lines[1].asInt()
	if err != nil {
		return nil, err
	}
	rs, err := lines[2].asFloat()
	if err != nil {
		return nil, err
	}
	rp, err := lines[3].asFloat()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: line %d: negative city count %d", ErrMalformed, lines[0].no, n)
	}

	cities, err := parsePoints(lines[4:], n, "city")
	if err != nil {
		return nil, err
	}
	inst, err := model.NewInstance(d, rs, rp, cities)
	if err != nil {
		return nil, fmt.Errorf("invalid instance: %w", err)
	}
	return inst, nil
}

// WriteInstance writes inst, preceded by comment when it is non-empty.
func WriteInstance(w io.Writer, inst *model.Instance, comment string) error {
	bw := bufio.NewWriter(w)
	writeComment(bw, comment)
	fmt.Fprintln(bw, inst.N())
	fmt.Fprintln(bw, inst.D())
	fmt.Fprintln(bw, formatFloat(inst.ServiceRadius()))
	fmt.Fprintln(bw, formatFloat(inst.PenaltyRadius()))
	for _, c := range inst.Cities() {
		fmt.Fprintf(bw, "%d %d\n", c.X, c.Y)
	}
	return bw.Flush()
}

// ParseSolution reads a solution for inst. It does not validate coverage or
// bounds; call Validate on the result.
func ParseSolution(r io.Reader, inst *model.Instance) (*model.Solution, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: solution needs a tower count", ErrMalformed)
	}
	m, err := lines[0].asInt()
	if err != nil {
		return nil, err
	}
	if m < 0 {
		return nil, fmt.Errorf("%w: line %d: negative tower count %d", ErrMalformed, lines[0].no, m)
	}
	towers, err := parsePoints(lines[1:], m, "tower")
	if err != nil {
		return nil, err
	}
	return &model.Solution{Instance: inst, Towers: towers}, nil
}

// WriteSolution writes sol with its recomputed penalty as a leading comment.
func WriteSolution(w io.Writer, sol *model.Solution) error {
	bw := bufio.NewWriter(w)
	writeComment(bw, "Penalty: "+formatFloat(sol.Penalty()))
	fmt.Fprintln(bw, len(sol.Towers))
	for _, t := range sol.Towers {
		fmt.Fprintf(bw, "%d %d\n", t.X, t.Y)
	}
	return bw.Flush()
}

type line struct {
	no     int
	fields []string
}

func (l line) single() (string, error) {
	if len(l.fields) != 1 {
		return "", fmt.Errorf("%w: line %d: want one value, got %q", ErrMalformed, l.no, strings.Join(l.fields, " "))
	}
	return l.fields[0], nil
}

func (l line) asInt() (int, error) {
	s, err := l.single()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %q is not an integer", ErrMalformed, l.no, s)
	}
	return v, nil
}

func (l line) asFloat() (float64, error) {
	s, err := l.single()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %q is not a number", ErrMalformed, l.no, s)
	}
	return v, nil
}

func (l line) point(kind string) (model.Point, error) {
	if len(l.fields) != 2 {
		return model.Point{}, fmt.Errorf("%w: line %d: %s needs two coordinates, got %q", ErrMalformed, l.no, kind, strings.Join(l.fields, " "))
	}
	x, errX := strconv.Atoi(l.fields[0])
	y, errY := strconv.Atoi(l.fields[1])
	if errX != nil || errY != nil {
		return model.Point{}, fmt.Errorf("%w: line %d: %s coordinates %q are not integers", ErrMalformed, l.no, kind, strings.Join(l.fields, " "))
	}
	return model.Point{X: x, Y: y}, nil
}

func parsePoints(lines []line, want int, kind string) ([]model.Point, error) {
	if len(lines) != want {
		return nil, fmt.Errorf("%w: declared %d %ss, found %d coordinate lines", ErrMalformed, want, kind, len(lines))
	}
	points := make([]model.Point, 0, want)
	for _, l := range lines {
		p, err := l.point(kind)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func readLines(r io.Reader) ([]line, error) {
	var out []line
	sc := bufio.NewScanner(r)
	for no := 1; sc.Scan(); no++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		out = append(out, line{no: no, fields: strings.Fields(text)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return out, nil
}

func writeComment(w io.Writer, comment string) {
	for _, l := range strings.Split(comment, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		fmt.Fprintf(w, "# %s\n", l)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
