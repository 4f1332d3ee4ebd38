// Package generate builds the fixed small, medium and large instances and
// writes them in the instance text form.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signalsfoundry/tower-placement/internal/logging"
	"github.com/signalsfoundry/tower-placement/model"
	"github.com/signalsfoundry/tower-placement/textio"
)

// ErrNoCityList is returned for a size without a built-in city list.
var ErrNoCityList = errors.New("generate: no city list for size")

var cityLists = map[string]string{
	model.Small.Name:  smallCities,
	model.Medium.Name: mediumCities,
	model.Large.Name:  largeCities,
}

// Cities returns the built-in cities for size. Pairs outside the grid or
// repeating an earlier city are returned separately in dropped.
func Cities(size model.Size) (kept, dropped []model.Point, err error) {
	raw, ok := cityLists[size.Name]
	if !ok {
		return nil, nil, fmt.Errorf("%w %q", ErrNoCityList, size.Name)
	}
	points, err := parsePairs(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("city list %s: %w", size.Name, err)
	}

	seen := make(map[model.Point]struct{}, len(points))
	for _, p := range points {
		if _, dup := seen[p]; dup || !p.InGrid(size.D) {
			dropped = append(dropped, p)
			continue
		}
		seen[p] = struct{}{}
		kept = append(kept, p)
	}
	return kept, dropped, nil
}

// Instance builds the instance for size and checks that it fits the preset.
// Dropped cities are reported on the context logger.
func Instance(ctx context.Context, size model.Size) (*model.Instance, error) {
	log := logging.LoggerFromContext(ctx).With(logging.String("size", size.Name))

	cities, dropped, err := Cities(size)
	if err != nil {
		return nil, err
	}
	for _, p := range dropped {
		log.Warn(ctx, "dropping city outside grid or duplicated",
			logging.String("city", p.String()),
			logging.Int("d", size.D),
		)
	}

	inst, err := size.Instance(cities)
	if err != nil {
		return nil, fmt.Errorf("%s instance: %w", size.Name, err)
	}
	if !size.Fits(inst) {
		return nil, fmt.Errorf("%s instance does not fit its size: %d cities, limit %d", size.Name, inst.N(), size.MaxCities)
	}
	log.Debug(ctx, "generated instance", logging.Int("cities", inst.N()), logging.Int("dropped", len(dropped)))
	return inst, nil
}

// Write builds the instance for size and writes it to w under a
// "<SIZE> instance." comment.
func Write(ctx context.Context, w io.Writer, size model.Size) error {
	inst, err := Instance(ctx, size)
	if err != nil {
		return err
	}
	return textio.WriteInstance(w, inst, Comment(size))
}

// Comment is the header line written above a generated instance.
func Comment(size model.Size) string {
	return strings.ToUpper(size.Name) + " instance."
}

// FileName is the file a generated instance is written to inside an output
// directory.
func FileName(size model.Size) string {
	return size.Name + ".in"
}

func parsePairs(raw string) ([]model.Point, error) {
	fields := strings.Fields(raw)
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("odd number of coordinates (%d)", len(fields))
	}
	out := make([]model.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		y, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i+1, err)
		}
		out = append(out, model.Point{X: x, Y: y})
	}
	return out, nil
}
