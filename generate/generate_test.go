package generate

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/signalsfoundry/tower-placement/internal/logging"
	"github.com/signalsfoundry/tower-placement/model"
	"github.com/signalsfoundry/tower-placement/textio"
)

func TestCitiesPerSize(t *testing.T) {
	cases := []struct {
		size    model.Size
		kept    int
		dropped []model.Point
	}{
		{model.Small, 49, []model.Point{{X: 30, Y: 30}}},
		{model.Medium, 90, []model.Point{
			{X: 50, Y: 21}, {X: 34, Y: 50}, {X: 50, Y: 48}, {X: 19, Y: 50},
			{X: 50, Y: 17}, {X: 50, Y: 19}, {X: 11, Y: 50},
		}},
		{model.Large, 192, []model.Point{
			{X: 100, Y: 28}, {X: 28, Y: 100}, {X: 72, Y: 100}, {X: 100, Y: 9},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.size.Name, func(t *testing.T) {
			kept, dropped, err := Cities(tc.size)
			require.NoError(t, err)
			require.Len(t, kept, tc.kept)
			require.Equal(t, tc.dropped, dropped)
			for _, p := range kept {
				require.True(t, p.InGrid(tc.size.D), "city %v outside grid %d", p, tc.size.D)
			}
		})
	}
}

func TestCitiesUnknownSize(t *testing.T) {
	_, _, err := Cities(model.Size{Name: "huge", D: 500})
	if !errors.Is(err, ErrNoCityList) {
		t.Fatalf("Cities error = %v, want ErrNoCityList", err)
	}
}

func TestInstanceFitsPresetAndLogsDrops(t *testing.T) {
	var logs bytes.Buffer
	ctx, _ := logging.WithRunLogger(context.Background(), logging.New(logging.Config{Output: &logs}))

	inst, err := Instance(ctx, model.Small)
	require.NoError(t, err)
	require.True(t, model.Small.Fits(inst))
	require.Equal(t, 49, inst.N())
	require.Contains(t, logs.String(), "dropping city outside grid or duplicated")
	require.Contains(t, logs.String(), "(30, 30)")
}

func TestWriteRoundTrips(t *testing.T) {
	for _, size := range model.Sizes() {
		var buf bytes.Buffer
		require.NoError(t, Write(context.Background(), &buf, size))
		require.True(t, strings.HasPrefix(buf.String(), "# "+strings.ToUpper(size.Name)+" instance.\n"))

		inst, err := textio.ParseInstance(&buf)
		require.NoError(t, err)
		require.True(t, size.Fits(inst), "%s instance does not fit after round trip", size.Name)
	}
}

func TestParsePairsRejectsOddOrGarbage(t *testing.T) {
	if _, err := parsePairs("1 2 3"); err == nil {
		t.Fatalf("expected error for odd coordinate count")
	}
	if _, err := parsePairs("1 x"); err == nil {
		t.Fatalf("expected error for non-integer coordinate")
	}
}

func TestFileNameAndComment(t *testing.T) {
	if got := FileName(model.Medium); got != "medium.in" {
		t.Fatalf("FileName = %q, want medium.in", got)
	}
	if got := Comment(model.Large); got != "LARGE instance." {
		t.Fatalf("Comment = %q, want %q", got, "LARGE instance.")
	}
}
