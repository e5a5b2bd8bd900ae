package route

import (
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func pos(v int) *int { return &v }

func storeDirectory() []Aisle {
	return []Aisle{
		{Code: "A1", Name: "Produce", Position: pos(0)},
		{Code: "B1", Name: "Meats", Position: pos(2)},
		{Code: "C1", Name: "Pantry", Position: pos(3)},
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		directory []Aisle
		want      []Entry
	}{
		{
			name:      "known and unknown codes with duplicates",
			requested: []string{"C1", "A1", "A1", "Z9"},
			directory: storeDirectory(),
			want: []Entry{
				{Code: "A1", Name: "Produce", Position: 0, Resolved: true},
				{Code: "C1", Name: "Pantry", Position: 3, Resolved: true},
				{Code: "Z9", Name: "Z9", Position: 1_000_000},
			},
		},
		{
			name:      "empty directory",
			requested: []string{"X1", "X1"},
			directory: nil,
			want:      []Entry{{Code: "X1", Name: "X1", Position: 1_000_000}},
		},
		{
			name:      "empty request",
			requested: nil,
			directory: storeDirectory(),
			want:      []Entry{},
		},
		{
			name:      "everything empty",
			requested: []string{},
			directory: []Aisle{},
			want:      []Entry{},
		},
		{
			name:      "missing position falls back to index",
			requested: []string{"D1", "B1", "A1"},
			directory: []Aisle{
				{Code: "A1", Name: "Produce"},
				{Code: "B1", Name: "Dairy"},
				{Code: "D1", Name: "Frozen", Position: pos(1)},
			},
			want: []Entry{
				{Code: "A1", Name: "Produce", Position: 0, Resolved: true},
				{Code: "D1", Name: "Frozen", Position: 1, Resolved: true},
				{Code: "B1", Name: "Dairy", Position: 1, Resolved: true},
			},
		},
		{
			name:      "ties keep first occurrence order",
			requested: []string{"Q2", "Y", "Q1", "X", "Y"},
			directory: []Aisle{
				{Code: "Q1", Name: "Left", Position: pos(5)},
				{Code: "Q2", Name: "Right", Position: pos(5)},
			},
			want: []Entry{
				{Code: "Q2", Name: "Right", Position: 5, Resolved: true},
				{Code: "Q1", Name: "Left", Position: 5, Resolved: true},
				{Code: "Y", Name: "Y", Position: 1_000_000},
				{Code: "X", Name: "X", Position: 1_000_000},
			},
		},
		{
			name:      "layout positions beyond the sentinel",
			requested: []string{"far", "??"},
			directory: []Aisle{{Code: "far", Name: "Far wall", Position: pos(2_000_000)}},
			want: []Entry{
				{Code: "far", Name: "Far wall", Position: 2_000_000, Resolved: true},
				{Code: "??", Name: "??", Position: 2_000_001},
			},
		},
		{
			name:      "max int layout still sorts unknowns last",
			requested: []string{"??", "edge"},
			directory: []Aisle{{Code: "edge", Name: "Edge", Position: pos(math.MaxInt)}},
			want: []Entry{
				{Code: "edge", Name: "Edge", Position: math.MaxInt, Resolved: true},
				{Code: "??", Name: "??", Position: math.MaxInt},
			},
		},
		{
			name:      "negative positions walk first",
			requested: []string{"A1", "ENT"},
			directory: append(storeDirectory(), Aisle{Code: "ENT", Name: "Entrance", Position: pos(-1)}),
			want: []Entry{
				{Code: "ENT", Name: "Entrance", Position: -1, Resolved: true},
				{Code: "A1", Name: "Produce", Position: 0, Resolved: true},
			},
		},
		{
			name:      "codes match exactly",
			requested: []string{"a1"},
			directory: storeDirectory(),
			want:      []Entry{{Code: "a1", Name: "a1", Position: 1_000_000}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.requested, tt.directory)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Resolve mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveDuplicatesAreIdempotent(t *testing.T) {
	for _, code := range []string{"A1", "B1", "nope", ""} {
		once := Resolve([]string{code}, storeDirectory())
		thrice := Resolve([]string{code, code, code}, storeDirectory())
		require.Equal(t, once, thrice, "code %q", code)
	}
}

func TestResolveIgnoresInputOrderForDistinctPositions(t *testing.T) {
	want := Resolve([]string{"A1", "B1", "C1"}, storeDirectory())
	perms := [][]string{
		{"A1", "C1", "B1"},
		{"B1", "A1", "C1"},
		{"B1", "C1", "A1"},
		{"C1", "A1", "B1"},
		{"C1", "B1", "A1"},
	}
	for _, p := range perms {
		require.Equal(t, want, Resolve(p, storeDirectory()), "permutation %v", p)
	}
}

func TestResolveUnknownCodesTrailKnownOnes(t *testing.T) {
	dir := storeDirectory()
	got := Resolve([]string{"zz", "C1", "yy", "A1"}, dir)

	maxPos := 0
	for _, a := range dir {
		if *a.Position > maxPos {
			maxPos = *a.Position
		}
	}
	seenUnknown := false
	for _, e := range got {
		if !e.Resolved {
			seenUnknown = true
			require.Equal(t, e.Code, e.Name)
			require.Greater(t, e.Position, maxPos)
			continue
		}
		require.False(t, seenUnknown, "known code %q after an unknown one", e.Code)
	}
}

func TestResolveDoesNotMutateInputs(t *testing.T) {
	requested := []string{"C1", "A1", "A1", "Z9"}
	dir := storeDirectory()
	Resolve(requested, dir)

	require.Equal(t, []string{"C1", "A1", "A1", "Z9"}, requested)
	if diff := cmp.Diff(storeDirectory(), dir); diff != "" {
		t.Fatalf("directory mutated (-want +got):\n%s", diff)
	}
}

func TestResolveDuplicateDirectoryCodesLastWins(t *testing.T) {
	dir := []Aisle{
		{Code: "A1", Name: "Old Produce", Position: pos(9)},
		{Code: "A1", Name: "Produce", Position: pos(0)},
	}
	got := Resolve([]string{"A1"}, dir)
	require.Equal(t, []Entry{{Code: "A1", Name: "Produce", Position: 0, Resolved: true}}, got)
}

func TestResolveConcurrentCallers(t *testing.T) {
	dir := storeDirectory()
	want := Resolve([]string{"Z9", "C1", "A1"}, dir)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := Resolve([]string{"Z9", "C1", "A1"}, dir)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("concurrent Resolve mismatch (-want +got):\n%s", diff)
			}
		}()
	}
	wg.Wait()
}

func TestSummaryAndCodes(t *testing.T) {
	entries := Resolve([]string{"C1", "Z9", "A1"}, storeDirectory())
	require.Equal(t, Stats{Total: 3, Resolved: 2, Unresolved: 1}, Summary(entries))
	require.Equal(t, []string{"A1", "C1", "Z9"}, Codes(entries))
	require.Equal(t, Stats{}, Summary(nil))
}
