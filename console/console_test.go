package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segtree"
	"github.com/npillmayer/segtree/monoid"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// traceTo installs tracer as the core tracer and returns a teardown which
// re-installs the previous tracer.
func traceTo(tracer tracing.Trace, level tracing.TraceLevel) func() {
	saved := gtrace.CoreTracer
	gtrace.CoreTracer = tracer
	gtrace.CoreTracer.SetTraceLevel(level)
	return func() {
		gtrace.CoreTracer = saved
	}
}

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	saved := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = saved })
}

func TestFprintLevels(t *testing.T) {
	teardown := traceTo(gotestingadapter.New(t), tracing.LevelInfo)
	defer teardown()
	withColor(t, false)
	//
	tree := segtree.FromSlice([]int{1, 3, 2, 4}, monoid.Sum[int])
	var buf bytes.Buffer
	if err := Fprint(&buf, tree, nil, nil); err != nil {
		t.Fatal(err)
	}
	want := " 0: [0,4)=10\n" +
		" 1: [0,2)=4 [2,4)=6\n" +
		" 2: [0,1)=1 [1,2)=3 [2,3)=2 [3,4)=4\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestFprintWraps(t *testing.T) {
	teardown := traceTo(gotestingadapter.New(t), tracing.LevelInfo)
	defer teardown()
	withColor(t, false)
	//
	grapheme.SetupGraphemeClasses()
	measure := func(s string) int {
		return uax11.StringWidth(grapheme.StringFromString(s), uax11.LatinContext)
	}
	lw := measure("[0,1)=1")
	for _, label := range []string{"[1,2)=3", "[2,3)=2", "[3,4)=4", "[0,2)=4", "[2,4)=6"} {
		if measure(label) != lw {
			t.Fatalf("expected label %s to be %d ens wide, is %d", label, lw, measure(label))
		}
	}
	indent := len(" 2: ")
	tree := segtree.FromSlice([]int{1, 3, 2, 4}, monoid.Sum[int])
	tests := []struct {
		width int
		want  string
	}{
		{indent + 2*lw + 1, " 0: [0,4)=10\n" +
			" 1: [0,2)=4 [2,4)=6\n" +
			" 2: [0,1)=1 [1,2)=3\n" +
			"    [2,3)=2 [3,4)=4\n"},
		{indent + 2*lw, " 0: [0,4)=10\n" +
			" 1: [0,2)=4\n" +
			"    [2,4)=6\n" +
			" 2: [0,1)=1\n" +
			"    [1,2)=3\n" +
			"    [2,3)=2\n" +
			"    [3,4)=4\n"},
	}
	for _, tt := range tests {
		config := DefaultConfig()
		config.Width = tt.width
		var buf bytes.Buffer
		if err := Fprint(&buf, tree, nil, config); err != nil {
			t.Fatal(err)
		}
		t.Logf("width %d:\n%s", tt.width, buf.String())
		if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
			t.Errorf("width %d: output mismatch (-want +got):\n%s", tt.width, diff)
		}
	}
}

func TestFprintHighlightsCover(t *testing.T) {
	teardown := traceTo(gotestingadapter.New(t), tracing.LevelInfo)
	defer teardown()
	withColor(t, true)
	//
	tree := segtree.FromSlice([]string{"a", "b", "c", "d", "e"}, monoid.Concat)
	config := &Config{
		Width:   80,
		Context: uax11.LatinContext,
		Marked:  color.New(color.FgRed),
	}
	var buf bytes.Buffer
	if err := Fprint(&buf, tree, tree.Cover(1, 4), config); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	t.Logf("\n%s", out)
	red := color.New(color.FgRed)
	for _, label := range []string{"[1,2)=b", "[2,3)=c", "[3,4)=d"} {
		if !strings.Contains(out, red.Sprint(label)) {
			t.Errorf("expected %s to be highlighted", label)
		}
	}
	if strings.Contains(out, red.Sprint("[0,1)=a")) {
		t.Errorf("expected [0,1) not to be highlighted")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

var errWrite = errors.New("write failed")

func TestFprintReportsWriteError(t *testing.T) {
	teardown := traceTo(gologadapter.New(), tracing.LevelError)
	defer teardown()
	//
	tree := segtree.New(3, 0, monoid.Sum[int])
	if err := Fprint(failingWriter{}, tree, nil, nil); !errors.Is(err, errWrite) {
		t.Errorf("expected write error, got %v", err)
	}
	if err := Fprint[int](&bytes.Buffer{}, nil, nil, nil); err == nil {
		t.Errorf("expected error for nil tree")
	}
}

func TestTracerIsRestored(t *testing.T) {
	saved := gtrace.CoreTracer
	TestFprintReportsWriteError(t)
	if gtrace.CoreTracer != saved {
		t.Errorf("expected core tracer to be restored")
	}
}
