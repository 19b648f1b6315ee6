package libdiff

import (
	"reflect"
	"testing"
)

func TestExtractReplace(t *testing.T) {
	left := "line1\nline2\nline3\n"
	right := "line1\nmodified\nline3\n"
	hunks := Extract(left, right, 3)
	if len(hunks) != 1 {
		t.Fatalf("got %d hunks, want 1", len(hunks))
	}
	h := hunks[0]
	if h.LeftStart != 1 || h.LeftCount != 1 || h.RightStart != 1 || h.RightCount != 1 {
		t.Errorf("hunk range = (-%d,%d +%d,%d), want (-1,1 +1,1)",
			h.LeftStart, h.LeftCount, h.RightStart, h.RightCount)
	}
	if want := []string{"line2\n"}; !reflect.DeepEqual(h.LeftLines, want) {
		t.Errorf("LeftLines = %#v, want %#v", h.LeftLines, want)
	}
	if want := []string{"modified\n"}; !reflect.DeepEqual(h.RightLines, want) {
		t.Errorf("RightLines = %#v, want %#v", h.RightLines, want)
	}
	if want := []string{"line1\n"}; !reflect.DeepEqual(h.ContextBefore, want) {
		t.Errorf("ContextBefore = %#v, want %#v", h.ContextBefore, want)
	}
	if want := []string{"line3\n"}; !reflect.DeepEqual(h.ContextAfter, want) {
		t.Errorf("ContextAfter = %#v, want %#v", h.ContextAfter, want)
	}
}

func TestExtractContextWindow(t *testing.T) {
	left := "a\nb\nc\nd\ne\nf\ng\n"
	right := "a\nb\nc\nD\ne\nf\ng\n"
	tests := []struct {
		name    string
		context int
		before  []string
		after   []string
	}{
		{"zero", 0, nil, nil},
		{"one", 1, []string{"c\n"}, []string{"e\n"}},
		{"clamped", 10, []string{"a\n", "b\n", "c\n"}, []string{"e\n", "f\n", "g\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hunks := Extract(left, right, tt.context)
			if len(hunks) != 1 {
				t.Fatalf("got %d hunks, want 1", len(hunks))
			}
			if !reflect.DeepEqual(hunks[0].ContextBefore, tt.before) {
				t.Errorf("ContextBefore = %#v, want %#v", hunks[0].ContextBefore, tt.before)
			}
			if !reflect.DeepEqual(hunks[0].ContextAfter, tt.after) {
				t.Errorf("ContextAfter = %#v, want %#v", hunks[0].ContextAfter, tt.after)
			}
		})
	}
}

func TestExtractIdentical(t *testing.T) {
	if hunks := Extract("a\nb\n", "a\nb\n", 3); len(hunks) != 0 {
		t.Errorf("identical texts produced %d hunks", len(hunks))
	}
}

func TestExtractBareFinalLine(t *testing.T) {
	hunks := Extract("hello", "hello world", 0)
	if len(hunks) != 1 {
		t.Fatalf("got %d hunks, want 1", len(hunks))
	}
	if want := []string{"hello"}; !reflect.DeepEqual(hunks[0].LeftLines, want) {
		t.Errorf("LeftLines = %#v, want %#v", hunks[0].LeftLines, want)
	}
	if want := []string{"hello world"}; !reflect.DeepEqual(hunks[0].RightLines, want) {
		t.Errorf("RightLines = %#v, want %#v", hunks[0].RightLines, want)
	}
}

func TestExtractMultipleHunks(t *testing.T) {
	left := "a\nb\nc\nd\ne\nf\ng\nh\n"
	right := "a\nB\nc\nd\ne\nf\nG\nh\n"
	hunks := Extract(left, right, 1)
	if len(hunks) != 2 {
		t.Fatalf("got %d hunks, want 2", len(hunks))
	}
	if hunks[0].LeftStart >= hunks[1].LeftStart {
		t.Errorf("hunks out of order: %d then %d", hunks[0].LeftStart, hunks[1].LeftStart)
	}
}
