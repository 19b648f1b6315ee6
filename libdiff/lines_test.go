package libdiff

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"lone newline", "\n", []string{""}},
		{"no trailing newline", "a", []string{"a"}},
		{"trailing newline", "a\n", []string{"a"}},
		{"two lines", "a\nb\n", []string{"a", "b"}},
		{"two lines no trailer", "a\nb", []string{"a", "b"}},
		{"blank middle line", "a\n\nb\n", []string{"a", "", "b"}},
		{"crlf stays on line", "a\r\nb\r\n", []string{"a\r", "b\r"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

func TestJoinRoundTrip(t *testing.T) {
	for _, text := range []string{
		"",
		"\n",
		"\n\n",
		"a",
		"a\n",
		"a\nb",
		"a\nb\n",
		"a\r\nb\r\n",
		"a\r\nb",
		"one\ntwo\nthree\n",
	} {
		got := JoinLines(SplitLines(text), EndsWithNewline(text))
		if got != text {
			t.Errorf("round trip of %q = %q", text, got)
		}
	}
}

func TestRenderSpan(t *testing.T) {
	lines := []string{"a", "b", "c"}
	tests := []struct {
		name     string
		start    int
		count    int
		trailing bool
		want     []string
	}{
		{"middle", 1, 1, true, []string{"b\n"}},
		{"final with trailer", 2, 1, true, []string{"c\n"}},
		{"final bare", 2, 1, false, []string{"c"}},
		{"out of range high", 3, 2, true, nil},
		{"out of range low", -1, 2, true, []string{"a\n"}},
		{"clipped", 2, 5, true, []string{"c\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderSpan(lines, tt.start, tt.count, tt.trailing)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("renderSpan(%d, %d, %v) = %#v, want %#v",
					tt.start, tt.count, tt.trailing, got, tt.want)
			}
		})
	}
}
