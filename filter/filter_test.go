package filter

import (
	"testing"

	"dirmerge/treediff"
)

func tr(b bool) *bool { return &b }

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{
		"path +",
		"nosuchvar == 1",
		`path`, // non-boolean result
	} {
		if _, err := Compile(src); err == nil {
			t.Errorf("Compile(%q) succeeded, want error", src)
		}
	}
}

func TestEmptyFilterMatchesAll(t *testing.T) {
	f, err := Compile("")
	if err != nil {
		t.Fatal(err)
	}
	ok, err := f.Match(treediff.Entry{Path: "anything", Kind: treediff.Modified})
	if err != nil || !ok {
		t.Errorf("got (%v, %v), want (true, nil)", ok, err)
	}
}

func TestNilFilterMatchesAll(t *testing.T) {
	var f *Filter
	ok, err := f.Match(treediff.Entry{Path: "x"})
	if err != nil || !ok {
		t.Errorf("got (%v, %v), want (true, nil)", ok, err)
	}
}

func TestMatch(t *testing.T) {
	modified := treediff.Entry{
		Path: "src/main.go", Kind: treediff.Modified,
		LeftIsDir: tr(false), RightIsDir: tr(false),
	}
	leftDir := treediff.Entry{
		Path: "vendor/lib", Kind: treediff.LeftOnly, LeftIsDir: tr(true),
	}

	tests := []struct {
		name  string
		src   string
		entry treediff.Entry
		want  bool
	}{
		{"kind match", `kind == "modified"`, modified, true},
		{"kind mismatch", `kind == "modified"`, leftDir, false},
		{"path regex", `path matches "^src/"`, modified, true},
		{"path regex miss", `path matches "^src/"`, leftDir, false},
		{"dir flag", `leftIsDir`, leftDir, true},
		{"dir flag false", `leftIsDir`, modified, false},
		{"combination", `kind == "leftOnly" and path matches "^vendor/"`, leftDir, true},
		{"negation", `not (kind == "modified")`, leftDir, true},
		{"suffix", `hasSuffix(path, ".go")`, modified, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.src)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tt.src, err)
			}
			got, err := f.Match(tt.entry)
			if err != nil {
				t.Fatalf("Match: %v", err)
			}
			if got != tt.want {
				t.Errorf("Match(%q, %s) = %v, want %v", tt.src, tt.entry.Path, got, tt.want)
			}
		})
	}
}
