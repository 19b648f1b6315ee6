// Package filecmp compares file contents and classifies files as
// text or binary.
package filecmp

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// binaryProbeLen is how many leading bytes are inspected for a zero
// byte. A zero byte in this window classifies the file as binary; a
// pure heuristic, not a format sniff.
const binaryProbeLen = 8192

// Identical reports full byte-for-byte equality of the two files.
// No size shortcut, no hashing: both files are read completely.
func Identical(afs billy.Filesystem, apath string, bfs billy.Filesystem, bpath string) (bool, error) {
	a, err := util.ReadFile(afs, apath)
	if err != nil {
		return false, err
	}
	b, err := util.ReadFile(bfs, bpath)
	if err != nil {
		return false, err
	}
	return bytes.Equal(a, b), nil
}

// IsBinary reports whether the file's first 8192 bytes contain a
// zero byte.
func IsBinary(fs billy.Filesystem, path string) (bool, error) {
	f, err := fs.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	buf := make([]byte, binaryProbeLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}
	return bytes.IndexByte(buf[:n], 0) >= 0, nil
}

// ReadText reads the file as text. ok is false when the binary
// heuristic triggers; that is an outcome, not an error. Invalid UTF-8
// sequences are replaced rather than failing, so decoding never
// errors.
func ReadText(fs billy.Filesystem, path string) (text string, ok bool, err error) {
	d, err := util.ReadFile(fs, path)
	if err != nil {
		return "", false, err
	}
	probe := d
	if len(probe) > binaryProbeLen {
		probe = probe[:binaryProbeLen]
	}
	if bytes.IndexByte(probe, 0) >= 0 {
		return "", false, nil
	}
	return strings.ToValidUTF8(string(d), "�"), true, nil
}
