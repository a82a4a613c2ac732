package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	defaultEncoding = "utf-8"
	defaultFlag     = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	defaultPerm     = 0o644
	defaultSpaces   = 2
)

// ErrUnsupportedEncoding is returned when an encoding label is unknown.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// WriteOptions controls how a value is encoded and written to disk.
// Zero Encoding, Flag and Perm fall back to the defaults.
type WriteOptions struct {
	Encoding string      // WHATWG label such as "utf-8"
	Flag     int         // os.OpenFile flags
	Perm     os.FileMode // mode for newly created files
	Spaces   int         // indentation width; 0 writes compact JSON
}

// ReadOptions controls how a file is read and decoded.
type ReadOptions struct {
	Encoding string
}

// DefaultWriteOptions returns UTF-8, create-or-truncate, 0644, two spaces.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		Encoding: defaultEncoding,
		Flag:     defaultFlag,
		Perm:     defaultPerm,
		Spaces:   defaultSpaces,
	}
}

// DefaultReadOptions returns UTF-8.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{Encoding: defaultEncoding}
}

// Encode renders v as JSON in the requested encoding, followed by a
// newline. HTML characters are not escaped.
func Encode(v any, opts WriteOptions) ([]byte, error) {
	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	je := json.NewEncoder(&buf)
	je.SetEscapeHTML(false)
	if opts.Spaces > 0 {
		je.SetIndent("", strings.Repeat(" ", opts.Spaces))
	}
	if err := je.Encode(v); err != nil {
		return nil, err
	}

	out, err := enc.NewEncoder().Bytes(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("transcoding to %s: %w", opts.Encoding, err)
	}
	return out, nil
}

// Decode converts data from the requested encoding, drops a leading byte
// order mark and unmarshals the JSON document into v.
func Decode(data []byte, v any, opts ReadOptions) error {
	text, err := decodeText(data, opts)
	if err != nil {
		return err
	}
	return json.Unmarshal(text, v)
}

// decodeText returns data as UTF-8 without a byte order mark.
func decodeText(data []byte, opts ReadOptions) ([]byte, error) {
	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	text, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return nil, fmt.Errorf("transcoding from %s: %w", opts.Encoding, err)
	}
	return text, nil
}

// WriteFile encodes v and writes it to path. Filesystem errors are returned
// as-is.
func WriteFile(path string, v any, opts WriteOptions) error {
	data, err := Encode(v, opts)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	flag := opts.Flag
	if flag == 0 {
		flag = defaultFlag
	}
	perm := opts.Perm
	if perm == 0 {
		perm = defaultPerm
	}

	f, err := os.OpenFile(path, flag, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads path and decodes it into v. Filesystem errors are returned
// as-is; decode errors are wrapped with the path.
func ReadFile(path string, v any, opts ReadOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := Decode(data, v, opts); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func lookupEncoding(label string) (encoding.Encoding, error) {
	if label == "" {
		label = defaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, label)
	}
	return enc, nil
}
