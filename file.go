package ini

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Load reads and parses the INI file at path. The Encoding option selects
// the file's character encoding; the default is UTF-8. Failures at the
// file boundary are reported as *IOError.
func Load(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	doc, err := LoadFrom(f, opts...)
	if err != nil {
		return nil, withPath(err, path)
	}
	return doc, nil
}

// LoadFrom reads and parses an INI document from r, decoding it from the
// configured character encoding first.
func LoadFrom(r io.Reader, opts ...Option) (*Document, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	enc, err := lookupEncoding(o.encoding)
	if err != nil {
		return nil, err
	}
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}
	doc, err := NewDecoder(r, opts...).Decode()
	if err != nil {
		// Options already validated above, so this is a stream failure.
		return nil, &IOError{Op: "read", Err: err}
	}
	return doc, nil
}

// Save formats doc and writes it to the file at path, creating or
// truncating it. The Encoding option selects the output character
// encoding. Failures at the file boundary are reported as *IOError.
func Save(path string, doc *Document, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	if err := SaveTo(f, doc, opts...); err != nil {
		f.Close()
		return withPath(err, path)
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// SaveTo formats doc and writes it to w in the configured character
// encoding.
func SaveTo(w io.Writer, doc *Document, opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	enc, err := lookupEncoding(o.encoding)
	if err != nil {
		return err
	}
	var closer io.Closer
	if enc != nil {
		tw := transform.NewWriter(w, enc.NewEncoder())
		w, closer = tw, tw
	}
	if err := NewEncoder(w, opts...).Encode(doc); err != nil {
		if closer != nil {
			closer.Close()
		}
		return &IOError{Op: "write", Err: err}
	}
	if closer != nil {
		if err := closer.Close(); err != nil {
			return &IOError{Op: "write", Err: err}
		}
	}
	return nil
}

// lookupEncoding resolves a named character encoding. An empty name means
// plain UTF-8, for which no transform is needed.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" || name == "utf-8" || name == "UTF-8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("ini: unknown encoding %q: %w", name, err)
	}
	return enc, nil
}

// withPath stamps the file path onto an IOError coming out of the stream
// variants; other errors pass through unchanged.
func withPath(err error, path string) error {
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		ioErr.Path = path
	}
	return err
}
