package geoharmonize

import (
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/carbocation/pfx"
)

// Open yields a decompressed reader over a series-matrix file, whether it
// lives on disk or behind an http(s) URL, and whether or not it is
// compressed.
func Open(input string) (io.ReadCloser, error) {
	if strings.HasPrefix(input, "http") {
		return openURL(input)
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, pfx.Err(err)
	}

	rc, err := MaybeDecompress(f)
	if err != nil {
		f.Close()
		return nil, pfx.Err(err)
	}

	if rc != f {
		return &chainedCloser{ReadCloser: rc, underlying: f}, nil
	}

	return rc, nil
}

func openURL(input string) (io.ReadCloser, error) {
	resp, err := http.Get(input)
	if err != nil {
		return nil, pfx.Err(err)
	}

	// The body is not seekable, so compression sniffing goes through a
	// buffered copy on disk rather than the two-read trick used for local
	// files.
	tmp, err := os.CreateTemp("", "geoharmonize_fetch")
	if err != nil {
		resp.Body.Close()
		return nil, pfx.Err(err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		resp.Body.Close()
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, pfx.Err(err)
	}
	resp.Body.Close()

	if _, err := tmp.Seek(0, 0); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, pfx.Err(err)
	}

	rc, err := MaybeDecompress(tmp)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, pfx.Err(err)
	}

	return &fetchedFile{ReadCloser: rc, file: tmp}, nil
}

// chainedCloser closes the decompressor and then the file beneath it.
type chainedCloser struct {
	io.ReadCloser
	underlying *os.File
}

func (c *chainedCloser) Close() error {
	err := c.ReadCloser.Close()
	if err2 := c.underlying.Close(); err == nil {
		err = err2
	}
	return err
}

// fetchedFile removes its temporary backing file on Close.
type fetchedFile struct {
	io.ReadCloser
	file *os.File
}

func (f *fetchedFile) Close() error {
	err := f.ReadCloser.Close()
	if f.file != nil {
		if err2 := f.file.Close(); err == nil {
			err = err2
		}
		os.Remove(f.file.Name())
		f.file = nil
	}
	return err
}
