// Package compression gzip support for bridge requests and answers.
package compression

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
)

// Request content types whose answers get compressed.
var compressibleTypes = []string{"application/json", "text/plain"}

type (
	// gzip ResponseWriter.
	compressWriter struct {
		w           http.ResponseWriter
		zw          *gzip.Writer
		wroteHeader bool
	}

	// gzip request body.
	compressReader struct {
		r  io.ReadCloser
		zr *gzip.Reader
	}
)

func newCompressWriter(w http.ResponseWriter) *compressWriter {
	return &compressWriter{
		w:  w,
		zw: gzip.NewWriter(w),
	}
}

func (c *compressWriter) Header() http.Header {
	return c.w.Header()
}

func (c *compressWriter) Write(p []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}
	return c.zw.Write(p)
}

func (c *compressWriter) WriteHeader(statusCode int) {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true
	c.w.Header().Set("Content-Encoding", "gzip")
	c.w.Header().Del("Content-Length")
	c.w.WriteHeader(statusCode)
}

func (c *compressWriter) Close() error {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}
	return c.zw.Close()
}

func newCompressReader(r io.ReadCloser) (*compressReader, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &compressReader{
		r:  r,
		zr: zr,
	}, nil
}

func (c *compressReader) Read(p []byte) (int, error) {
	return c.zr.Read(p)
}

func (c *compressReader) Close() error {
	if err := c.r.Close(); err != nil {
		return err
	}
	return c.zr.Close()
}

func compressible(contentType string) bool {
	for _, v := range compressibleTypes {
		if strings.HasPrefix(contentType, v) {
			return true
		}
	}
	return false
}

// GzipCompDecomp unpack gzip request bodies and pack answers for clients accepting gzip.
func GzipCompDecomp(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ow := w

		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			cr, err := newCompressReader(r.Body)
			if err != nil {
				http.Error(w, "bad gzip body", http.StatusBadRequest)
				return
			}
			r.Body = cr
			defer cr.Close()
		}

		acceptsGzip := strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
		if acceptsGzip && (r.Method == http.MethodGet || compressible(r.Header.Get("Content-Type"))) {
			cw := newCompressWriter(w)
			ow = cw
			defer cw.Close()
		}

		h(ow, r)
	}
}
