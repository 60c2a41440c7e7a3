// Package cryptandsign HMAC-SHA256 signing of bridge requests and answers.
package cryptandsign

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/sourcecd/keypairgen/internal/logging"
)

// SignHeader carries hex encoded HMAC-SHA256 of the body.
const SignHeader = "HashSHA256"

type (
	// SendFunc client side request sender.
	SendFunc func(r *resty.Request, body, url string) (*resty.Response, error)

	// Buffers the answer until the signature can be put into headers.
	signResponseWriter struct {
		w      http.ResponseWriter
		buf    bytes.Buffer
		status int
	}
)

func (s *signResponseWriter) Header() http.Header {
	return s.w.Header()
}

func (s *signResponseWriter) Write(b []byte) (int, error) {
	return s.buf.Write(b)
}

func (s *signResponseWriter) WriteHeader(statusCode int) {
	if s.status == 0 {
		s.status = statusCode
	}
}

func (s *signResponseWriter) flush(seckey string) error {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	s.w.Header().Set(SignHeader, Sign(s.buf.Bytes(), seckey))
	s.w.WriteHeader(s.status)
	_, err := s.w.Write(s.buf.Bytes())
	return err
}

// Sign hex encoded HMAC-SHA256 of data.
func Sign(data []byte, seckey string) string {
	hm := hmac.New(sha256.New, []byte(seckey))
	hm.Write(data)
	return hex.EncodeToString(hm.Sum(nil))
}

// Verify check hex encoded signature of data in constant time.
func Verify(data []byte, sign, seckey string) bool {
	got, err := hex.DecodeString(sign)
	if err != nil {
		return false
	}
	hm := hmac.New(sha256.New, []byte(seckey))
	hm.Write(data)
	return hmac.Equal(got, hm.Sum(nil))
}

// SignCheck reject requests without valid signature and sign answers.
// Empty seckey disables signing.
func SignCheck(h http.HandlerFunc, seckey string) http.HandlerFunc {
	if seckey == "" {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "error read request body", http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !Verify(body, r.Header.Get(SignHeader), seckey) {
			logging.Log.Warn("sign error", zap.String("remote", r.RemoteAddr))
			http.Error(w, "sign error", http.StatusBadRequest)
			return
		}

		sw := &signResponseWriter{w: w}
		h(sw, r)
		if err := sw.flush(seckey); err != nil {
			logging.Log.Warn("write signed answer", zap.Error(err))
		}
	}
}

// SignNew sign outgoing body. Empty seckey disables signing.
func SignNew(s SendFunc, seckey string) SendFunc {
	if seckey == "" {
		return s
	}
	return func(r *resty.Request, body, url string) (*resty.Response, error) {
		r.SetHeader(SignHeader, Sign([]byte(body), seckey))
		return s(r, body, url)
	}
}
