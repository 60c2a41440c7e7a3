package cryptandsign

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

const seckey = "Kaib8eel"

func echoHandler(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	defer r.Body.Close()
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(b)
}

func testSendFunc(r *resty.Request, body, url string) (*resty.Response, error) {
	return r.SetBody(body).Post(url)
}

func TestSignRoundTrip(t *testing.T) {
	myTestBody := `{"bits":4096}`

	testCases := []struct {
		name     string
		srvKey   string
		cliKey   string
		status   int
		wantSign bool
		wantBody string
	}{
		{
			name:     "with_key",
			srvKey:   seckey,
			cliKey:   seckey,
			status:   http.StatusCreated,
			wantSign: true,
			wantBody: myTestBody,
		},
		{
			name:     "without_key",
			status:   http.StatusCreated,
			wantBody: myTestBody,
		},
		{
			name:     "wrong_key",
			srvKey:   seckey,
			cliKey:   "other",
			status:   http.StatusBadRequest,
			wantBody: "sign error\n",
		},
		{
			name:     "unsigned_request",
			srvKey:   seckey,
			status:   http.StatusBadRequest,
			wantBody: "sign error\n",
		},
	}

	for _, v := range testCases {
		t.Run(v.name, func(t *testing.T) {
			ts := httptest.NewServer(SignCheck(echoHandler, v.srvKey))
			defer ts.Close()

			send := SignNew(testSendFunc, v.cliKey)
			resp, err := send(resty.New().R(), myTestBody, ts.URL)
			require.NoError(t, err)
			require.Equal(t, v.status, resp.StatusCode())
			require.Equal(t, v.wantBody, string(resp.Body()))

			respSign := resp.Header().Get(SignHeader)
			if v.wantSign {
				require.True(t, Verify(resp.Body(), respSign, v.srvKey))
			} else {
				require.Empty(t, respSign)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	data := []byte("payload")
	sign := Sign(data, seckey)
	require.Len(t, sign, 64)
	require.True(t, Verify(data, sign, seckey))
	require.False(t, Verify(data, sign, "other"))
	require.False(t, Verify([]byte("payload2"), sign, seckey))
	require.False(t, Verify(data, "not-hex", seckey))
	require.False(t, Verify(data, strings.ToUpper(sign)+"00", seckey))
}
