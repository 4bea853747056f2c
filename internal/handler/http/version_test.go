package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// failingWriter accepts headers but fails every body write.
type failingWriter struct {
	*httptest.ResponseRecorder
}

func (f failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestGetAppVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, appInfo := newMockedHandler(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.4.0")

	rr := httptest.NewRecorder()
	h.getAppVersion(rr, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "v1.4.0", rr.Body.String())
}

func TestHealthz(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: liveness never touches the services
	h, _, _ := newMockedHandler(ctrl)

	rr := httptest.NewRecorder()
	h.healthz(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestTextHandlers_LogWriteErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		call    func(h *Handler, w http.ResponseWriter, r *http.Request)
		wantMsg string
	}{
		{
			name:    "version",
			path:    "/version",
			call:    (*Handler).getAppVersion,
			wantMsg: "error writing app version",
		},
		{
			name:    "healthz",
			path:    "/healthz",
			call:    (*Handler).healthz,
			wantMsg: "error writing health status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, _, appInfo := newMockedHandler(ctrl)
			appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.4.0").AnyTimes()

			var logBuf bytes.Buffer
			req := makeRequest(http.MethodGet, tt.path, &logBuf)

			tt.call(h, failingWriter{httptest.NewRecorder()}, req)

			assert.Contains(t, logBuf.String(), `"level":"error"`)
			assert.Contains(t, logBuf.String(), "connection reset")
			assert.Contains(t, logBuf.String(), tt.wantMsg)
		})
	}
}

