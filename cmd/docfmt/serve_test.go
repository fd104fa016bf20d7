// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := log.New()
	logger.SetOutput(io.Discard)
	svc, err := newService(&Config{
		LineWidth:      80,
		IndentWidth:    2,
		IndentStyle:    "spaces",
		LineEnding:     "lf",
		MaxParallelism: 2,
		MaxBodyBytes:   1 << 16,
	}, logger)
	require.NoError(t, err)
	return svc.router()
}

func postFormat(t *testing.T, h http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/format", reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServeFormat(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	rec := postFormat(t, h, ReqFormat{Name: "list", Doc: listDoc})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res ResFormat
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "const x = [1, 2]", res.Output)

	rec = postFormat(t, h, ReqFormat{Name: "list", Doc: listDoc, LineWidth: 10, IndentStyle: "tabs"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "const x = [\n\t1,\n\t2\n]", res.Output)
}

func TestServeErrors(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	rec := postFormat(t, h, ReqFormat{Name: "bad", Doc: "\n  use(missing)"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var res ResError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, `use of undefined name "missing"`, res.Error)
	assert.Equal(t, 2, res.Line)
	assert.Equal(t, 3, res.Column)

	rec = postFormat(t, h, ReqFormat{Doc: `"x"`, IndentStyle: "wide"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = postFormat(t, h, ReqFormat{Doc: `"x"`, LineWidth: 1000})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = postFormat(t, h, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/v1/format", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "text/plain")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestServeHealth(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"ok"`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/format", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
