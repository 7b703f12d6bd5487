// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package rosetta_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/sui-rosetta/api/rosetta"
	"github.com/optakt/sui-rosetta/rosetta/meta"
)

func setupRecorder(t *testing.T, endpoint string, request interface{}) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	var body []byte
	switch req := request.(type) {
	case string:
		body = []byte(req)
	default:
		var err error
		body, err = json.Marshal(request)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	return rec, ctx
}

func checkRosettaError(statusCode int, definition meta.ErrorDefinition) assert.ErrorAssertionFunc {
	return func(t assert.TestingT, err error, _ ...interface{}) bool {
		var httpErr *echo.HTTPError
		if !assert.True(t, errors.As(err, &httpErr), "error is not an HTTP error: %v", err) {
			return false
		}
		if !assert.Equal(t, statusCode, httpErr.Code) {
			return false
		}
		rosettaErr, ok := httpErr.Message.(rosetta.Error)
		if !assert.True(t, ok, "error message is not a Rosetta error") {
			return false
		}
		return assert.Equal(t, definition, rosettaErr.ErrorDefinition)
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, value interface{}) {
	t.Helper()

	assert.Equal(t, http.StatusOK, rec.Result().StatusCode)
	err := json.Unmarshal(rec.Body.Bytes(), value)
	require.NoError(t, err)
}
