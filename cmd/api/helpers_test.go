package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_WriteJSON(t *testing.T) {
	// arrange
	app := newTestApplication(t)
	rr := httptest.NewRecorder()
	headers := http.Header{"X-Shelf": []string{"main"}}

	// act
	err := app.writeJSON(rr, http.StatusCreated, success("Buku berhasil ditambahkan", envelope{"bookId": "b1"}), headers)

	// assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "main", rr.Header().Get("X-Shelf"))
	assert.JSONEq(t, `{"status":"success","message":"Buku berhasil ditambahkan","data":{"bookId":"b1"}}`, rr.Body.String())
	assert.True(t, strings.HasSuffix(rr.Body.String(), "\n"))
}

func Test_ReadJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty", body: "  \n", want: "body must not be empty"},
		{name: "truncated", body: `{"name": "A",`, want: "body contains badly-formed JSON"},
		{name: "wrong_type", body: `{"name": 123}`, want: "body contains incorrect JSON types"},
		{name: "trailing_value", body: `{"name": "A"} []`, want: "body must only contain a single JSON value"},
		{name: "too_large", body: `{"name": "` + strings.Repeat("a", 1_048_576) + `"}`, want: "body must not be larger than 1048576 bytes"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApplication(t)
			req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(tc.body))
			var dst struct {
				Name string `json:"name"`
			}

			err := app.readJSON(httptest.NewRecorder(), req, &dst)

			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func Test_ReadBool(t *testing.T) {
	app := newTestApplication(t)
	qs := map[string][]string{"one": {"1"}, "zero": {"0"}, "word": {"true"}, "junk": {"maybe"}}

	require.NotNil(t, app.readBool(qs, "one"))
	assert.True(t, *app.readBool(qs, "one"))
	require.NotNil(t, app.readBool(qs, "zero"))
	assert.False(t, *app.readBool(qs, "zero"))
	require.NotNil(t, app.readBool(qs, "word"))
	assert.True(t, *app.readBool(qs, "word"))
	assert.Nil(t, app.readBool(qs, "junk"))
	assert.Nil(t, app.readBool(qs, "missing"))
}
