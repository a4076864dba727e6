// cmd/api/helpers.go
// This file contains general-purpose helper functions for the application.
// Error-response helpers live in errors.go; only non-error utilities are here.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
)

// json is a drop-in replacement for encoding/json used for every request and response body.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope is the top-level JSON wrapper type used for all API responses.
// Every body carries "status" ("success" or "fail") plus an optional
// "message" and "data", e.g. {"status": "success", "data": {"bookId": "..."}}.
type envelope map[string]any

// success builds a success envelope. Empty message or nil data are omitted.
func success(message string, data envelope) envelope {
	env := envelope{"status": "success"}
	if message != "" {
		env["message"] = message
	}
	if data != nil {
		env["data"] = data
	}
	return env
}

// readIDParam extracts the ":bookId" URL parameter added by httprouter.
// Ids are opaque, so any value is passed through to the store as-is.
func (app *applicationDependencies) readIDParam(r *http.Request) string {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName("bookId")
}

// readString reads a string query parameter from qs, returning defaultValue
// if the key is absent or empty.
func (app *applicationDependencies) readString(qs url.Values, key, defaultValue string) string {
	s := qs.Get(key)
	if s == "" {
		return defaultValue
	}
	return s
}

// readBool reads a boolean-ish query parameter ("1", "0", "true", "false"...).
// It returns nil when the key is absent or cannot be parsed, which callers
// treat as "no filter".
func (app *applicationDependencies) readBool(qs url.Values, key string) *bool {
	s := qs.Get(key)
	if s == "" {
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &b
}

// writeJSON marshals data to indented JSON, applies any custom headers,
// sets Content-Type to "application/json", writes the status code, and
// streams the body to the client.
func (app *applicationDependencies) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)
	return nil
}

// readJSON decodes a single JSON value from the request body into dst.
// It enforces a 1 MB size limit, rejects malformed JSON and ensures the
// body contains exactly one JSON value. Unknown fields are ignored.
func (app *applicationDependencies) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		}
		return err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return errors.New("body must not be empty")
	}

	// The streaming decoder reports a truncated document as a clean EOF,
	// so the whole body is checked up front.
	if !json.Valid(body) {
		return errors.New("body contains badly-formed JSON")
	}

	// Decoder messages name Go types and raw bytes, so clients get a fixed one.
	dec := json.NewDecoder(bytes.NewReader(body))
	if err = dec.Decode(dst); err != nil {
		return errors.New("body contains incorrect JSON types")
	}

	if dec.More() {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}
