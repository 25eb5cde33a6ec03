// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/kinograph/kinograph/internal/validation"
)

// maxBodyBytes caps request bodies for JSON endpoints. Recommendation
// requests are small; anything near this limit is malformed or hostile.
const maxBodyBytes = 64 * 1024

// sanitizeLogValue neutralizes control characters so client-supplied
// strings cannot forge log lines. Each control rune becomes its hex
// escape; clean strings are returned unchanged.
func sanitizeLogValue(s string) string {
	if !strings.ContainsFunc(s, isControlRune) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 3)
	for _, r := range s {
		if isControlRune(r) {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isControlRune(r rune) bool { return r < 0x20 || r == 0x7F }

// validateRequest runs the shared validator over v. A nil return means
// every tag passed; otherwise the APIError carries the translated field
// messages, ready for ValidationError.
//
// Example:
//
//	req := MoviesRequest{
//	    Limit:  queryInt(r, "limit", 50),
//	    Offset: queryInt(r, "offset", 0),
//	}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    NewResponseWriter(w, r).ValidationError(apiErr.Message, apiErr.Details)
//	    return
//	}
func validateRequest(v interface{}) *APIError {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return nil
	}

	translated := verr.ToAPIError()
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: translated.Message,
		Details: translated.Details,
	}
}

// queryInt reads an integer query parameter, falling back when the
// parameter is absent or malformed.
func queryInt(r *http.Request, key string, fallback int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return fallback
	}
	return n
}

// decodeJSONBody decodes a JSON request body into dst with a size cap and
// strict field checking. Unknown fields are rejected so typos in weight
// names fail loudly instead of silently applying defaults.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return errors.New("request body is empty")
		case errors.As(err, &maxBytesErr):
			return fmt.Errorf("request body exceeds %d bytes", maxBytesErr.Limit)
		default:
			return fmt.Errorf("invalid JSON body: %w", err)
		}
	}

	// A second decode succeeding means trailing garbage after the object.
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}

	return nil
}
