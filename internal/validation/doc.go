// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

// Package validation checks request structs with go-playground/validator v10.
//
// The package keeps one validator for the whole process and layers two
// things on top of the raw library: a movietitle rule for user-supplied
// title text, and translation of failed tags into sentences a client
// can read. Failures convert into the VALIDATION_ERROR envelope, so a
// handler hands a bad request straight back.
//
// # Overview
//
// The package provides:
//   - One shared validator, built on first use, struct metadata cached
//   - A movietitle rule for user-supplied title strings
//   - Tag-to-sentence translation of every failure
//   - ToAPIError conversion into the response envelope
//   - The WithRequiredStructEnabled option, ahead of the v11 default
//
// # Quick Start
//
//	type RecommendRequest struct {
//	    MovieName      string `validate:"required,max=512"`
//	    GenreWeight    *int   `validate:"omitempty,gte=0,lte=10"`
//	    RatingWeight   *int   `validate:"omitempty,gte=0,lte=10"`
//	    DirectorWeight *int   `validate:"omitempty,gte=0,lte=10"`
//	}
//
//	func handleRecommend(w http.ResponseWriter, r *http.Request) {
//	    rw := api.NewResponseWriter(w, r)
//
//	    var req RecommendRequest
//	    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
//	        rw.BadRequest("invalid JSON body")
//	        return
//	    }
//
//	    if verr := validation.ValidateStruct(&req); verr != nil {
//	        apiErr := verr.ToAPIError()
//	        rw.ValidationError(apiErr.Message, apiErr.Details)
//	        return
//	    }
//
//	    // req is within bounds, run the query
//	}
//
// # Common Validation Tags
//
// Strings:
//   - required: rejects the zero value
//   - min=n, max=n: length bounds, counted in characters
//
// Numbers:
//   - gte=n, lte=n: inclusive bounds
//   - min=n, max=n: the same bounds under their older names
//
// Enums:
//   - oneof=a b c: the value must match one of the listed candidates
//
// Custom rules:
//   - movietitle: rejects control characters in search terms and movie
//     names arriving from clients.
//
// # API Error Integration
//
// ToAPIError folds one or many field failures into the envelope the
// handlers return:
//
//	// Single field error
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "GenreWeight must be less than or equal to 10",
//	    "details": {"field": "GenreWeight", "tag": "lte", "value": 11}
//	}
//
//	// Multiple field errors
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "MovieName: MovieName is required; Limit: Limit must be at least 1",
//	    "details": {
//	        "fields": [
//	            {"field": "MovieName", "tag": "required", "message": "..."},
//	            {"field": "Limit", "tag": "min", "message": "..."}
//	        ]
//	    }
//	}
//
// # Thread Safety
//
// The shared validator is safe for concurrent use from any handler:
//
//	validate := validation.GetValidator()
//	verr := validation.ValidateStruct(&req)
//
// # See Also
//
//   - internal/api: the handlers that run these checks
//   - github.com/go-playground/validator/v10: the library underneath
package validation
