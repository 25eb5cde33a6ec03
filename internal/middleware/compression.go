// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// gzipPool reuses gzip writers across requests.
var gzipPool = sync.Pool{
	New: func() interface{} {
		return gzip.NewWriter(io.Discard)
	},
}

// Compression gzips responses for clients that advertise support via
// Accept-Encoding. Movie listings and recommendation payloads are mostly
// repetitive JSON, so the ratio is high. Vary is set either way so shared
// caches keep compressed and plain variants apart.
func Compression(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")

		if !acceptsGzip(r) {
			next(w, r)
			return
		}

		gz := gzipPool.Get().(*gzip.Writer)
		gz.Reset(w)
		defer func() {
			// Close flushes remaining compressed data; the response is
			// already on the wire, so the error has nowhere to go.
			_ = gz.Close()
			gzipPool.Put(gz)
		}()

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length") // stale once the body is recoded

		next(&gzipBody{gz: gz, ResponseWriter: w}, r)
	}
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}

// gzipBody routes body writes through the encoder while headers and status
// keep going to the original writer.
type gzipBody struct {
	http.ResponseWriter
	gz          *gzip.Writer
	wroteHeader bool
}

func (b *gzipBody) WriteHeader(status int) {
	b.wroteHeader = true
	b.ResponseWriter.WriteHeader(status)
}

func (b *gzipBody) Write(p []byte) (int, error) {
	if !b.wroteHeader {
		b.WriteHeader(http.StatusOK)
	}
	return b.gz.Write(p)
}
