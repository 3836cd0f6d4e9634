/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package model provides the response types and encoding helpers shared by the BaSyx HTTP
// controllers.
package model

import (
	"errors"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const errMsgRequiredMissing = "required parameter is missing"
const errMsgMinValueConstraint = "provided parameter is not respecting minimum value constraint"
const errMsgMaxValueConstraint = "provided parameter is not respecting maximum value constraint"

// Response creates an ImplResponse struct with the given status code and body.
func Response(code int, body interface{}) ImplResponse {
	return ImplResponse{
		Code: code,
		Body: body,
	}
}

// Redirect is a helper payload type that signals the response encoder to send an HTTP redirect.
type Redirect struct {
	Location string
}

// TextDocument is a payload type that is written as a plain attachment instead of JSON.
type TextDocument struct {
	Filename    string
	ContentType string
	Content     []byte
}

func setSafeDownloadHeaders(wHeader http.Header, filename, contentType string) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	wHeader.Set("Content-Type", contentType)
	wHeader.Set("X-Content-Type-Options", "nosniff")

	if filename == "" {
		wHeader.Set("Content-Disposition", "attachment")
		return
	}

	safeFilename := filepath.Base(filename)
	contentDisposition := mime.FormatMediaType("attachment", map[string]string{"filename": safeFilename})
	wHeader.Set("Content-Disposition", contentDisposition)
}

// ResponseWithHeaders builds an ImplResponse and converts a Location header into a Redirect payload
// so the encoder can set the Location header on the actual HTTP response.
func ResponseWithHeaders(code int, payload interface{}, headers map[string]string) ImplResponse {
	if headers != nil {
		if loc, ok := headers["Location"]; ok {
			return Response(code, Redirect{Location: loc})
		}
	}
	return Response(code, payload)
}

func writeStatus(w http.ResponseWriter, status *int, fallback int) {
	if status != nil {
		w.WriteHeader(*status)
		return
	}
	w.WriteHeader(fallback)
}

// EncodeJSONResponse uses the json encoder to write an interface to the http response with an optional status code
func EncodeJSONResponse(i interface{}, status *int, w http.ResponseWriter) error {
	wHeader := w.Header()

	switch body := i.(type) {
	case Redirect:
		wHeader.Set("Location", body.Location)
		writeStatus(w, status, http.StatusFound)
		return nil
	case *Redirect:
		wHeader.Set("Location", body.Location)
		writeStatus(w, status, http.StatusFound)
		return nil
	case TextDocument:
		setSafeDownloadHeaders(wHeader, body.Filename, body.ContentType)
		writeStatus(w, status, http.StatusOK)
		// #nosec G705 -- plain text attachment with Content-Disposition attachment and nosniff header
		_, err := w.Write(body.Content)
		return err
	}

	wHeader.Set("Content-Type", "application/json; charset=UTF-8")
	writeStatus(w, status, http.StatusOK)
	if i != nil && !(status != nil && *status == http.StatusNoContent) {
		return json.NewEncoder(w).Encode(i)
	}
	return nil
}

// Number is a type constraint that allows numeric types (int32, int64, float32, float64).
type Number interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// ParseString is a function type for parsing string values into various types.
type ParseString[T Number | string | bool] func(v string) (T, error)

// ParseInt32 parses a string parameter to an int32.
func ParseInt32(param string) (int32, error) {
	if param == "" {
		return 0, nil
	}

	val, err := strconv.ParseInt(param, 10, 32)
	return int32(val), err
}

// ParseBool parses a string parameter to an bool.
func ParseBool(param string) (bool, error) {
	if param == "" {
		return false, nil
	}

	return strconv.ParseBool(param)
}

// HOperation is a function type that handles parameter parsing with optional default values.
// It returns the parsed value, a boolean indicating if a default was used, and any parsing error.
type HOperation[T Number | string | bool] func(actual string) (T, bool, error)

// WithRequire creates an HOperation that requires a non-empty parameter value.
func WithRequire[T Number | string | bool](parse ParseString[T]) HOperation[T] {
	var empty T
	return func(actual string) (T, bool, error) {
		if actual == "" {
			return empty, false, errors.New(errMsgRequiredMissing)
		}

		v, err := parse(actual)
		return v, false, err
	}
}

// WithDefaultOrParse creates an HOperation that uses a default value when the parameter is empty,
// otherwise parses the parameter using the provided parser.
func WithDefaultOrParse[T Number | string | bool](def T, parse ParseString[T]) HOperation[T] {
	return func(actual string) (T, bool, error) {
		if actual == "" {
			return def, true, nil
		}

		v, err := parse(actual)
		return v, false, err
	}
}

// Constraint defines a function type for validating a value of type T.
type Constraint[T Number | string | bool] func(actual T) error

// WithMinimum returns a constraint that checks if the actual value is greater than or equal to the expected value.
func WithMinimum[T Number](expected T) Constraint[T] {
	return func(actual T) error {
		if actual < expected {
			return errors.New(errMsgMinValueConstraint)
		}

		return nil
	}
}

// WithMaximum returns a constraint that checks if the actual value is less than or equal to the expected value.
func WithMaximum[T Number](expected T) Constraint[T] {
	return func(actual T) error {
		if actual > expected {
			return errors.New(errMsgMaxValueConstraint)
		}

		return nil
	}
}

// ParseNumericParameter parses a numeric parameter and applies the checks to non-default values.
func ParseNumericParameter[T Number](param string, fn HOperation[T], checks ...Constraint[T]) (T, error) {
	v, usedDefault, err := fn(param)
	if err != nil {
		return 0, err
	}

	if !usedDefault {
		for _, check := range checks {
			if err := check(v); err != nil {
				return 0, err
			}
		}
	}

	return v, nil
}

// ParseQuery parses query parameters and returns an error if any malformed value pairs are encountered.
func ParseQuery(rawQuery string) (url.Values, error) {
	return url.ParseQuery(rawQuery)
}
