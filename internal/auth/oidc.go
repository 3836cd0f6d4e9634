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

// Package auth guards the mutating endpoints of the converter service with OIDC bearer tokens.
package auth

import (
	"bytes"
	"context"
	stdjson "encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/coreos/go-oidc"
	jsoniter "github.com/json-iterator/go"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/common"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/common/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// tokenVerifier checks a raw token and returns its claims as JSON.
type tokenVerifier interface {
	Verify(ctx context.Context, raw string) ([]byte, error)
}

type idTokenVerifier struct {
	verifier *oidc.IDTokenVerifier
}

func (v idTokenVerifier) Verify(ctx context.Context, raw string) ([]byte, error) {
	idToken, err := v.verifier.Verify(ctx, raw)
	if err != nil {
		return nil, err
	}
	var rm stdjson.RawMessage
	if err := idToken.Claims(&rm); err != nil {
		return nil, err
	}
	return rm, nil
}

// OIDC verifies bearer tokens of write requests.
type OIDC struct {
	verifier tokenVerifier
	scopes   []string
}

// OIDCSettings configure the verifier. If JWKSURL is set the keys are loaded from there instead
// of the issuer's discovery document.
type OIDCSettings struct {
	Issuer   string
	Audience string
	JWKSURL  string
	Scopes   []string
}

// NewOIDC creates the verifier for s.
func NewOIDC(ctx context.Context, s OIDCSettings) (*OIDC, error) {
	log.Printf("🔐 Initializing OIDC verifier...")
	cfg := &oidc.Config{ClientID: s.Audience, SkipClientIDCheck: s.Audience == ""}
	var v *oidc.IDTokenVerifier
	if s.JWKSURL != "" {
		v = oidc.NewVerifier(s.Issuer, oidc.NewRemoteKeySet(ctx, s.JWKSURL), cfg)
	} else {
		provider, err := oidc.NewProvider(ctx, s.Issuer)
		if err != nil {
			return nil, err
		}
		v = provider.Verifier(cfg)
	}
	log.Printf("✅ OIDC verifier created. Issuer=%s Audience=%s", s.Issuer, s.Audience)
	return &OIDC{verifier: idTokenVerifier{v}, scopes: s.Scopes}, nil
}

// Claims of a verified token.
type Claims map[string]any

type ctxKey string

const claimsKey ctxKey = "jwtClaims"

// FromContext returns the claims of the verified token of r, nil for unprotected requests.
func FromContext(r *http.Request) Claims {
	if v := r.Context().Value(claimsKey); v != nil {
		if c, ok := v.(Claims); ok {
			return c
		}
	}
	return nil
}

func deny(w http.ResponseWriter, status int, reason string) {
	resp := common.NewErrorResponse(errors.New(reason), status, "Middleware", "OIDC", "Denied")
	_ = model.EncodeJSONResponse(resp.Body, &resp.Code, w)
}

func readOnly(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// Middleware requires a valid bearer token for every request that is not read-only.
func (o *OIDC) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if readOnly(r.Method) {
			next.ServeHTTP(w, r)
			return
		}

		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			deny(w, http.StatusUnauthorized, "missing or invalid Authorization header")
			return
		}
		raw := strings.TrimPrefix(authz, "Bearer ")

		rm, err := o.verifier.Verify(r.Context(), raw)
		if err != nil {
			log.Printf("❌ Token verification failed: %v", err)
			deny(w, http.StatusUnauthorized, "invalid token")
			return
		}

		dec := json.NewDecoder(bytes.NewReader(rm))
		dec.UseNumber()

		var c Claims
		if err := dec.Decode(&c); err != nil {
			log.Printf("❌ Failed to parse claims: %v", err)
			deny(w, http.StatusUnauthorized, "invalid claims")
			return
		}

		if typ, _ := c.GetString("typ"); typ != "" && !strings.EqualFold(typ, "Bearer") {
			log.Printf("❌ unexpected token typ: %q", typ)
			deny(w, http.StatusUnauthorized, "invalid token type")
			return
		}

		if !hasAllScopes(c, o.scopes) {
			log.Printf("❌ missing required scopes: %v", o.scopes)
			deny(w, http.StatusForbidden, "insufficient scope")
			return
		}

		log.Printf("✅ Token verified successfully for subject: %v", c["sub"])
		ctx := context.WithValue(r.Context(), claimsKey, c)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetString returns the string claim key.
func (c Claims) GetString(key string) (string, bool) {
	v, ok := c[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func hasAllScopes(c Claims, need []string) bool {
	s, _ := c.GetString("scope") // e.g. "profile email"
	have := map[string]struct{}{}
	for _, sc := range strings.Fields(s) {
		have[sc] = struct{}{}
	}
	for _, n := range need {
		if _, ok := have[n]; !ok {
			return false
		}
	}
	return true
}
