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

package common

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"gopkg.in/yaml.v3"
)

// SwaggerUIConfig holds configuration for Swagger UI endpoint setup
type SwaggerUIConfig struct {
	UIPath      string // Path where Swagger UI will be served (e.g., "/swagger")
	SpecPath    string // Path where spec will be served (e.g., "/api-docs/openapi.yaml")
	SpecContent []byte // The OpenAPI spec content
	ServerURL   string // Server URL to use in OpenAPI spec (e.g., "http://localhost:5080")
	BasePath    string // Base path for redirect to Swagger UI (e.g., "/" or "/api")
}

// injectServerURL replaces the servers list of the OpenAPI document with serverURL.
func injectServerURL(specContent []byte, serverURL string) ([]byte, error) {
	if serverURL == "" {
		return specContent, nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(specContent, &doc); err != nil {
		return nil, fmt.Errorf("parse OpenAPI document: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse OpenAPI document: top level is not a mapping")
	}
	root := doc.Content[0]

	servers := &yaml.Node{Kind: yaml.SequenceNode, Content: []*yaml.Node{{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "url"},
			{Kind: yaml.ScalarNode, Value: serverURL},
			{Kind: yaml.ScalarNode, Value: "description"},
			{Kind: yaml.ScalarNode, Value: "Auto-configured server"},
		},
	}}}

	replaced := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "servers" {
			root.Content[i+1] = servers
			replaced = true
			break
		}
	}
	if !replaced {
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: "servers"}, servers)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("encode OpenAPI document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode OpenAPI document: %w", err)
	}
	return buf.Bytes(), nil
}

// AddSwaggerUI adds Swagger UI endpoints to the router
//
// This adds two endpoints:
//   - cfg.UIPath: Serves the Swagger UI
//   - cfg.SpecPath: Serves the OpenAPI specification file
func AddSwaggerUI(r chi.Router, cfg SwaggerUIConfig) error {
	specContent, err := injectServerURL(cfg.SpecContent, cfg.ServerURL)
	if err != nil {
		return err
	}

	r.Get(cfg.SpecPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(specContent)
	})

	uiPath := strings.TrimSuffix(cfg.UIPath, "/")
	ui := httpSwagger.Handler(httpSwagger.URL(cfg.SpecPath))
	r.Get(uiPath, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, uiPath+"/index.html", http.StatusFound)
	})
	r.Get(uiPath+"/*", ui)

	if cfg.BasePath != "" && cfg.BasePath != uiPath {
		r.Get(cfg.BasePath, func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, uiPath+"/index.html", http.StatusFound)
		})
	}

	log.Printf("📖 Swagger UI available at %s", uiPath)
	log.Printf("📄 OpenAPI spec available at %s", cfg.SpecPath)
	return nil
}

// AddSwaggerUIFromConfig adds Swagger UI endpoints below the configured context path.
// The server URL of the served document is swagger.serverURL if set, otherwise it is
// derived from the server settings.
func AddSwaggerUIFromConfig(r chi.Router, spec []byte, uiPath string, specPath string, config *Config) error {
	serverURL := ""
	contextPath := ""
	if config != nil {
		contextPath = normalizeContextPath(config.Server.ContextPath)
		serverURL = config.Swagger.ServerURL
		if serverURL == "" {
			host := config.Server.Host
			// Use localhost for display if host is 0.0.0.0
			if host == "0.0.0.0" || host == "" {
				host = "localhost"
			}
			serverURL = fmt.Sprintf("http://%s:%d%s", host, config.Server.Port, contextPath)
		}
	}

	basePath := contextPath
	if basePath == "" {
		basePath = "/"
	}

	return AddSwaggerUI(r, SwaggerUIConfig{
		UIPath:      contextPath + uiPath,
		SpecPath:    contextPath + specPath,
		SpecContent: spec,
		ServerURL:   serverURL,
		BasePath:    basePath,
	})
}

// normalizeContextPath returns path with a leading and without a trailing slash. An empty
// or "/" path yields "".
func normalizeContextPath(path string) string {
	path = strings.TrimSuffix(strings.TrimSpace(path), "/")
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
