// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP surface of the sandbox export service.
//
// It exposes the group export routes under [APIRoot], the credential-free
// result links and the middleware chain in front of them: panic recovery,
// request tracing, access logging, token authentication, API version
// checking and response compression. Errors are rendered as JSON:API error
// documents.
package http
