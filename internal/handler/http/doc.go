// Package http implements the HTTP transport layer of the travel journal.
//
// It wires the chi router, decodes requests, normalizes pagination and
// sorting parameters and renders every outcome through the uniform response
// envelope. Cross-cutting concerns such as the authentication gate, request
// tracing, access logging, compression, rate limiting and panic recovery
// are handled here before requests reach the service layer.
package http
