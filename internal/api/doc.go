// Package api handles incoming HTTP requests for the blog: request
// decoding and validation, mapping between domain entities and wire
// representations, and translation of failures into the uniform error
// body. It acts as an adapter between external clients and the internal
// post service.
package api
