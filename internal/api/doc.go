// Package api exposes the entity services over HTTP. CrudHandler adapts any
// crud.CrudService to a chi router, and the error mapping in this package
// turns service errors into status codes and safe client messages.
package api
