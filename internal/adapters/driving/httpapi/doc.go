// Package httpapi exposes the extraction and archive services as a JSON
// HTTP API under /api/file_util.
//
// GET endpoints read their arguments from the query string. POST
// endpoints accept a JSON body and fall back to the query string for
// any field the body leaves empty.
package httpapi
