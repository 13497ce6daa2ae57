package jsonapi

import "net/http"

// RequestContext carries the endpoint facts the parser needs: the HTTP
// method, whether the endpoint exchanges bare resource identifier objects,
// and which resource type(s) it accepts.
type RequestContext struct {
	// Method is the HTTP method of the request. Type consistency is
	// enforced only for POST, PUT and PATCH.
	Method string

	// RelationshipEndpoint marks relationship endpoints, which receive
	// resource identifier objects instead of full resource objects.
	RelationshipEndpoint bool

	// Allowed is the resource type(s) accepted as primary data. A zero
	// value skips the consistency check.
	Allowed AllowedTypes
}

func (rctx RequestContext) mutating() bool {
	switch rctx.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}

	return false
}
