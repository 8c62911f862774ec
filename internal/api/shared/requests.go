package shared

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into the given struct.
// A missing body or syntactically invalid JSON both surface as an error,
// which the caller treats as a malformed payload rather than a
// field-level validation failure.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
