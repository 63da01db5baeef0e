package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// fallbackBody is written when the payload cannot be encoded.
const fallbackBody = `{"code":500,"message":"server error","data":null,"success":false}`

// WriteJSON encodes data and writes it with the given status code.
// HTML characters are not escaped, so image URLs carrying query strings
// come back exactly as they were stored.
//
// When data cannot be encoded nothing of it is written: the client gets a
// 500 with the generic server error envelope and the encoding error is
// returned to the caller for logging.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(data); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(fallbackBody))
		return 0, fmt.Errorf("error encoding response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(buf.Bytes())
}
