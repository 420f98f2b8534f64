package utils

import (
	"bytes"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// Payload is a request body kept raw until the handler knows the target
// exists and the caller may change it.
type Payload []byte

// ReadPayload reads the whole request body. An empty body is not an error
// here; it only fails once decoded.
func ReadPayload(c *gin.Context) (Payload, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, Invalid("", "Request body must be a JSON object")
	}
	return Payload(raw), nil
}

// Decode unmarshals the payload into obj and validates its binding tags,
// reporting failures the same way BindJSON does.
func (p Payload) Decode(obj interface{}) error {
	if len(bytes.TrimSpace(p)) == 0 {
		return Invalid("", "Request body must be a JSON object")
	}
	if err := json.Unmarshal(p, obj); err != nil {
		return translateBindError(err)
	}
	return Validate(obj)
}
