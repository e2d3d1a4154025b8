package control

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
)

// Request is a command forwarded to the owning interactive instance.
// The wire format is a single untagged JSON object per connection; the
// variant is inferred from the field shape at the decode boundary.
// Insert is currently the only variant.
type Request interface {
	isRequest()
}

// InsertRequest asks the owner to insert one entry.
type InsertRequest struct {
	Name     string   `json:"name"`
	Link     string   `json:"link"`
	Metadata []string `json:"metadata"`
}

func (InsertRequest) isRequest() {}

// DecodeRequest infers the request variant from the field shape.
// Objects that match no variant are an error; senders get no feedback.
func DecodeRequest(data []byte) (Request, error) {
	var shape struct {
		Name     *string  `json:"name"`
		Link     *string  `json:"link"`
		Metadata []string `json:"metadata"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, fmt.Errorf("malformed request: %w", err)
	}
	if shape.Name != nil && shape.Link != nil {
		return InsertRequest{Name: *shape.Name, Link: *shape.Link, Metadata: shape.Metadata}, nil
	}
	return nil, errors.New("unrecognized request shape")
}

// Forward writes a request over an open connection to the owning
// instance and closes it. Fire-and-forget: there is no acknowledgment.
func Forward(conn net.Conn, r Request) error {
	defer conn.Close()
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to serialize request: %w", err)
	}
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	return nil
}
