package docker

import (
	"encoding/json"
	"errors"
	"io"
)

// streamMessage is the error-carrying shape of the Engine's JSON progress
// stream for build and push operations.
type streamMessage struct {
	Error       string `json:"error"`
	ErrorDetail struct {
		Message string `json:"message"`
	} `json:"errorDetail"`
}

// drainStream consumes a build or push progress stream to completion and
// returns the first error message embedded in it, if any.
func drainStream(r io.Reader) error {
	dec := json.NewDecoder(r)
	for {
		var msg streamMessage
		if err := dec.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if msg.Error != "" {
			return errors.New(msg.Error)
		}
		if msg.ErrorDetail.Message != "" {
			return errors.New(msg.ErrorDetail.Message)
		}
	}
}
