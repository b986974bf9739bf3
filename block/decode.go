package block

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MorphisHe/textractdoc/format"
)

// ErrUnrecognizedPayload is returned when the input is not a JSON object,
// array or JSON Lines stream.
var ErrUnrecognizedPayload = errors.New("block: payload is not a JSON response object, array or JSON Lines stream")

// Decode reads every response in r. See DecodeBytes.
func Decode(r io.Reader) ([]Response, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("block: read payload: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes a single response object, a JSON array of responses or
// a JSON Lines stream into a slice of responses in payload order.
func DecodeBytes(data []byte) ([]Response, error) {
	switch format.Detect(data) {
	case format.Object:
		var resp Response
		if err := json.Unmarshal(data, &resp); err != nil {
			return nil, fmt.Errorf("block: decode response: %w", err)
		}
		return []Response{resp}, nil

	case format.Array:
		var responses []Response
		if err := json.Unmarshal(data, &responses); err != nil {
			return nil, fmt.Errorf("block: decode response array: %w", err)
		}
		return responses, nil

	case format.Lines:
		return decodeLines(data)

	default:
		return nil, ErrUnrecognizedPayload
	}
}

func decodeLines(data []byte) ([]Response, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var responses []Response
	for {
		var resp Response
		err := dec.Decode(&resp)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("block: decode response %d: %w", len(responses)+1, err)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
