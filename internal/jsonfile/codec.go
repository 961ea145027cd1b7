package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// decodeInventory parses a JSON object of name to integer. It walks the token
// stream rather than unmarshalling into a map so that key order survives.
// A repeated key keeps its first position and takes the last value.
func decodeInventory(data []byte) (*types.Inventory, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMalformedData, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: top level is not an object", types.ErrMalformedData)
	}

	inv := types.NewInventory()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrMalformedData, err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected key %v", types.ErrMalformedData, tok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: value of %q: %v", types.ErrMalformedData, name, err)
		}
		num, ok := value.(json.Number)
		if !ok {
			return nil, fmt.Errorf("%w: value of %q is not a number", types.ErrMalformedData, name)
		}
		qty, err := strconv.Atoi(num.String())
		if err != nil {
			return nil, fmt.Errorf("%w: value of %q is not an integer", types.ErrMalformedData, name)
		}
		if err := inv.Set(name, qty); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", types.ErrMalformedData, name, err)
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMalformedData, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after object", types.ErrMalformedData)
	}
	return inv, nil
}

// encodeInventory renders inv as a single-line JSON object in insertion
// order, followed by a newline.
func encodeInventory(inv *types.Inventory) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for name, qty := range inv.All() {
		if !first {
			buf.WriteString(", ")
		}
		first = false

		if err := writeKey(&buf, name); err != nil {
			return nil, err
		}
		buf.WriteString(": ")
		buf.WriteString(strconv.Itoa(qty))
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// writeKey appends name as a JSON string. HTML characters are kept literal so
// the file stays readable.
func writeKey(buf *bytes.Buffer, name string) error {
	var key bytes.Buffer
	enc := json.NewEncoder(&key)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(name); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(key.Bytes(), []byte("\n")))
	return nil
}
