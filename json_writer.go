package stocks

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
//
// encoding/json sorts map keys but offers no control over struct field
// layout across embedded types; building objects explicitly keeps the
// persisted portfolio canonical, so a decode/encode round trip is
// byte-for-byte reproducible.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a new key-value pair to the JSON object. The value is
// marshaled with json.Marshal.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	fmt.Fprintf(w, "%q:", key)
	w.Write(valBytes)
	w.WriteString(",")
	return w
}

// AppendRaw adds a key with an already-marshaled JSON value.
func (w *jsonObjectWriter) AppendRaw(key string, rawJSON []byte) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	fmt.Fprintf(w, "%q:", key)
	w.Write(rawJSON)
	w.WriteString(",")
	return w
}

// MarshalJSON finalizes the object construction, wraps the content in
// braces, and returns the complete JSON byte slice. It satisfies the
// json.Marshaler interface.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')
	return final, nil
}
