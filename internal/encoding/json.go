package encoding

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// DecodeJSON decodes one JSON value from r into v after normalizing r to
// UTF-8. Unknown fields are rejected so typos in hand-written files surface.
func DecodeJSON(r io.Reader, v any) error {
	utf, err := NewUTF8Reader(r)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(utf)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decoding json: %w", err)
	}

	return nil
}

// DecodeFile is DecodeJSON over the file at path.
func DecodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := DecodeJSON(f, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
