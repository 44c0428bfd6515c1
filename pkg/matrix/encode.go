package matrix

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Encode writes entries as a compact JSON object, keeping the insertion order
// of both the job keys and their variables.
func Encode(w io.Writer, entries *Entries) error {
	b, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("could not encode matrix: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("could not write matrix: %w", err)
	}
	return nil
}

// EncodeToString is Encode into a string.
func EncodeToString(entries *Entries) (string, error) {
	var b bytes.Buffer
	if err := Encode(&b, entries); err != nil {
		return "", err
	}
	return b.String(), nil
}
