package matrix

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/opnlabs/qtmatrix/pkg/store"
	"github.com/stretchr/testify/require"
)

func TestEncodeLayout(t *testing.T) {
	a := store.NewOrdered[string]()
	a.Set("B", "2")
	a.Set("A", "1")
	b := store.NewOrdered[string]()
	b.Set("Z", "")

	entries := store.NewOrdered[*Variables]()
	entries.Set("second", a)
	entries.Set("first", b)

	out, err := EncodeToString(entries)
	require.NoError(t, err)
	require.Equal(t, `{"second":{"B":"2","A":"1"},"first":{"Z":""}}`, out)
}

func TestEncodeEmpty(t *testing.T) {
	out, err := EncodeToString(store.NewOrdered[*Variables]())
	require.NoError(t, err)
	require.Equal(t, "{}", out)
}

func TestEncodeEscapedValuesDecode(t *testing.T) {
	key := `install-qt 6.2.0 gcc_64 for desktop (spec=">=6.2")`
	value := "é😀\"\\\x01\n<&> $(Build.BinariesDirectory)\\Qt"

	v := store.NewOrdered[string]()
	v.Set("k", value)
	entries := store.NewOrdered[*Variables]()
	entries.Set(key, v)

	out, err := EncodeToString(entries)
	require.NoError(t, err)

	var decoded map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Equal(t, value, decoded[key]["k"])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestEncodeWriteError(t *testing.T) {
	require.Error(t, Encode(failingWriter{}, store.NewOrdered[*Variables]()))
}
