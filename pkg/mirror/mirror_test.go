package mirror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var mirrors = []string{
	"https://ftp.jaist.ac.jp/pub/qtproject",
	"https://ftp1.nluug.nl/languages/qt",
	"https://mirrors.dotsrc.org/qtproject",
}

func TestRandomChoosesFromList(t *testing.T) {
	var r Random
	for i := 0; i < 50; i++ {
		m, err := r.Choose(mirrors)
		require.NoError(t, err)
		require.Contains(t, mirrors, m)
	}
}

func TestRandomSingleMirror(t *testing.T) {
	m, err := Random{}.Choose(mirrors[1:2])
	require.NoError(t, err)
	require.Equal(t, mirrors[1], m)
}

func TestRandomEmptyList(t *testing.T) {
	_, err := Random{}.Choose(nil)
	require.ErrorIs(t, err, ErrNoMirrors)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy unavailable")
}

func TestRandomReaderFailure(t *testing.T) {
	_, err := Random{Reader: brokenReader{}}.Choose(mirrors)
	require.Error(t, err)
}

func TestFixed(t *testing.T) {
	m, err := Fixed("https://example.org/qt").Choose(mirrors)
	require.NoError(t, err)
	require.Equal(t, "https://example.org/qt", m)
}
