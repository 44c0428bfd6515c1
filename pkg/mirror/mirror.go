// Package mirror picks the Qt download mirror a build job should use.
package mirror

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

var ErrNoMirrors = errors.New("mirror: no mirrors to choose from")

type Chooser interface {
	Choose(mirrors []string) (string, error)
}

// Random picks uniformly, so separate CI runs spread their downloads across
// mirrors. Reader defaults to crypto/rand.
type Random struct {
	Reader io.Reader
}

func (r Random) Choose(mirrors []string) (string, error) {
	if len(mirrors) == 0 {
		return "", ErrNoMirrors
	}
	reader := r.Reader
	if reader == nil {
		reader = rand.Reader
	}
	n, err := rand.Int(reader, big.NewInt(int64(len(mirrors))))
	if err != nil {
		return "", fmt.Errorf("could not choose a mirror: %w", err)
	}
	return mirrors[n.Int64()], nil
}

// Fixed always returns the same URL, regardless of the list it is given.
type Fixed string

func (f Fixed) Choose([]string) (string, error) {
	return string(f), nil
}
