// Package pipeline writes matrices in the logging-command syntax Azure
// Pipelines scans build logs for.
package pipeline

import (
	"fmt"
	"io"

	"github.com/opnlabs/qtmatrix/pkg/matrix"
	"github.com/opnlabs/qtmatrix/pkg/models"
)

const header = "Setting Variables below"

// SetOutputVariable formats the logging command that sets the output variable
// name to value for later jobs of the pipeline.
func SetOutputVariable(name, value string) string {
	return fmt.Sprintf("##vso[task.setVariable variable=%s;isOutput=true]%s", name, value)
}

// Emit writes one output variable per platform, in models.Platforms order.
// Platforms without jobs get an empty value rather than an empty object.
func Emit(w io.Writer, m *matrix.Matrix) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return fmt.Errorf("could not write variables: %w", err)
	}

	for _, p := range models.Platforms {
		var value string
		if entries := m.Platform(p); entries != nil {
			var err error
			value, err = matrix.EncodeToString(entries)
			if err != nil {
				return fmt.Errorf("could not encode %s matrix: %w", p, err)
			}
		}
		if _, err := fmt.Fprintln(w, SetOutputVariable(string(p), value)); err != nil {
			return fmt.Errorf("could not write %s variable: %w", p, err)
		}
	}
	return nil
}
