// Package matrix expands a job catalog into the per-platform variable sets
// the CI pipeline runs one job for each.
package matrix

import (
	"errors"
	"fmt"
	"slices"

	"github.com/opnlabs/qtmatrix/pkg/models"
	"github.com/opnlabs/qtmatrix/pkg/store"
)

var ErrUnknownPlatform = errors.New("matrix: unknown platform")

// Variables maps variable names to values in a fixed order.
type Variables = store.Ordered[string]

// Entries maps job keys to their variables, in catalog order.
type Entries = store.Ordered[*Variables]

// Matrix holds the entries of every platform.
type Matrix struct {
	platforms *store.Ordered[*Entries]
}

// Platform returns the entries generated for p, or nil when the catalog had
// no jobs for it.
func (m *Matrix) Platform(p models.Platform) *Entries {
	e, err := m.platforms.Get(string(p))
	if err != nil || e.Len() == 0 {
		return nil
	}
	return e
}

// Key returns the human-readable identifier of job inside its platform.
func Key(job models.BuildJob) string {
	key := fmt.Sprintf("%s %s %s for %s", job.Command, job.QtVersion, job.Arch, job.Target)
	if job.Spec != "" {
		key = fmt.Sprintf(`%s (spec="%s")`, key, job.Spec)
	}
	if job.Module != "" {
		key = fmt.Sprintf("%s (%s)", key, job.Module)
	}
	if job.Subarchives != "" {
		key = fmt.Sprintf("%s (%s)", key, job.Subarchives)
	}
	if job.OutputDir != "" {
		key = fmt.Sprintf("%s (%s)", key, job.OutputDir)
	}
	return key
}

// NewVariables derives the pipeline variables of job run under the given
// python version. Every variable is always present; unset fields are empty.
func NewVariables(job models.BuildJob, pythonVersion string) (*Variables, error) {
	mingwFolder, err := job.MingwFolder()
	if err != nil {
		return nil, fmt.Errorf("job %q: %w", Key(job), err)
	}
	hasWasm, ok := job.ListOptions["HAS_WASM"]
	if !ok {
		hasWasm = "True"
	}
	emsdkVersion, emsdkTag := job.Emsdk()

	v := store.NewOrdered[string]()
	v.Set("PYTHON_VERSION", pythonVersion)
	v.Set("SUBCOMMAND", job.Command)
	v.Set("QT_VERSION", job.QtVersion)
	v.Set("HOST", job.Host)
	v.Set("TARGET", job.Target)
	v.Set("ARCH", job.Arch)
	v.Set("ARCHDIR", job.ArchDir)
	v.Set("MODULE", job.Module)
	v.Set("QT_BASE_MIRROR", job.Mirror)
	v.Set("SUBARCHIVES", job.Subarchives)
	v.Set("SPEC", job.Spec)
	v.Set("MINGW_VARIANT", job.MingwVariant)
	v.Set("MINGW_FOLDER", mingwFolder)
	v.Set("IS_AUTODESKTOP", pythonBool(job.IsAutodesktop))
	v.Set("HAS_WASM", hasWasm)
	v.Set("OUTPUT_DIR", job.OutputDir)
	v.Set("QT_BINDIR", job.QtBinDir("/"))
	v.Set("WIN_QT_BINDIR", job.WinQtBinDir())
	v.Set("EMSDK_VERSION", emsdkVersion)
	v.Set("EMSDK_TAG", emsdkTag)
	v.Set("WIN_AUTODESK_QT_BINDIR", job.WinAutodeskQtBinDir())
	for _, name := range ToolVariables {
		v.Set(name, job.ToolOptions[name])
	}
	v.Set("CHECK_OUTPUT_CMD", job.CheckOutputCmd)
	return v, nil
}

// ToolVariables are the tool option names, in output order.
var ToolVariables = []string{
	"TOOL1_ARGS",
	"LIST_TOOL1_CMD",
	"TEST_TOOL1_CMD",
	"TOOL2_ARGS",
	"LIST_TOOL2_CMD",
	"TEST_TOOL2_CMD",
}

// Materialize crosses every platform's jobs with the catalog's python
// versions. Platforms outside models.Platforms are rejected, since they
// would never be emitted. A key produced twice within a platform keeps its first position
// and the variables of the last job that produced it.
func Materialize(c models.Catalog) (*Matrix, error) {
	m := &Matrix{platforms: store.NewOrdered[*Entries]()}

	for _, platform := range c.Platforms {
		if !slices.Contains(models.Platforms, platform.Platform) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, platform.Platform)
		}
		entries := store.NewOrdered[*Variables]()
		for _, job := range platform.BuildJobs {
			for _, python := range c.PythonVersions {
				v, err := NewVariables(job, python)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", platform.Platform, err)
				}
				entries.Set(Key(job), v)
			}
		}
		m.platforms.Set(string(platform.Platform), entries)
	}

	return m, nil
}

func pythonBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
