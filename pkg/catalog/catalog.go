// Package catalog holds the build jobs the matrix is generated from, either
// the built-in set or one loaded from a YAML file.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/opnlabs/qtmatrix/pkg/mirror"
	"github.com/opnlabs/qtmatrix/pkg/models"
	"gopkg.in/yaml.v3"
)

var Mirrors = []string{
	"https://ftp.jaist.ac.jp/pub/qtproject",
	"https://ftp1.nluug.nl/languages/qt",
	"https://mirrors.dotsrc.org/qtproject",
}

const (
	qtCreatorBinPath    = "./Tools/QtCreator/bin/"
	qtCreatorMacBinPath = "./Qt Creator.app/Contents/MacOS/"
	qtIFWBinPath        = "./Tools/QtInstallerFramework/*/bin/"
)

// QtCreatorToolOptions installs Qt Creator and the installer framework.
var QtCreatorToolOptions = map[string]string{
	"TOOL1_ARGS":     "tools_qtcreator qt.tools.qtcreator",
	"LIST_TOOL1_CMD": "ls " + qtCreatorBinPath,
	"TEST_TOOL1_CMD": qtCreatorBinPath + "qbs --version",
	"TOOL2_ARGS":     "tools_ifw",
	"TEST_TOOL2_CMD": qtIFWBinPath + "archivegen --version",
	"LIST_TOOL2_CMD": "ls " + qtIFWBinPath,
}

// QtCreatorToolOptionsMac is QtCreatorToolOptions for macOS, where Qt Creator
// is an application bundle.
var QtCreatorToolOptionsMac = withOverrides(QtCreatorToolOptions, map[string]string{
	"TEST_TOOL1_CMD": `"` + qtCreatorMacBinPath + `qbs" --version`,
	"LIST_TOOL1_CMD": `ls "` + qtCreatorMacBinPath + `"`,
})

var toolPresets = map[string]map[string]string{
	"qtcreator":     QtCreatorToolOptions,
	"qtcreator-mac": QtCreatorToolOptionsMac,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("mingwvariant", func(fl validator.FieldLevel) bool {
		return models.IsMingwVariant(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Default returns the built-in catalog. Mirrors are picked with chooser.
func Default(chooser mirror.Chooser) (models.Catalog, error) {
	msvc := models.NewBuildJob("install-qt", "5.11.3", "windows", "desktop", "win64_msvc2015_64", "msvc2015_64")
	msvc.Subarchives = "qttools qtbase qtwinextras qtmultimedia"
	msvc.RandomMirror = true

	mingw := models.NewBuildJob("install-qt", "5.11.3", "windows", "desktop", "win32_mingw53", "mingw53_32")
	mingw.MingwVariant = "win32_mingw530"
	mingw.Subarchives = "qttools qtbase qtwinextras qtmultimedia"
	mingw.RandomMirror = true

	jobs := []models.BuildJob{msvc, mingw}
	for i := range jobs {
		if err := applyDefaults(&jobs[i], chooser); err != nil {
			return models.Catalog{}, err
		}
	}

	return models.Catalog{
		PythonVersions: append([]string(nil), models.DefaultPythonVersions...),
		Platforms: []models.PlatformBuildJobs{
			{Platform: models.Windows, BuildJobs: jobs},
		},
	}, nil
}

// Load reads a catalog from a YAML file, fills in defaults and validates it.
func Load(path string, chooser mirror.Chooser) (models.Catalog, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return models.Catalog{}, fmt.Errorf("could not read catalog %s: %w", path, err)
	}
	return Parse(contents, chooser)
}

// Parse is Load for catalog contents already in memory.
func Parse(contents []byte, chooser mirror.Chooser) (models.Catalog, error) {
	var c models.Catalog
	if err := yaml.Unmarshal(contents, &c); err != nil {
		return models.Catalog{}, fmt.Errorf("could not parse catalog: %w", err)
	}

	if len(c.PythonVersions) == 0 {
		c.PythonVersions = append([]string(nil), models.DefaultPythonVersions...)
	}
	for i := range c.Platforms {
		for j := range c.Platforms[i].BuildJobs {
			if err := applyDefaults(&c.Platforms[i].BuildJobs[j], chooser); err != nil {
				return models.Catalog{}, err
			}
		}
	}

	if err := Validate(c); err != nil {
		return models.Catalog{}, err
	}
	return c, nil
}

// Validate checks every job in c. Any error here is an authoring mistake in
// the catalog and should stop the run.
func Validate(c models.Catalog) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	seen := make(map[models.Platform]bool)
	for _, v := range c.Platforms {
		if seen[v.Platform] {
			return fmt.Errorf("invalid catalog: platform %s defined more than once", v.Platform)
		}
		seen[v.Platform] = true
	}
	return nil
}

func applyDefaults(job *models.BuildJob, chooser mirror.Chooser) error {
	if job.EmsdkVersion == "" {
		job.EmsdkVersion = models.DefaultEmsdkVersion
	}
	if job.ListOptions == nil {
		job.ListOptions = map[string]string{}
	}
	if preset, ok := toolPresets[job.ToolPreset]; ok {
		job.ToolOptions = withOverrides(preset, job.ToolOptions)
	} else if job.ToolOptions == nil {
		job.ToolOptions = map[string]string{}
	}
	if job.RandomMirror && job.Mirror == "" {
		m, err := chooser.Choose(Mirrors)
		if err != nil {
			return fmt.Errorf("job %s %s %s: %w", job.Command, job.QtVersion, job.Arch, err)
		}
		job.Mirror = m
	}
	return nil
}

func withOverrides(base, overrides map[string]string) map[string]string {
	m := make(map[string]string, len(base)+len(overrides))
	for k, v := range base {
		m[k] = v
	}
	for k, v := range overrides {
		m[k] = v
	}
	return m
}
