package models

type Platform string

const (
	Windows Platform = "windows"
	Linux   Platform = "linux"
	Mac     Platform = "mac"
)

// Platforms is the order in which platform variables are emitted.
var Platforms = []Platform{Windows, Linux, Mac}

const DefaultEmsdkVersion = "sdk-fastcomp-1.38.27-64bit@3.1.29"

var DefaultPythonVersions = []string{"3.9"}

// Catalog is the full set of build jobs to test, grouped by platform.
type Catalog struct {
	PythonVersions []string            `yaml:"python_versions" validate:"required,min=1,dive,required"`
	Platforms      []PlatformBuildJobs `yaml:"platforms" validate:"dive"`
}

type PlatformBuildJobs struct {
	Platform  Platform   `yaml:"platform" validate:"required,oneof=windows linux mac"`
	BuildJobs []BuildJob `yaml:"jobs" validate:"dive"`
}

// BuildJob is one parameterized invocation of the Qt install tool.
type BuildJob struct {
	Command      string `yaml:"command" validate:"required"`
	QtVersion    string `yaml:"qt_version" validate:"required"`
	Host         string `yaml:"host" validate:"required,oneof=windows linux mac"`
	Target       string `yaml:"target" validate:"required"`
	Arch         string `yaml:"arch" validate:"required"`
	ArchDir      string `yaml:"archdir" validate:"required"`
	Module       string `yaml:"module"`
	Mirror       string `yaml:"mirror" validate:"omitempty,url"`
	RandomMirror bool   `yaml:"random_mirror"`
	Subarchives  string `yaml:"subarchives"`
	OutputDir    string `yaml:"output_dir"`
	// ListOptions only understands HAS_WASM.
	ListOptions map[string]string `yaml:"list_options" validate:"dive,keys,oneof=HAS_WASM,endkeys"`
	// Spec is a version constraint; QtVersion is expected to be the highest
	// version that satisfies it.
	Spec               string            `yaml:"spec"`
	MingwVariant       string            `yaml:"mingw_variant" validate:"omitempty,mingwvariant"`
	IsAutodesktop      bool              `yaml:"is_autodesktop"`
	ToolOptions        map[string]string `yaml:"tool_options" validate:"dive,keys,oneof=TOOL1_ARGS LIST_TOOL1_CMD TEST_TOOL1_CMD TOOL2_ARGS LIST_TOOL2_CMD TEST_TOOL2_CMD,endkeys"`
	ToolPreset         string            `yaml:"tool_preset" validate:"omitempty,oneof=qtcreator qtcreator-mac"`
	CheckOutputCmd     string            `yaml:"check_output_cmd"`
	EmsdkVersion       string            `yaml:"emsdk_version" validate:"required"`
	AutodeskArchFolder string            `yaml:"autodesk_arch_folder"`
}

// NewBuildJob returns a job with the required fields set and every optional
// field at its default.
func NewBuildJob(command, qtVersion, host, target, arch, archDir string) BuildJob {
	return BuildJob{
		Command:      command,
		QtVersion:    qtVersion,
		Host:         host,
		Target:       target,
		Arch:         arch,
		ArchDir:      archDir,
		ListOptions:  map[string]string{},
		ToolOptions:  map[string]string{},
		EmsdkVersion: DefaultEmsdkVersion,
	}
}

// Jobs returns the build jobs registered for platform p, or nil.
func (c Catalog) Jobs(p Platform) []BuildJob {
	for _, v := range c.Platforms {
		if v.Platform == p {
			return v.BuildJobs
		}
	}
	return nil
}
