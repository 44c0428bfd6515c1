package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrInvalidMingwVariant = errors.New("models: invalid mingw variant")

var mingwVariantPattern = regexp.MustCompile(`^win(\d+)_(mingw\d+)$`)

// IsMingwVariant reports whether s has the shape win<bits>_mingw<version>.
func IsMingwVariant(s string) bool {
	return mingwVariantPattern.MatchString(s)
}

// QtBinDir returns the bin directory of the installed Qt, joined with sep.
func (b BuildJob) QtBinDir(sep string) string {
	return b.binDir(sep, b.ArchDir)
}

func (b BuildJob) WinQtBinDir() string {
	return b.QtBinDir(`\`)
}

// AutodeskQtBinDir is QtBinDir for the autodesktop companion install, which
// may live under a different arch folder.
func (b BuildJob) AutodeskQtBinDir(sep string) string {
	if b.AutodeskArchFolder != "" {
		return b.binDir(sep, b.AutodeskArchFolder)
	}
	return b.binDir(sep, b.ArchDir)
}

func (b BuildJob) WinAutodeskQtBinDir() string {
	return b.AutodeskQtBinDir(`\`)
}

func (b BuildJob) binDir(sep, archDir string) string {
	outDir := b.OutputDir
	if outDir == "" {
		outDir = "$(Build.BinariesDirectory)" + sep + "Qt"
	}
	// 5.9.0 installs into a directory named 5.9
	versionDir := b.QtVersion
	if versionDir == "5.9.0" {
		versionDir = "5.9"
	}
	return strings.Join([]string{outDir, versionDir, archDir, "bin"}, sep)
}

// MingwFolder turns a variant such as win32_mingw530 into the folder name the
// installer uses for it, mingw530_32.
func (b BuildJob) MingwFolder() (string, error) {
	if b.MingwVariant == "" {
		return "", nil
	}
	m := mingwVariantPattern.FindStringSubmatch(b.MingwVariant)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidMingwVariant, b.MingwVariant)
	}
	return m[2] + "_" + m[1], nil
}

// Emsdk splits EmsdkVersion on "@" into the toolchain version and its git tag.
// The tag defaults to main.
func (b BuildJob) Emsdk() (version, tag string) {
	parts := strings.Split(b.EmsdkVersion+"@main", "@")
	return parts[0], parts[1]
}
