package models

import (
	"errors"
	"testing"
)

func TestQtBinDir(t *testing.T) {
	tests := []struct {
		Name      string
		QtVersion string
		OutputDir string
		Sep       string
		Expected  string
	}{
		{"5.9.0 quirk", "5.9.0", "", "/", "$(Build.BinariesDirectory)/Qt/5.9/msvc2015_64/bin"},
		{"verbatim version", "5.11.3", "", "/", "$(Build.BinariesDirectory)/Qt/5.11.3/msvc2015_64/bin"},
		{"windows separator", "5.11.3", "", `\`, `$(Build.BinariesDirectory)\Qt\5.11.3\msvc2015_64\bin`},
		{"output dir override", "6.2.0", "/opt/qt", "/", "/opt/qt/6.2.0/msvc2015_64/bin"},
		{"output dir override windows", "6.2.0", `C:\Qt`, `\`, `C:\Qt\6.2.0\msvc2015_64\bin`},
	}

	for _, test := range tests {
		job := NewBuildJob("install-qt", test.QtVersion, "windows", "desktop", "win64_msvc2015_64", "msvc2015_64")
		job.OutputDir = test.OutputDir
		if got := job.QtBinDir(test.Sep); got != test.Expected {
			t.Errorf("Test - %s: expected %s, got %s", test.Name, test.Expected, got)
		}
	}
}

func TestWinQtBinDir(t *testing.T) {
	job := NewBuildJob("install-qt", "5.9.0", "windows", "desktop", "win32_mingw53", "mingw53_32")
	expected := `$(Build.BinariesDirectory)\Qt\5.9\mingw53_32\bin`
	if got := job.WinQtBinDir(); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestAutodeskQtBinDir(t *testing.T) {
	job := NewBuildJob("install-qt", "6.5.0", "linux", "android", "android_armv7", "android_armv7")
	if got := job.AutodeskQtBinDir("/"); got != job.QtBinDir("/") {
		t.Errorf("without override expected %s, got %s", job.QtBinDir("/"), got)
	}

	job.AutodeskArchFolder = "gcc_64"
	expected := `$(Build.BinariesDirectory)\Qt\6.5.0\gcc_64\bin`
	if got := job.WinAutodeskQtBinDir(); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestMingwFolder(t *testing.T) {
	job := NewBuildJob("install-qt", "5.11.3", "windows", "desktop", "win32_mingw53", "mingw53_32")

	folder, err := job.MingwFolder()
	if err != nil || folder != "" {
		t.Errorf("empty variant: expected empty folder, got %q, %v", folder, err)
	}

	job.MingwVariant = "win32_mingw530"
	folder, err = job.MingwFolder()
	if err != nil {
		t.Fatal(err)
	}
	if folder != "mingw530_32" {
		t.Errorf("expected mingw530_32, got %s", folder)
	}

	job.MingwVariant = "win64_msvc2019_64"
	if _, err := job.MingwFolder(); !errors.Is(err, ErrInvalidMingwVariant) {
		t.Errorf("expected ErrInvalidMingwVariant, got %v", err)
	}
}

func TestEmsdk(t *testing.T) {
	job := NewBuildJob("install-qt", "5.11.3", "windows", "desktop", "win32_mingw53", "mingw53_32")
	version, tag := job.Emsdk()
	if version != "sdk-fastcomp-1.38.27-64bit" || tag != "3.1.29" {
		t.Errorf("expected sdk-fastcomp-1.38.27-64bit@3.1.29, got %s@%s", version, tag)
	}

	job.EmsdkVersion = "2.0.14"
	version, tag = job.Emsdk()
	if version != "2.0.14" || tag != "main" {
		t.Errorf("expected 2.0.14@main, got %s@%s", version, tag)
	}
}
