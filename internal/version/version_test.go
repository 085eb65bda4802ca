// Package version_test provides tests for version management functionality.
package version

import (
	"strings"
	"testing"
)

func TestValidateVersion(t *testing.T) {
	originalVersion := Version
	defer func() {
		Version = originalVersion
	}()

	tests := []struct {
		name        string
		version     string
		expectError bool
	}{
		{
			name:        "valid version",
			version:     "1.2.3",
			expectError: false,
		},
		{
			name:        "valid version with prerelease",
			version:     "1.2.3-alpha.1",
			expectError: false,
		},
		{
			name:        "invalid version",
			version:     "invalid",
			expectError: true,
		},
		{
			name:        "empty version",
			version:     "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			err := ValidateVersion()
			if tt.expectError && err == nil {
				t.Errorf("ValidateVersion() expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("ValidateVersion() unexpected error: %v", err)
			}
		})
	}
}

func TestGetInfo(t *testing.T) {
	originalVersion := Version
	defer func() {
		Version = originalVersion
	}()

	Version = "0.1.0"

	info, err := GetInfo()
	if err != nil {
		t.Fatalf("GetInfo() error = %v", err)
	}

	if info.Version != "0.1.0" {
		t.Errorf("GetInfo().Version = %q, want %q", info.Version, "0.1.0")
	}
	if info.SemVer == nil {
		t.Error("GetInfo().SemVer is nil")
	}
	if info.Platform == "" {
		t.Error("GetInfo().Platform is empty")
	}
}

func TestGetFormattedVersion(t *testing.T) {
	originalVersion := Version
	originalGitCommit := GitCommit
	originalBuildDate := BuildDate
	defer func() {
		Version = originalVersion
		GitCommit = originalGitCommit
		BuildDate = originalBuildDate
	}()

	SetBuildInfo("1.2.3", "abc1234def", "2023-01-01")

	formatted := GetFormattedVersion()
	if !strings.Contains(formatted, "modshell v1.2.3") {
		t.Errorf("GetFormattedVersion() = %q, want version prefix", formatted)
	}
	if !strings.Contains(formatted, "commit abc1234") {
		t.Errorf("GetFormattedVersion() = %q, want short commit", formatted)
	}
	if strings.Contains(formatted, "abc1234def") {
		t.Errorf("GetFormattedVersion() = %q, commit not shortened", formatted)
	}

	SetBuildInfo("1.2.3", "unknown", "unknown")
	formatted = GetFormattedVersion()
	if formatted != "modshell v1.2.3" {
		t.Errorf("GetFormattedVersion() = %q, want %q", formatted, "modshell v1.2.3")
	}
}

func TestIsDevelopment(t *testing.T) {
	tests := []struct {
		name      string
		gitCommit string
		buildDate string
		expected  bool
	}{
		{
			name:      "development build - unknown commit",
			gitCommit: "unknown",
			buildDate: "2023-01-01",
			expected:  true,
		},
		{
			name:      "development build - unknown date",
			gitCommit: "abc1234",
			buildDate: "unknown",
			expected:  true,
		},
		{
			name:      "production build",
			gitCommit: "abc1234",
			buildDate: "2023-01-01",
			expected:  false,
		},
	}

	originalGitCommit := GitCommit
	originalBuildDate := BuildDate
	defer func() {
		GitCommit = originalGitCommit
		BuildDate = originalBuildDate
	}()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			GitCommit = tt.gitCommit
			BuildDate = tt.buildDate
			result := IsDevelopment()
			if result != tt.expected {
				t.Errorf("IsDevelopment() with GitCommit=%q, BuildDate=%q = %v, want %v",
					tt.gitCommit, tt.buildDate, result, tt.expected)
			}
		})
	}
}

func TestSetBuildInfo(t *testing.T) {
	originalVersion := Version
	originalGitCommit := GitCommit
	originalBuildDate := BuildDate
	defer func() {
		Version = originalVersion
		GitCommit = originalGitCommit
		BuildDate = originalBuildDate
	}()

	SetBuildInfo("1.2.3", "abc1234", "2023-01-01")

	if Version != "1.2.3" {
		t.Errorf("SetBuildInfo() Version = %q, want %q", Version, "1.2.3")
	}
	if GitCommit != "abc1234" {
		t.Errorf("SetBuildInfo() GitCommit = %q, want %q", GitCommit, "abc1234")
	}
	if BuildDate != "2023-01-01" {
		t.Errorf("SetBuildInfo() BuildDate = %q, want %q", BuildDate, "2023-01-01")
	}
}
