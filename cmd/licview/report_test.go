package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/icrphysics/RS-License-Viewer/internal/config"
)

// TestNewReportCmd tests the report command creation.
func TestNewReportCmd(t *testing.T) {
	t.Parallel()

	cmd := NewReportCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "report" {
			t.Errorf("expected use 'report', got %q", cmd.Use)
		}
	})

	t.Run("has server flags with defaults", func(t *testing.T) {
		t.Parallel()

		host := cmd.Flags().Lookup("host")
		if host == nil {
			t.Fatal("expected host flag")
		}
		if host.DefValue != config.DefaultServerHost {
			t.Errorf("host default = %q, want %q", host.DefValue, config.DefaultServerHost)
		}

		port := cmd.Flags().Lookup("port")
		if port == nil {
			t.Fatal("expected port flag")
		}
		if port.DefValue != config.DefaultServerPort {
			t.Errorf("port default = %q, want %q", port.DefValue, config.DefaultServerPort)
		}

		util := cmd.Flags().Lookup("util")
		if util == nil {
			t.Fatal("expected util flag")
		}
		if util.DefValue != config.DefaultUtility {
			t.Errorf("util default = %q, want %q", util.DefValue, config.DefaultUtility)
		}
	})

	t.Run("has classification flags", func(t *testing.T) {
		t.Parallel()

		threshold := cmd.Flags().Lookup("threshold")
		if threshold == nil {
			t.Fatal("expected threshold flag")
		}
		if threshold.DefValue != "1" {
			t.Errorf("threshold default = %q, want %q", threshold.DefValue, "1")
		}

		if cmd.Flags().Lookup("trigger-single") == nil {
			t.Error("expected trigger-single flag")
		}
		if cmd.Flags().Lookup("keep-duplicate-users") == nil {
			t.Error("expected keep-duplicate-users flag")
		}
	})

	t.Run("has output flags", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"output", "json", "markdown", "save-raw", "input", "config"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})
}

// TestRunReportCmd tests the report command end to end on a captured dump.
func TestRunReportCmd(t *testing.T) {
	t.Run("writes bucket files from captured input", func(t *testing.T) {
		capture := writeCapture(t)
		base := filepath.Join(t.TempDir(), "lic")

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"report", "--input", capture, "--output", base})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// rayArc is fully used, rayPhysics has two free seats
		red, err := os.ReadFile(base + ".red")
		if err != nil {
			t.Fatalf("failed to read red bucket: %v", err)
		}
		if !strings.Contains(string(red), "rayArc") {
			t.Errorf("red bucket missing rayArc:\n%s", red)
		}
		if strings.Contains(string(red), "rayPhysics") {
			t.Errorf("red bucket should not contain rayPhysics:\n%s", red)
		}

		green, err := os.ReadFile(base + ".green")
		if err != nil {
			t.Fatalf("failed to read green bucket: %v", err)
		}
		if !strings.Contains(string(green), "rayPhysics") {
			t.Errorf("green bucket missing rayPhysics:\n%s", green)
		}

		if _, err := os.Stat(base + ".orange"); err != nil {
			t.Errorf("expected orange bucket file: %v", err)
		}
	})

	t.Run("applies rules file", func(t *testing.T) {
		capture := writeCapture(t)
		tmpDir := t.TempDir()
		base := filepath.Join(tmpDir, "lic")

		rulesPath := filepath.Join(tmpDir, "rules.yaml")
		rules := "strip:\n  - \"^5_0_2-Clinical-\"\nignore:\n  - rayPhysics\n"
		if err := os.WriteFile(rulesPath, []byte(rules), 0600); err != nil {
			t.Fatalf("failed to write rules file: %v", err)
		}

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"report", "--input", capture, "--output", base, "--config", rulesPath})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		red, err := os.ReadFile(base + ".red")
		if err != nil {
			t.Fatalf("failed to read red bucket: %v", err)
		}
		if !strings.Contains(string(red), "rayArc") {
			t.Errorf("red bucket missing rayArc:\n%s", red)
		}
		if strings.Contains(string(red), "Clinical") {
			t.Errorf("strip pattern should have removed the prefix:\n%s", red)
		}

		green, err := os.ReadFile(base + ".green")
		if err != nil {
			t.Fatalf("failed to read green bucket: %v", err)
		}
		if strings.Contains(string(green), "rayPhysics") {
			t.Errorf("ignored feature should not be reported:\n%s", green)
		}
	})

	t.Run("save raw keeps a copy of the dump", func(t *testing.T) {
		capture := writeCapture(t)
		tmpDir := t.TempDir()
		base := filepath.Join(tmpDir, "lic")
		rawCopy := filepath.Join(tmpDir, "raw.txt")

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"report", "--input", capture, "--output", base, "--save-raw", rawCopy})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(rawCopy)
		if err != nil {
			t.Fatalf("failed to read raw copy: %v", err)
		}
		if string(data) != sampleCapture {
			t.Error("raw copy should match the original dump")
		}
	})

	t.Run("conflicting output formats", func(t *testing.T) {
		capture := writeCapture(t)

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"report", "--input", capture, "--json", "--markdown"})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected error for conflicting formats")
		}
		if !strings.Contains(err.Error(), "configuration error") {
			t.Errorf("expected configuration error, got %v", err)
		}
	})

	t.Run("explicit rules file must exist", func(t *testing.T) {
		capture := writeCapture(t)

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"report", "--input", capture,
			"--config", filepath.Join(t.TempDir(), "nope.yaml")})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected error for missing rules file")
		}
		if !strings.Contains(err.Error(), "rules file not found") {
			t.Errorf("expected rules-file error, got %v", err)
		}
	})

	t.Run("missing input file", func(t *testing.T) {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"report", "--input", filepath.Join(t.TempDir(), "nope.txt"),
			"--output", filepath.Join(t.TempDir(), "lic")})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for missing input file")
		}
	})
}
