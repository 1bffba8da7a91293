package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the root command with args, capturing stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Read in background so a large document cannot fill the pipe
	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		buf.ReadFrom(r)
		close(done)
	}()

	// Reset flags to prevent accumulation between tests
	verbose = false
	generateOutput = ""
	previewOutput = ""
	previewWidth, previewHeight = 1200, 600
	resetFixtureFlags()

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	w.Close()
	os.Stdout = old
	<-done
	return buf.String(), err
}

// TestGenerateE2E tests the generate command end-to-end
func TestGenerateE2E(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
		wantMissing []string
	}{
		{
			name: "stdout",
			args: []string{"generate"},
			wantContain: []string{
				"{VERSION=2.0}",
				"{PADSTACK=roundpad, 0.200000",
				"{NET=viatst",
				"{NET=nesting_poly_3 PS=0.000000",
				"{END}",
			},
		},
		{
			name:        "precision",
			args:        []string{"generate", "--precision", "3"},
			wantContain: []string{"{PLANE_SEP=0.050}"},
		},
		{
			name:        "without nesting chain",
			args:        []string{"generate", "--no-nesting-chain"},
			wantContain: []string{"{NET=nesting_poly_2"},
			wantMissing: []string{"nesting_poly_3"},
		},
		{
			name:    "arc grid too wide",
			args:    []string{"generate", "--arc-grid", "20"},
			wantErr: true,
		},
		{
			name:    "unexpected argument",
			args:    []string{"generate", "extra"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := run(t, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("Output missing expected string: %q", want)
				}
			}
			for _, miss := range tt.wantMissing {
				if strings.Contains(output, miss) {
					t.Errorf("Output contains %q", miss)
				}
			}
		})
	}
}

// TestCheckE2E generates a file and reads it back
func TestCheckE2E(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test00.hyp")

	output, err := run(t, "generate", "-o", path)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(output, "Nets:      15") {
		t.Errorf("generate summary missing net count:\n%s", output)
	}

	output, err = run(t, "check", "-v", path)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, output)
	}
	for _, want := range []string{"Version:     2.0", "Padstacks:   5", "Nets:        15", "poly_clearance_tst (PS=0.050000)", "OK"} {
		if !strings.Contains(output, want) {
			t.Errorf("check output missing %q:\n%s", want, output)
		}
	}

	bad := filepath.Join(dir, "bad.hyp")
	if err := os.WriteFile(bad, []byte("{VERSION=2.0}\n{NET=a\n  (VIA X=1 Y=1 P=nopad)\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	output, err = run(t, "check", bad)
	if err == nil {
		t.Errorf("check of a broken file should fail:\n%s", output)
	}
	if !strings.Contains(output, "Problems:") {
		t.Errorf("check output lacks problems:\n%s", output)
	}

	if _, err := run(t, "check", filepath.Join(dir, "missing.hyp")); err == nil {
		t.Error("check of a missing file should fail")
	}
}

// TestPreviewE2E renders the board to a PNG file
func TestPreviewE2E(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test00.png")
	output, err := run(t, "preview", "-o", path, "--width", "300", "--height", "150")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.Contains(output, "(300x150)") {
		t.Errorf("unexpected output: %s", output)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}
