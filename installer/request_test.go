package installer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	bundle := t.TempDir()
	srcFile := filepath.Join(bundle, "app.bin")
	if err := os.WriteFile(srcFile, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		req       InstallationRequest
		wantField string // "" means valid
	}{
		{
			name: "valid bundle request",
			req:  InstallationRequest{AppName: "Demo App", BundleDir: bundle},
		},
		{
			name: "valid files request",
			req: InstallationRequest{
				AppName: "Demo App",
				Files:   []FilePair{{Source: srcFile, Dest: "app.bin"}},
			},
		},
		{
			name:      "empty name",
			req:       InstallationRequest{AppName: "   ", BundleDir: bundle},
			wantField: "app_name",
		},
		{
			name:      "name too long",
			req:       InstallationRequest{AppName: strings.Repeat("a", 51), BundleDir: bundle},
			wantField: "app_name",
		},
		{
			name:      "invalid character",
			req:       InstallationRequest{AppName: "Demo:App", BundleDir: bundle},
			wantField: "app_name",
		},
		{
			name:      "apostrophe breaks the uninstall script",
			req:       InstallationRequest{AppName: "Demo's App", BundleDir: bundle},
			wantField: "app_name",
		},
		{
			name:      "dollar sign breaks the uninstall script",
			req:       InstallationRequest{AppName: "Demo $App", BundleDir: bundle},
			wantField: "app_name",
		},
		{
			name:      "no source",
			req:       InstallationRequest{AppName: "Demo App"},
			wantField: "source",
		},
		{
			name: "both sources",
			req: InstallationRequest{
				AppName:   "Demo App",
				BundleDir: bundle,
				Files:     []FilePair{{Source: srcFile, Dest: "app.bin"}},
			},
			wantField: "source",
		},
		{
			name:      "bundle is a file",
			req:       InstallationRequest{AppName: "Demo App", BundleDir: srcFile},
			wantField: "bundle_dir",
		},
		{
			name: "install path too long",
			req: InstallationRequest{
				AppName:     "Demo App",
				BundleDir:   bundle,
				InstallPath: "/" + strings.Repeat("a", 260),
			},
			wantField: "install_path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestValidateMissingSource(t *testing.T) {
	req := InstallationRequest{
		AppName:   "Demo App",
		BundleDir: filepath.Join(t.TempDir(), "nope"),
	}
	var nferr *SourceNotFoundError
	if err := req.Validate(); !errors.As(err, &nferr) {
		t.Fatalf("Validate() = %v, want *SourceNotFoundError", err)
	}

	req = InstallationRequest{
		AppName: "Demo App",
		Files:   []FilePair{{Source: filepath.Join(t.TempDir(), "gone.txt"), Dest: "gone.txt"}},
	}
	if err := req.Validate(); !errors.As(err, &nferr) {
		t.Fatalf("Validate() = %v, want *SourceNotFoundError", err)
	}
}

func TestSanitizeAppName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Demo App", "Demo App"},
		{"Demo: App!", "Demo App"},
		{"  demo__app  ", "demo app"},
		{"my-cool-tool v2", "my cool tool v2"},
		{"***", ""},
	}
	for _, tt := range tests {
		if got := SanitizeAppName(tt.in); got != tt.want {
			t.Errorf("SanitizeAppName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
