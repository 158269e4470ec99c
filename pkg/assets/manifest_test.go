package assets

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/serenakung/speech-scene-generator/pkg/errors"
)

func TestLoadBackgroundsDefaults(t *testing.T) {
	got, err := LoadBackgrounds("")
	if err != nil {
		t.Fatalf("LoadBackgrounds(\"\") error = %v", err)
	}
	if !reflect.DeepEqual(got, DefaultBackgrounds()) {
		t.Errorf("got %v, want built-in list", got)
	}
}

func TestLoadBackgroundsManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backgrounds.json")

	tests := []struct {
		name    string
		data    string
		want    []string
		wantErr bool
	}{
		{
			name: "explicit list",
			data: `{"backgrounds":["a.png","b.png"]}`,
			want: []string{"a.png", "b.png"},
		},
		{
			name: "empty list falls back",
			data: `{"backgrounds":[]}`,
			want: DefaultBackgrounds(),
		},
		{
			name: "missing key falls back",
			data: `{}`,
			want: DefaultBackgrounds(),
		},
		{
			name:    "malformed manifest is fatal",
			data:    `{nope`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			got, err := LoadBackgrounds(path)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeManifestLoad) {
					t.Fatalf("error = %v, want MANIFEST_LOAD", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadBackgrounds() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadBackgroundsMissingFile(t *testing.T) {
	_, err := LoadBackgrounds(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, errors.ErrCodeManifestLoad) {
		t.Fatalf("error = %v, want MANIFEST_LOAD", err)
	}
}
