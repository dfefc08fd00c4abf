package pipeline

import (
	"net/url"
	"runtime"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestFixImageSources - Action i
// ---------------------------------------------------------------------------

func TestFixImageSources(t *testing.T) {
	t.Parallel()

	docs, err := url.Parse("file:///docs/")
	if err != nil {
		t.Fatal(err)
	}
	web, err := url.Parse("https://example.com/notes/page.html")
	if err != nil {
		t.Fatal(err)
	}

	r := NewRewriter(Settings{FileExists: func(string) bool { return false }})

	tests := []struct {
		name        string
		base        *url.URL
		input       string
		want        string
		wantChanged bool
	}{
		{
			name:        "relative against file base",
			base:        docs,
			input:       `<img src="a.png">`,
			want:        `<img  src="file:///docs/a.png">`,
			wantChanged: true,
		},
		{
			name:        "relative against web base",
			base:        web,
			input:       `<p><img src="../img/b.png" alt="b"></p>`,
			want:        `<p><img  src="https://example.com/img/b.png" alt="b"></p>`,
			wantChanged: true,
		},
		{
			name:        "relative without base unchanged",
			base:        nil,
			input:       `<img src="a.png">`,
			want:        `<img src="a.png">`,
			wantChanged: false,
		},
		{
			name:        "http URL unchanged",
			base:        docs,
			input:       `<img src="http://example.com/a.png">`,
			want:        `<img src="http://example.com/a.png">`,
			wantChanged: false,
		},
		{
			name:        "file URL re-encoded",
			base:        docs,
			input:       `<img src="file:///tmp/my image.png">`,
			want:        `<img  src="file:///tmp/my%20image.png">`,
			wantChanged: true,
		},
		{
			name:        "already encoded file URL unchanged",
			base:        docs,
			input:       `<img src="file:///tmp/a.png">`,
			want:        `<img src="file:///tmp/a.png">`,
			wantChanged: false,
		},
		{
			name:        "unknown scheme missing locally unchanged",
			base:        docs,
			input:       `<img src="C:/img/a.png">`,
			want:        `<img src="C:/img/a.png">`,
			wantChanged: false,
		},
		{
			name:        "src not first attribute unchanged",
			base:        docs,
			input:       `<img alt="x" src="a.png">`,
			want:        `<img alt="x" src="a.png">`,
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, changed := r.FixImageSources(tt.base, tt.input)
			if got != tt.want {
				t.Errorf("FixImageSources() = %q, want %q", got, tt.want)
			}
			if changed != tt.wantChanged {
				t.Errorf("FixImageSources() changed = %v, want %v", changed, tt.wantChanged)
			}

			again, changed := r.FixImageSources(tt.base, got)
			if changed || again != got {
				t.Errorf("second FixImageSources() = %q (changed %v), want stable", again, changed)
			}
		})
	}
}

func TestFixImageSources_ExistingLocalPath(t *testing.T) {
	t.Parallel()

	var checked string
	r := NewRewriter(Settings{FileExists: func(p string) bool {
		checked = p
		return true
	}})

	got, changed := r.FixImageSources(nil, `<img src="C:/img/a.png">`)
	if !changed {
		t.Fatal("FixImageSources() reported no change")
	}
	if checked != "C:/img/a.png" {
		t.Errorf("FileExists called with %q, want %q", checked, "C:/img/a.png")
	}
	if !strings.HasPrefix(got, `<img  src="file:///`) || !strings.HasSuffix(got, `a.png">`) {
		t.Errorf("FixImageSources() = %q, want a file URL", got)
	}
}

// ---------------------------------------------------------------------------
// TestPathToFileURL - URL generation
// ---------------------------------------------------------------------------

func TestPathToFileURL(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("Unix path test skipped on Windows")
	}

	tests := []struct {
		name    string
		absPath string
		want    string
	}{
		{
			name:    "unix path",
			absPath: "/docs/images/logo.png",
			want:    "file:///docs/images/logo.png",
		},
		{
			name:    "path with spaces",
			absPath: "/docs/my images/logo.png",
			want:    "file:///docs/my%20images/logo.png",
		},
		{
			name:    "path with unicode",
			absPath: "/docs/日本語/logo.png",
			want:    "file:///docs/%E6%97%A5%E6%9C%AC%E8%AA%9E/logo.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pathToFileURL(tt.absPath); got != tt.want {
				t.Errorf("pathToFileURL(%q) = %q, want %q", tt.absPath, got, tt.want)
			}
		})
	}
}
