package pkgroot

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatal(err)
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	mkdir(t, filepath.Join(root, "top", "pkg", "sub"))
	touch(t, filepath.Join(root, "top", "pkg", "__init__.py"))
	touch(t, filepath.Join(root, "top", "pkg", "sub", "__init__.py"))
	touch(t, filepath.Join(root, "top", "pkg", "sub", "mod.py"))
	mkdir(t, filepath.Join(root, "plain"))
	touch(t, filepath.Join(root, "plain", "script.py"))

	testCases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "nested package resolves to topmost package dir",
			in:   filepath.Join(root, "top", "pkg", "sub", "mod.py"),
			want: filepath.Join(root, "top", "pkg"),
		},
		{
			name: "no markers returns the input",
			in:   filepath.Join(root, "plain", "script.py"),
			want: filepath.Join(root, "plain", "script.py"),
		},
		{
			name: "empty path returns empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := Find(tt.in); got != tt.want {
				t.Errorf("Find(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFindTerminatesOnRevisit(t *testing.T) {
	// A marker at every level up to the temp root keeps the walk
	// moving; the parent==self guard must still end it.
	root := t.TempDir()
	mkdir(t, filepath.Join(root, "a", "b"))
	touch(t, filepath.Join(root, "__init__.py"))
	touch(t, filepath.Join(root, "a", "__init__.py"))
	touch(t, filepath.Join(root, "a", "b", "__init__.py"))
	touch(t, filepath.Join(root, "a", "b", "mod.py"))

	got := Find(filepath.Join(root, "a", "b", "mod.py"))
	if got != root {
		t.Fatalf("Find = %q, want %q", got, root)
	}
}
