package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_Rules_DefaultDirs_Git(t *testing.T) {
	tmp := t.TempDir()
	r := New(tmp, nil)

	if !r.SkipDir(filepath.Join(tmp, ".git")) {
		t.Error("expected .git to be skipped")
	}
	if !r.SkipFile(filepath.Join(tmp, ".git", "config.res")) {
		t.Error("expected files under .git to be skipped")
	}
}

func Test_Rules_DefaultDirs_NodeModules(t *testing.T) {
	tmp := t.TempDir()
	r := New(tmp, nil)

	if !r.SkipFile(filepath.Join(tmp, "node_modules", "pkg", "thing.res")) {
		t.Error("expected node_modules files to be skipped")
	}
}

func Test_Rules_AllowsOrdinaryFiles(t *testing.T) {
	tmp := t.TempDir()
	r := New(tmp, nil)

	if r.SkipFile(filepath.Join(tmp, "api", "users.res")) {
		t.Error("expected ordinary resource files to not be skipped")
	}
	if r.SkipDir(filepath.Join(tmp, "api")) {
		t.Error("expected ordinary directories to not be skipped")
	}
}

func Test_Rules_GitignoreIntegration(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, ".gitignore"), []byte("generated/\n*.tmp.res\n"), 0644); err != nil {
		t.Fatal(err)
	}
	r := New(tmp, nil)

	if !r.SkipDir(filepath.Join(tmp, "generated")) {
		t.Error("expected gitignored directory to be skipped")
	}
	if !r.SkipFile(filepath.Join(tmp, "scratch.tmp.res")) {
		t.Error("expected gitignored file pattern to be skipped")
	}
	if r.SkipFile(filepath.Join(tmp, "keep.res")) {
		t.Error("expected non-ignored file to pass")
	}
}

func Test_Rules_ResignoreIntegration(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, ".resignore"), []byte("private/\n"), 0644); err != nil {
		t.Fatal(err)
	}
	r := New(tmp, nil)

	if !r.SkipDir(filepath.Join(tmp, "private")) {
		t.Error("expected .resignore directory to be skipped")
	}
}

func Test_Rules_CustomPatterns(t *testing.T) {
	tmp := t.TempDir()
	r := New(tmp, []string{"*_draft.res"})

	if !r.SkipFile(filepath.Join(tmp, "deep", "thing_draft.res")) {
		t.Error("expected custom basename pattern to be skipped")
	}
	if r.SkipFile(filepath.Join(tmp, "deep", "thing.res")) {
		t.Error("expected non-matching file to pass")
	}
}

func Test_Rules_Reload(t *testing.T) {
	tmp := t.TempDir()
	r := New(tmp, nil)

	target := filepath.Join(tmp, "generated")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatal(err)
	}
	if r.SkipDir(target) {
		t.Fatal("expected no ignore before .gitignore exists")
	}

	if err := os.WriteFile(filepath.Join(tmp, ".gitignore"), []byte("generated/\n"), 0644); err != nil {
		t.Fatal(err)
	}
	r.Reload()

	if !r.SkipDir(target) {
		t.Error("expected reload to pick up new .gitignore rules")
	}
}
