package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDir(t *testing.T) {
	t.Setenv("WCHAT_HOME", "")
	home, _ := os.UserHomeDir()
	got := Dir("main")
	want := filepath.Join(home, ".wchat", "profiles", "main")
	if got != want {
		t.Errorf("Dir(main) = %q, want %q", got, want)
	}
}

func TestBaseDirOverride(t *testing.T) {
	t.Setenv("WCHAT_HOME", "/tmp/wchat-home")
	if got := BaseDir(); got != "/tmp/wchat-home" {
		t.Errorf("BaseDir() = %q, want /tmp/wchat-home", got)
	}
}

func TestSocketPath(t *testing.T) {
	got := SocketPath("test")
	if !strings.HasSuffix(got, filepath.Join("profiles", "test", "daemon.sock")) {
		t.Errorf("SocketPath(test) = %q, want suffix profiles/test/daemon.sock", got)
	}
}

func TestAccountPath(t *testing.T) {
	got := AccountPath("test", "alice")
	if !strings.HasSuffix(got, filepath.Join("profiles", "test", "accounts", "alice.json")) {
		t.Errorf("AccountPath(test, alice) = %q", got)
	}
}

func TestEnsureDir(t *testing.T) {
	t.Setenv("WCHAT_HOME", t.TempDir())
	if err := EnsureDir("test"); err != nil {
		t.Fatal(err)
	}
	for _, d := range []string{Dir("test"), LogDir("test"), AccountsDir("test"), FilesDir("test")} {
		info, err := os.Stat(d)
		if err != nil {
			t.Fatalf("%s not created: %v", d, err)
		}
		if perm := info.Mode().Perm(); perm != 0700 {
			t.Errorf("%s permission = %o, want 0700", d, perm)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Setenv("WCHAT_HOME", t.TempDir())
	t.Setenv("WCHAT_DEFAULT_PROFILE", "")
	if got := Resolve("work"); got != "work" {
		t.Errorf("Resolve(work) = %q", got)
	}
	if got := Resolve(""); got != DefaultProfileName {
		t.Errorf("Resolve() = %q, want %q", got, DefaultProfileName)
	}
	t.Setenv("WCHAT_DEFAULT_PROFILE", "home")
	if got := Resolve(""); got != "home" {
		t.Errorf("Resolve() with env = %q, want home", got)
	}
}
