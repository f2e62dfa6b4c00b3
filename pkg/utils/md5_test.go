package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMD5(t *testing.T) {
	if got := MD5("hello"); got != "5d41402abc4b2a76b9719d911017c592" {
		t.Errorf("unexpected digest: %s", got)
	}
	if got := MD5(""); got != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("unexpected digest for empty string: %s", got)
	}
}

func TestGetFileMD5(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := GetFileMD5(path)
	if err != nil {
		t.Fatalf("GetFileMD5 failed: %v", err)
	}
	if got != MD5("hello") {
		t.Errorf("file digest %s does not match string digest", got)
	}

	if _, err := GetFileMD5(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}
