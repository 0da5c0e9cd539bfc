package migration

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMigration(t *testing.T, dir, name, sql string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(sql), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadMigrations_OrdersByVersion(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "V10__later.sql", "CREATE TABLE later (id INT)")
	writeMigration(t, dir, "V2__second.sql", "CREATE TABLE second (id INT)")
	writeMigration(t, dir, "V1__first.sql", "CREATE TABLE first (id INT)")
	writeMigration(t, dir, "README.md", "not a migration")

	migs, err := loadMigrations(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migs))
	}
	for i, want := range []int64{1, 2, 10} {
		if migs[i].Version != want {
			t.Fatalf("position %d: expected version %d, got %d", i, want, migs[i].Version)
		}
	}
	if migs[0].Name != "first" {
		t.Fatalf("expected parsed name first, got %q", migs[0].Name)
	}
	if migs[0].Checksum == "" || migs[0].Checksum == migs[1].Checksum {
		t.Fatalf("checksums must be set and content-dependent")
	}
}

func TestLoadMigrations_RejectsDuplicateVersion(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "V1__a.sql", "CREATE TABLE a (id INT)")
	writeMigration(t, dir, "V1__b.sql", "CREATE TABLE b (id INT)")

	if _, err := loadMigrations(dir); err == nil {
		t.Fatalf("expected duplicate version error")
	}
}

func TestLoadMigrations_RejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "V1__empty.sql", "   \n")

	if _, err := loadMigrations(dir); err == nil {
		t.Fatalf("expected empty migration error")
	}
}

func TestLoadMigrations_MissingDirIsEmpty(t *testing.T) {
	migs, err := loadMigrations(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 0 {
		t.Fatalf("expected no migrations, got %d", len(migs))
	}
}
