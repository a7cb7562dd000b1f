package sqlite

import (
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE t (id INTEGER PRIMARY KEY, v TEXT)`); err != nil {
		t.Fatalf("create table failed: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO t (v) VALUES (?)`, "hello"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	var v string
	if err := db.QueryRow(`SELECT v FROM t WHERE id = 1`).Scan(&v); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if v != "hello" {
		t.Errorf("v = %q, want hello", v)
	}
}

func TestDriverName(t *testing.T) {
	if DriverName() != "sqlite" {
		t.Errorf("DriverName() = %q, want sqlite", DriverName())
	}
}
