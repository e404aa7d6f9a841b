// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"path/filepath"
	"testing"
)

func TestCreateSchema_Idempotent(t *testing.T) {
	conn, err := Open(context.Background(), TypeSQLite, filepath.Join(t.TempDir(), "schema.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("CreateSchema call %d failed: %v", i+1, err)
		}
	}

	for _, table := range []string{"hackathon", "winner"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = $1`, table).Scan(&name)
		if err != nil {
			t.Errorf("Expected table %s to exist: %v", table, err)
		}
	}
}

func TestCreateSchema_UniqueRankPerHackathon(t *testing.T) {
	conn, err := Open(context.Background(), TypeSQLite, filepath.Join(t.TempDir(), "rank.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Fatal(err)
	}

	if _, err := conn.Exec(`INSERT INTO hackathon (id, name, url) VALUES ('h1', 'Hack', 'hack')`); err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec(`INSERT INTO winner (id, hackathon_id, rank, title, creator_name) VALUES ('w1', 'h1', 1, 'A', 'Ana')`); err != nil {
		t.Fatal(err)
	}
	_, err = conn.Exec(`INSERT INTO winner (id, hackathon_id, rank, title, creator_name) VALUES ('w2', 'h1', 1, 'B', 'Bo')`)
	if err == nil {
		t.Error("Expected duplicate rank to be rejected")
	}
}

func TestOpen_UnsupportedType(t *testing.T) {
	if _, err := Open(context.Background(), "mysql", "x"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}
