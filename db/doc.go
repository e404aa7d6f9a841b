// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and creates the schema.

# Connections

Open accepts either driver:

	conn, err := db.Open(ctx, db.TypePostgres, "postgres://...")
	conn, err := db.Open(ctx, db.TypeSQLite, "file:hackathons.db")

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - hackathon: event metadata, unique url slug, is_finished flag
  - winner: ranked results of a finished hackathon

# Relationships

	hackathon 1──* winner

Winner rows are written by the judging backend; this service only reads
them. (hackathon_id, rank) is unique.
*/
package db
