package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []struct {
	name string
	sql  string
}{
	{
		name: "users",
		sql: `CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    username VARCHAR(128) NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role VARCHAR(32) NOT NULL CHECK (role IN ('advocate', 'client')),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	},
	{
		name: "sessions",
		sql: `CREATE TABLE IF NOT EXISTS sessions (
    token UUID PRIMARY KEY,
    user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    expires_at TIMESTAMPTZ NOT NULL
)`,
	},
	{
		name: "laws",
		sql: `CREATE TABLE IF NOT EXISTS laws (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    section VARCHAR(64) NOT NULL UNIQUE,
    title VARCHAR(255) NOT NULL,
    short_desc TEXT,
    official_text TEXT,
    source_url VARCHAR(512),
    category VARCHAR(64),
    keywords TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	},
	{
		name: "penalties",
		sql: `CREATE TABLE IF NOT EXISTS penalties (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    law_section VARCHAR(64) NOT NULL REFERENCES laws(section) ON DELETE CASCADE ON UPDATE CASCADE,
    imprisonment VARCHAR(128),
    fine VARCHAR(128),
    severity VARCHAR(32),
    notes TEXT
)`,
	},
	{
		name: "documents",
		sql: `CREATE TABLE IF NOT EXISTS documents (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    username VARCHAR(128) NOT NULL,
    filename VARCHAR(255) NOT NULL,
    mime_type VARCHAR(128) NOT NULL,
    size BIGINT NOT NULL,
    storage_path VARCHAR(512) NOT NULL,
    extracted_chars INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	},
	{
		name: "user_queries",
		sql: `CREATE TABLE IF NOT EXISTS user_queries (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_text TEXT NOT NULL,
    matched_section VARCHAR(64),
    matched_law_id UUID REFERENCES laws(id) ON DELETE SET NULL,
    score DOUBLE PRECISION NOT NULL DEFAULT 0,
    metadata JSONB DEFAULT '{}'::jsonb,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	},
	{
		name: "user_queries created_at index",
		sql:  `CREATE INDEX IF NOT EXISTS idx_user_queries_created_at ON user_queries(created_at DESC)`,
	},
	{
		name: "sessions expiry index",
		sql:  `CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at)`,
	},
}

// CreateSchema creates all tables and indexes if they do not exist
func CreateSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt.sql); err != nil {
			return fmt.Errorf("failed to create %s: %w", stmt.name, err)
		}
	}
	return nil
}

// SchemaObjects lists the objects CreateSchema manages, in creation order
func SchemaObjects() []string {
	names := make([]string, len(schemaStatements))
	for i, stmt := range schemaStatements {
		names[i] = stmt.name
	}
	return names
}
