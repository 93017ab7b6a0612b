package pgstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"library-api/internal/storage"
)

// EnsureSchema creates one document table per collection plus a unique expression
// index per unique field. It is safe to run on every start.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, specs ...storage.CollectionSpec) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, spec := range specs {
		spec := spec
		g.Go(func() error {
			for _, stmt := range schemaStatements(spec) {
				if _, err := pool.Exec(ctx, stmt); err != nil {
					return fmt.Errorf("failed to prepare table %s: %w", spec.Name, err)
				}
			}
			return nil
		})
	}

	return g.Wait()
}

func schemaStatements(spec storage.CollectionSpec) []string {
	table := pgx.Identifier{spec.Name}.Sanitize()

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
            id  CHAR(24) PRIMARY KEY,
            doc JSONB NOT NULL,
            seq BIGSERIAL
        )`, table),
	}
	for _, field := range spec.UniqueFields {
		stmts = append(stmts, fmt.Sprintf(
			`CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s ((doc->>%s)) WHERE jsonb_typeof(doc->%s) = 'string'`,
			pgx.Identifier{indexName(spec.Name, field)}.Sanitize(),
			table,
			quoteLiteral(field),
			quoteLiteral(field),
		))
	}
	return stmts
}

func indexName(collection, field string) string {
	return collection + "_" + field + "_key"
}

func quoteLiteral(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '\'')
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			out = append(out, '\'')
		}
		out = append(out, s[i])
	}
	return string(append(out, '\''))
}
