package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const pingTimeout = 2 * time.Second

// NewPool opens a pgx pool and pings it so a bad DSN fails at startup.
// maxConns <= 0 keeps the pgx default.
func NewPool(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN %s: %w", RedactDSN(dsn), err)
	}
	if maxConns > 0 {
		poolCfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database (%s): %w", RedactDSN(dsn), err)
	}
	return pool, nil
}

// RedactDSN hides the credentials of a DSN: user info in URL form,
// password=... in key/value form.
func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return redactKeyValue(dsn)
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}

// redactKeyValue masks the value of every password key in a libpq
// key/value string. Quoted values may contain spaces and \' escapes.
func redactKeyValue(dsn string) string {
	const key = "password"
	var b strings.Builder
	i := 0
	for i < len(dsn) {
		j := strings.Index(dsn[i:], key)
		if j < 0 {
			break
		}
		j += i
		k := j + len(key)
		for k < len(dsn) && dsn[k] == ' ' {
			k++
		}
		if (j > 0 && dsn[j-1] != ' ') || k >= len(dsn) || dsn[k] != '=' {
			b.WriteString(dsn[i:k])
			i = k
			continue
		}
		k++
		for k < len(dsn) && dsn[k] == ' ' {
			k++
		}
		b.WriteString(dsn[i:k])
		b.WriteString("***")
		i = skipValue(dsn, k)
	}
	b.WriteString(dsn[i:])
	return b.String()
}

func skipValue(s string, i int) int {
	if i < len(s) && s[i] == '\'' {
		for i++; i < len(s); i++ {
			switch s[i] {
			case '\\':
				i++
			case '\'':
				return i + 1
			}
		}
		return len(s)
	}
	for i < len(s) && s[i] != ' ' {
		if s[i] == '\\' {
			i++
		}
		i++
	}
	if i > len(s) {
		return len(s)
	}
	return i
}
