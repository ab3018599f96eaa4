package session

const (
	SelectEntry = `
		SELECT value, expires_at
		FROM cache_entries
		WHERE key = $1 AND expires_at > now()
	`
	UpsertEntry = `
		INSERT INTO cache_entries (key, value, expires_at)
		VALUES ($1, $2, now() + $3::interval)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    expires_at = EXCLUDED.expires_at
	`
	DeleteEntry  = `DELETE FROM cache_entries WHERE key = $1`
	PurgeExpired = `DELETE FROM cache_entries WHERE expires_at <= now()`
)
