package file

const (
	InsertFile = `
		INSERT INTO files (user_id, name, type, is_public, parent_id, local_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, type, is_public, parent_id, local_path, created_at
	`
	SelectFileByID = `
		SELECT id, user_id, name, type, is_public, parent_id, local_path, created_at
		FROM files
		WHERE id = $1
	`
	SelectFiles = `
		SELECT id, user_id, name, type, is_public, parent_id, local_path, created_at
		FROM files
		WHERE user_id = $1 AND parent_id = $2
		ORDER BY created_at, id
		LIMIT $3 OFFSET $4
	`
	CountFiles = `SELECT count(*) FROM files`
)
