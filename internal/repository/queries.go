package repository

const (
	listTasksQuery = `
		SELECT id, title, description, completed, owner, created_at
		FROM tasks
		ORDER BY created_at
	`

	getTaskQuery = `
		SELECT id, title, description, completed, owner, created_at
		FROM tasks
		WHERE id = $1
	`

	insertTaskQuery = `
		INSERT INTO tasks (title, description, owner)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	updateTaskQuery = `
		UPDATE tasks
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    completed = COALESCE($4, completed)
		WHERE id = $1
	`

	deleteTaskQuery = `
		DELETE FROM tasks
		WHERE id = $1
	`

	listBookmarksQuery = `
		SELECT id, title, url, tags, owner, created_at
		FROM bookmarks
		WHERE owner = $1
		  AND ($2 = '' OR $2 = ANY(tags))
		  AND ($3 = '' OR title ILIKE '%' || $3 || '%' OR url ILIKE '%' || $3 || '%')
		ORDER BY created_at
	`

	getBookmarkQuery = `
		SELECT id, title, url, tags, owner, created_at
		FROM bookmarks
		WHERE id = $1 AND owner = $2
	`

	insertBookmarkQuery = `
		INSERT INTO bookmarks (title, url, tags, owner)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	updateBookmarkQuery = `
		UPDATE bookmarks
		SET title = $3, url = $4, tags = $5
		WHERE id = $1 AND owner = $2
	`

	deleteBookmarkQuery = `
		DELETE FROM bookmarks
		WHERE id = $1 AND owner = $2
	`
)
