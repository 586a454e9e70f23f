package constants

const (
	UserExistsByID = `
	SELECT EXISTS(SELECT 1 FROM users WHERE id = $1 AND is_active = true)
	`

	GetUserByID = `
	SELECT id, username, email, display_name, is_active, created_at, updated_at
	FROM users WHERE id = $1
	`
)
