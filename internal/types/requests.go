package types

// ------------------------------
// Request Bodies
// ------------------------------

// RegisterRequest holds parameters for direct signup.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest holds credentials for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest exchanges a refresh token for a new access token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// CreateTableRequest holds parameters for a new table.
type CreateTableRequest struct {
	TableName   string   `json:"tableName"`
	Description string   `json:"description"`
	Columns     []Column `json:"columns"`
}

// InsertRequest inserts records into a table.
type InsertRequest struct {
	TableName string   `json:"tableName"`
	Records   []Record `json:"records"`
}

// UpdateRequest patches a single row identified by IDColumn/IDValue.
type UpdateRequest struct {
	TableName string `json:"tableName"`
	IDColumn  string `json:"idColumn"`
	IDValue   any    `json:"idValue"`
	Updates   Record `json:"updates"`
}

// DeleteRequest removes a single row identified by IDColumn/IDValue.
type DeleteRequest struct {
	TableName string `json:"tableName"`
	IDColumn  string `json:"idColumn"`
	IDValue   any    `json:"idValue"`
}
