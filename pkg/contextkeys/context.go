package contextkeys

// Custom key type to avoid collisions with other context users.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB
// (the shared pool, or a transaction in tests) is stored.
const DBContextKey = contextKey("db")
