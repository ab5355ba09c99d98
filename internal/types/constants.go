package types

const ContextUserKey = "user"

// Default allowed origins for development
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}
