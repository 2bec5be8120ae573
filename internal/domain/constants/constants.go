// Package constants contains provider names and environment identifiers read from config.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the env name used in production.
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Document store providers.
const (
	StoreProviderMemory   = "memory"
	StoreProviderFirebase = "firebase"
)

// Identity providers.
const (
	AuthProviderLocal    = "local"
	AuthProviderFirebase = "firebase"
)

// Mail providers.
const (
	MailProviderLog      = "log"
	MailProviderSendGrid = "sendgrid"
)

// DefaultRootPath is the root node every document path is resolved under.
const DefaultRootPath = "smartfit_AR_Database"
