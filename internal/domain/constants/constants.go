// Package constants collects configuration literals shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers accepted in pubsub.provider.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderAMQP   = "amqp"
)

const (
	// SessionCookieName is used when session.cookieName is not configured.
	SessionCookieName = "showcase_session"
	// LoginPath is where unauthenticated visitors are sent.
	LoginPath = "/login"
	// LandingPath is where sign-out always lands.
	LandingPath = "/"
	// DashboardPath is where a successful login lands.
	DashboardPath = "/dashboard"
	// ManagePath is the owner's management view.
	ManagePath = "/business/manage"
	// PublicBusinessPath prefixes public business profile URLs.
	PublicBusinessPath = "/businesses/"
)
