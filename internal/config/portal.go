package config

// PortalConfig holds portal-level behavior toggles.
type PortalConfig struct {
	// EnforceTeamCapacity controls whether team_size is a hard cap.
	// When false (default) capacity is advisory and owners may accept
	// members beyond it.
	EnforceTeamCapacity bool
}

// LoadPortalConfigFromEnv loads portal configuration from environment variables.
func LoadPortalConfigFromEnv() PortalConfig {
	return PortalConfig{
		EnforceTeamCapacity: GetEnvBool("PORTAL_ENFORCE_TEAM_CAPACITY", false),
	}
}
