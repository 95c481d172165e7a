// Where: internal/constants/env.go
// What: Environment variable suffixes recognized by the configuration layer.
// Why: Keep override names consistent between config resolution and docs.
package constants

const (
	HostSuffixProfile        = "PROFILE"
	HostSuffixDomain         = "DOMAIN"
	HostSuffixDomainOwner    = "DOMAIN_OWNER"
	HostSuffixRegion         = "REGION"
	HostSuffixSource         = "SOURCE"
	HostSuffixLogPath        = "LOG_PATH"
	HostSuffixTimeoutSeconds = "TIMEOUT_SECONDS"
	HostSuffixNuGetConfig    = "NUGET_CONFIG"
	HostSuffixConfigPath     = "CONFIG_PATH"
	HostSuffixConfigHome     = "CONFIG_HOME"
)
