// Where: internal/meta/meta.go
// What: Tool-local metadata constants.
// Why: Keep the project identity in one place for config paths and env names.
package meta

const (
	// Project Identity
	AppName   = "catr"
	Slug      = "catr"
	EnvPrefix = "CATR"

	// Directory Layout
	HomeDir    = ".catr"
	ConfigFile = "config.yaml"
	LogFile    = "refresh.log"

	// Credential store identity used when pushing tokens.
	StoreUsername = "aws"
)
