// Where: internal/nuget/inspector.go
// What: Read path over the package manager's persisted config.
// Why: Display the stored token without going through the external CLI.
package nuget

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/catr-tool/catr/internal/ports"
)

// fallbackWindow bounds how many lines after the source marker the text
// scan inspects for the password attribute.
const fallbackWindow = 5

var passwordValuePattern = regexp.MustCompile(`key="(?:ClearTextPassword|Password)"\s+value="([^"]*)"`)

// Inspector extracts the currently stored token for the configured source.
// It implements ports.TokenInspector. The structured XML decode is the
// authoritative path; the line-window scan is positional and fragile, kept
// strictly as last resort for files the decoder cannot handle.
type Inspector struct {
	path   string
	source string
}

// NewInspector builds an Inspector. An empty path means the platform
// default location of the global NuGet config.
func NewInspector(path, source string) *Inspector {
	return &Inspector{path: path, source: source}
}

// DefaultConfigPath returns the platform's global NuGet config location.
func DefaultConfigPath() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "NuGet", "NuGet.Config")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "NuGet.Config"
	}
	return filepath.Join(home, ".nuget", "NuGet", "NuGet.Config")
}

// CurrentToken returns the stored token for the source, or
// ports.ErrConfigNotFound / ports.ErrTokenNotFound. It never validates the
// token's freshness; staleness is only discovered on next use.
func (i *Inspector) CurrentToken() (string, error) {
	path := i.path
	if path == "" {
		path = DefaultConfigPath()
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ports.ErrConfigNotFound
		}
		return "", err
	}

	if token := structuredToken(payload, i.source); token != "" {
		return token, nil
	}
	if token := scannedToken(payload, i.source); token != "" {
		return token, nil
	}
	return "", ports.ErrTokenNotFound
}

// nugetConfig models just enough of NuGet.Config to reach the credential
// slots. Source elements are named after the source itself, hence ",any".
type nugetConfig struct {
	XMLName     xml.Name `xml:"configuration"`
	Credentials struct {
		Sources []credentialSource `xml:",any"`
	} `xml:"packageSourceCredentials"`
}

type credentialSource struct {
	XMLName xml.Name
	Entries []addEntry `xml:"add"`
}

type addEntry struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

func structuredToken(payload []byte, source string) string {
	var cfg nugetConfig
	if err := xml.Unmarshal(payload, &cfg); err != nil {
		return ""
	}
	for _, slot := range cfg.Credentials.Sources {
		if !strings.EqualFold(slot.XMLName.Local, xmlSafeName(source)) {
			continue
		}
		for _, entry := range slot.Entries {
			if entry.Key == "ClearTextPassword" || entry.Key == "Password" {
				if entry.Value != "" {
					return entry.Value
				}
			}
		}
	}
	return ""
}

// xmlSafeName mirrors how NuGet encodes source names into element names:
// any character invalid in an XML name becomes _xHHHH_.
func xmlSafeName(source string) string {
	var b strings.Builder
	for _, r := range source {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '.', r == '-':
			b.WriteRune(r)
		default:
			fmt.Fprintf(&b, "_x%04X_", r)
		}
	}
	return b.String()
}

// scannedToken is the positional fallback: find the line mentioning the
// source, then look a bounded number of lines below it for the password
// attribute.
func scannedToken(payload []byte, source string) string {
	lines := strings.Split(string(payload), "\n")
	for idx, line := range lines {
		if !strings.Contains(line, source) {
			continue
		}
		end := idx + fallbackWindow
		if end >= len(lines) {
			end = len(lines) - 1
		}
		for _, candidate := range lines[idx : end+1] {
			if match := passwordValuePattern.FindStringSubmatch(candidate); match != nil && match[1] != "" {
				return match[1]
			}
		}
	}
	return ""
}
