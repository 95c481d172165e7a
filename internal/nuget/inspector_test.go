// Where: internal/nuget/inspector_test.go
// What: Tests for the token read path.
// Why: Both extraction strategies and the not-found contract are load-bearing.
package nuget

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/catr-tool/catr/internal/ports"
)

const wellFormedConfig = `<?xml version="1.0" encoding="utf-8"?>
<configuration>
  <packageSources>
    <add key="nuget.org" value="https://api.nuget.org/v3/index.json" />
    <add key="codeartifact" value="https://corp-packages-123456789012.d.codeartifact.eu-west-1.amazonaws.com/nuget/corp/v3/index.json" />
  </packageSources>
  <packageSourceCredentials>
    <codeartifact>
      <add key="Username" value="aws" />
      <add key="ClearTextPassword" value="abc123" />
    </codeartifact>
  </packageSourceCredentials>
</configuration>
`

// Broken closing tag defeats the XML decoder, forcing the line scan. The
// password sits within the 5-line window below the source marker.
const malformedConfig = `<configuration>
  <packageSourceCredentials>
    <codeartifact>
      <add key="Username" value="aws" />
      <add key="ClearTextPassword" value="abc123" />
    </codeartifact>
  </packageSourceCredentials>
</configuration
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "NuGet.Config")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestCurrentTokenStructured(t *testing.T) {
	inspector := NewInspector(writeConfig(t, wellFormedConfig), "codeartifact")

	token, err := inspector.CurrentToken()
	if err != nil {
		t.Fatalf("current token: %v", err)
	}
	if token != "abc123" {
		t.Fatalf("unexpected token: %q", token)
	}
}

func TestCurrentTokenFallbackScan(t *testing.T) {
	inspector := NewInspector(writeConfig(t, malformedConfig), "codeartifact")

	token, err := inspector.CurrentToken()
	if err != nil {
		t.Fatalf("current token: %v", err)
	}
	if token != "abc123" {
		t.Fatalf("unexpected token: %q", token)
	}
}

func TestCurrentTokenOutsideWindow(t *testing.T) {
	content := `<configuration>
  <codeartifact>
    <!-- a -->
    <!-- b -->
    <!-- c -->
    <!-- d -->
    <!-- e -->
    <add key="ClearTextPassword" value="abc123" />
  </codeartifact>
</configuration
`
	inspector := NewInspector(writeConfig(t, content), "codeartifact")

	if _, err := inspector.CurrentToken(); !errors.Is(err, ports.ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestCurrentTokenMissingFile(t *testing.T) {
	inspector := NewInspector(filepath.Join(t.TempDir(), "missing", "NuGet.Config"), "codeartifact")

	if _, err := inspector.CurrentToken(); !errors.Is(err, ports.ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestCurrentTokenSlotAbsent(t *testing.T) {
	content := `<?xml version="1.0"?>
<configuration>
  <packageSources>
    <add key="nuget.org" value="https://api.nuget.org/v3/index.json" />
  </packageSources>
</configuration>
`
	inspector := NewInspector(writeConfig(t, content), "codeartifact")

	if _, err := inspector.CurrentToken(); !errors.Is(err, ports.ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestXMLSafeNameEncoding(t *testing.T) {
	cases := map[string]string{
		"codeartifact": "codeartifact",
		"corp feed":    "corp_x0020_feed",
		"a.b-c_d":      "a.b-c_d",
	}
	for in, want := range cases {
		if got := xmlSafeName(in); got != want {
			t.Fatalf("xmlSafeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStructuredTokenEncodedSourceName(t *testing.T) {
	content := `<?xml version="1.0"?>
<configuration>
  <packageSourceCredentials>
    <corp_x0020_feed>
      <add key="Username" value="aws" />
      <add key="ClearTextPassword" value="abc123" />
    </corp_x0020_feed>
  </packageSourceCredentials>
</configuration>
`
	inspector := NewInspector(writeConfig(t, content), "corp feed")

	token, err := inspector.CurrentToken()
	if err != nil {
		t.Fatalf("current token: %v", err)
	}
	if token != "abc123" {
		t.Fatalf("unexpected token: %q", token)
	}
}
