package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/osse101/PortalQuest_Go/internal/domain"
)

// Stamped by the linker, e.g.
// -ldflags "-X github.com/osse101/PortalQuest_Go/internal/handler.Version=v1.4.0"
var (
	Version string
	Commit  string
	BuiltAt string
)

const (
	// EnvVersion names the deploy's version when the binary is unstamped
	EnvVersion = "PORTALQUEST_VERSION"
	DevVersion = "dev"
)

// BuildInfo identifies the running server and how long it keeps idle saves
type BuildInfo struct {
	Version    string `json:"version"`
	Commit     string `json:"commit,omitempty"`
	BuiltAt    string `json:"built_at,omitempty"`
	GoVersion  string `json:"go_version"`
	SaveMaxAge string `json:"save_max_age"`
}

// HandleVersion reports the build, resolved once when the route is mounted
func HandleVersion() http.HandlerFunc {
	info := currentBuild()
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

// currentBuild prefers linker stamps, then $PORTALQUEST_VERSION, then the
// module and VCS data the toolchain embedded.
func currentBuild() BuildInfo {
	info := BuildInfo{
		Version:    Version,
		Commit:     Commit,
		BuiltAt:    BuiltAt,
		GoVersion:  runtime.Version(),
		SaveMaxAge: domain.StaleSaveAge.String(),
	}
	if info.Version == "" {
		info.Version = os.Getenv(EnvVersion)
	}

	bi, ok := debug.ReadBuildInfo()
	if ok {
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = setting.Value
				}
			case "vcs.time":
				if info.BuiltAt == "" {
					info.BuiltAt = setting.Value
				}
			}
		}
	}
	if info.Version == "" {
		info.Version = DevVersion
	}
	return info
}
