package version

// Version is set at build time with
// -ldflags "-X github.com/0xa1bed0/dli/internal/version.Version=v1.2.3".
var Version = "dev"

func Get() string {
	return Version
}
