// Package version holds build metadata, set with
// -ldflags "-X github.com/SunceWallet/txrep/pkg/version.Version=v1.2.3".
package version

var (
	Version = "dev"
	Commit  = "none"
)
