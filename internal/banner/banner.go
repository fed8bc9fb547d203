// Package banner renders the startup banner.
package banner

import "fmt"

// Banner returns the banner printed to stderr on startup.
func Banner(version string) string {
	return fmt.Sprintf(`
  connalign %s
  bootstrapping discourse connectives from parallel text

`, version)
}
