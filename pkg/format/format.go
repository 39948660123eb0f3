// Package format renders collections for the facade surface.
package format

import "strings"

// Braced joins items into the "{a,b,c}" presentation form.
// An empty collection renders as "{}".
func Braced(items []string) string {
	return "{" + strings.Join(items, ",") + "}"
}
