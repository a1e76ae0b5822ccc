// Package static holds the stylesheet and the modal script served under
// /static/.
package static

import "embed"

//go:embed *.css *.js
var FS embed.FS
