// Package clipboard copies text to the system clipboard, falling back to an
// OSC 52 escape when no native clipboard tool is available.
package clipboard

import (
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/andareed/popviz/logging"
)

var (
	writeNative       = clipboard.WriteAll
	nativeUnsupported = func() bool { return clipboard.Unsupported }

	terminal io.Writer = os.Stdout
)

// Copy puts text on the clipboard.
func Copy(text string) error {
	if !nativeUnsupported() {
		err := writeNative(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes", len(text))
			return nil
		}
		logging.Warnf("Clipboard: native copy failed, trying OSC52: %v", err)
	}
	return copyOSC52(terminal, os.Getenv("TERM"), text)
}
