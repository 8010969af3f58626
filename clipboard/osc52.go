package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/andareed/popviz/logging"
)

// ErrUnavailable is returned when neither a native clipboard nor OSC 52 can
// be used.
var ErrUnavailable = errors.New("clipboard unavailable (OSC52 unsupported by terminal)")

func copyOSC52(w io.Writer, term, text string) error {
	if !osc52Supported(w, term) {
		logging.Warnf("Clipboard: OSC52 unavailable (not a TTY or TERM=%q)", term)
		return ErrUnavailable
	}

	if _, err := osc52.New(text).WriteTo(w); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

// osc52Supported accepts any writer that is not a file, so tests and piped
// terminals can receive the sequence.
func osc52Supported(w io.Writer, term string) bool {
	if term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	return isTTY(f)
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
