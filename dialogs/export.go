package dialogs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/popviz/logging"
)

type (
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
	ExportErrorMsg     struct{ Err error }
	ExportOKMsg        struct{ Path string }
)

// Extensions are the file types the export dialog accepts.
var Extensions = []string{".csv", ".xlsx", ".png", ".geojson", ".json"}

type Export struct {
	input   textinput.Model
	visible bool
	errMsg  string
	// relative names are placed here
	lastDir string
}

func (d *Export) Init() tea.Cmd { return d.Focus() }

func NewExportDialog(defaultName, lastDir string) *Export {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = "Export as: "
	ti.CharLimit = 256
	ti.Width = dialogWidth - 10
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	return &Export{input: ti, visible: true, lastDir: lastDir}
}

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path, err := d.resolve()
			if err != nil {
				d.errMsg = err.Error()
				return d, nil
			}
			logging.Debugf("ExportDialog: confirmed %s", path)
			d.Hide()
			return d, func() tea.Msg { return ExportConfirmedMsg{Path: path} }
		case "esc":
			logging.Debugf("ExportDialog: canceled")
			d.Hide()
			return d, func() tea.Msg { return ExportCanceledMsg{} }
		}
	}
	d.errMsg = ""
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// resolve turns the typed name into a path, falling back to the placeholder
// when blank.
func (d *Export) resolve() (string, error) {
	path := strings.TrimSpace(d.input.Value())
	if path == "" {
		path = d.input.Placeholder
	}
	if path == "" {
		return "", fmt.Errorf("enter a file name")
	}
	if !knownExtension(path) {
		return "", fmt.Errorf("unknown extension %q (use %s)", filepath.Ext(path), strings.Join(Extensions, " "))
	}
	if d.lastDir != "" && !filepath.IsAbs(path) && filepath.Dir(path) == "." {
		path = filepath.Join(d.lastDir, path)
	}
	return path, nil
}

func knownExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

func (d Export) View() string {
	if !d.visible {
		return ""
	}
	body := d.input.View()
	if d.errMsg != "" {
		body += "\n" + errStyle.Render(d.errMsg)
	}
	body += "\n\n" + hintStyle.Render("table: .csv .xlsx   chart: .png   map: .geojson")
	return box("Export", body, "enter to export • esc to cancel")
}

func (d *Export) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Export) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Export) Focus() tea.Cmd { return d.input.Focus() }
func (d *Export) Blur()          { d.input.Blur() }
func (d Export) IsVisible() bool { return d.visible }
