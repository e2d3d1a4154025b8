package opener

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Opener implements ports.Opener by dispatching to the platform's
// open/reveal commands. Launched processes are detached: the TUI owns
// the terminal and must not wait on them.
type Opener struct{}

// NewOpener creates an opener for the current platform
func NewOpener() *Opener {
	return &Opener{}
}

// OpenFile launches a file with its default application.
func (o *Opener) OpenFile(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return start("open", path)
	case "linux":
		return start("xdg-open", path)
	case "windows":
		return start("cmd", "/c", "start", "", path)
	default:
		return unsupported()
	}
}

// RevealFile shows the file selected in the system file manager.
func (o *Opener) RevealFile(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return start("open", "-R", path)
	case "linux":
		// No portable select support; open the containing directory.
		return start("xdg-open", filepath.Dir(path))
	case "windows":
		return start("explorer", "/select,", path)
	default:
		return unsupported()
	}
}

// OpenDir opens a directory in the system file manager.
func (o *Opener) OpenDir(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return start("open", path)
	case "linux":
		return start("xdg-open", path)
	case "windows":
		return start("explorer", path)
	default:
		return unsupported()
	}
}

// OpenURL opens a URL in the default browser.
func (o *Opener) OpenURL(url string) error {
	return o.OpenFile(url)
}

func start(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

func unsupported() error {
	return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
}
