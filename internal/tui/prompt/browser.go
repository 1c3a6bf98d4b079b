package prompt

import (
	"os/exec"
	"runtime"
)

// Navigator sends the user to url outside the client.
type Navigator func(url string) error

// OpenBrowser opens url in the system browser.
func OpenBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
