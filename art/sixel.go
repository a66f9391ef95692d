package art

import (
	"io"
	"os/exec"
)

// Viewer displays saved illustrations inline via an external
// sixel-capable renderer. Best-effort throughout: a missing renderer or
// a failed invocation is absorbed, never surfaced.
type Viewer struct {
	out      io.Writer
	height   int
	disabled bool
}

// NewViewer creates a viewer writing the sixel stream to out. Images are
// resized to height pixels before display.
func NewViewer(out io.Writer, height int, disabled bool) *Viewer {
	return &Viewer{out: out, height: height, disabled: disabled}
}

// Display renders the image at path inline. Reports whether display was
// attempted.
func (v *Viewer) Display(path string) bool {
	if v.disabled {
		return false
	}
	bin, err := exec.LookPath("img2sixel")
	if err != nil {
		return false
	}

	target := ResizeToHeight(path, v.height)

	cmd := exec.Command(bin, target)
	cmd.Stdout = v.out
	if err := cmd.Run(); err != nil {
		return false
	}
	return true
}
