package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
)

// writer is the hidden clipboard-owning context the bridge creates on
// demand. On a desktop OS that means shelling out to the platform tool;
// each write spawns one short-lived process.
type writer interface {
	write(text string) error
}

type execWriter struct {
	name string
	args []string
}

// newPlatformWriter locates the platform clipboard tool. Failure here is
// the real-world analog of offscreen-document creation failing.
func newPlatformWriter() (writer, error) {
	switch runtime.GOOS {
	case "darwin":
		return &execWriter{name: "pbcopy"}, nil
	case "linux":
		for _, cand := range [][]string{
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
			{"wl-copy"},
		} {
			if _, err := exec.LookPath(cand[0]); err == nil {
				return &execWriter{name: cand[0], args: cand[1:]}, nil
			}
		}
		return nil, fmt.Errorf("no clipboard tool found (tried xclip, xsel, wl-copy)")
	case "windows":
		return &execWriter{name: "clip"}, nil
	default:
		return nil, fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}
}

func (w *execWriter) write(text string) error {
	cmd := exec.Command(w.name, w.args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("clipboard pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("clipboard start: %w", err)
	}
	if _, err := stdin.Write([]byte(text)); err != nil {
		_ = stdin.Close()
		return fmt.Errorf("clipboard write: %w", err)
	}
	_ = stdin.Close()
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

// Copy writes text to the system clipboard synchronously. It is the direct
// path for surfaces that have clipboard authority of their own (the CLI);
// the background surface must go through a Bridge instead.
func Copy(text string) error {
	w, err := newPlatformWriter()
	if err != nil {
		return err
	}
	return w.write(text)
}
