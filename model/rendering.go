package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock   = "██"
	gridPosNewborn = "▒▒"
	gridPosEmpty   = "  "

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering. It satisfies
// Subscriber, so it can be attached directly to a grid to repaint after
// every mutation.
type TerminalRenderer struct {
	// Out is the render target; defaults to os.Stdout.
	Out io.Writer
}

// GridChanged clears the terminal and repaints the grid.
func (r *TerminalRenderer) GridChanged(g *Grid) {
	r.Clear()
	r.Display(g)
}

// Display renders the grid to the terminal, newborn cells shaded
// lighter than established ones.
func (r *TerminalRenderer) Display(g *Grid) {
	out := r.out()
	row := -1
	for coord, cell := range g.All() {
		if coord.Row != row {
			if row >= 0 {
				fmt.Fprintln(out)
			}
			row = coord.Row
		}
		switch {
		case cell.Alive() && cell.Age() == 1:
			fmt.Fprint(out, gridPosNewborn)
		case cell.Alive():
			fmt.Fprint(out, gridPosBlock)
		default:
			fmt.Fprint(out, gridPosEmpty)
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "generation %d | population %d\n", g.Generation(), g.Population())
}

// Clear clears the terminal screen.
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}
