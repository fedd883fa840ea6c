package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/paint"
)

// run executes a stroke script against e. Each non-blank line holds one
// command. A line starting with '#' is a comment, as is everything from a
// lone "#" word to the end of a line; "#rrggbb" arguments are kept.
func run(e *paint.Engine, r io.Reader) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := stripComment(strings.Fields(sc.Text()))
		if len(fields) == 0 {
			continue
		}
		if err := exec(e, fields[0], fields[1:]); err != nil {
			return fmt.Errorf("line %d: %s: %w", line, fields[0], err)
		}
	}
	return sc.Err()
}

func stripComment(fields []string) []string {
	for i, f := range fields {
		if f == "#" || (i == 0 && strings.HasPrefix(f, "#")) {
			return fields[:i]
		}
	}
	return fields
}

var errArgs = errors.New("wrong number of arguments")

func exec(e *paint.Engine, cmd string, args []string) error {
	want := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%w: got %d, want %d", errArgs, len(args), n)
		}
		return nil
	}

	switch cmd {
	case "tool":
		if err := want(1); err != nil {
			return err
		}
		t, err := paint.ParseTool(args[0])
		if err != nil {
			return err
		}
		return e.SetTool(t)

	case "size":
		if err := want(1); err != nil {
			return err
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		e.SetBrushSize(n)

	case "mirror":
		if err := want(1); err != nil {
			return err
		}
		switch args[0] {
		case "on":
			e.SetMirrorMode(true)
		case "off":
			e.SetMirrorMode(false)
		default:
			return fmt.Errorf("want on or off, got %q", args[0])
		}

	case "color":
		if err := want(1); err != nil {
			return err
		}
		c, err := paint.ParseColor(args[0])
		if err != nil {
			return err
		}
		e.SetBrushColor(c)

	case "fillcolor":
		if err := want(1); err != nil {
			return err
		}
		n, err := strconv.ParseUint(args[0], 10, 8)
		if err != nil {
			return err
		}
		e.SetFloodFillColor(uint8(n))

	case "text":
		if len(args) < 2 {
			return fmt.Errorf("%w: want SIZE WORDS", errArgs)
		}
		size, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return err
		}
		src, err := paint.NewTextStencilSource(strings.Join(args[1:], " "), size, e.Config().BrushColor)
		if err != nil {
			return err
		}
		return e.SetStampStencil(src, 1, 0)

	case "begin", "move":
		if err := want(2); err != nil {
			return err
		}
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		y, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		if cmd == "begin" {
			e.StrokeBegin(x, y)
		} else {
			e.StrokeMove(x, y)
		}

	case "end":
		return e.StrokeEnd()

	case "cancel":
		e.CancelStroke()

	case "undo":
		_, err := e.Undo()
		return err

	case "redo":
		_, err := e.Redo()
		return err

	case "clear":
		return e.Clear()

	case "black":
		return e.ClearToBlack()

	default:
		return errors.New("unknown command")
	}
	return nil
}
