package render

import "fmt"

// Op identifies a surface command.
type Op int

const (
	OpClear Op = iota
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpClosePath
	OpStroke
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpBeginPath:
		return "beginPath"
	case OpMoveTo:
		return "moveTo"
	case OpLineTo:
		return "lineTo"
	case OpClosePath:
		return "closePath"
	case OpStroke:
		return "stroke"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Command is one recorded surface call. X and Y carry the point for
// moveTo and lineTo; all four fields carry the rectangle for clear.
type Command struct {
	Op         Op
	X, Y, W, H float64
}

func (c Command) String() string {
	switch c.Op {
	case OpClear:
		return fmt.Sprintf("clear(%g, %g, %g, %g)", c.X, c.Y, c.W, c.H)
	case OpMoveTo, OpLineTo:
		return fmt.Sprintf("%s(%g, %g)", c.Op, c.X, c.Y)
	default:
		return c.Op.String() + "()"
	}
}

// Recorder is a Surface that keeps every command it receives.
type Recorder struct {
	Width, Height int
	commands      []Command
}

// NewRecorder creates a recorder reporting the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Size returns the recorder size.
func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

// Clear records a clear command.
func (r *Recorder) Clear(x, y, w, h float64) {
	r.commands = append(r.commands, Command{Op: OpClear, X: x, Y: y, W: w, H: h})
}

// BeginPath records a beginPath command.
func (r *Recorder) BeginPath() { r.commands = append(r.commands, Command{Op: OpBeginPath}) }

// MoveTo records a moveTo command.
func (r *Recorder) MoveTo(x, y float64) {
	r.commands = append(r.commands, Command{Op: OpMoveTo, X: x, Y: y})
}

// LineTo records a lineTo command.
func (r *Recorder) LineTo(x, y float64) {
	r.commands = append(r.commands, Command{Op: OpLineTo, X: x, Y: y})
}

// ClosePath records a closePath command.
func (r *Recorder) ClosePath() { r.commands = append(r.commands, Command{Op: OpClosePath}) }

// Stroke records a stroke command.
func (r *Recorder) Stroke() { r.commands = append(r.commands, Command{Op: OpStroke}) }

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Count returns how many commands with the given op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}
