package clickpack

import "fmt"

// Button identifies the host input that produced an event
type Button uint8

const (
	ButtonJump Button = iota + 1
	ButtonLeft
	ButtonRight
)

// ButtonFromU8 converts the host's numeric button code (1..=3)
func ButtonFromU8(b uint8) (Button, error) {
	switch Button(b) {
	case ButtonJump, ButtonLeft, ButtonRight:
		return Button(b), nil
	default:
		return 0, fmt.Errorf("%w: %d, expected 1..=3", ErrInvalidButton, b)
	}
}

// IsPlatformer reports whether the button is a horizontal movement button
func (b Button) IsPlatformer() bool {
	return b == ButtonLeft || b == ButtonRight
}

func (b Button) String() string {
	switch b {
	case ButtonJump:
		return "jump"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	default:
		return fmt.Sprintf("button(%d)", uint8(b))
	}
}
