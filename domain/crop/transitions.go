package crop

import (
	"fmt"
	"math"
)

// Notices published by the transitions.
const (
	NoticeEntered   = "Crop mode activated. Click and drag to select area to crop."
	NoticeSelecting = "Selecting crop area..."
	NoticeTooSmall  = "Selection too small. Try again."
	NoticeCancelled = "Crop cancelled."
	NoticeDone      = "Photo cropped successfully!"
)

// Enter activates crop mode. No selection exists afterwards.
func Enter(s State) State {
	return State{Active: true, Notice: NoticeEntered}
}

// DragStart records the anchor relative to the container origin and starts a
// zero-size live rectangle there. Ignored unless crop mode is active.
func DragStart(s State, pointer Point, container Rect) State {
	if !s.Active {
		return s
	}
	anchor := pointer.Sub(container.Origin())
	s.Dragging = true
	s.Anchor = anchor
	s.Live = Rect{Left: anchor.X, Top: anchor.Y}
	s.LiveVisible = true
	s.Selection = nil
	s.Notice = NoticeSelecting
	return s
}

// DragMove updates the live rectangle from the anchor to the pointer.
func DragMove(s State, pointer Point, container Rect) State {
	if !s.Active || !s.Dragging {
		return s
	}
	s.Live = RectFromPoints(s.Anchor, pointer.Sub(container.Origin()))
	return s
}

// DragEnd finishes a drag. The live rectangle is taken back to on-screen
// coordinates and, when both sides exceed minSize, committed as a selection
// relative to the image's rendered origin. Dragging is always cleared.
func DragEnd(s State, container, image Rect, minSize float64) State {
	if !s.Active || !s.Dragging {
		return s
	}
	s.Dragging = false
	onScreen := s.Live.Translate(container.Left, container.Top)
	if onScreen.Width > minSize && onScreen.Height > minSize {
		sel := onScreen.Translate(-image.Left, -image.Top)
		s.Selection = &sel
		s.Notice = fmt.Sprintf("Crop area selected: %dx%dpx. Click \"Finish Crop\" to apply.",
			int(math.Round(onScreen.Width)), int(math.Round(onScreen.Height)))
		return s
	}
	s.LiveVisible = false
	s.Selection = nil
	s.Notice = NoticeTooSmall
	return s
}

// Cancel leaves crop mode and clears every affordance. The image itself is
// never touched while selecting, so there is nothing to restore.
func Cancel(s State) State {
	if !s.Active {
		return s
	}
	return State{Notice: NoticeCancelled}
}

// Leave clears crop state after a successful finish.
func Leave(s State) State {
	return State{Notice: NoticeDone}
}
