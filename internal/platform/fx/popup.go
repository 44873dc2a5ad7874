// Package fx holds small frame-driven effects shared by the drivers. Effects
// are advanced by the caller with the frame time in seconds; nothing here
// draws.
package fx

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Popup timing.
const (
	PopupDuration = 0.8 // Seconds
	PopupRise     = 48  // Arena pixels
)

// Popup is a short text that floats up and fades out, such as "+5s".
type Popup struct {
	Text string
	X, Y float32 // Starting position

	rise   *gween.Tween
	fade   *gween.Tween
	offset float32
	alpha  float32
	Done   bool
}

// NewPopup creates a popup at the given position.
func NewPopup(text string, x, y float32) *Popup {
	return &Popup{
		Text:  text,
		X:     x,
		Y:     y,
		rise:  gween.New(0, -PopupRise, PopupDuration, ease.OutQuad),
		fade:  gween.New(1, 0, PopupDuration, ease.InQuad),
		alpha: 1,
	}
}

// Update advances the popup by dt seconds.
func (p *Popup) Update(dt float32) {
	if p.Done {
		return
	}
	off, riseDone := p.rise.Update(dt)
	alpha, fadeDone := p.fade.Update(dt)
	p.offset = off
	p.alpha = alpha
	p.Done = riseDone && fadeDone
}

// Pos returns the current position.
func (p *Popup) Pos() (x, y float32) {
	return p.X, p.Y + p.offset
}

// Alpha returns the current opacity in [0, 1].
func (p *Popup) Alpha() float32 {
	return min(max(p.alpha, 0), 1)
}

// Popups is a set of live popups. Finished popups are dropped on Update.
type Popups struct {
	items []*Popup
}

// Add starts a new popup.
func (ps *Popups) Add(p *Popup) {
	ps.items = append(ps.items, p)
}

// Update advances every popup and drops the finished ones.
func (ps *Popups) Update(dt float32) {
	live := ps.items[:0]
	for _, p := range ps.items {
		p.Update(dt)
		if !p.Done {
			live = append(live, p)
		}
	}
	// Release dropped popups
	for i := len(live); i < len(ps.items); i++ {
		ps.items[i] = nil
	}
	ps.items = live
}

// Items returns the live popups in creation order.
func (ps *Popups) Items() []*Popup {
	return ps.items
}

// Clear drops every popup.
func (ps *Popups) Clear() {
	ps.items = nil
}
