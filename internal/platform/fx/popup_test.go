package fx

import "testing"

func TestPopupRisesAndFades(t *testing.T) {
	p := NewPopup("+5s", 100, 200)

	x, y := p.Pos()
	if x != 100 || y != 200 || p.Alpha() != 1 {
		t.Fatalf("initial pos (%v, %v) alpha %v", x, y, p.Alpha())
	}

	p.Update(PopupDuration / 2)
	_, mid := p.Pos()
	if mid >= 200 || mid <= 200-PopupRise {
		t.Errorf("mid-way y = %v, expected between %v and 200", mid, 200-PopupRise)
	}
	if a := p.Alpha(); a <= 0 || a >= 1 {
		t.Errorf("mid-way alpha = %v", a)
	}
	if p.Done {
		t.Error("popup finished early")
	}

	p.Update(PopupDuration)
	if !p.Done {
		t.Fatal("popup should be done")
	}
	if _, end := p.Pos(); end != 200-PopupRise {
		t.Errorf("final y = %v, expected %v", end, 200-PopupRise)
	}
	if p.Alpha() != 0 {
		t.Errorf("final alpha = %v", p.Alpha())
	}
}

func TestPopupsDropFinished(t *testing.T) {
	var ps Popups
	ps.Add(NewPopup("+5s", 0, 0))
	ps.Update(PopupDuration / 2)
	ps.Add(NewPopup("+5s", 10, 10))

	ps.Update(PopupDuration/2 + 0.01)
	items := ps.Items()
	if len(items) != 1 || items[0].X != 10 {
		t.Fatalf("live popups = %d", len(items))
	}

	ps.Update(PopupDuration)
	if len(ps.Items()) != 0 {
		t.Errorf("live popups = %d, expected 0", len(ps.Items()))
	}

	ps.Add(NewPopup("+5s", 0, 0))
	ps.Clear()
	if len(ps.Items()) != 0 {
		t.Error("Clear left popups behind")
	}
}
