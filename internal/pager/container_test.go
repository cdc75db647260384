package pager

import (
	"fmt"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// spyScreen records lifecycle traffic into a shared event log so tests can
// assert both state and ordering.
type spyScreen struct {
	id      string
	frame   Rect
	clipped bool
	owner   *Container

	attaches int
	detaches int
	log      *[]string
}

func newSpy(id string, log *[]string) *spyScreen {
	return &spyScreen{id: id, log: log}
}

func (s *spyScreen) ID() string    { return s.id }
func (s *spyScreen) Title() string { return "Screen " + s.id }

func (s *spyScreen) OnAttach(owner *Container) {
	s.owner = owner
	s.attaches++
	s.record("attach:" + s.id)
}

func (s *spyScreen) OnDetach() {
	s.owner = nil
	s.detaches++
	s.record("detach:" + s.id)
}

func (s *spyScreen) SetFrame(r Rect) {
	s.frame = r
	s.record("frame:" + s.id)
}

func (s *spyScreen) Frame() Rect       { return s.frame }
func (s *spyScreen) SetClipped(v bool) { s.clipped = v }

func (s *spyScreen) record(event string) {
	if s.log != nil {
		*s.log = append(*s.log, event)
	}
}

type fakeBar struct {
	items     []*TabItem
	activated func(*TabItem)
	selected  int
	visible   bool
	frame     Rect

	setItemsCalls int
}

func (b *fakeBar) SetItems(items []*TabItem)      { b.items = items; b.setItemsCalls++ }
func (b *fakeBar) Items() []*TabItem              { return b.items }
func (b *fakeBar) SetActivated(fn func(*TabItem)) { b.activated = fn }
func (b *fakeBar) SetSelected(i int)              { b.selected = i }
func (b *fakeBar) SetVisible(v bool)              { b.visible = v }
func (b *fakeBar) Visible() bool                  { return b.visible }
func (b *fakeBar) ContentHeight() int             { return 2 }
func (b *fakeBar) Insets() (int, int)             { return 0, 1 }
func (b *fakeBar) SetFrame(r Rect)                { b.frame = r }

func (b *fakeBar) tap(i int) {
	if b.activated != nil && i >= 0 && i < len(b.items) {
		b.activated(b.items[i])
	}
}

type fakeScroll struct {
	frame       Rect
	contentSize Size
	offset      Point
	bounce      bool
	paging      bool

	dragBegan  func()
	decelEnded func()

	offsetWrites int
}

func (s *fakeScroll) SetFrame(r Rect)                { s.frame = r }
func (s *fakeScroll) Frame() Rect                    { return s.frame }
func (s *fakeScroll) SetContentSize(size Size)       { s.contentSize = size }
func (s *fakeScroll) ContentSize() Size              { return s.contentSize }
func (s *fakeScroll) SetOffset(p Point)              { s.offset = p; s.offsetWrites++ }
func (s *fakeScroll) Offset() Point                  { return s.offset }
func (s *fakeScroll) SetBounceEnabled(v bool)        { s.bounce = v }
func (s *fakeScroll) BounceEnabled() bool            { return s.bounce }
func (s *fakeScroll) SetPagingEnabled(bool)          {}
func (s *fakeScroll) SetDragBegan(fn func())         { s.dragBegan = fn }
func (s *fakeScroll) SetDecelerationEnded(fn func()) { s.decelEnded = fn }

// swipe simulates a full pan gesture that settles at the given offset.
func (s *fakeScroll) swipe(finalX int) {
	if s.dragBegan != nil {
		s.dragBegan()
	}
	s.offset = Point{X: finalX}
	if s.decelEnded != nil {
		s.decelEnded()
	}
}

func newTestContainer(t *testing.T, count int, opts ...Option) (*Container, *fakeScroll, *fakeBar, []*spyScreen, *[]string) {
	t.Helper()
	log := &[]string{}
	screens := make([]Screen, count)
	spies := make([]*spyScreen, count)
	for i := range screens {
		spies[i] = newSpy(fmt.Sprintf("s%d", i), log)
		screens[i] = spies[i]
	}
	scroll := &fakeScroll{}
	bar := &fakeBar{}
	c := New(scroll, bar, screens, opts...)
	c.Layout(Rect{Width: 80, Height: 24})
	return c, scroll, bar, spies, log
}

func attachedIDs(c *Container) []string {
	out := []string{}
	for _, s := range c.AttachedScreens() {
		out = append(out, s.ID())
	}
	return out
}

func windowIDs(selected, count int) []string {
	win := Window(selected, count, windowSize)
	out := []string{}
	for _, i := range win {
		out = append(out, fmt.Sprintf("s%d", i))
	}
	sort.Strings(out)
	return out
}

func TestContainerInitialMaterialization(t *testing.T) {
	c, _, bar, spies, _ := newTestContainer(t, 5)

	if got := attachedIDs(c); !cmp.Equal(got, []string{"s0", "s1", "s2"}) {
		t.Errorf("attached after init = %v, want [s0 s1 s2]", got)
	}
	if len(bar.items) != 5 {
		t.Errorf("bar item count = %d, want 5", len(bar.items))
	}
	for i, spy := range spies[:3] {
		if spy.owner != c {
			t.Errorf("screen %d owner not set on attach", i)
		}
		if !spy.clipped {
			t.Errorf("screen %d not clipped on attach", i)
		}
	}
	if spies[3].attaches != 0 || spies[4].attaches != 0 {
		t.Error("screens outside the window were materialized")
	}
}

// After any sequence of selections, the attached set must equal the window
// of the current selection exactly.
func TestSelectionConservation(t *testing.T) {
	c, _, _, _, _ := newTestContainer(t, 7)

	sequence := []int{3, 6, 0, 5, 5, 2, 1, 6}
	for _, next := range sequence {
		c.Select(next)

		got := attachedIDs(c)
		sort.Strings(got)
		want := windowIDs(c.SelectedIndex(), 7)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("after Select(%d): attached mismatch (-want +got):\n%s", next, diff)
		}
	}
}

func TestSelectSameIndexIsNoOp(t *testing.T) {
	c, scroll, bar, spies, log := newTestContainer(t, 4)

	itemsBefore := bar.setItemsCalls
	offsetsBefore := scroll.offsetWrites
	logBefore := len(*log)

	c.Select(c.SelectedIndex())

	if bar.setItemsCalls != itemsBefore {
		t.Error("same-index selection rebuilt the tab bar")
	}
	if scroll.offsetWrites != offsetsBefore {
		t.Error("same-index selection rewrote the scroll offset")
	}
	if len(*log) != logBefore {
		t.Errorf("same-index selection produced lifecycle events: %v", (*log)[logBefore:])
	}
	for i, spy := range spies {
		if spy.detaches != 0 {
			t.Errorf("screen %d detached by no-op selection", i)
		}
	}
}

func TestOutOfRangeSelectionIgnored(t *testing.T) {
	c, _, _, _, log := newTestContainer(t, 3)
	before := len(*log)

	c.Select(-1)
	c.Select(3)
	c.Select(100)

	if c.SelectedIndex() != 0 {
		t.Errorf("selected = %d, want 0 after out-of-range selections", c.SelectedIndex())
	}
	if len(*log) != before {
		t.Errorf("out-of-range selection produced events: %v", (*log)[before:])
	}
}

func TestOffsetAndContentFormulas(t *testing.T) {
	c, scroll, _, _, _ := newTestContainer(t, 5)

	pageW := scroll.Frame().Width
	if pageW != 80 {
		t.Fatalf("page width = %d, want 80", pageW)
	}

	for _, idx := range []int{2, 4, 0} {
		c.Select(idx)
		if got := scroll.Offset().X; got != pageW*idx {
			t.Errorf("offset after Select(%d) = %d, want %d", idx, got, pageW*idx)
		}
		if got := scroll.ContentSize().Width; got != pageW*5 {
			t.Errorf("content width = %d, want %d", got, pageW*5)
		}
	}
}

func TestIndexAbsolutePositioning(t *testing.T) {
	c, scroll, _, spies, _ := newTestContainer(t, 5)
	c.Select(3)

	pageW := scroll.Frame().Width
	pageH := scroll.Frame().Height
	for _, i := range []int{2, 3, 4} {
		want := Rect{X: i * pageW, Y: 0, Width: pageW, Height: pageH}
		if diff := cmp.Diff(want, spies[i].frame); diff != "" {
			t.Errorf("screen %d frame mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestDetachPrecedesReposition(t *testing.T) {
	c, _, _, _, log := newTestContainer(t, 5)
	*log = (*log)[:0]
	c.Select(4)

	lastDetach, firstFrame := -1, -1
	for i, event := range *log {
		if len(event) > 6 && event[:6] == "detach" && i > lastDetach {
			lastDetach = i
		}
		if len(event) > 5 && event[:5] == "frame" && firstFrame == -1 {
			firstFrame = i
		}
	}
	if lastDetach == -1 || firstFrame == -1 {
		t.Fatalf("expected both detach and frame events, got %v", *log)
	}
	if lastDetach > firstFrame {
		t.Errorf("repositioning started before detach completed: %v", *log)
	}
}

func TestSwipeAdvancesSelection(t *testing.T) {
	c, scroll, _, _, _ := newTestContainer(t, 5)
	pageW := scroll.Frame().Width

	scroll.swipe(pageW)
	if c.SelectedIndex() != 1 {
		t.Errorf("selected = %d after forward swipe, want 1", c.SelectedIndex())
	}

	scroll.swipe(0)
	if c.SelectedIndex() != 0 {
		t.Errorf("selected = %d after backward swipe, want 0", c.SelectedIndex())
	}
}

func TestSwipeWithoutMovementIgnored(t *testing.T) {
	c, scroll, _, _, _ := newTestContainer(t, 5)

	scroll.swipe(scroll.Offset().X)
	if c.SelectedIndex() != 0 {
		t.Errorf("selected = %d after stationary swipe, want 0", c.SelectedIndex())
	}
}

func TestSwipePastEdgeIgnored(t *testing.T) {
	c, scroll, _, _, _ := newTestContainer(t, 3)
	pageW := scroll.Frame().Width

	scroll.swipe(-pageW)
	if c.SelectedIndex() != 0 {
		t.Errorf("selected = %d after swipe past left edge, want 0", c.SelectedIndex())
	}

	c.Select(2)
	scroll.swipe(3 * pageW)
	if c.SelectedIndex() != 2 {
		t.Errorf("selected = %d after swipe past right edge, want 2", c.SelectedIndex())
	}
}

func TestTabActivation(t *testing.T) {
	c, _, bar, _, _ := newTestContainer(t, 4)

	bar.tap(2)
	if c.SelectedIndex() != 2 {
		t.Errorf("selected = %d after tab tap, want 2", c.SelectedIndex())
	}
	if bar.selected != 2 {
		t.Errorf("bar selected = %d, want 2", bar.selected)
	}
}

func TestUnknownTabItemIgnored(t *testing.T) {
	c, _, bar, _, _ := newTestContainer(t, 4)

	bar.activated(&TabItem{Title: "stranger"})
	if c.SelectedIndex() != 0 {
		t.Errorf("selected = %d after unknown item activation, want 0", c.SelectedIndex())
	}
}

func TestEmptyContainer(t *testing.T) {
	scroll := &fakeScroll{}
	bar := &fakeBar{visible: true}
	c := New(scroll, bar, nil)
	c.Layout(Rect{Width: 80, Height: 24})

	if len(c.AttachedScreens()) != 0 {
		t.Error("empty container materialized screens")
	}
	if bar.items != nil {
		t.Errorf("bar items = %v, want nil", bar.items)
	}
	if bar.visible {
		t.Error("bar still visible with zero screens")
	}
	if c.SelectedScreen() != nil {
		t.Error("SelectedScreen() != nil for empty container")
	}
}

func TestSingletonContainer(t *testing.T) {
	c, _, bar, spies, _ := newTestContainer(t, 1)

	if got := attachedIDs(c); !cmp.Equal(got, []string{"s0"}) {
		t.Errorf("attached = %v, want [s0]", got)
	}
	if len(bar.items) != 1 {
		t.Errorf("bar item count = %d, want 1", len(bar.items))
	}
	if spies[0].attaches != 1 {
		t.Errorf("attach count = %d, want 1", spies[0].attaches)
	}
}

func TestInitialIndexOption(t *testing.T) {
	c, scroll, _, _, _ := newTestContainer(t, 5, WithInitialIndex(4))

	if c.SelectedIndex() != 4 {
		t.Fatalf("selected = %d, want 4", c.SelectedIndex())
	}
	got := attachedIDs(c)
	sort.Strings(got)
	if diff := cmp.Diff([]string{"s2", "s3", "s4"}, got); diff != "" {
		t.Errorf("attached mismatch (-want +got):\n%s", diff)
	}
	if want := scroll.Frame().Width * 4; scroll.Offset().X != want {
		t.Errorf("offset = %d, want %d", scroll.Offset().X, want)
	}
}

func TestInitialIndexOutOfRangeFallsBack(t *testing.T) {
	c, _, _, _, _ := newTestContainer(t, 3, WithInitialIndex(9))
	if c.SelectedIndex() != 0 {
		t.Errorf("selected = %d, want 0", c.SelectedIndex())
	}
}

func TestSetScreensTearsDownAndRebuilds(t *testing.T) {
	c, _, bar, spies, _ := newTestContainer(t, 5)
	c.Select(4)

	log := &[]string{}
	replacement := []Screen{newSpy("r0", log), newSpy("r1", log)}
	c.SetScreens(replacement)

	for i, spy := range spies {
		if spy.owner != nil {
			t.Errorf("old screen %d still owned after replacement", i)
		}
	}
	if c.SelectedIndex() != 0 {
		t.Errorf("selected = %d after replacement, want 0", c.SelectedIndex())
	}
	if got := attachedIDs(c); !cmp.Equal(got, []string{"r0", "r1"}) {
		t.Errorf("attached = %v, want [r0 r1]", got)
	}
	if len(bar.items) != 2 {
		t.Errorf("bar item count = %d, want 2", len(bar.items))
	}
}

func TestBounceDelegatesToSurface(t *testing.T) {
	c, scroll, _, _, _ := newTestContainer(t, 2)

	c.SetBounceEnabled(true)
	if !scroll.bounce {
		t.Error("bounce not delegated to surface")
	}
	if !c.BounceEnabled() {
		t.Error("BounceEnabled() = false, want true")
	}
	c.SetBounceEnabled(false)
	if scroll.bounce {
		t.Error("bounce not cleared on surface")
	}
}

func TestLayoutAlignments(t *testing.T) {
	bounds := Rect{Width: 80, Height: 24}
	// fakeBar reserves 3 rows: 2 content + 1 bottom inset.
	const reserved = 3

	tests := []struct {
		name       string
		align      Alignment
		wantBar    Rect
		wantScroll Rect
		barVisible bool
	}{
		{"top", AlignTop,
			Rect{X: 0, Y: 0, Width: 80, Height: reserved},
			Rect{X: 0, Y: reserved, Width: 80, Height: 24 - reserved},
			true},
		{"bottom", AlignBottom,
			Rect{X: 0, Y: 24 - reserved, Width: 80, Height: reserved},
			Rect{X: 0, Y: 0, Width: 80, Height: 24 - reserved},
			true},
		{"hidden", AlignHidden,
			Rect{},
			bounds,
			false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scroll := &fakeScroll{}
			bar := &fakeBar{}
			log := &[]string{}
			c := New(scroll, bar, []Screen{newSpy("a", log), newSpy("b", log)},
				WithAlignment(tc.align))
			c.Layout(bounds)

			if diff := cmp.Diff(tc.wantScroll, scroll.Frame()); diff != "" {
				t.Errorf("scroll frame mismatch (-want +got):\n%s", diff)
			}
			if tc.barVisible {
				if diff := cmp.Diff(tc.wantBar, bar.frame); diff != "" {
					t.Errorf("bar frame mismatch (-want +got):\n%s", diff)
				}
			}
			if bar.visible != tc.barVisible {
				t.Errorf("bar visible = %v, want %v", bar.visible, tc.barVisible)
			}
		})
	}
}

func TestSetAlignmentRelayouts(t *testing.T) {
	c, scroll, _, _, _ := newTestContainer(t, 3)

	topScroll := scroll.Frame()
	c.SetAlignment(AlignBottom)
	if scroll.Frame().Y != 0 {
		t.Errorf("scroll Y = %d after bottom alignment, want 0", scroll.Frame().Y)
	}
	if scroll.Frame().Height != topScroll.Height {
		t.Errorf("viewport height changed across alignment flip: %d != %d",
			scroll.Frame().Height, topScroll.Height)
	}

	c.SetAlignment(AlignHidden)
	if scroll.Frame().Height != 24 {
		t.Errorf("hidden alignment viewport height = %d, want full 24", scroll.Frame().Height)
	}
}

func TestAlignmentRoundTrip(t *testing.T) {
	for _, a := range []Alignment{AlignTop, AlignBottom, AlignHidden} {
		if got := ParseAlignment(a.String()); got != a {
			t.Errorf("ParseAlignment(%q) = %v, want %v", a.String(), got, a)
		}
	}
	if got := ParseAlignment("nonsense"); got != AlignTop {
		t.Errorf("ParseAlignment fallback = %v, want AlignTop", got)
	}
}
