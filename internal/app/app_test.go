package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tamzrod/input-remapper/internal/acquire"
	"github.com/tamzrod/input-remapper/internal/config"
	"github.com/tamzrod/input-remapper/internal/hw"
	"github.com/tamzrod/input-remapper/internal/mirror"
	"github.com/tamzrod/input-remapper/internal/profile"
	"github.com/tamzrod/input-remapper/internal/render"
	"github.com/tamzrod/input-remapper/internal/state"
	"github.com/tamzrod/input-remapper/internal/status"
)

const profilesYAML = `
display:
  default_layout: 1
profiles:
  - name: Swap
    mappings:
      - [1, [2, 3]]
  - name: Second
    layout: 2
    mappings:
      - [2, [1]]
`

// ---- fakes ----

type fakeTransport struct {
	mu     sync.Mutex
	word   uint32
	frames [][hw.FrameBytes]byte
}

func (f *fakeTransport) ReadInput() (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.word, nil
}

func (f *fakeTransport) WriteOutput(frame [hw.FrameBytes]byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames = append(f.frames, frame)
	return nil
}

func (f *fakeTransport) set(word uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.word = word
}

func (f *fakeTransport) lastOutput() (uint32, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.frames) == 0 {
		return 0, false
	}
	return acquire.Unframe(f.frames[len(f.frames)-1]), true
}

type fakeRenderer struct {
	mu    sync.Mutex
	shots []status.Snapshot
}

func (f *fakeRenderer) Render(s status.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shots = append(f.shots, s)
	return nil
}

func (f *fakeRenderer) last() (status.Snapshot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.shots) == 0 {
		return status.Snapshot{}, false
	}
	return f.shots[len(f.shots)-1], true
}

type fakeRegisters struct {
	mu     sync.Mutex
	writes int
}

func (f *fakeRegisters) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	return nil
}

func (f *fakeRegisters) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

// ---- tests ----

func TestRun_RequiresTransport(t *testing.T) {
	if err := Run(context.Background(), Options{}); err == nil {
		t.Fatalf("expected error without transport")
	}
}

func TestRun_EndToEnd(t *testing.T) {
	tr := &fakeTransport{}
	fr := &fakeRenderer{}
	regs := &fakeRegisters{}
	live := state.New()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- Run(ctx, Options{
			Store:     config.BytesStore(profilesYAML),
			Transport: tr,
			Acquire:   acquire.Config{Interval: time.Millisecond},
			Open: func(d profile.Display) (render.Renderer, error) {
				if d.DefaultLayout != 1 {
					t.Errorf("display default layout = %d, want 1", d.DefaultLayout)
				}
				return fr, nil
			},
			Render: render.Config{Interval: time.Millisecond},
			Mirror: &MirrorOptions{Writer: regs, Config: mirror.Config{UnitID: 1}, Interval: time.Millisecond},
			Live:   live,
		})
	}()

	waitFor(t, "publish", live.Ready)
	if live.Table().Len() != 3 {
		t.Fatalf("expected passthrough + 2 profiles, got %d", live.Table().Len())
	}

	// passthrough
	tr.set(hw.Bit(1))
	waitFor(t, "passthrough output", func() bool {
		out, ok := tr.lastOutput()
		return ok && out == hw.Bit(1)
	})

	// unlock + next moves to the first user profile
	tr.set(hw.Bit(hw.UnlockPosition) | hw.Bit(hw.NextPosition))
	waitFor(t, "profile switch", func() bool { return live.ProfileID() == 2 })

	// input 1 now drives outputs 2 and 3
	tr.set(hw.Bit(1))
	waitFor(t, "remapped output", func() bool {
		out, ok := tr.lastOutput()
		return ok && out == 0b110
	})

	waitFor(t, "render of profile 2", func() bool {
		s, ok := fr.last()
		return ok && s.ProfileID == 2 && s.ProfileName == "Swap" && s.Layout == 1
	})
	waitFor(t, "mirror write", func() bool { return regs.count() > 0 })

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("run returned %v", err)
	}
}

func TestRun_MissingStoreIsPassthrough(t *testing.T) {
	tr := &fakeTransport{}
	live := state.New()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Options{Transport: tr, Acquire: acquire.Config{Interval: time.Millisecond}, Live: live})
	}()

	waitFor(t, "publish", live.Ready)
	if live.Table().Len() != 1 {
		t.Fatalf("expected passthrough only, got %d profiles", live.Table().Len())
	}

	tr.set(0x1ABCD)
	waitFor(t, "identity output", func() bool {
		out, ok := tr.lastOutput()
		return ok && out == 0x1ABCD
	})

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("run returned %v", err)
	}
}

func TestRun_DisplayFailureKeepsRemapping(t *testing.T) {
	tr := &fakeTransport{}
	live := state.New()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Options{
			Transport: tr,
			Acquire:   acquire.Config{Interval: time.Millisecond},
			Open: func(profile.Display) (render.Renderer, error) {
				return nil, errors.New("no panel")
			},
			Live: live,
		})
	}()

	tr.set(hw.Bit(4))
	waitFor(t, "output despite display failure", func() bool {
		out, ok := tr.lastOutput()
		return ok && out == hw.Bit(4)
	})

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("run returned %v", err)
	}
}

func TestSoft(t *testing.T) {
	if soft("x", context.Canceled) != nil || soft("x", errors.New("i2c")) != nil {
		t.Fatalf("auxiliary errors must be absorbed")
	}
	if !errors.Is(soft("x", profile.ErrProfileMissing), profile.ErrProfileMissing) {
		t.Fatalf("missing profile must escalate")
	}
}
