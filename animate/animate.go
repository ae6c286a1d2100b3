// Package animate paces task labels onto a terminal, one step every exec delay.
package animate

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/samber/mo"
	"github.com/taskframe/taskframe/color"
	"github.com/taskframe/taskframe/config"
	"github.com/taskframe/taskframe/log"
)

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Option configures an Animator.
type Option func(*Animator)

// WithSleep replaces the wait between steps.
func WithSleep(sleep SleepFunc) Option {
	return func(a *Animator) {
		a.sleep = sleep
	}
}

// Animator writes one status line per task.
type Animator struct {
	w       io.Writer
	delay   time.Duration
	palette mo.Option[color.Palette]
	sleep   SleepFunc
}

// New returns an Animator pacing output to w with the delay and colors from s.
func New(w io.Writer, s config.Settings, opts ...Option) *Animator {
	a := &Animator{
		w:       w,
		delay:   s.ExecDelay(),
		palette: s.Palette(),
		sleep:   Sleep,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run writes "[i/n] task ... done" for each task, waiting the exec delay before
// marking it done. Cancelling ctx marks the current task cancelled and returns ctx.Err().
func (a *Animator) Run(ctx context.Context, tasks []string) error {
	for i, task := range tasks {
		label := fmt.Sprintf("[%d/%d]", i+1, len(tasks))
		if _, err := fmt.Fprintf(a.w, "%s %s ... ", color.Paint(a.palette, color.StyleYellow, label), task); err != nil {
			return err
		}

		log.Debugf("task %d/%d %q: waiting %s", i+1, len(tasks), task, a.delay)
		if err := a.sleep(ctx, a.delay); err != nil {
			_, _ = fmt.Fprintln(a.w, color.Paint(a.palette, color.StyleRed, "cancelled"))
			return err
		}

		if _, err := fmt.Fprintln(a.w, color.Paint(a.palette, color.StyleGreen, "done")); err != nil {
			return err
		}
	}
	return nil
}

// Sleep waits for d on a timer, returning early with ctx.Err() when ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
