package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// spinnerFrames is the braille animation cycle shared by all spinners.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 90 * time.Millisecond

// Spinner draws a progress indicator on stderr while a slow pipeline stage
// (layout, render) runs. It stops on Stop or when its context ends, and it
// stays silent when stderr is not a terminal so redirected runs get no
// control codes.
type Spinner struct {
	message string
	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	quit    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// newSpinner creates a spinner with the given message.
func newSpinner(message string) *Spinner {
	return newSpinnerWithContext(context.Background(), message)
}

// newSpinnerWithContext creates a spinner bound to ctx; cancelling the
// context stops the animation without waiting for Stop.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	sctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		message: message,
		parent:  ctx,
		ctx:     sctx,
		cancel:  cancel,
		quit:    make(chan struct{}),
	}
}

// Start begins the animation. Non-interactive sessions print nothing; the
// spinner still tracks its context so Cancelled works either way.
func (s *Spinner) Start() {
	show := isTerminal(os.Stderr)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				if show {
					s.clearLine()
				}
				return
			case <-s.quit:
				return
			case <-ticker.C:
				if show {
					frame := spinnerFrames[i%len(spinnerFrames)]
					fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
				}
			}
		}
	}()
}

// Stop halts the animation and clears the line. Safe to call repeatedly.
func (s *Spinner) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.cancel()
	s.wg.Wait()
	if isTerminal(os.Stderr) {
		s.clearLine()
	}
}

// StopWithSuccess stops the spinner and prints a success line in its place.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and prints an error line in its place.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the caller's context ended. A plain Stop does
// not count as cancellation.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}

func (s *Spinner) clearLine() {
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
