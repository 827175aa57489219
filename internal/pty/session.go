package pty

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"sync"
)

// ErrClosed is returned by Write and Resize after Close.
var ErrClosed = errors.New("pty session closed")

// readBufferSize is the chunk size of a single PTY read.
const readBufferSize = 4096

// Session is a running command attached to a PTY. Output is delivered in
// chunks on Output until the command exits or the session is closed.
type Session struct {
	runner Runner
	cmd    *exec.Cmd
	rwc    io.ReadWriteCloser
	out    chan []byte
	done   chan struct{}

	mu     sync.Mutex
	size   Size
	closed bool
}

// Spawn starts cmd in a PTY of the given size and begins reading its output.
func Spawn(ctx context.Context, runner Runner, cmd *exec.Cmd, size Size) (*Session, error) {
	rwc, err := runner.Start(ctx, cmd, size)
	if err != nil {
		return nil, err
	}
	s := &Session{
		runner: runner,
		cmd:    cmd,
		rwc:    rwc,
		out:    make(chan []byte, 64),
		done:   make(chan struct{}),
		size:   size,
	}
	go s.readLoop()
	return s, nil
}

func (s *Session) readLoop() {
	defer close(s.out)
	buf := make([]byte, readBufferSize)
	for {
		n, err := s.rwc.Read(buf)
		if n > 0 {
			cp := make([]byte, n)
			copy(cp, buf[:n])
			select {
			case s.out <- cp:
			case <-s.done:
				return
			}
		}
		if err != nil {
			if s.cmd != nil && s.cmd.Process != nil {
				_ = s.cmd.Wait()
			}
			return
		}
	}
}

// Output returns the channel of output chunks. It is closed when the
// command exits or the session is closed.
func (s *Session) Output() <-chan []byte { return s.out }

// Write sends input bytes to the command.
func (s *Session) Write(p []byte) (int, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return 0, ErrClosed
	}
	return s.rwc.Write(p)
}

// Size returns the last size applied to the PTY.
func (s *Session) Size() Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Resize changes the PTY size. Resizing to the current size does nothing.
func (s *Session) Resize(size Size) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if size == s.size {
		return nil
	}
	if err := s.runner.Resize(s.rwc, size); err != nil {
		return err
	}
	s.size = size
	return nil
}

// Close stops reading and closes the PTY. It is safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()
	close(s.done)
	return s.rwc.Close()
}
