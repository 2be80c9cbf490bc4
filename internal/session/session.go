// Package session persists navigation intents as an append-only JSONL
// history so the app can reopen at the last visited topic. History is
// best-effort: a corrupt or partially written trailing line is ignored, and
// no failure here is allowed to take the app down.
package session

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	defaultFileMode = 0644
	defaultDirMode  = 0755

	// maxEntries bounds the history file; Open drops older entries beyond it.
	maxEntries = 512
)

// Intent operations, matching the three paginator mutations.
const (
	OpSelect  = "select"
	OpAdvance = "advance"
	OpRetreat = "retreat"
)

// Entry is one recorded navigation intent.
type Entry struct {
	Seq     uint64    `json:"seq"`
	Op      string    `json:"op"`
	TopicID string    `json:"topic,omitempty"` // set for select ops
	At      time.Time `json:"at"`
}

// History is a durable append-only intent log.
type History struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	nextSeq uint64
}

// Open creates or opens a history file at path. On startup it compacts the
// file down to the newest maxEntries entries and ignores a partially
// written trailing line.
func Open(path string) (*History, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("session: path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), defaultDirMode); err != nil {
		return nil, fmt.Errorf("session: mkdir: %w", err)
	}

	maxSeq, err := compact(path)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, defaultFileMode)
	if err != nil {
		return nil, fmt.Errorf("session: open: %w", err)
	}

	return &History{
		path:    path,
		file:    f,
		nextSeq: maxSeq + 1,
	}, nil
}

// Append records one intent and returns its sequence number.
func (h *History) Append(op, topicID string) (uint64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return 0, errors.New("session: history is closed")
	}

	seq := h.nextSeq
	h.nextSeq++

	e := Entry{Seq: seq, Op: op, TopicID: topicID, At: time.Now().UTC()}
	line, err := json.Marshal(e)
	if err != nil {
		return 0, fmt.Errorf("session: marshal entry: %w", err)
	}
	line = append(line, '\n')

	if _, err := h.file.Write(line); err != nil {
		return 0, fmt.Errorf("session: write entry: %w", err)
	}
	return seq, nil
}

// Replay calls fn for each recorded entry in sequence order.
func (h *History) Replay(fn func(Entry) error) error {
	if fn == nil {
		return errors.New("session: replay callback is nil")
	}

	h.mu.Lock()
	path := h.path
	h.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("session: open for replay: %w", err)
	}
	defer f.Close()

	return scanEntries(f, func(e Entry) error { return fn(e) })
}

// LastSelectedTopic returns the topic id implied by the newest select entry,
// or "" when the history holds none.
func (h *History) LastSelectedTopic() string {
	var last string
	_ = h.Replay(func(e Entry) error {
		if e.Op == OpSelect && e.TopicID != "" {
			last = e.TopicID
		}
		return nil
	})
	return last
}

// Close closes the underlying history file.
func (h *History) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.file == nil {
		return nil
	}
	err := h.file.Close()
	h.file = nil
	return err
}

// scanEntries reads JSONL entries from r, stopping silently at the first
// malformed or partial line so replay stays deterministic.
func scanEntries(r io.Reader, fn func(Entry) error) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("session: read: %w", err)
		}
		if len(line) == 0 {
			if errors.Is(err, io.EOF) {
				return nil
			}
			continue
		}
		if !strings.HasSuffix(string(line), "\n") {
			// Partial trailing line from an interrupted write.
			return nil
		}

		var e Entry
		if uerr := json.Unmarshal(line, &e); uerr != nil {
			return nil
		}
		if ferr := fn(e); ferr != nil {
			return ferr
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}

// compact rewrites path keeping only the newest maxEntries entries and
// returns the highest sequence number seen.
func compact(path string) (uint64, error) {
	src, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, defaultFileMode)
	if err != nil {
		return 0, fmt.Errorf("session: open source for compact: %w", err)
	}
	defer src.Close()

	var entries []Entry
	if err := scanEntries(src, func(e Entry) error {
		entries = append(entries, e)
		return nil
	}); err != nil {
		return 0, err
	}

	var maxSeq uint64
	for _, e := range entries {
		if e.Seq > maxSeq {
			maxSeq = e.Seq
		}
	}

	if len(entries) <= maxEntries {
		return maxSeq, nil
	}
	entries = entries[len(entries)-maxEntries:]

	tmpPath := path + ".compact"
	dst, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, defaultFileMode)
	if err != nil {
		return 0, fmt.Errorf("session: open compact tmp: %w", err)
	}

	w := bufio.NewWriter(dst)
	for _, e := range entries {
		line, merr := json.Marshal(e)
		if merr != nil {
			_ = dst.Close()
			_ = os.Remove(tmpPath)
			return 0, fmt.Errorf("session: compact marshal: %w", merr)
		}
		if _, werr := w.Write(append(line, '\n')); werr != nil {
			_ = dst.Close()
			_ = os.Remove(tmpPath)
			return 0, fmt.Errorf("session: compact write: %w", werr)
		}
	}
	if err := w.Flush(); err != nil {
		_ = dst.Close()
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("session: compact flush: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("session: compact close: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("session: compact rename: %w", err)
	}
	return maxSeq, nil
}
