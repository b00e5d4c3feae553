package policyfile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/promptfit/promptfit/optimize"
)

// UpdateFunc receives each successfully re-loaded policy.
type UpdateFunc func(optimize.Policy)

// Watcher re-loads a policy file whenever it is written.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	onLoad  UpdateFunc
	onError func(error)
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithErrorHandler sets a callback for re-load failures. Without one,
// failures are dropped and the previous policy stays in effect.
func WithErrorHandler(fn func(error)) WatchOption {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watch loads the policy file, delivers it to onLoad, and keeps watching
// until ctx is cancelled or Close is called. Re-loads that fail to parse
// or validate do not replace the last good policy.
//
// The parent directory is watched rather than the file itself, so
// rename-and-replace editors and atomic writes are picked up.
func Watch(ctx context.Context, path string, onLoad UpdateFunc, opts ...WatchOption) (*Watcher, error) {
	policy, err := Load(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		path:    path,
		watcher: fsw,
		onLoad:  onLoad,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.onLoad(policy)
	go w.run(ctx)
	return w, nil
}

// Close stops watching. Safe to call alongside context cancellation.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) run(ctx context.Context) {
	base := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			w.watcher.Close()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			policy, err := Load(w.path)
			if err != nil {
				if w.onError != nil {
					w.onError(err)
				}
				continue
			}
			w.onLoad(policy)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}
