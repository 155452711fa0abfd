package engine

import (
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/edwinsyarief/kumiki"
	"github.com/fsnotify/fsnotify"
	"github.com/rotisserie/eris"
)

// ResourceWatcher emits ReloadResources events when files under the watched
// directories change. Changes to the same path are collapsed until Debounce
// of game time has passed since the last event for it.
type ResourceWatcher struct {
	kumiki.NoRequirements

	// Debounce is the quiet period per path, measured in game time.
	Debounce time.Duration

	watcher    *fsnotify.Watcher
	extensions []string
	lastSent   map[string]time.Duration
}

const watchedOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// NewResourceWatcher starts watching dirs. Only files whose extension is in
// extensions are reported; an empty list reports everything.
func NewResourceWatcher(dirs []string, extensions []string) (*ResourceWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, eris.Wrap(err, "create file watcher")
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, eris.Wrapf(err, "watch %s", dir)
		}
	}
	exts := make([]string, len(extensions))
	for i, ext := range extensions {
		exts[i] = strings.ToLower(ext)
	}
	return &ResourceWatcher{
		Debounce:   100 * time.Millisecond,
		watcher:    w,
		extensions: exts,
		lastSent:   make(map[string]time.Duration),
	}, nil
}

func (r *ResourceWatcher) LoopStageFilter() kumiki.LoopStageFlag { return kumiki.StageUpdate }

func (r *ResourceWatcher) Update(_ *kumiki.Assembly, aux *kumiki.Resources, t, _ time.Duration) ([]Event, []Event) {
	var deferred []Event
	for {
		select {
		case ev, ok := <-r.watcher.Events:
			if !ok {
				return nil, deferred
			}
			if ev.Op&watchedOps == 0 || !r.matches(ev.Name) {
				continue
			}
			if last, seen := r.lastSent[ev.Name]; seen && t-last < r.Debounce {
				continue
			}
			r.lastSent[ev.Name] = t
			loggerFrom(aux).Debug().Str("path", ev.Name).Stringer("op", ev.Op).Msg("resource changed")
			deferred = append(deferred, NewReloadResources(ev.Name))
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return nil, deferred
			}
			loggerFrom(aux).Warn().Err(err).Msg("file watcher error")
		default:
			return nil, deferred
		}
	}
}

func (r *ResourceWatcher) matches(name string) bool {
	if len(r.extensions) == 0 {
		return true
	}
	return slices.Contains(r.extensions, strings.ToLower(filepath.Ext(name)))
}

// Close stops watching.
func (r *ResourceWatcher) Close() error {
	return r.watcher.Close()
}
