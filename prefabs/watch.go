package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind tells a prefab edit from a script edit.
type ChangeKind int

const (
	SpecChanged ChangeKind = iota
	ScriptChanged
)

// Change is one debounced edit of a watched file. Name is relative to the
// prefabs directory, ready for Load or LoadScript.
type Change struct {
	Name string
	Kind ChangeKind
}

// Matches reports whether the change is for the prefab or script called name.
func (c Change) Matches(name string) bool {
	if c.Kind == ScriptChanged {
		return cleanScriptPath(name) == cleanScriptPath(c.Name)
	}
	return cleanPrefabPath(name) == c.Name
}

// Watcher reports prefab and script edits on disk. Events is buffered and
// drops edits when the reader falls behind.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll returns the changes queued since the last call without blocking.
func (w *Watcher) Poll() []Change {
	if w == nil {
		return nil
	}
	var out []Change
	for {
		select {
		case c := <-w.Events:
			out = append(out, c)
		default:
			return out
		}
	}
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			change, ok := classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- change:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func classify(path string) (Change, bool) {
	name := filepath.Base(path)
	switch {
	case isSpecFile(path):
		return Change{Name: name, Kind: SpecChanged}, true
	case isScriptFile(path):
		return Change{Name: "scripts/" + name, Kind: ScriptChanged}, true
	}
	return Change{}, false
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
