package store

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher invokes onChange when a watched item file is written.
// Events are debounced because editors and sync tools tend to fire
// several writes in quick succession.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	onChange func(string)
	mu       sync.RWMutex
	done     chan struct{}
}

func NewFileWatcher(onChange func(string)) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher:  watcher,
		files:    make(map[string]bool),
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go fw.watch()
	return fw, nil
}

func (fw *FileWatcher) AddFile(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.files[absPath] {
		return nil
	}
	if err := fw.watcher.Add(absPath); err != nil {
		return err
	}
	fw.files[absPath] = true
	return nil
}

func (fw *FileWatcher) watch() {
	debounce := make(map[string]*time.Timer)

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer, exists := debounce[event.Name]; exists {
				timer.Stop()
			}
			debounce[event.Name] = time.AfterFunc(100*time.Millisecond, func() {
				fw.mu.RLock()
				watching := fw.files[event.Name]
				fw.mu.RUnlock()
				if watching && fw.onChange != nil {
					fw.onChange(event.Name)
				}
			})

		case _, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}

		case <-fw.done:
			return
		}
	}
}

func (fw *FileWatcher) Close() error {
	close(fw.done)
	return fw.watcher.Close()
}
