package shader

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch recompiles shader sources as they are written until ctx is cancelled.
// The optional callback is invoked after each compilation attempt.
func (c *Compiler) Watch(ctx context.Context, onCompile func(src string, err error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err = watcher.Add(c.SourceDir); err != nil {
		return err
	}
	c.logger.Noticef("watching %s for shader changes", c.SourceDir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(event.Name) != SourceExt || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			stale, err := c.Stale(event.Name)
			if err == nil && !stale {
				continue
			}
			if err == nil {
				err = c.Compile(ctx, event.Name)
			}
			if err != nil {
				c.logger.Error(err)
			}
			if onCompile != nil {
				onCompile(event.Name, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.logger.Warningf("watch error: %v", err)
		}
	}
}
