package svgicon

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/svgicon/iconcache"
	"github.com/npillmayer/svgicon/maybe"
	"github.com/npillmayer/svgicon/svg"
	"golang.org/x/sync/errgroup"
)

// renderTask renders the icon of a single cache entry. Workers must not
// touch the entry, as the scanner keeps adding instances to it; they get
// copies of everything they need.
type renderTask struct {
	entry *iconcache.Entry
	label string              // icon identity, for tracing
	color maybe.Maybe[string] // fill color, immutable
	path  string              // resolved path of the icon file
	code  string              // result, set by the worker
	err   error
}

// renderer runs render tasks concurrently, with a bounded number of workers.
// Workers do not touch the cache or the stylesheet: results are stored with
// the tasks and handed over to the cache by the Promise.
type renderer struct {
	group    *errgroup.Group
	ctx      context.Context
	opts     svg.Options
	readFile func(string) ([]byte, error)
	tasks    []*renderTask
	promised bool
}

func newRenderer(ctx context.Context, workers int, opts svg.Options) *renderer {
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	return &renderer{
		group:    group,
		ctx:      gctx,
		opts:     opts,
		readFile: os.ReadFile,
	}
}

// Submit schedules rendering of a cache entry's icon. If all workers are
// busy, Submit blocks until one of them is available.
func (r *renderer) Submit(entry *iconcache.Entry, path string) {
	if r.promised {
		panic("render task submitted after Promise()")
	}
	task := &renderTask{
		entry: entry,
		label: fmt.Sprintf("%s(%v) %s", entry.Name, entry.Color, entry.Media),
		color: entry.Color,
		path:  path,
	}
	r.tasks = append(r.tasks, task)
	r.group.Go(func() error {
		if err := r.ctx.Err(); err != nil {
			task.err = err
			return err
		}
		task.code, task.err = r.render(task)
		return task.err
	})
}

func (r *renderer) render(task *renderTask) (string, error) {
	src, err := r.readFile(task.path)
	if err != nil {
		return "", &FileAccessError{Path: task.path, Err: err}
	}
	code, err := svg.Render(src, task.color, r.opts)
	if err != nil {
		return "", &MarkupParseError{Path: task.path, Err: err}
	}
	tracer().Debugf("rendered %s from %s", task.label, task.path)
	return code, nil
}

// Promise is a future synchronisation point.
// Calling the returned function blocks until all submitted tasks are done.
// If every task succeeded, the rendered code is stored with the cache
// entries. Otherwise the entries are left alone and the error of the
// first failed task, in submission order, is returned.
func (r *renderer) Promise() func() error {
	r.promised = true
	return func() error {
		if err := r.group.Wait(); err != nil {
			return r.firstError(err)
		}
		for _, task := range r.tasks {
			if err := task.entry.SetCode(task.code); err != nil {
				return err
			}
		}
		return nil
	}
}

// firstError prefers errors of failed tasks over cancellation errors of
// tasks which did not get to run.
func (r *renderer) firstError(groupErr error) error {
	for _, task := range r.tasks {
		if task.err != nil && !errors.Is(task.err, context.Canceled) {
			return task.err
		}
	}
	return groupErr
}
