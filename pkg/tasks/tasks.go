package tasks

import (
	"sync"
	"time"

	"github.com/christophe-duc/lazysdes/pkg/i18n"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// TaskManager runs at most one background task at a time, e.g. the spinner
// shown while a key search runs. Starting a task stops the previous one.
type TaskManager struct {
	currentTask *Task
	mutex       deadlock.Mutex
	Log         *logrus.Entry
	Tr          *i18n.TranslationSet
	stopTimeout time.Duration
}

type Task struct {
	stop          chan struct{}
	stopped       bool
	stopMutex     sync.Mutex
	notifyStopped chan struct{}
	Log           *logrus.Entry
}

func NewTaskManager(log *logrus.Entry, translationSet *i18n.TranslationSet) *TaskManager {
	return &TaskManager{Log: log, Tr: translationSet, stopTimeout: 3 * time.Second}
}

// Close closes the task manager, stopping whatever task may currently be running.
// It gives up waiting after a few seconds so a stuck task cannot hang the program.
func (t *TaskManager) Close() error {
	t.mutex.Lock()
	task := t.currentTask
	t.currentTask = nil
	t.mutex.Unlock()

	if task == nil {
		return nil
	}

	c := make(chan struct{}, 1)

	go func() {
		task.Stop()
		c <- struct{}{}
	}()

	select {
	case <-c:
	case <-time.After(t.stopTimeout):
		t.Log.Warn(t.Tr.CannotStopProgressWarning)
	}
	return nil
}

// NewTask stops the current task, if any, and runs f in the background until
// it returns. f should return promptly once stop is closed.
func (t *TaskManager) NewTask(f func(stop chan struct{})) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.currentTask != nil {
		t.Log.Info("asking task to stop")
		t.currentTask.Stop()
		t.Log.Info("task stopped")
	}

	stop := make(chan struct{})
	notifyStopped := make(chan struct{})

	t.currentTask = &Task{
		stop:          stop,
		notifyStopped: notifyStopped,
		Log:           t.Log,
	}

	go func() {
		f(stop)
		t.Log.Info("returned from function, closing notifyStopped")
		close(notifyStopped)
	}()
}

func (t *Task) Stop() {
	t.stopMutex.Lock()
	defer t.stopMutex.Unlock()
	if t.stopped {
		return
	}
	close(t.stop)
	t.Log.Info("closed stop channel, waiting for notifyStopped message")
	<-t.notifyStopped
	t.Log.Info("received notifystopped message")
	t.stopped = true
}

// NewTickerTask is a convenience function for making a new task that repeats some action once per e.g. second
// the before function gets called before the ticker starts.
// if f wants to end the task early it sends a message on notifyStopped; returning from f is not sufficient, it just means we wait till the next tick to run again.
func (t *TaskManager) NewTickerTask(duration time.Duration, before func(stop chan struct{}), f func(stop, notifyStopped chan struct{})) {
	notifyStopped := make(chan struct{}, 10)

	t.NewTask(func(stop chan struct{}) {
		if before != nil {
			before(stop)
		}
		tickChan := time.NewTicker(duration)
		defer tickChan.Stop()
		// calling f first so that we're not waiting for the first tick
		f(stop, notifyStopped)
		for {
			select {
			case <-notifyStopped:
				t.Log.Info("exiting ticker task due to notifyStopped channel")
				return
			case <-stop:
				t.Log.Info("exiting ticker task due to stopped channel")
				return
			case <-tickChan.C:
				f(stop, notifyStopped)
			}
		}
	})
}
