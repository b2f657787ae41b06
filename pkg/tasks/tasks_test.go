package tasks

import (
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/christophe-duc/lazysdes/pkg/i18n"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestTaskManager() *TaskManager {
	log := logrus.New()
	log.Out = io.Discard
	entry := log.WithField("test", "test")
	return NewTaskManager(entry, i18n.NewTranslationSet(entry, i18n.EN))
}

func TestTickerTaskRunsUntilClosed(t *testing.T) {
	manager := newTestTaskManager()

	var calls atomic.Int32
	manager.NewTickerTask(time.Millisecond, nil, func(stop, notifyStopped chan struct{}) {
		calls.Add(1)
	})

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	manager.Close()
	after := calls.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestTickerTaskCanStopItself(t *testing.T) {
	manager := newTestTaskManager()

	var calls atomic.Int32
	manager.NewTickerTask(time.Millisecond, nil, func(stop, notifyStopped chan struct{}) {
		if calls.Add(1) == 2 {
			notifyStopped <- struct{}{}
		}
	})

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(2), calls.Load())

	// closing a task that already returned is fine
	manager.Close()
}

func TestNewTaskStopsPreviousTask(t *testing.T) {
	manager := newTestTaskManager()

	firstStopped := make(chan struct{})
	manager.NewTask(func(stop chan struct{}) {
		<-stop
		close(firstStopped)
	})

	manager.NewTask(func(stop chan struct{}) {
		<-stop
	})

	select {
	case <-firstStopped:
	default:
		t.Fatal("expected first task to be stopped before the second one started")
	}

	manager.Close()
}

func TestCloseGivesUpOnStuckTask(t *testing.T) {
	manager := newTestTaskManager()
	manager.stopTimeout = 10 * time.Millisecond

	release := make(chan struct{})
	defer close(release)
	manager.NewTask(func(stop chan struct{}) {
		<-release
	})

	done := make(chan struct{})
	go func() {
		manager.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close blocked on a stuck task")
	}
}

func TestCloseWithoutTask(t *testing.T) {
	assert.NoError(t, newTestTaskManager().Close())
}
