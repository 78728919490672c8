package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert.NotNil(t, New())
}

func TestNow(t *testing.T) {
	assert.False(t, clock{}.Now().IsZero())
}

func TestSleep(t *testing.T) {
	assert.NotPanics(t, func() {
		clock{}.Sleep(1 * time.Microsecond)
	})
}

func TestAfterFunc(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	timer := clock{}.AfterFunc(1*time.Microsecond, wg.Done)
	wg.Wait()
	assert.False(t, timer.Stop())
}

func TestAfterFuncStop(t *testing.T) {
	timer := clock{}.AfterFunc(1*time.Hour, func() {
		t.Error("timer fired after Stop")
	})
	assert.True(t, timer.Stop())
}
