// internal/trainer/recorder_test.go
package trainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder_RecordAnswer(t *testing.T) {
	var r Recorder

	correct, total := r.Snapshot()
	assert.Equal(t, 0, correct)
	assert.Equal(t, 0, total)

	r.RecordAnswer(true)
	r.RecordAnswer(true)
	r.RecordAnswer(false)

	correct, total = r.Snapshot()
	assert.Equal(t, 2, correct)
	assert.Equal(t, 3, total)
}

func TestRecorder_Reset(t *testing.T) {
	var r Recorder
	r.RecordAnswer(true)
	r.RecordAnswer(false)

	r.Reset()

	correct, total := r.Snapshot()
	assert.Equal(t, 0, correct)
	assert.Equal(t, 0, total)
}
