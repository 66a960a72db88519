package shutdown

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubSaver struct {
	dirty bool
	err   error
	saves int
}

func (s *stubSaver) Dirty() bool { return s.dirty }
func (s *stubSaver) Save() error {
	s.saves++
	return s.err
}

func captureExit(t *testing.T) *int {
	code := -1
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = os.Exit })
	return &code
}

func TestShutdown(t *testing.T) {
	tests := []struct {
		name      string
		saver     *stubSaver
		wantSaves int
		wantCode  int
	}{
		{"clean", &stubSaver{}, 0, 0},
		{"dirty", &stubSaver{dirty: true}, 1, 0},
		{"save fails", &stubSaver{dirty: true, err: errors.New("disk full")}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := captureExit(t)
			Shutdown(tt.saver)
			assert.Equal(t, tt.wantSaves, tt.saver.saves)
			assert.Equal(t, tt.wantCode, *code)
		})
	}
}

func TestShutdownClosesAfterSave(t *testing.T) {
	code := captureExit(t)
	s := &stubSaver{dirty: true}
	var savesAtClose []int
	closer := func() { savesAtClose = append(savesAtClose, s.saves) }

	Shutdown(s, closer, closer)
	assert.Equal(t, []int{1, 1}, savesAtClose)
	assert.Equal(t, 0, *code)
}

func TestShutdownWithError(t *testing.T) {
	code := captureExit(t)
	ShutdownWithError(errors.New("boom"), "fatal")
	assert.Equal(t, 1, *code)
}
