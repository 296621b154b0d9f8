package errors

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ping"))
	assert.NoError(t, WithStack(nil))

	err := Wrap(fs.ErrNotExist, "open config")
	assert.EqualError(t, err, "open config: file does not exist")
	assert.True(t, Is(err, fs.ErrNotExist))
	assert.Contains(t, fmt.Sprintf("%+v", WithStack(err)), "TestWrap")
}

func TestAs(t *testing.T) {
	pathErr := &fs.PathError{Op: "open", Path: "config.yaml", Err: fs.ErrNotExist}

	var target *fs.PathError
	assert.True(t, As(Wrap(pathErr, "load"), &target))
	assert.Equal(t, "config.yaml", target.Path)
	assert.Contains(t, fmt.Sprintf("%+v", New("boom")), "TestAs")
}
