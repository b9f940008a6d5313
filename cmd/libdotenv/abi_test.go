package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/gandalfthegui/dotenv/dotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestLoadAndQuery(t *testing.T) {
	dotenv.Clear()
	t.Cleanup(dotenv.Clear)

	path := filepath.Join(t.TempDir(), "c_api.env")
	require.NoError(t, os.WriteFile(path, []byte("C_KEY=c_value\n"), 0o600))

	assert.Equal(t, codeSuccess, load(ptr(path)))
	assert.Equal(t, 1, isLoaded())
	assert.Equal(t, "c_value", get(ptr("C_KEY"), nil))
	assert.Equal(t, 1, has(ptr("C_KEY")))
	assert.Equal(t, 0, has(ptr("C_MISSING")))
	assert.Equal(t, "fallback", get(ptr("C_MISSING"), ptr("fallback")))
}

func TestNullArguments(t *testing.T) {
	assert.Equal(t, "", get(nil, ptr("ignored")))
	assert.Equal(t, "", get(ptr("DOTENV_ABI_UNSET"), nil))
	assert.Equal(t, 0, has(nil))
}

func TestLoadNullUsesDefaultPath(t *testing.T) {
	dotenv.Clear()
	t.Cleanup(dotenv.Clear)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DOTENV_ABI_DEFAULT=yes\n"), 0o600))
	t.Chdir(dir)

	assert.Equal(t, codeSuccess, load(nil))
	assert.Equal(t, "yes", get(ptr("DOTENV_ABI_DEFAULT"), nil))

	dotenv.Clear()
	assert.Equal(t, codeSuccess, load(ptr("")))
}

func TestLoadMissing(t *testing.T) {
	dotenv.Clear()
	missing := filepath.Join(t.TempDir(), "nonexistent_file_12345.env")
	assert.Equal(t, codeFileNotFound, load(ptr(missing)))
	assert.Equal(t, 0, isLoaded())
	assert.NotEmpty(t, dotenv.LastError())
}

func TestResultCode(t *testing.T) {
	assert.Equal(t, codeSuccess, resultCode(nil))
	assert.Equal(t, codeFileNotFound, resultCode(fmt.Errorf("%w: x", dotenv.ErrFileNotFound)))
	assert.Equal(t, codeParseError, resultCode(fmt.Errorf("%w: x", dotenv.ErrRead)))
}

func TestLastErrorBufferIsPerThread(t *testing.T) {
	dotenv.Clear()
	dir := t.TempDir()

	firstReady := make(chan struct{})
	secondDone := make(chan struct{})
	got := make(chan string)

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		load(ptr(filepath.Join(dir, "first.env")))
		p := DotenvGetLastError()
		close(firstReady)
		<-secondDone
		// Another thread has called DotenvGetLastError since; p must still
		// hold this thread's message.
		got <- *goString(p)
	}()

	<-firstReady
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		load(ptr(filepath.Join(dir, "second.env")))
		p := DotenvGetLastError()
		assert.True(t, strings.HasSuffix(*goString(p), "second.env"))
		close(secondDone)
	}()

	assert.True(t, strings.HasSuffix(<-got, "first.env"))
}

func TestBuffersAreSeparatePerFunction(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	dotenv.Clear()

	missing := filepath.Join(t.TempDir(), "missing.env")
	load(ptr(missing))
	lastErr := DotenvGetLastError()

	assert.Equal(t, "", *goString(DotenvGet(nil, nil)))
	assert.Equal(t, "could not open the .env file: "+missing, *goString(lastErr))

	// A second call on the same thread replaces the previous string.
	dotenv.Clear()
	require.Equal(t, codeFileNotFound, load(ptr(missing+".2")))
	assert.Equal(t, "could not open the .env file: "+missing+".2", *goString(DotenvGetLastError()))
}
