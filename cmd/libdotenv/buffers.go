package main

/*
#include <stdlib.h>

// One slot per exported string-returning function and per OS thread.
static _Thread_local char *get_buf;
static _Thread_local char *last_error_buf;

static char *swap_buf(char **slot, char *s) {
	free(*slot);
	*slot = s;
	return s;
}

static char *set_get_buf(char *s) { return swap_buf(&get_buf, s); }
static char *set_last_error_buf(char *s) { return swap_buf(&last_error_buf, s); }
*/
import "C"

// The setters below store a C copy of s in the calling thread's slot,
// freeing whatever that thread was handed by the previous call. A pointer
// returned on one thread is never freed by a call on another.

func setGetBuf(s string) *C.char {
	return C.set_get_buf(C.CString(s))
}

func setLastErrorBuf(s string) *C.char {
	return C.set_last_error_buf(C.CString(s))
}

func goString(s *C.char) *string {
	if s == nil {
		return nil
	}
	v := C.GoString(s)
	return &v
}
