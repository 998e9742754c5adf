package main

/*
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/trackiellm/viaconfig/internal/boundary"
)

// strings handed out by via_config_get_string must stay valid until the
// owning handle is freed. Go string data cannot cross the boundary directly,
// so each result is copied into C memory once per handle and interned here;
// via_config_free releases every interned copy for its handle.
var cstrings = struct {
	mu       sync.Mutex
	byHandle map[uintptr]map[string]*C.char
}{
	byHandle: make(map[uintptr]map[string]*C.char),
}

// internCString returns a C copy of s owned by the given handle.
func internCString(handle uintptr, s string) *C.char {
	cstrings.mu.Lock()
	defer cstrings.mu.Unlock()

	owned := cstrings.byHandle[handle]
	if owned == nil {
		owned = make(map[string]*C.char)
		cstrings.byHandle[handle] = owned
	}
	if p, ok := owned[s]; ok {
		return p
	}
	p := C.CString(s)
	owned[s] = p
	return p
}

// releaseCStrings frees every C string owned by the handle.
func releaseCStrings(handle uintptr) {
	cstrings.mu.Lock()
	owned := cstrings.byHandle[handle]
	delete(cstrings.byHandle, handle)
	cstrings.mu.Unlock()

	for _, p := range owned {
		C.free(unsafe.Pointer(p))
	}
}

// statusText holds the static, never-freed C strings returned by
// via_config_status_to_text.
var statusText = struct {
	mu sync.Mutex
	m  map[boundary.Status]*C.char
}{
	m: make(map[boundary.Status]*C.char),
}

func staticStatusText(st boundary.Status) *C.char {
	statusText.mu.Lock()
	defer statusText.mu.Unlock()
	if p, ok := statusText.m[st]; ok {
		return p
	}
	p := C.CString(st.Text())
	statusText.m[st] = p
	return p
}

var versionCString = struct {
	once sync.Once
	p    *C.char
}{}

//export via_config_load
func via_config_load(systemPath, hardwarePath, profilePath *C.char) C.uintptr_t {
	if systemPath == nil || hardwarePath == nil || profilePath == nil {
		return 0
	}
	token := boundary.Open(C.GoString(systemPath), C.GoString(hardwarePath), C.GoString(profilePath))
	return C.uintptr_t(token)
}

//export via_config_free
func via_config_free(handle C.uintptr_t) {
	if handle == 0 {
		return
	}
	releaseCStrings(uintptr(handle))
	boundary.Close(uintptr(handle))
}

//export via_config_get_string
func via_config_get_string(handle C.uintptr_t, path *C.char, out **C.char) C.int32_t {
	if path == nil || out == nil {
		return C.int32_t(boundary.StatusNullArgument)
	}
	s, st := boundary.GetString(uintptr(handle), C.GoString(path))
	if st != boundary.StatusOK {
		return C.int32_t(st)
	}
	// The pointer written here aliases memory owned by the handle: it is
	// valid only until via_config_free. Callers must copy the bytes first.
	*out = internCString(uintptr(handle), s)
	return C.int32_t(boundary.StatusOK)
}

//export via_config_get_integer
func via_config_get_integer(handle C.uintptr_t, path *C.char, out *C.int64_t) C.int32_t {
	if path == nil || out == nil {
		return C.int32_t(boundary.StatusNullArgument)
	}
	i, st := boundary.GetInt(uintptr(handle), C.GoString(path))
	if st != boundary.StatusOK {
		return C.int32_t(st)
	}
	*out = C.int64_t(i)
	return C.int32_t(boundary.StatusOK)
}

//export via_config_get_float
func via_config_get_float(handle C.uintptr_t, path *C.char, out *C.double) C.int32_t {
	if path == nil || out == nil {
		return C.int32_t(boundary.StatusNullArgument)
	}
	f, st := boundary.GetFloat(uintptr(handle), C.GoString(path))
	if st != boundary.StatusOK {
		return C.int32_t(st)
	}
	*out = C.double(f)
	return C.int32_t(boundary.StatusOK)
}

//export via_config_get_boolean
func via_config_get_boolean(handle C.uintptr_t, path *C.char, out *C.bool) C.int32_t {
	if path == nil || out == nil {
		return C.int32_t(boundary.StatusNullArgument)
	}
	b, st := boundary.GetBool(uintptr(handle), C.GoString(path))
	if st != boundary.StatusOK {
		return C.int32_t(st)
	}
	*out = C.bool(b)
	return C.int32_t(boundary.StatusOK)
}

//export via_config_status_to_text
func via_config_status_to_text(status C.int32_t) *C.char {
	return staticStatusText(boundary.Status(status))
}

//export via_config_version
func via_config_version() *C.char {
	versionCString.once.Do(func() {
		versionCString.p = C.CString(version)
	})
	return versionCString.p
}
