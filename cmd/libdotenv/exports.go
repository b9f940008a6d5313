// Command libdotenv builds the dotenv C shared library:
//
//	go build -buildmode=c-shared -o libdotenv.so ./cmd/libdotenv
//
// Strings returned by DotenvGet and DotenvGetLastError are owned by the
// library and stay valid until the next call of the same function on the
// same thread. Copy them immediately if they need to outlive that.
package main

import "C"

import "github.com/gandalfthegui/dotenv/dotenv"

//export DotenvLoad
func DotenvLoad(filename *C.char) C.int {
	return C.int(load(goString(filename)))
}

//export DotenvGet
func DotenvGet(key, defaultValue *C.char) *C.char {
	return setGetBuf(get(goString(key), goString(defaultValue)))
}

//export DotenvHas
func DotenvHas(key *C.char) C.int {
	return C.int(has(goString(key)))
}

//export DotenvClear
func DotenvClear() {
	dotenv.Clear()
}

//export DotenvIsLoaded
func DotenvIsLoaded() C.int {
	return C.int(isLoaded())
}

//export DotenvGetLastError
func DotenvGetLastError() *C.char {
	return setLastErrorBuf(dotenv.LastError())
}

// CallDotenvLoad loads filename (or .env) and ignores the result.
//
// Deprecated: use DotenvLoad.
//
//export CallDotenvLoad
func CallDotenvLoad(filename *C.char) {
	load(goString(filename))
}

func main() {}
