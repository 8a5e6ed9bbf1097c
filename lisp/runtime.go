package lisp

import (
	"fmt"
	"io"
	"os"
)

// MaxSourceFileBytes is the default cap on the size of a loaded source
// file.
const MaxSourceFileBytes = 5 * 1000 * 1000

// FuncID indexes a registered native function.
type FuncID int

// NativeFunc is a host-implemented callable.  It receives the opaque
// parameter attached at registration, the calling scope, and the argument
// list (already evaluated unless the callable was invoked as a special
// form).
type NativeFunc func(param any, rt *Runtime, scope *Scope, args Value) Result

// Reader parses source bytes into a proper list of expressions allocated
// on h.  It decouples the evaluator from the parser so that builtins like
// load can read source without a package cycle.
type Reader interface {
	ReadAll(h *Heap, src []byte) (Value, error)
}

// Runtime ties together the heap, the native-function registry, and the
// top-level scope.  A Runtime is single-threaded; evaluation is recursive
// and synchronous with no suspension points.
type Runtime struct {
	Heap   *Heap
	Global *Scope

	// Reader parses source for the load builtin.  It must be assigned
	// before load is usable.
	Reader Reader

	Stdout io.Writer
	Stderr io.Writer

	maxFileBytes int64
	natives      []NativeFunc
}

// Config adjusts a Runtime during construction.
type Config func(rt *Runtime)

// WithStdout makes the runtime write program output to w instead of
// os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(rt *Runtime) {
		rt.Stdout = w
	}
}

// WithStderr makes the runtime write diagnostics to w instead of
// os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(rt *Runtime) {
		rt.Stderr = w
	}
}

// WithReader makes the runtime parse source streams with r.
func WithReader(r Reader) Config {
	return func(rt *Runtime) {
		rt.Reader = r
	}
}

// WithMaxFileBytes caps the size of files accepted by ReadSourceFile.
func WithMaxFileBytes(n int64) Config {
	return func(rt *Runtime) {
		rt.maxFileBytes = n
	}
}

// NewRuntime returns a runtime with a fresh heap, an empty global scope,
// and the standard library loaded.
func NewRuntime(configs ...Config) *Runtime {
	h := NewHeap()
	rt := &Runtime{
		Heap:         h,
		Global:       NewScope(h),
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		maxFileBytes: MaxSourceFileBytes,
	}
	for _, cfg := range configs {
		cfg(rt)
	}
	rt.LoadStdLibrary()
	return rt
}

// Register adds fn to the native-function registry and returns its id.
func (rt *Runtime) Register(fn NativeFunc) FuncID {
	rt.natives = append(rt.natives, fn)
	return FuncID(len(rt.natives) - 1)
}

// Native registers fn and binds a native atom carrying param to name in
// the global scope.
func (rt *Runtime) Native(name string, fn NativeFunc, param any) {
	id := rt.Register(fn)
	rt.Global.Set(rt.Heap, rt.Heap.Symbol(name), rt.Heap.NewNative(id, param))
}

func (rt *Runtime) dispatch(native Native, scope *Scope, args Value) Result {
	if int(native.Fun) < 0 || int(native.Fun) >= len(rt.natives) {
		panic(fmt.Sprintf("lisp: native function not registered: %d", native.Fun))
	}
	return rt.natives[native.Fun](native.Param, rt, scope, args)
}

// ReadSourceFile reads an entire source file in binary mode.  Empty files
// and files exceeding the configured size cap are rejected.
func (rt *Runtime) ReadSourceFile(filename string) ([]byte, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("file is empty: %s", filename)
	}
	if info.Size() > rt.maxFileBytes {
		return nil, fmt.Errorf("file is too big: %s", filename)
	}
	return os.ReadFile(filename)
}
