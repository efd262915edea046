// Package hostfile provides a host-file abstraction that unifies a raw
// OS file descriptor and a buffered stream handle behind one File
// interface.
//
// A File may be backed by a descriptor, a stream, or both (a stream
// layered over the same descriptor). Each backing is independently
// owned or borrowed: owned backings are released exactly once by Close,
// borrowed backings are observed but never released.
//
// # Concurrency Contracts
//
// Every File carries two distinct concurrency contracts:
//
//   - Current-position I/O (Read, Write, Seek) uses the object's
//     implicit cursor and is NOT synchronized. Callers sharing one File
//     across goroutines for these operations must serialize externally.
//   - Offset-explicit I/O (ReadAt, WriteAt) is serialized by one
//     per-instance mutex around the positioned system calls. Each
//     goroutine should own a private offset; the lock protects the
//     syscalls, not the caller's offset arithmetic.
//
// # Terminal Capabilities
//
// Files expose three lazily computed capability flags: IsInteractive,
// IsRealTerminal and IsTerminalWithColors. Querying any one computes
// and caches all three in a single pass; they are never recomputed for
// the lifetime of the object, including after Close.
//
// # Usage Example
//
//	f, err := hostfile.Open("/tmp/out.log",
//	    hostfile.OpenWrite|hostfile.OpenCanCreate|hostfile.OpenAppend, 0o644)
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	if f.IsTerminalWithColors() {
//	    hostfile.Printf(f, "\x1b[32m%s\x1b[0m\n", "ok")
//	}
package hostfile
