//go:build windows

package main

import "os"

// syscall.SIGTERM is not delivered on Windows.
var stopSignals = []os.Signal{os.Interrupt}
