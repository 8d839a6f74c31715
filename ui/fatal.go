package ui

import (
	"fmt"
	"log"
	"os"

	"github.com/sqweek/dialog"
)

// Fatal reports an unrecoverable frontend fault: it logs the message,
// shows a modal error box so windowed users see it, and exits. Only for
// environment faults (no display, broken data dir); programming faults
// panic instead.
func Fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Print(msg)
	dialog.Message("%s", msg).Title("Fatal error").Error()
	os.Exit(1)
}
