package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	ListNotes(ctx context.Context) error
	ListArchive(ctx context.Context) error
	SearchNotes(ctx context.Context) error
	AddNote(ctx context.Context) error
	ShowNote(ctx context.Context) error
	EditNote(ctx context.Context) error
	ArchiveNote(ctx context.Context) error
	RestoreNote(ctx context.Context) error
	PurgeNote(ctx context.Context) error
	ClearArchive(ctx context.Context) error
	ListTags(ctx context.Context) error
	AddTag(ctx context.Context) error
	RenameTag(ctx context.Context) error
	DeleteTag(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the snapnote CLI.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types "exit" or
// "quit".
//
// Command errors are printed, not propagated: the loop stays alive so one
// failed call never ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sn> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn(fmt.Sprintf("input error: %v", err))
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: list, archive, search, add, show, edit, rm, restore, purge, clear-archive, tags, addtag, mvtag, rmtag, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}
		case "exit", "quit":
			return
		case "register":
			runCommand(ctx, a.Register)
		case "login":
			runCommand(ctx, a.Login)
		case "logout":
			runCommand(ctx, a.Logout)
		case "whoami":
			runCommand(ctx, a.Whoami)
		case "list", "l":
			runCommand(ctx, a.ListNotes)
		case "archive":
			runCommand(ctx, a.ListArchive)
		case "search":
			runCommand(ctx, a.SearchNotes)
		case "add":
			runCommand(ctx, a.AddNote)
		case "show":
			runCommand(ctx, a.ShowNote)
		case "edit":
			runCommand(ctx, a.EditNote)
		case "rm":
			runCommand(ctx, a.ArchiveNote)
		case "restore":
			runCommand(ctx, a.RestoreNote)
		case "purge":
			runCommand(ctx, a.PurgeNote)
		case "clear-archive":
			runCommand(ctx, a.ClearArchive)
		case "tags":
			runCommand(ctx, a.ListTags)
		case "addtag":
			runCommand(ctx, a.AddTag)
		case "mvtag":
			runCommand(ctx, a.RenameTag)
		case "rmtag":
			runCommand(ctx, a.DeleteTag)
		default:
			printlnFn(fmt.Sprintf("unknown command %q, try help", cmd))
		}
	}
}

func runCommand(ctx context.Context, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		printlnFn(fmt.Sprintf("error: %v", err))
	}
}
