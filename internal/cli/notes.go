package cli

import (
	"context"
	"fmt"
	"strings"

	"snapnote/internal/models"
	"snapnote/internal/store"
)

func (a *App) printNotes(notes []models.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(a.out, "(no notes)")
		return
	}
	for _, n := range notes {
		tags := ""
		if len(n.Tags) > 0 {
			tags = " [" + strings.Join(n.Tags, ", ") + "]"
		}
		fmt.Fprintf(a.out, "%s  %s%s  (updated %s)\n",
			n.ID, n.Title, tags, n.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func (a *App) ListNotes(ctx context.Context) error {
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	notes, err := a.store.Notes().List(ctx, user.ID)
	if err != nil {
		return err
	}
	a.printNotes(notes)
	return nil
}

func (a *App) ListArchive(ctx context.Context) error {
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	notes, err := a.store.Notes().ListArchived(ctx, user.ID)
	if err != nil {
		return err
	}
	a.printNotes(notes)
	return nil
}

func (a *App) SearchNotes(ctx context.Context) error {
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	text, err := GetSimpleText(a.reader, "Search text (empty to skip)", a.out)
	if err != nil {
		return err
	}
	tags, err := GetTags(a.reader, a.out)
	if err != nil {
		return err
	}

	notes, err := a.store.Notes().Search(ctx, user.ID, store.NoteQuery{Text: text, Tags: tags})
	if err != nil {
		return err
	}
	a.printNotes(notes)
	return nil
}

func (a *App) AddNote(ctx context.Context) error {
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}
	tags, err := GetTags(a.reader, a.out)
	if err != nil {
		return err
	}

	note, err := a.store.Notes().Create(ctx, user.ID, title, content, tags)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created note %s\n", note.ID)
	return nil
}

func (a *App) ShowNote(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Note id", a.out)
	if err != nil {
		return err
	}
	note, err := a.store.Notes().Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "# %s\n", note.Title)
	if len(note.Tags) > 0 {
		fmt.Fprintf(a.out, "tags: %s\n", strings.Join(note.Tags, ", "))
	}
	fmt.Fprintln(a.out, note.Content)
	return nil
}

func (a *App) EditNote(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Note id", a.out)
	if err != nil {
		return err
	}

	var update models.NoteUpdate
	title, err := GetSimpleText(a.reader, "New title (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if title != "" {
		update.Title = &title
	}
	content, err := GetMultiline(a.reader, "New content (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if content != "" {
		update.Content = &content
	}

	note, err := a.store.Notes().Update(ctx, id, update)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated %s\n", note.ID)
	return nil
}

func (a *App) ArchiveNote(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Note id", a.out)
	if err != nil {
		return err
	}
	if err := a.store.Notes().Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Archived (restore with 'restore')")
	return nil
}

func (a *App) RestoreNote(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Note id", a.out)
	if err != nil {
		return err
	}
	note, err := a.store.Notes().Restore(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Restored %s\n", note.Title)
	return nil
}

// PurgeNote permanently deletes a note after an explicit confirmation;
// deletion is irreversible, so the guard lives here, not in the store.
func (a *App) PurgeNote(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Note id", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetSimpleText(a.reader, "Permanently delete? This cannot be undone (yes/no)", a.out)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	if err := a.store.Notes().PermanentDelete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

func (a *App) ClearArchive(ctx context.Context) error {
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	confirm, err := GetSimpleText(a.reader, "Permanently delete all archived notes? (yes/no)", a.out)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	removed, err := a.store.Notes().ClearArchive(ctx, user.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed %d note(s)\n", removed)
	return nil
}
