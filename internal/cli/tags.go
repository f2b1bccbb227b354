package cli

import (
	"context"
	"fmt"
)

func (a *App) ListTags(ctx context.Context) error {
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	tags, err := a.store.Tags().List(ctx, user.ID)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		fmt.Fprintln(a.out, "(no tags)")
		return nil
	}
	for _, t := range tags {
		fmt.Fprintf(a.out, "%s  %s\n", t.ID, t.Name)
	}
	return nil
}

func (a *App) AddTag(ctx context.Context) error {
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Tag name", a.out)
	if err != nil {
		return err
	}

	tag, err := a.store.Tags().Create(ctx, user.ID, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Tag %q (%s)\n", tag.Name, tag.ID)
	return nil
}

func (a *App) RenameTag(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Tag id", a.out)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "New name", a.out)
	if err != nil {
		return err
	}

	tag, err := a.store.Tags().Rename(ctx, id, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Renamed to %q\n", tag.Name)
	return nil
}

// DeleteTag removes a tag after confirmation: deletion also strips the tag
// from every note referencing it.
func (a *App) DeleteTag(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Tag id", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetSimpleText(a.reader, "Delete tag and remove it from all notes? (yes/no)", a.out)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	if err := a.store.Tags().Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}
