package ports

import "context"

// EditorOpener opens files in an external editor and waits for it to exit
type EditorOpener interface {
	OpenFiles(ctx context.Context, files []string) error
}
