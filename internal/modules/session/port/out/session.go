package out

import "context"

// Display prints everything the session shows outside of prompts.
type Display interface {
	Banner(ctx context.Context, title string, commands []string) error
	Blank(ctx context.Context) error
	Stat(ctx context.Context, label string, value float64, unit string) error
	List(ctx context.Context, heading string, items []string) error
	Notice(ctx context.Context, text string) error
}
