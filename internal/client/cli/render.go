package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/dkorolev84/newsline/internal/client/models"
)

func (a *App) printError(format string, args ...any) {
	color.New(color.FgRed).Fprintf(a.out, "✗ "+format+"\n", args...)
}

func (a *App) printSuccess(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(a.out, "✓ "+format+"\n", args...)
}

func (a *App) printInfo(format string, args ...any) {
	color.New(color.FgCyan).Fprintf(a.out, format+"\n", args...)
}

// newTable builds a borderless left-aligned table for list views.
func newTable(w io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
		}),
	)
	table.Header(headers)
	return table
}

func (a *App) renderPosts(posts []models.Post) {
	table := newTable(a.out, []string{"#", "TITLE", "AUTHOR", "LIKES", "COMMENTS", "AGE"})
	for i, p := range posts {
		author := p.AuthorID
		if p.Author != nil {
			author = p.Author.Name
		}
		likes := strconv.Itoa(p.LikesCount)
		if liked, ok := a.liked[p.ID]; ok && liked {
			likes += " ♥"
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			truncate(p.Title, 48),
			author,
			likes,
			strconv.Itoa(p.CommentsCount),
			formatAge(p.CreatedAt),
		})
	}
	table.Render()
	a.renderPageFooter(a.feed.CurrentPage(), a.feed.TotalPages(), a.feed.HasMore())
}

func (a *App) renderComments(comments []models.Comment) {
	table := newTable(a.out, []string{"#", "AUTHOR", "COMMENT", "AGE"})
	for i, c := range comments {
		author := c.UserID
		if c.User != nil {
			author = c.User.Name
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			author,
			truncate(c.Text, 60),
			formatAge(c.CreatedAt),
		})
	}
	table.Render()
}

func (a *App) renderUsers(users []models.User) {
	table := newTable(a.out, []string{"#", "NAME", "EMAIL", "JOINED"})
	for i, u := range users {
		table.Append([]string{
			strconv.Itoa(i + 1),
			u.Name,
			u.Email,
			formatAge(u.CreatedAt),
		})
	}
	table.Render()
	a.renderPageFooter(a.userList.CurrentPage(), a.userList.TotalPages(), a.userList.HasMore())
}

func (a *App) renderPageFooter(current, total int, hasMore bool) {
	if hasMore {
		fmt.Fprintf(a.out, "page %d/%d, type 'more' to load more\n", current, total)
	} else if total > 1 {
		fmt.Fprintf(a.out, "page %d/%d\n", current, total)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// formatAge renders a timestamp as a compact relative age ("5m", "3h", "2d").
func formatAge(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
