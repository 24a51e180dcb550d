package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophfund/internal/common"
	"github.com/dmitrijs2005/gophfund/internal/listing"
	"github.com/dmitrijs2005/gophfund/internal/models"
)

// view is what the screens slide over: the loaded campaigns narrowed and
// ordered by the local refinements.
func (a *App) view() []models.CampaignSummary {
	return listing.Apply(a.cursor.Snapshot().Items, listing.Options{
		CategorySlug: a.category,
		SearchText:   a.search,
		SortBy:       a.sort,
	})
}

func (a *App) perScreen() int {
	return cardsPerScreen(a.width())
}

func (a *App) printScreen() {
	view := a.view()
	if len(view) == 0 {
		printlnFn("No campaigns match.")
		return
	}

	a.pos = max(0, min(a.pos, len(view)-1))
	screen := listing.Window(view, a.pos, a.perScreen())
	printlnFn(renderScreen(screen, a.formatter, a.width()))

	snap := a.cursor.Snapshot()
	more := ""
	if snap.HasMore {
		more = ", more available"
	}
	printlnFn(fmt.Sprintf("%d-%d of %d loaded%s", a.pos+1, a.pos+len(screen), len(view), more))
}

func (a *App) reportError(err error) {
	switch {
	case errors.Is(err, common.ErrLocalDataNotAvailable):
		printlnFn("Server unreachable and nothing cached yet.")
	case errors.Is(err, common.ErrNotFound):
		printlnFn("Not found.")
	default:
		printlnFn("Error:", err.Error())
	}
}

func (a *App) List(ctx context.Context) error {
	a.printScreen()
	return nil
}

// Filter switches the server-side filter and reloads from the first page.
func (a *App) Filter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		names := make([]string, 0, len(models.Filters))
		for _, f := range models.Filters {
			names = append(names, string(f))
		}
		printlnFn(fmt.Sprintf("Filter: %s (one of %s)", a.filter, strings.Join(names, ", ")))
		return nil
	}

	a.filter = models.ParseFilter(args[0])
	a.pos = 0
	a.savePreferences(ctx)

	if err := a.cursor.SetFilter(ctx, a.filter); err != nil {
		a.reportError(err)
		return err
	}
	a.printScreen()
	return nil
}

// More fetches the next page of the current filter.
func (a *App) More(ctx context.Context) error {
	loaded, err := a.cursor.LoadMore(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}
	if !loaded {
		if a.cursor.Snapshot().IsLoading() {
			printlnFn("Still loading...")
		} else {
			printlnFn("No more campaigns.")
		}
		return nil
	}
	a.printScreen()
	return nil
}

// Next advances by one screen. When the next screen would run past what is
// loaded, another page is fetched first.
func (a *App) Next(ctx context.Context) error {
	per := a.perScreen()
	next := a.pos + per

	if next+per > len(a.view()) && a.cursor.Snapshot().HasMore {
		if _, err := a.cursor.LoadMore(ctx); err != nil {
			a.reportError(err)
			return err
		}
	}

	if next >= len(a.view()) {
		printlnFn("End of list.")
		return nil
	}
	a.pos = next
	a.printScreen()
	return nil
}

func (a *App) Prev(ctx context.Context) error {
	if a.pos == 0 {
		printlnFn("Start of list.")
		return nil
	}
	a.pos = max(0, a.pos-a.perScreen())
	a.printScreen()
	return nil
}

func (a *App) Category(ctx context.Context, args []string) error {
	if len(args) == 0 {
		current := a.category
		if current == "" {
			current = listing.AllCategories
		}
		printlnFn("Category:", current)
		return nil
	}

	a.category = strings.ToLower(args[0])
	if a.category == listing.AllCategories {
		a.category = ""
	}
	a.pos = 0
	a.savePreferences(ctx)
	a.printScreen()
	return nil
}

// Search narrows by free text; without arguments it clears the search.
func (a *App) Search(ctx context.Context, args []string) error {
	a.search = strings.TrimSpace(strings.Join(args, " "))
	a.pos = 0
	a.savePreferences(ctx)
	a.printScreen()
	return nil
}

func (a *App) Sort(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn(fmt.Sprintf("Sort: %s (one of %s, %s, %s)", a.sort, listing.SortImpact, listing.SortNewest, listing.SortUrgency))
		return nil
	}

	a.sort = listing.ParseSortBy(args[0])
	a.pos = 0
	a.savePreferences(ctx)
	a.printScreen()
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: show <slug>")
		return nil
	}

	d, err := a.catalog.Campaign(ctx, args[0])
	if err != nil {
		a.reportError(err)
		return err
	}
	printlnFn(renderDetail(d, a.formatter, a.width()))
	return nil
}

func (a *App) Categories(ctx context.Context) error {
	cats, err := a.catalog.Categories(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}
	if len(cats) == 0 {
		printlnFn("No categories.")
		return nil
	}
	for _, c := range cats {
		printlnFn(fmt.Sprintf("%-24s %s", c.Slug, c.Title))
	}
	return nil
}

func (a *App) Status(ctx context.Context) error {
	snap := a.cursor.Snapshot()
	p := a.catalog.Preferences(ctx)

	lastSync := p.LastSync
	if lastSync == "" {
		lastSync = "never"
	}
	category := a.category
	if category == "" {
		category = listing.AllCategories
	}

	printlnFn(fmt.Sprintf("Mode: %s", a.mode()))
	printlnFn(fmt.Sprintf("Filter: %s, category: %s, search: %q, sort: %s", a.filter, category, a.search, a.sort))
	printlnFn(fmt.Sprintf("Loaded: %d, more: %t, state: %s", len(snap.Items), snap.HasMore, snap.State))
	printlnFn(fmt.Sprintf("Last sync: %s", lastSync))

	cached, err := a.catalog.CachedCount(ctx)
	if err != nil {
		a.logger.Warn(ctx, "cannot count cached campaigns", "error", err)
		printlnFn("Cached: unknown")
		return nil
	}
	printlnFn(fmt.Sprintf("Cached: %d campaigns", cached))
	return nil
}

// ClearCache empties the local cache. The current browsing state is saved
// again so only cached campaigns and the sync time are lost.
func (a *App) ClearCache(ctx context.Context) error {
	if err := a.catalog.ClearCache(ctx); err != nil {
		a.reportError(err)
		return err
	}
	a.savePreferences(ctx)
	printlnFn("Local cache cleared.")
	return nil
}
