package usecase

import (
	"context"
	"sort"
	"strings"

	"friendlyeats/internal/domain/entity"
	"friendlyeats/pkg/logger"
	"friendlyeats/pkg/utils"
)

// FilterState holds the user's current filter selections. Empty values
// are wildcards.
type FilterState struct {
	NameQuery string
	Country   string
	State     string
	City      string
	Category  string

	MinStars    float64
	MinStarsSet bool
}

// Matches is a pure conjunction over the individual predicates. It
// expects a normalized restaurant.
func (f FilterState) Matches(r *entity.Restaurant) bool {
	if query := strings.ToLower(strings.TrimSpace(f.NameQuery)); query != "" {
		if !strings.Contains(strings.ToLower(r.Name), query) {
			return false
		}
	}

	if f.Country != "" && r.Country != f.Country {
		return false
	}
	if f.State != "" && r.State != f.State {
		return false
	}
	if f.City != "" && r.City != f.City {
		return false
	}

	if selected := strings.ToLower(strings.TrimSpace(f.Category)); selected != "" {
		matched := false
		for _, label := range r.Categories {
			if strings.ToLower(label) == selected {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if f.MinStarsSet && r.RatingValue() < f.MinStars {
		return false
	}

	return true
}

// CatalogView is a session-scoped browsing state: the merged catalog,
// the filter selections and the 1-based page position. It is owned by a
// single session and is not safe for concurrent use.
type CatalogView struct {
	uc       *CatalogUseCase
	pageSize int

	restaurants []*entity.Restaurant
	nextCursor  string

	filter FilterState
	page   int

	detailed map[string]bool
	missing  map[string]bool // deleted ids, never re-requested
}

func (v *CatalogView) Filter() FilterState {
	return v.filter
}

// Every filter change invalidates the pagination position.

func (v *CatalogView) SetNameQuery(query string) {
	v.filter.NameQuery = query
	v.page = 1
}

// SetCountry cascades: changing country clears the dependent state and
// city selections.
func (v *CatalogView) SetCountry(country string) {
	if v.filter.Country != country {
		v.filter.State = ""
		v.filter.City = ""
	}
	v.filter.Country = country
	v.page = 1
}

// SetState clears the dependent city selection.
func (v *CatalogView) SetState(state string) {
	if v.filter.State != state {
		v.filter.City = ""
	}
	v.filter.State = state
	v.page = 1
}

func (v *CatalogView) SetCity(city string) {
	v.filter.City = city
	v.page = 1
}

func (v *CatalogView) SetCategory(category string) {
	v.filter.Category = category
	v.page = 1
}

func (v *CatalogView) SetMinStars(stars float64) {
	v.filter.MinStars = stars
	v.filter.MinStarsSet = true
	v.page = 1
}

func (v *CatalogView) ClearMinStars() {
	v.filter.MinStars = 0
	v.filter.MinStarsSet = false
	v.page = 1
}

// Filtered returns the restaurants matching every active filter, in
// catalog order.
func (v *CatalogView) Filtered() []*entity.Restaurant {
	filtered := make([]*entity.Restaurant, 0, len(v.restaurants))
	for _, restaurant := range v.restaurants {
		if v.filter.Matches(restaurant) {
			filtered = append(filtered, restaurant)
		}
	}
	return filtered
}

func (v *CatalogView) CurrentPage() int {
	return v.page
}

func (v *CatalogView) TotalPages() int {
	return utils.TotalPages(len(v.Filtered()), v.pageSize)
}

// Page returns the slice of the filtered list for the current page.
func (v *CatalogView) Page() []*entity.Restaurant {
	filtered := v.Filtered()
	start, end := utils.PageBounds(v.page, v.pageSize, len(filtered))
	return filtered[start:end]
}

// HasMore reports whether pages beyond the current one can be reached,
// locally or by fetching another raw batch.
func (v *CatalogView) HasMore() bool {
	return v.page < v.TotalPages() || v.nextCursor != ""
}

// Next advances one page. On the last locally-known page it first pulls
// the next raw batch through the cursor; this is the only place where
// pagination triggers a fetch. A fetch failure leaves the view
// untouched.
func (v *CatalogView) Next(ctx context.Context) error {
	if v.page < v.TotalPages() {
		v.page++
		return nil
	}

	if v.nextCursor == "" {
		return nil
	}

	batch, cursor, err := v.uc.LoadPage(ctx, v.pageSize, v.nextCursor)
	if err != nil {
		return err
	}

	v.restaurants = append(v.restaurants, batch...)
	v.nextCursor = cursor
	v.page++
	return nil
}

func (v *CatalogView) Previous() {
	if v.page > 1 {
		v.page--
	}
}

// Reload replaces the merged catalog with the full projection. On
// failure the previously loaded data stays available.
func (v *CatalogView) Reload(ctx context.Context) error {
	catalog, err := v.uc.LoadCatalog(ctx)
	if err != nil {
		return err
	}
	v.restaurants = catalog
	v.nextCursor = ""
	v.page = 1
	v.detailed = make(map[string]bool)
	return nil
}

// Option lists scan the full normalized catalog, not the filtered
// subset, so a selection never hides its siblings.

func (v *CatalogView) Countries() []string {
	options := make(map[string]bool)
	for _, r := range v.restaurants {
		if r.Country != "" {
			options[r.Country] = true
		}
	}
	return sorted(options)
}

func (v *CatalogView) States() []string {
	options := make(map[string]bool)
	for _, r := range v.restaurants {
		if v.filter.Country != "" && r.Country != v.filter.Country {
			continue
		}
		if r.State != "" {
			options[r.State] = true
		}
	}
	return sorted(options)
}

func (v *CatalogView) Cities() []string {
	options := make(map[string]bool)
	for _, r := range v.restaurants {
		if v.filter.Country != "" && r.Country != v.filter.Country {
			continue
		}
		if v.filter.State != "" && r.State != v.filter.State {
			continue
		}
		if r.City != "" {
			options[r.City] = true
		}
	}
	return sorted(options)
}

// Categories dedupes case-insensitively, keeping the first spelling seen.
func (v *CatalogView) Categories() []string {
	seen := make(map[string]string)
	for _, r := range v.restaurants {
		for _, label := range r.Categories {
			key := strings.ToLower(label)
			if _, ok := seen[key]; !ok {
				seen[key] = label
			}
		}
	}
	options := make([]string, 0, len(seen))
	for _, label := range seen {
		options = append(options, label)
	}
	sort.Strings(options)
	return options
}

// EnsureDetails batch-fetches full records for the visible page in one
// call. Ids reported missing are remembered and never requested again.
func (v *CatalogView) EnsureDetails(ctx context.Context) error {
	var wanted []string
	for _, r := range v.Page() {
		if !v.detailed[r.ID] && !v.missing[r.ID] {
			wanted = append(wanted, r.ID)
		}
	}
	if len(wanted) == 0 {
		return nil
	}

	details, missing, err := v.uc.LoadDetails(ctx, wanted)
	if err != nil {
		return err
	}

	byID := make(map[string]*entity.Restaurant, len(details))
	for _, d := range details {
		byID[d.ID] = d
	}
	for i, r := range v.restaurants {
		if d, ok := byID[r.ID]; ok {
			v.restaurants[i] = d
			v.detailed[d.ID] = true
		}
	}
	for _, id := range missing {
		v.missing[id] = true
	}
	return nil
}

// PreloadImages resolves the image URL for every restaurant on the
// current page and warms them in parallel. Individual failures are
// swallowed; the render never waits on an image.
func (v *CatalogView) PreloadImages(ctx context.Context) map[string]string {
	urls := make(map[string]string)
	if v.uc.images == nil {
		return urls
	}

	for _, r := range v.Page() {
		ref := r.Photo
		if ref == "" {
			continue
		}
		urls[r.ID] = v.uc.images.ResolveImageURL(ref)

		go func(id, ref string) {
			if err := v.uc.images.Prefetch(ctx, ref); err != nil {
				logger.Debug("image preload failed for %s: %v", id, err)
			}
		}(r.ID, ref)
	}

	return urls
}

func sorted(set map[string]bool) []string {
	options := make([]string, 0, len(set))
	for option := range set {
		options = append(options, option)
	}
	sort.Strings(options)
	return options
}
