package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/c2ccombos/internal/config"
	"github.com/c2ccombos/internal/domain"
	"github.com/c2ccombos/internal/infrastructure/c2c"
	"github.com/c2ccombos/internal/pkg/logger"
	"github.com/c2ccombos/internal/pkg/utils"
	"github.com/c2ccombos/internal/usecase"
)

// multiFlag - повторяемый флаг вида -extra key=value
type multiFlag []string

func (m *multiFlag) String() string {
	return strings.Join(*m, ",")
}

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func main() {
	if len(os.Args) < 2 || os.Args[1] != "near" {
		fmt.Fprintln(os.Stderr, "Usage: c2ccombos near [flags] <lon> <lat> <box>")
		fmt.Fprintln(os.Stderr, "Find catalog routes near paragliding takeoffs around a GPS point.")
		os.Exit(2)
	}
	os.Exit(runNear(os.Args[2:]))
}

func runNear(args []string) int {
	fs := flag.NewFlagSet("near", flag.ExitOnError)
	act := fs.String("act", "", "activity filter, comma-separated for multiple")
	wtyp := fs.String("wtyp", "", "waypoint type to consider, comma-separated for multiple")
	maxDistance := fs.Float64("max-distance", 0, "max distance in meters to match routes to waypoints")
	routePageSize := fs.Int("route-page-size", 0, "routes page size")
	routeMaxItems := fs.Int("route-max-items", 0, "routes fetch limit")
	wpPageSize := fs.Int("wp-page-size", 0, "waypoints page size")
	wpMaxItems := fs.Int("wp-max-items", 0, "waypoints fetch limit")
	lang := fs.String("lang", "", "preferred language code for localized fields")
	fields := fs.String("fields", "", "comma-separated list of fields to return")
	orderBy := fs.String("orderby", "", "field to order by")
	order := fs.String("order", "", "asc or desc")
	var extras multiFlag
	fs.Var(&extras, "extra", "additional key=value pair passed directly to the API (can be repeated)")
	fs.Parse(args)

	if fs.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Usage: c2ccombos near [flags] <lon> <lat> <box>")
		return 2
	}
	var lon, lat, box float64
	for i, dst := range []*float64{&lon, &lat, &box} {
		if _, err := fmt.Sscanf(fs.Arg(i), "%g", dst); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid numeric argument %q\n", fs.Arg(i))
			return 2
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Логи уходят в stderr, stdout остаётся для таблицы результатов
	log, err := logger.New("warn")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	if *act == "" {
		*act = cfg.Search.DefaultActivity
	}
	if *wtyp == "" {
		*wtyp = cfg.Search.DefaultWaypointType
	}
	if *maxDistance == 0 {
		*maxDistance = cfg.Search.MaxDistanceM
	}
	if *routePageSize == 0 {
		*routePageSize = cfg.Search.RoutePageSize
	}
	if *routeMaxItems == 0 {
		*routeMaxItems = cfg.Search.RouteMaxItems
	}
	if *wpPageSize == 0 {
		*wpPageSize = cfg.Search.WaypointPageSize
	}
	if *wpMaxItems == 0 {
		*wpMaxItems = cfg.Search.WaypointMaxItems
	}

	fieldList := []string{
		"document_id", "locales", "geometry",
		"rock_free_rating", "rock_required_rating", "global_rating",
	}
	if *fields != "" {
		fieldList = splitCSV(*fields)
	}

	base := domain.BaseFilter{
		Lang:    *lang,
		Fields:  fieldList,
		OrderBy: *orderBy,
		Order:   *order,
	}
	wpFilter := domain.WaypointFilter{
		BaseFilter:    base,
		Activities:    splitCSV(*act),
		WaypointTypes: splitCSV(*wtyp),
	}
	routeFilter := domain.RouteFilter{
		BaseFilter: base,
		Activities: splitCSV(*act),
	}
	for _, entry := range extras {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		wpFilter = wpFilter.Set(k, v)
		routeFilter = routeFilter.Set(k, v)
	}

	catalogRepo := c2c.NewCatalogClient(&cfg.Catalog, log)
	searchUC := usecase.NewSearchUseCase(catalogRepo, log, cfg.Catalog.SiteURL, cfg.Search)

	ctx := context.Background()
	center := utils.Project(lon, lat)
	searchBox := utils.BBoxAround(center, box)

	waypoints, err := searchUC.WaypointsInBox(ctx, searchBox, wpFilter, *wpPageSize, *wpMaxItems)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Waypoint fetch failed: %v\n", err)
		return 1
	}
	fmt.Printf("Waypoints fetched: %d\n", len(waypoints))

	matches, err := searchUC.RoutesNearWaypoints(ctx, waypoints, routeFilter, *maxDistance, *routePageSize, *routeMaxItems)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Route fetch failed: %v\n", err)
		return 1
	}
	fmt.Printf("Matches found: %d (<= %.0f m)\n\n", len(matches), *maxDistance)

	printGrouped(matches, *lang, *maxDistance, cfg.Catalog.SiteURL)
	return 0
}

// printGrouped - вывод совпадений, сгруппированных по вейпоинту.
// Вейпоинты идут по убыванию числа маршрутов, маршруты - по расстоянию.
func printGrouped(matches []domain.Match, lang string, maxDistance float64, siteURL string) {
	grouped := make(map[int64][]domain.Match)
	var order []int64
	for _, m := range matches {
		wid, ok := m.Waypoint.ID()
		if !ok {
			continue
		}
		if _, seen := grouped[wid]; !seen {
			order = append(order, wid)
		}
		grouped[wid] = append(grouped[wid], m)
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := grouped[order[i]], grouped[order[j]]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a[0].Waypoint.Title(lang) < b[0].Waypoint.Title(lang)
	})

	for _, wid := range order {
		mlist := grouped[wid]
		wp := mlist[0].Waypoint
		fmt.Println(strings.Repeat("=", 80))
		fmt.Printf("Décollage: %s\n", wp.Title(lang))
		if url, ok := wp.URL(siteURL); ok {
			fmt.Printf("URL       : %s\n", url)
		}
		fmt.Printf("Routes    : %d within %d m\n\n", len(mlist), int(maxDistance))

		sort.SliceStable(mlist, func(i, j int) bool {
			return mlist[i].Distance < mlist[j].Distance
		})

		fmt.Printf("%9s | %-12s | %-50s | URL\n", "Dist (m)", "Diff", "Route")
		fmt.Println(strings.Repeat("-", 80))
		for _, m := range mlist {
			url, _ := m.Route.URL(siteURL)
			fmt.Printf("%9d | %-12s | %-50s | %s\n",
				int(m.Distance+0.5),
				truncate(routeDifficulty(m.Route), 12),
				truncate(m.Route.Title(lang), 50),
				url,
			)
		}
		fmt.Println()
	}
}

// routeDifficulty - сводка сложности маршрута вида "6a (obl 5c)"
func routeDifficulty(r domain.Document) string {
	free := r.GetString("rock_free_rating")
	if free == "" {
		free = r.GetString("global_rating")
	}
	oblig := r.GetString("rock_required_rating")
	switch {
	case free != "" && oblig != "":
		return fmt.Sprintf("%s (obl %s)", free, oblig)
	case free != "":
		return free
	}
	return "-"
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
