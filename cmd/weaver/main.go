package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mcherring7/topology-weaver/internal/canvas"
	"github.com/mcherring7/topology-weaver/internal/config"
	"github.com/mcherring7/topology-weaver/internal/domain"
	"github.com/mcherring7/topology-weaver/internal/loader"
	"github.com/mcherring7/topology-weaver/internal/palette"
	"github.com/mcherring7/topology-weaver/internal/render"
	"github.com/mcherring7/topology-weaver/internal/service"
	"github.com/mcherring7/topology-weaver/internal/store"
	"github.com/mcherring7/topology-weaver/internal/watcher"
)

func main() {
	_ = godotenv.Load()

	// Command line flags, overridable through the environment
	configPath := flag.String("config", getenv("WEAVER_CONFIG", ""), "config file path (default: discovered)")
	sitesPath := flag.String("sites", getenv("WEAVER_SITES", ""), "topology YAML file (default: built-in demo)")
	outBase := flag.String("out", getenv("WEAVER_OUT", "topology"), "output path; the format extension is appended")
	width := flag.Float64("width", getenvFloat("WEAVER_WIDTH", 1280), "canvas width in pixels")
	height := flag.Float64("height", getenvFloat("WEAVER_HEIGHT", 800), "canvas height in pixels")
	format := flag.String("format", getenv("WEAVER_FORMAT", "svg"), "output format: svg, png, json, or both (svg+png)")
	watchMode := flag.Bool("watch", false, "keep running and re-render when the config file changes")
	selectSite := flag.String("select", "", "site name or ID to render emphasized")
	dumpSites := flag.String("dump-sites", "", "write the loaded topology as YAML to this path and exit")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting topology-weaver...")

	exporters, err := exportersFor(*format)
	if err != nil {
		log.Fatalf("Invalid format: %v", err)
	}

	cfg, cfgPath, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfgPath != "" {
		log.Printf("Config loaded: %s", cfgPath)
	} else {
		log.Println("No config file found, using defaults")
	}

	// Initialize the site store and authoring service
	siteStore := store.NewMemoryStore()
	eventBus := service.NewEventBus()
	sites := service.NewSiteService(siteStore, eventBus)

	// Surface the event stream as log lines; a graphical host would show
	// these as toasts.
	events := make(chan service.Event, 100)
	eventBus.Subscribe(events)
	go func() {
		for event := range events {
			log.Printf("event %s: %v", event.Type, event.Payload)
		}
	}()

	if err := loadTopology(sites, *sitesPath); err != nil {
		log.Fatalf("Failed to load topology: %v", err)
	}
	log.Printf("Topology ready: %d sites", siteStore.Len())

	if *dumpSites != "" {
		data, err := loader.ExportYAML(topologyName(*sitesPath), sites.Sites())
		if err != nil {
			log.Fatalf("Failed to export topology: %v", err)
		}
		if err := os.WriteFile(*dumpSites, data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", *dumpSites, err)
		}
		log.Printf("Wrote %s", *dumpSites)
		return
	}

	// renderSnapshot builds a fresh engine from the given config so layout
	// and theme edits take full effect, derives one scene, and writes it in
	// every requested format.
	renderSnapshot := func(cfg *config.Config) error {
		colors := palette.Default()
		colors.Merge(cfg.Theme.Colors)

		engine := canvas.NewEngine(canvas.Config{
			Sites:   sites,
			Sink:    sites,
			Color:   colors.Lookup,
			Measure: func() (float64, float64) { return *width, *height },
			Layout:  cfg.Layout(),
			OnSelect: func(siteID string, selected bool) {
				eventBus.Publish(service.Event{
					Type:    service.EventSelectionChanged,
					Payload: map[string]interface{}{"site_id": siteID, "selected": selected},
				})
			},
			OnResize: func(w, h float64) {
				eventBus.Publish(service.Event{
					Type:    service.EventCanvasResized,
					Payload: map[string]interface{}{"width": w, "height": h},
				})
			},
		})
		defer engine.Close()
		engine.Measure()

		if *selectSite != "" {
			if id := findSiteID(sites, *selectSite); id != "" {
				engine.ClickSite(id)
			} else {
				log.Printf("No site matches -select %q", *selectSite)
			}
		}

		scene := engine.Scene()
		for _, exporter := range exporters {
			path := *outBase + "." + exporter.Format()
			if err := writeSnapshot(exporter, scene, path); err != nil {
				return err
			}
			log.Printf("Wrote %s", path)
		}
		return nil
	}

	if err := renderSnapshot(cfg); err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	if !*watchMode {
		return
	}
	if cfgPath == "" {
		log.Fatalf("-watch needs a config file to watch; create one at %s", config.DefaultConfigPath())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := watcher.New(cfgPath, func() {
		fresh, _, err := config.LoadFromPath(cfgPath)
		if err != nil {
			log.Printf("Config reload failed, keeping last render: %v", err)
			return
		}
		if err := renderSnapshot(fresh); err != nil {
			log.Printf("Re-render failed: %v", err)
		}
	})

	log.Println("Watching for config changes, Ctrl-C to stop...")
	if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Watcher error: %v", err)
	}
	log.Println("Stopped")
}

// loadConfig resolves the -config flag: explicit path, else discovery, else
// built-in defaults.
func loadConfig(path string) (*config.Config, string, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// exportersFor expands the -format flag into exporters. "both" is the
// svg+png pair.
func exportersFor(format string) ([]render.Exporter, error) {
	if format == "both" {
		svg, _ := render.ForFormat("svg")
		png, _ := render.ForFormat("png")
		return []render.Exporter{svg, png}, nil
	}
	exporter, err := render.ForFormat(format)
	if err != nil {
		return nil, err
	}
	return []render.Exporter{exporter}, nil
}

func writeSnapshot(exporter render.Exporter, scene *canvas.Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := exporter.Export(scene, f); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// findSiteID resolves a -select query against site IDs first, then names.
func findSiteID(sites *service.SiteService, query string) string {
	for _, site := range sites.Sites() {
		if site.ID == query {
			return site.ID
		}
	}
	for _, site := range sites.Sites() {
		if strings.EqualFold(site.Name, query) {
			return site.ID
		}
	}
	return ""
}

// loadTopology fills the store from a YAML file, or with the built-in demo
// WAN when no file is given.
func loadTopology(sites *service.SiteService, path string) error {
	if path == "" {
		log.Println("No -sites file given, using built-in demo topology")
		return seedDemoTopology(sites)
	}
	loaded, err := loader.LoadYAML(path)
	if err != nil {
		return err
	}
	for _, site := range loaded {
		if err := sites.CreateSite(site); err != nil {
			return fmt.Errorf("create %s: %w", site.Name, err)
		}
	}
	log.Printf("Loaded %d sites from %s", len(loaded), path)
	return nil
}

// topologyName labels a dumped topology after its source file, or "demo"
// for the built-in one.
func topologyName(sitesPath string) string {
	if sitesPath == "" {
		return "demo"
	}
	base := filepath.Base(sitesPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// seedDemoTopology creates the built-in WAN: six sites spanning every
// category, every circuit type and every carrier, spread around the two hub
// anchors.
func seedDemoTopology(sites *service.SiteService) error {
	demo := []*domain.Site{
		{
			Name:     "Denver HQ",
			Location: "Denver, CO",
			Category: domain.CategoryHeadquarters,
			Connections: []domain.Connection{
				{Type: domain.ConnMPLS, Bandwidth: "500M", Provider: domain.ProviderLumen},
				{Type: domain.ConnDIA, Bandwidth: "1G", Provider: domain.ProviderZayo},
			},
			Coordinates: domain.Coordinates{X: 0.18, Y: 0.30},
		},
		{
			Name:     "Chicago DC",
			Location: "Chicago, IL",
			Category: domain.CategoryDataCenter,
			Connections: []domain.Connection{
				{Type: domain.ConnMPLS, Bandwidth: "1G", Provider: domain.ProviderATT},
				{Type: domain.ConnDirectConnect, Bandwidth: "10G", Provider: domain.ProviderZayo},
			},
			Coordinates: domain.Coordinates{X: 0.82, Y: 0.30},
		},
		{
			Name:     "Portland Branch",
			Location: "Portland, OR",
			Category: domain.CategoryBranch,
			Connections: []domain.Connection{
				{Type: domain.ConnBroadband, Bandwidth: "300M", Provider: domain.ProviderComcast},
			},
			Coordinates: domain.Coordinates{X: 0.12, Y: 0.68},
		},
		{
			Name:     "Austin Branch",
			Location: "Austin, TX",
			Category: domain.CategoryBranch,
			Connections: []domain.Connection{
				{Type: domain.ConnMPLS, Bandwidth: "200M", Provider: domain.ProviderVerizon},
				{Type: domain.ConnLTE, Bandwidth: "50M", Provider: domain.ProviderVerizon},
			},
			Coordinates: domain.Coordinates{X: 0.30, Y: 0.85},
		},
		{
			Name:     "Boston Branch",
			Location: "Boston, MA",
			Category: domain.CategoryBranch,
			Connections: []domain.Connection{
				{Type: domain.ConnBroadband, Bandwidth: "500M", Provider: domain.ProviderComcast},
				{Type: domain.ConnDIA, Bandwidth: "500M", Provider: domain.ProviderLumen},
			},
			Coordinates: domain.Coordinates{X: 0.70, Y: 0.85},
		},
		{
			Name:     "AWS us-east-1",
			Location: "Ashburn, VA",
			Category: domain.CategoryCloud,
			Connections: []domain.Connection{
				{Type: domain.ConnDirectConnect, Bandwidth: "10G", Provider: domain.ProviderATT},
			},
			Coordinates: domain.Coordinates{X: 0.88, Y: 0.62},
		},
	}

	for _, site := range demo {
		if err := sites.CreateSite(site); err != nil {
			return fmt.Errorf("create %s: %w", site.Name, err)
		}
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return f
}
