// Carousel serves slideshow components built from hand-authored slides and site pages.
// Carousels, slides, and pages are stored in sqlite.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/url"
	"os"

	"github.com/TheLab-ms/carousel/engine"
	"github.com/TheLab-ms/carousel/modules/carousel"
	"github.com/TheLab-ms/carousel/modules/pages"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HttpAddr string `envDefault:":8080"`
	DBPath   string `envDefault:"carousel.sqlite3"`

	// SelfURL is the public base URL used for absolute page links.
	// Discovered from the LAN address when unset.
	SelfURL string

	// Language is the BCP 47 tag used for control labels.
	Language string `envDefault:"en"`

	// Seed adds demo pages and a carousel to an empty database.
	Seed bool
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	conf, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "CAROUSEL_", UseFieldNameByDefault: true})
	if err != nil {
		panic(err)
	}

	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		err := engine.CheckHealth(healthURL(conf))
		if err != nil {
			panic(err)
		}
		return
	}

	app, err := newApp(context.Background(), conf, getSelfURL(conf))
	if err != nil {
		panic(err)
	}

	app.Run(context.TODO())
}

func newApp(ctx context.Context, conf Config, self *url.URL) (*engine.App, error) {
	database, err := engine.OpenDB(conf.DBPath)
	if err != nil {
		return nil, err
	}

	router := engine.NewRouter()
	router.HandleFunc("GET /healthz", engine.ServeHealthCheck(database))

	a := engine.NewApp(conf.HttpAddr, router)

	pagesModule := pages.New(database, self)
	a.Add(pagesModule)

	carouselModule := carousel.New(database, pagesModule, carousel.MustCatalog(conf.Language))
	a.Add(carouselModule)

	for _, spec := range a.Configs().List() {
		slog.Info("registered config spec", "module", spec.Module, "fields", len(spec.Fields()))
	}

	if conf.Seed {
		if err := seed(ctx, pagesModule, carouselModule.Store()); err != nil {
			return nil, fmt.Errorf("seeding demo content: %w", err)
		}
	}

	return a, nil
}

func healthURL(conf Config) string {
	_, port, err := net.SplitHostPort(conf.HttpAddr)
	if err != nil || port == "" {
		port = "8080"
	}
	return fmt.Sprintf("http://localhost:%s/healthz", port)
}

func getSelfURL(conf Config) *url.URL {
	str := conf.SelfURL
	if str == "" {
		conn, err := net.Dial("udp4", "8.8.8.8:53")
		if err != nil {
			panic(err)
		}
		conn.Close()

		_, port, _ := net.SplitHostPort(conf.HttpAddr)
		str = fmt.Sprintf("http://%s:%s", conn.LocalAddr().(*net.UDPAddr).IP, port)
		slog.Info("discovered self URL", "url", str)
	}

	self, err := url.Parse(str)
	if err != nil {
		panic(err)
	}
	return self
}
