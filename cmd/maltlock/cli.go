package main

import (
	"context"
	"io"

	"github.com/rlatmfrl24/maltlock"
	"github.com/rlatmfrl24/maltlock/crawl"
	"github.com/rlatmfrl24/maltlock/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Items   maltlock.ItemService
	Runs    maltlock.CrawlRunService
	Crawler *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Sites  SitesCmd  `cmd:"" help:"List crawl target sites"`
	Crawl  CrawlCmd  `cmd:"" help:"Crawl one site or all sites"`
	Items  ItemsCmd  `cmd:"" help:"List stored items for a site"`
	Runs   RunsCmd   `cmd:"" help:"List crawl runs for a site"`
	Delete DeleteCmd `cmd:"" help:"Delete a stored item by ID"`
	Clear  ClearCmd  `cmd:"" help:"Delete all items and crawl runs"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct{}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Site        string `arg:"" optional:"" help:"Site ID to crawl (see 'maltlock sites')"`
	All         bool   `short:"a" help:"Crawl every site in the catalog"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent site limit with --all"`
}

// ItemsCmd is the "items" subcommand.
type ItemsCmd struct {
	Site  string `arg:"" help:"Site ID"`
	Limit int    `short:"n" default:"20" help:"Maximum items to show"`
	Full  bool   `help:"Show summary and preview URL columns"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Site  string `arg:"" help:"Site ID"`
	Limit int    `short:"n" default:"10" help:"Maximum runs to show"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Item ID"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Force bool `help:"Confirm deletion"`
}
