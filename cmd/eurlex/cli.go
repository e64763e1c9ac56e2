package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/eurlex"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Executor  eurlex.QueryExecutor
	Documents eurlex.DocumentService
	Records   eurlex.QueryRecordService
	Writer    eurlex.NoticeWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Endpoint  string        `env:"EURLEX_ENDPOINT" default:"http://publications.europa.eu/webapi/rdf/sparql" help:"SPARQL endpoint URL"`
	BaseURL   string        `name:"base-url" env:"EURLEX_BASE_URL" default:"http://publications.europa.eu" help:"Base URL for CELEX and cellar identifiers"`
	Timeout   time.Duration `env:"EURLEX_TIMEOUT" default:"30s" help:"HTTP request timeout"`
	DB        string        `name:"db" env:"EURLEX_DB" help:"Query history database path (default ~/.eurlex/eurlex.db)"`
	RateLimit float64       `name:"rate-limit" default:"0" help:"Maximum requests per second (0 disables)"`
	Verbose   bool          `short:"v" help:"Enable debug logging"`

	Query   QueryCmd   `cmd:"" help:"Print the SPARQL query for the given options"`
	Run     RunCmd     `cmd:"" help:"Build and execute a query, printing tab-separated results"`
	Notice  NoticeCmd  `cmd:"" help:"Download an XML notice for a document"`
	Data    DataCmd    `cmd:"" help:"Retrieve text, title or identifiers of a document"`
	History HistoryCmd `cmd:"" help:"Inspect previously executed queries"`
}

// QueryFlags are the query builder options shared by query and run.
type QueryFlags struct {
	Type       string `short:"t" default:"any" help:"Resource type: any, directive, regulation, decision, recommendation, international_agreement, caselaw, ag_opinion, manual, proposal, national_implementation"`
	ManualType string `name:"manual-type" help:"Resource-type code used with --type=manual"`
	Directory  string `help:"Directory code; narrower codes are included"`
	Sector     string `help:"CELEX sector (0-9)"`

	Corrigenda       bool `help:"Include corrigenda"`
	Celex            bool `default:"true" negatable:"" help:"Include CELEX numbers"`
	LegalBasis       bool `name:"legal-basis" help:"Include legal basis"`
	Date             bool `help:"Include document date"`
	DateForce        bool `name:"date-force" help:"Include entry-into-force date"`
	DateEndValid     bool `name:"date-end-valid" help:"Include end-of-validity date"`
	DateTransposed   bool `name:"date-transposed" help:"Include transposition deadline (directives)"`
	DateLodged       bool `name:"date-lodged" help:"Include lodging date"`
	Force            bool `help:"Include in-force flag"`
	Eurovoc          bool `help:"Include EuroVoc descriptors"`
	Author           bool `help:"Include authors"`
	Citations        bool `help:"Include cited works"`
	CourtProcedure   bool `name:"court-procedure" help:"Include court procedure"`
	ECLI             bool `name:"ecli" help:"Include ECLI"`
	AdvocateGeneral  bool `name:"advocate-general" help:"Include Advocate General"`
	JudgeRapporteur  bool `name:"judge-rapporteur" help:"Include judge-rapporteur"`
	CourtFormation   bool `name:"court-formation" help:"Include court formation"`
	Scholarship      bool `help:"Include related scholarship"`
	Proposal         bool `help:"Include related proposals"`
	IncludeDirectory bool `name:"include-directory" help:"Include directory codes"`
	IncludeSector    bool `name:"include-sector" help:"Include sector"`

	Order bool `help:"Order results by date"`
	Limit int  `help:"Maximum number of results (0 for no limit)"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	QueryFlags `embed:""`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	QueryFlags `embed:""`

	SPARQL  string `name:"sparql" help:"Execute this SPARQL query instead of building one"`
	NoSave  bool   `name:"no-save" help:"Do not record the query in history"`
	Lenient bool   `help:"Log query failures and print an empty result instead of failing"`
}

// NoticeCmd is the "notice" subcommand.
type NoticeCmd struct {
	Ref       string   `arg:"" help:"CELEX number, cellar id or resource URL"`
	Kind      string   `short:"k" default:"tree" enum:"object,tree,branch" help:"Notice kind (object, tree, branch)"`
	Lang      []string `short:"l" name:"lang" help:"Preferred languages, most preferred first (max 3)"`
	OutputDir string   `short:"o" name:"output-dir" default:"." help:"Directory to write the notice to"`
	Filename  string   `short:"f" help:"File name (default: last segment of the notice URL)"`
	Append    bool     `help:"Append to an existing file instead of overwriting it"`
}

// DataCmd is the "data" subcommand.
type DataCmd struct {
	Ref             string   `arg:"" help:"CELEX number, cellar id or resource URL"`
	Type            string   `short:"t" default:"text" enum:"text,title,ids" help:"Data to retrieve (text, title, ids)"`
	Lang            []string `short:"l" name:"lang" help:"Preferred languages, most preferred first (max 3)"`
	Breaks          bool     `help:"Keep page and document break markers"`
	Markdown        bool     `help:"Render HTML documents as Markdown"`
	CaselawMetadata bool     `name:"caselaw-metadata" help:"Split case-law titles into title, parties and case number"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	List HistoryListCmd `cmd:"" default:"withargs" help:"List recorded queries"`
	Show HistoryShowCmd `cmd:"" help:"Show a recorded query and its results"`
	Rm   HistoryRmCmd   `cmd:"" help:"Delete a recorded query"`
}

// HistoryListCmd is the "history list" subcommand.
type HistoryListCmd struct {
	Type  string `short:"t" help:"Only show queries for this resource type"`
	Limit int    `short:"n" default:"20" help:"Maximum number of records"`
}

// HistoryShowCmd is the "history show" subcommand.
type HistoryShowCmd struct {
	ID string `arg:"" help:"Record ID"`
}

// HistoryRmCmd is the "history rm" subcommand.
type HistoryRmCmd struct {
	ID string `arg:"" help:"Record ID"`
}
