package main

import (
	"fmt"
	"strings"

	"github.com/bawdo/sqldrill/internal/quoting"
)

// The bundled practice dataset: a compact music store in the shape of the
// classic Chinook database, small enough to seed into an in-memory SQLite
// database at startup.

const practiceSchema = `
CREATE TABLE Artist (
	ArtistId INTEGER PRIMARY KEY,
	Name     TEXT NOT NULL
);
CREATE TABLE Album (
	AlbumId  INTEGER PRIMARY KEY,
	Title    TEXT NOT NULL,
	ArtistId INTEGER NOT NULL REFERENCES Artist(ArtistId)
);
CREATE TABLE Genre (
	GenreId INTEGER PRIMARY KEY,
	Name    TEXT NOT NULL
);
CREATE TABLE Track (
	TrackId      INTEGER PRIMARY KEY,
	Name         TEXT NOT NULL,
	AlbumId      INTEGER REFERENCES Album(AlbumId),
	GenreId      INTEGER REFERENCES Genre(GenreId),
	Milliseconds INTEGER NOT NULL,
	UnitPrice    REAL NOT NULL
);
CREATE TABLE Customer (
	CustomerId INTEGER PRIMARY KEY,
	FirstName  TEXT NOT NULL,
	LastName   TEXT NOT NULL,
	Company    TEXT,
	Country    TEXT NOT NULL
);
CREATE TABLE Invoice (
	InvoiceId      INTEGER PRIMARY KEY,
	CustomerId     INTEGER NOT NULL REFERENCES Customer(CustomerId),
	BillingCountry TEXT NOT NULL,
	Total          REAL NOT NULL
);
`

type seedArtist struct {
	id   int
	name string
}

type seedAlbum struct {
	id       int
	title    string
	artistID int
}

type seedGenre struct {
	id   int
	name string
}

type seedTrack struct {
	id      int
	name    string
	albumID int
	genreID int
	ms      int
	price   float64
}

type seedCustomer struct {
	id      int
	first   string
	last    string
	company string // empty means NULL
	country string
}

type seedInvoice struct {
	id       int
	customer int
	country  string
	total    float64
}

// Aretha Franklin deliberately has no album so the LEFT JOIN exercise has a
// real answer; Beatles is the only artist starting with B.
var seedArtists = []seedArtist{
	{1, "Abba"},
	{2, "Beatles"},
	{3, "Queen"},
	{4, "Miles Davis"},
	{5, "Daft Punk"},
	{6, "Aretha Franklin"},
}

var seedAlbums = []seedAlbum{
	{1, "Abbey Road", 2},
	{2, "Revolver", 2},
	{3, "Arrival", 1},
	{4, "A Night at the Opera", 3},
	{5, "Kind of Blue", 4},
	{6, "Discovery", 5},
}

var seedGenres = []seedGenre{
	{1, "Rock"},
	{2, "Pop"},
	{3, "Jazz"},
	{4, "Electronic"},
}

var seedTracks = []seedTrack{
	{1, "Come Together", 1, 1, 259000, 0.99},
	{2, "Something", 1, 1, 182000, 0.99},
	{3, "Here Comes the Sun", 1, 1, 185000, 1.29},
	{4, "Eleanor Rigby", 2, 1, 127000, 0.99},
	{5, "Yellow Submarine", 2, 2, 158000, 0.99},
	{6, "Dancing Queen", 3, 2, 231000, 1.29},
	{7, "Knowing Me, Knowing You", 3, 2, 242000, 0.99},
	{8, "Bohemian Rhapsody", 4, 1, 354000, 1.99},
	{9, "Love of My Life", 4, 1, 218000, 0.99},
	{10, "So What", 5, 3, 545000, 1.29},
	{11, "Blue in Green", 5, 3, 337000, 0.99},
	{12, "One More Time", 6, 4, 320000, 1.29},
	{13, "Don't Stop Me Now", 4, 1, 209000, 1.49},
	{14, "Digital Love", 6, 4, 301000, 0.99},
}

var seedCustomers = []seedCustomer{
	{1, "Luis", "Goncalves", "Embraer", "Brazil"},
	{2, "Leonie", "Kohler", "", "Germany"},
	{3, "Francois", "Tremblay", "", "Canada"},
	{4, "Helena", "Holy", "JetBrains", "Czech Republic"},
	{5, "Mark", "O'Connor", "Telstra", "Australia"},
	{6, "Astrid", "Gruber", "", "Austria"},
}

var seedInvoices = []seedInvoice{
	{1, 1, "Brazil", 8.91},
	{2, 2, "Germany", 1.98},
	{3, 3, "Canada", 13.86},
	{4, 4, "Czech Republic", 0.99},
	{5, 5, "Australia", 5.94},
	{6, 1, "Brazil", 3.96},
	{7, 2, "Germany", 8.91},
	{8, 6, "Austria", 1.98},
}

// seedStatements renders the full seed script: schema plus inserts. String
// values go through quoting so names like "Don't Stop Me Now" survive.
func seedStatements() []string {
	stmts := []string{practiceSchema}
	for _, a := range seedArtists {
		stmts = append(stmts, fmt.Sprintf(
			"INSERT INTO Artist (ArtistId, Name) VALUES (%d, %s);",
			a.id, quoting.Literal(a.name)))
	}
	for _, al := range seedAlbums {
		stmts = append(stmts, fmt.Sprintf(
			"INSERT INTO Album (AlbumId, Title, ArtistId) VALUES (%d, %s, %d);",
			al.id, quoting.Literal(al.title), al.artistID))
	}
	for _, g := range seedGenres {
		stmts = append(stmts, fmt.Sprintf(
			"INSERT INTO Genre (GenreId, Name) VALUES (%d, %s);",
			g.id, quoting.Literal(g.name)))
	}
	for _, tr := range seedTracks {
		stmts = append(stmts, fmt.Sprintf(
			"INSERT INTO Track (TrackId, Name, AlbumId, GenreId, Milliseconds, UnitPrice) VALUES (%d, %s, %d, %d, %d, %.2f);",
			tr.id, quoting.Literal(tr.name), tr.albumID, tr.genreID, tr.ms, tr.price))
	}
	for _, cu := range seedCustomers {
		company := "NULL"
		if cu.company != "" {
			company = quoting.Literal(cu.company)
		}
		stmts = append(stmts, fmt.Sprintf(
			"INSERT INTO Customer (CustomerId, FirstName, LastName, Company, Country) VALUES (%d, %s, %s, %s, %s);",
			cu.id, quoting.Literal(cu.first), quoting.Literal(cu.last), company, quoting.Literal(cu.country)))
	}
	for _, in := range seedInvoices {
		stmts = append(stmts, fmt.Sprintf(
			"INSERT INTO Invoice (InvoiceId, CustomerId, BillingCountry, Total) VALUES (%d, %d, %s, %.2f);",
			in.id, in.customer, quoting.Literal(in.country), in.total))
	}
	return stmts
}

// openPractice opens an in-memory SQLite database and seeds the practice
// dataset into it.
func openPractice() (*dbConn, error) {
	conn, err := connect("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	for _, stmt := range seedStatements() {
		if _, err := conn.db.Exec(stmt); err != nil {
			_ = conn.close()
			first := strings.SplitN(strings.TrimSpace(stmt), "\n", 2)[0]
			return nil, fmt.Errorf("seed dataset (%s): %w", first, err)
		}
	}
	return conn, nil
}
