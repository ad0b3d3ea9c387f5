package exercise

// Catalog returns the built-in exercise set for the bundled music-store
// dataset. IDs are stable so shown/remaining bookkeeping survives edits to
// prompt text.
func Catalog() []Record {
	return []Record{
		{
			ID:           "artists-all",
			Prompt:       "List the names of all artists.",
			Hint:         "A plain SELECT of one column is enough.",
			Tables:       []string{"Artist"},
			Difficulty:   Beginner,
			ReferenceSQL: "SELECT Name FROM Artist;",
			Concepts:     []string{"SELECT"},
		},
		{
			ID:           "artists-b",
			Prompt:       "Find the artists whose name starts with the letter B.",
			Hint:         "LIKE with the pattern 'B%' matches names beginning with B.",
			Tables:       []string{"Artist"},
			Difficulty:   Beginner,
			ReferenceSQL: "SELECT Name FROM Artist WHERE Name LIKE 'B%';",
			Concepts:     []string{"WHERE", "LIKE"},
		},
		{
			ID:           "albums-count",
			Prompt:       "How many albums are in the database?",
			Hint:         "COUNT(*) counts rows.",
			Tables:       []string{"Album"},
			Difficulty:   Beginner,
			ReferenceSQL: "SELECT COUNT(*) FROM Album;",
			Concepts:     []string{"COUNT"},
		},
		{
			ID:           "tracks-expensive",
			Prompt:       "Show the name and unit price of every track costing more than 1.00, most expensive first.",
			Hint:         "Filter with WHERE and sort with ORDER BY ... DESC.",
			Tables:       []string{"Track"},
			Difficulty:   Beginner,
			ReferenceSQL: "SELECT Name, UnitPrice FROM Track WHERE UnitPrice > 1.00 ORDER BY UnitPrice DESC;",
			Concepts:     []string{"WHERE", "ORDER BY"},
		},
		{
			ID:           "tracks-top5-longest",
			Prompt:       "Show the five longest tracks (name and milliseconds).",
			Hint:         "ORDER BY the duration descending, then LIMIT the result.",
			Tables:       []string{"Track"},
			Difficulty:   Beginner,
			ReferenceSQL: "SELECT Name, Milliseconds FROM Track ORDER BY Milliseconds DESC LIMIT 5;",
			Concepts:     []string{"ORDER BY", "LIMIT"},
		},
		{
			ID:           "customers-with-company",
			Prompt:       "List first name, last name and company of customers that belong to a company.",
			Hint:         "NULL company rows are excluded with IS NOT NULL.",
			Tables:       []string{"Customer"},
			Difficulty:   Beginner,
			ReferenceSQL: "SELECT FirstName, LastName, Company FROM Customer WHERE Company IS NOT NULL;",
			Concepts:     []string{"WHERE", "NULL"},
		},
		{
			ID:           "customers-countries",
			Prompt:       "Which distinct countries do our customers come from?",
			Hint:         "DISTINCT removes duplicate values.",
			Tables:       []string{"Customer"},
			Difficulty:   Beginner,
			ReferenceSQL: "SELECT DISTINCT Country FROM Customer ORDER BY Country;",
			Concepts:     []string{"DISTINCT"},
		},
		{
			ID:           "albums-per-artist",
			Prompt:       "Show each artist's name together with the number of albums they released.",
			Hint:         "Join Artist to Album and GROUP BY the artist.",
			Tables:       []string{"Artist", "Album"},
			Difficulty:   Intermediate,
			ReferenceSQL: "SELECT ar.Name, COUNT(al.AlbumId) AS Albums\nFROM Artist ar\nJOIN Album al ON al.ArtistId = ar.ArtistId\nGROUP BY ar.ArtistId, ar.Name;",
			Concepts:     []string{"JOIN", "GROUP BY", "COUNT"},
		},
		{
			ID:           "tracks-with-album",
			Prompt:       "List every track name next to the title of the album it appears on.",
			Hint:         "Track carries an AlbumId foreign key.",
			Tables:       []string{"Track", "Album"},
			Difficulty:   Intermediate,
			ReferenceSQL: "SELECT t.Name, al.Title\nFROM Track t\nJOIN Album al ON al.AlbumId = t.AlbumId;",
			Concepts:     []string{"JOIN"},
		},
		{
			ID:           "genre-track-counts",
			Prompt:       "How many tracks does each genre have? Show genre name and count, most tracks first.",
			Hint:         "Join Genre to Track, GROUP BY genre, ORDER BY the count.",
			Tables:       []string{"Genre", "Track"},
			Difficulty:   Intermediate,
			ReferenceSQL: "SELECT g.Name, COUNT(t.TrackId) AS Tracks\nFROM Genre g\nJOIN Track t ON t.GenreId = g.GenreId\nGROUP BY g.GenreId, g.Name\nORDER BY Tracks DESC;",
			Concepts:     []string{"JOIN", "GROUP BY", "ORDER BY"},
		},
		{
			ID:           "invoices-by-country",
			Prompt:       "Show total invoice amounts per billing country, highest total first.",
			Hint:         "SUM the invoice totals and group by BillingCountry.",
			Tables:       []string{"Invoice"},
			Difficulty:   Intermediate,
			ReferenceSQL: "SELECT BillingCountry, SUM(Total) AS Revenue\nFROM Invoice\nGROUP BY BillingCountry\nORDER BY Revenue DESC;",
			Concepts:     []string{"SUM", "GROUP BY", "ORDER BY"},
		},
		{
			ID:           "artists-no-albums",
			Prompt:       "Which artists have no album in the database?",
			Hint:         "A LEFT JOIN keeps artists without a match; filter on the NULL side.",
			Tables:       []string{"Artist", "Album"},
			Difficulty:   Intermediate,
			ReferenceSQL: "SELECT ar.Name\nFROM Artist ar\nLEFT JOIN Album al ON al.ArtistId = ar.ArtistId\nWHERE al.AlbumId IS NULL;",
			Concepts:     []string{"LEFT JOIN", "NULL"},
		},
		{
			ID:           "avg-track-length-album",
			Prompt:       "Show each album title with the average track length in milliseconds, rounded down to whole milliseconds.",
			Hint:         "AVG over a join, grouped by album; CAST the average to an integer.",
			Tables:       []string{"Album", "Track"},
			Difficulty:   Intermediate,
			ReferenceSQL: "SELECT al.Title, CAST(AVG(t.Milliseconds) AS INT) AS AvgMs\nFROM Album al\nJOIN Track t ON t.AlbumId = al.AlbumId\nGROUP BY al.AlbumId, al.Title;",
			Concepts:     []string{"AVG", "GROUP BY", "CAST"},
		},
		{
			ID:           "genres-many-tracks",
			Prompt:       "List the genres that have more than two tracks.",
			Hint:         "Filter groups with HAVING, not WHERE.",
			Tables:       []string{"Genre", "Track"},
			Difficulty:   Advanced,
			ReferenceSQL: "SELECT g.Name\nFROM Genre g\nJOIN Track t ON t.GenreId = g.GenreId\nGROUP BY g.GenreId, g.Name\nHAVING COUNT(t.TrackId) > 2;",
			Concepts:     []string{"HAVING", "GROUP BY"},
		},
		{
			ID:           "tracks-above-avg-price",
			Prompt:       "Find the tracks priced above the average track price.",
			Hint:         "Compare against a scalar subquery computing AVG(UnitPrice).",
			Tables:       []string{"Track"},
			Difficulty:   Advanced,
			ReferenceSQL: "SELECT Name, UnitPrice\nFROM Track\nWHERE UnitPrice > (SELECT AVG(UnitPrice) FROM Track);",
			Concepts:     []string{"subquery", "AVG"},
		},
		{
			ID:           "top-spending-customer",
			Prompt:       "Who is our highest-spending customer? Show their full name and total spent.",
			Hint:         "Join Customer to Invoice, SUM the totals, order and take one row.",
			Tables:       []string{"Customer", "Invoice"},
			Difficulty:   Advanced,
			ReferenceSQL: "SELECT c.FirstName, c.LastName, SUM(i.Total) AS Spent\nFROM Customer c\nJOIN Invoice i ON i.CustomerId = c.CustomerId\nGROUP BY c.CustomerId, c.FirstName, c.LastName\nORDER BY Spent DESC\nLIMIT 1;",
			Concepts:     []string{"JOIN", "SUM", "LIMIT"},
		},
		{
			ID:           "artists-rock-tracks",
			Prompt:       "List the distinct artists that have at least one Rock track.",
			Hint:         "Join Artist to Album to Track to Genre and filter on the genre name.",
			Tables:       []string{"Artist", "Album", "Track", "Genre"},
			Difficulty:   Advanced,
			ReferenceSQL: "SELECT DISTINCT ar.Name\nFROM Artist ar\nJOIN Album al ON al.ArtistId = ar.ArtistId\nJOIN Track t ON t.AlbumId = al.AlbumId\nJOIN Genre g ON g.GenreId = t.GenreId\nWHERE g.Name = 'Rock';",
			Concepts:     []string{"JOIN", "DISTINCT"},
		},
	}
}
