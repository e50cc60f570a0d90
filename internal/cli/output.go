package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dmitrijs2005/snippets/internal/config"
	"github.com/dmitrijs2005/snippets/internal/models"
)

// Formatter renders command results as text or JSON.
type Formatter struct {
	Format string
	Writer io.Writer
}

// GetResponse is the JSON shape of a get result.
type GetResponse struct {
	Keyword string `json:"keyword"`
	Message string `json:"message,omitempty"`
	Found   bool   `json:"found"`
}

// CatalogResponse is the JSON shape of a catalog result.
type CatalogResponse struct {
	Keywords []string `json:"keywords"`
}

// SearchResponse is the JSON shape of a search result.
type SearchResponse struct {
	Term    string            `json:"term"`
	Matches []*models.Snippet `json:"matches"`
}

func (f *Formatter) Put(res *models.PutResult) error {
	if f.Format == config.FormatJSON {
		return f.json(res)
	}
	if res.Created {
		_, err := fmt.Fprintf(f.Writer, "Stored %q as %q\n", res.Message, res.Keyword)
		return err
	}
	_, err := fmt.Fprintf(f.Writer, "Updated %q to %q\n", res.Keyword, res.Message)
	return err
}

func (f *Formatter) Get(name, message string, found bool) error {
	if f.Format == config.FormatJSON {
		return f.json(GetResponse{Keyword: name, Message: message, Found: found})
	}
	if !found {
		_, err := fmt.Fprintf(f.Writer, "No snippet found for %q\n", name)
		return err
	}
	_, err := fmt.Fprintf(f.Writer, "Retrieved snippet: %q\n", message)
	return err
}

func (f *Formatter) Catalog(keywords []string) error {
	if f.Format == config.FormatJSON {
		if keywords == nil {
			keywords = []string{}
		}
		return f.json(CatalogResponse{Keywords: keywords})
	}
	if len(keywords) == 0 {
		_, err := fmt.Fprintln(f.Writer, "No keywords in catalog")
		return err
	}
	for _, k := range keywords {
		if _, err := fmt.Fprintln(f.Writer, k); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) Search(term string, matches []*models.Snippet) error {
	if f.Format == config.FormatJSON {
		if matches == nil {
			matches = []*models.Snippet{}
		}
		return f.json(SearchResponse{Term: term, Matches: matches})
	}
	if len(matches) == 0 {
		_, err := fmt.Fprintf(f.Writer, "No snippets matched %q\n", term)
		return err
	}
	for _, m := range matches {
		if _, err := fmt.Fprintf(f.Writer, "%s: %s\n", m.Keyword, m.Message); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) json(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
