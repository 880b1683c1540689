package menu

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mrlokans/shelf/internal/entities"
)

// DisplayStyle controls how lists of books are printed.
type DisplayStyle string

const (
	DisplayStyleList  DisplayStyle = "list"
	DisplayStyleTable DisplayStyle = "table"
)

// ParseDisplayStyle maps a config value to a DisplayStyle, defaulting to list.
func ParseDisplayStyle(value string) (DisplayStyle, error) {
	switch DisplayStyle(value) {
	case "", DisplayStyleList:
		return DisplayStyleList, nil
	case DisplayStyleTable:
		return DisplayStyleTable, nil
	}
	return DisplayStyleList, fmt.Errorf("unknown display style %q (expected %q or %q)", value, DisplayStyleList, DisplayStyleTable)
}

func renderBooks(w io.Writer, style DisplayStyle, books []entities.Book) {
	if style == DisplayStyleTable {
		fmt.Fprintln(w, renderTable(books))
		return
	}
	for i, book := range books {
		fmt.Fprintf(w, "%d. %s\n", i+1, book)
	}
}

func renderTable(books []entities.Book) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Title", "Author", "Year", "Genre", "Status"})

	for i, book := range books {
		tw.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			book.Title,
			book.Author,
			strconv.Itoa(book.Year),
			book.Genre,
			book.ReadStatus(),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
