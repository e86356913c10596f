package archive

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/PuerkitoBio/goquery"
)

// The index page marks its mutable region with this container id; the
// splicer's contract with the page is that element's presence, nothing
// more.
const containerSelector = "#archive-grid"

var (
	ErrNoIndex     = errors.New("archive index not found")
	ErrNoContainer = errors.New("archive container not found in index")
)

// UpdateIndex rewrites the archive index in place: the container's
// children are replaced with one card per week (a full replace, never
// an append) and every data-counter element is patched with its total.
// Structural problems are returned as errors; the caller treats them as
// fatal because a partial rewrite would corrupt the page.
func UpdateIndex(indexPath string, weeks []WeekEntry) error {
	b, err := os.ReadFile(indexPath)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNoIndex, indexPath)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("parse index: %w", err)
	}

	grid := doc.Find(containerSelector)
	if grid.Length() == 0 {
		return fmt.Errorf("%w: %s", ErrNoContainer, containerSelector)
	}

	cards, err := renderCards(weeks)
	if err != nil {
		return err
	}
	grid.SetHtml(cards)

	totals := SumTotals(weeks)
	patchCounter(doc, "reports", totals.Reports)
	patchCounter(doc, "kevs", totals.KEVs)
	patchCounter(doc, "c2", totals.C2)
	patchCounter(doc, "ransomware", totals.Ransomware)

	out, err := doc.Html()
	if err != nil {
		return fmt.Errorf("serialize index: %w", err)
	}
	if err := os.WriteFile(indexPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// patchCounter sets the text of every element tagged with the given
// data-counter name.
func patchCounter(doc *goquery.Document, name string, value int) {
	doc.Find(fmt.Sprintf("[data-counter=%q]", name)).SetText(strconv.Itoa(value))
}
