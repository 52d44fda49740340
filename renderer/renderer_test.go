package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/sukuk"
	"github.com/etnz/sukuk/date"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var (
	now       = date.New(2025, time.March, 1)
	platforms = []sukuk.Platform{{ID: "p1", Name: "Alpha"}, {ID: "p2", Name: "Beta"}}
)

func testBook() *sukuk.Book {
	start, end := date.New(2024, time.January, 1), date.New(2025, time.January, 1)
	return &sukuk.Book{
		Currency:  "SAR",
		Platforms: platforms,
		Investments: []sukuk.Investment{
			{ID: "i1", Name: "Riyadh Towers", PlatformID: "p1", FaceValue: sukuk.M(6000, ""), StartDate: start, EndDate: end, Status: sukuk.StatusActive, TotalExpectedProfit: sukuk.M(720, "")},
			{ID: "i2", Name: "Jeddah Port", PlatformID: "p2", FaceValue: sukuk.M(4000, ""), StartDate: start, EndDate: end, Status: sukuk.StatusCompleted, TotalExpectedProfit: sukuk.M(400, "")},
		},
		Cashflows: []sukuk.Cashflow{
			{ID: "c1", InvestmentID: "i1", Amount: sukuk.M(720, ""), DueDate: date.New(2025, time.February, 1), Status: sukuk.CashflowExpected, Kind: sukuk.Profit},
			{ID: "c2", InvestmentID: "i2", Amount: sukuk.M(100, ""), DueDate: date.New(2025, time.March, 10), Status: sukuk.CashflowUpcoming, Kind: sukuk.Profit},
		},
		Cash: []sukuk.CashTransaction{
			{ID: "t1", Amount: sukuk.M(1000, ""), Kind: sukuk.Deposit, PlatformID: "p1"},
		},
	}
}

// outline parses a markdown document and returns its headings and the
// number of body rows of each table, in document order.
func outline(t *testing.T, md string) (headings []string, rows []int) {
	t.Helper()
	source := []byte(md)
	parser := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	root := parser.Parse(text.NewReader(source))

	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			var b strings.Builder
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					b.Write(txt.Segment.Value(source))
				}
			}
			headings = append(headings, b.String())
		case *east.Table:
			count := 0
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if _, ok := c.(*east.TableRow); ok {
					count++
				}
			}
			rows = append(rows, count)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return headings, rows
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRenderDashboard(t *testing.T) {
	b := testBook()
	opts := sukuk.Options{Now: now}
	d := NewDashboard(b.Metrics(opts), now, opts.Filter, b.Platforms)

	testCases := []struct {
		name         string
		opts         DashboardRenderOptions
		wantHeadings []string
		wantRows     []int
	}{
		{
			name: "full",
			wantHeadings: []string{
				"Dashboard on 2025-03-01", "Summary", "Returns", "Investments",
				"Platforms by Value", "Active Platforms by Value", "Platforms by Count",
				"Cash by Platform",
			},
			wantRows: []int{6, 8, 7, 2, 1, 2, 1},
		},
		{
			name:         "no tables",
			opts:         DashboardRenderOptions{SkipPlatforms: true, SkipCash: true},
			wantHeadings: []string{"Dashboard on 2025-03-01", "Summary", "Returns", "Investments"},
			wantRows:     []int{6, 8, 7},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			md := RenderDashboard(d, tc.opts)
			if strings.HasPrefix(md, "error") {
				t.Fatalf("RenderDashboard() failed: %s", md)
			}
			headings, rows := outline(t, md)
			if !equalStrings(headings, tc.wantHeadings) {
				t.Errorf("RenderDashboard() headings = %q, want %q", headings, tc.wantHeadings)
			}
			if !equalInts(rows, tc.wantRows) {
				t.Errorf("RenderDashboard() table rows = %v, want %v", rows, tc.wantRows)
			}
		})
	}
}

func TestRenderDashboardContent(t *testing.T) {
	b := testBook()
	f := sukuk.Filter{PlatformID: "p1"}
	d := NewDashboard(b.Metrics(sukuk.Options{Filter: f, Now: now}), now, f, b.Platforms)
	md := RenderDashboard(d, DashboardRenderOptions{})

	for _, want := range []string{"*Alpha*", "| Alpha |", "| Late | 1 |", "12.0 months"} {
		if !strings.Contains(md, want) {
			t.Errorf("RenderDashboard() does not contain %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "Beta") {
		t.Errorf("RenderDashboard() filtered on p1 mentions Beta:\n%s", md)
	}
}

func TestRenderStatus(t *testing.T) {
	b := testBook()
	s := &Status{
		On:       now,
		Scope:    Scope(sukuk.Filter{}, b.Platforms),
		Days:     30,
		Troubled: b.Troubled(sukuk.Filter{}, now),
		Upcoming: b.Upcoming(sukuk.Filter{}, now, 30),
		Names:    map[string]string{"i1": "Riyadh Towers", "i2": "Jeddah Port"},
	}
	md := RenderStatus(s)

	headings, rows := outline(t, md)
	wantHeadings := []string{"Status on 2025-03-01", "Late and Defaulted", "Due in the next 30 days"}
	if !equalStrings(headings, wantHeadings) {
		t.Errorf("RenderStatus() headings = %q, want %q", headings, wantHeadings)
	}
	if !equalInts(rows, []int{1, 1}) {
		t.Errorf("RenderStatus() table rows = %v, want [1 1]", rows)
	}
	for _, want := range []string{"Riyadh Towers", "Jeddah Port", "| late |"} {
		if !strings.Contains(md, want) {
			t.Errorf("RenderStatus() does not contain %q:\n%s", want, md)
		}
	}
}

func TestRenderStatusEmpty(t *testing.T) {
	md := RenderStatus(&Status{On: now, Scope: "All platforms", Days: 7})
	for _, want := range []string{"Every payment is on time.", "Nothing due."} {
		if !strings.Contains(md, want) {
			t.Errorf("RenderStatus() does not contain %q:\n%s", want, md)
		}
	}
}

func TestScope(t *testing.T) {
	r := date.Between(date.New(2024, time.January, 1), date.New(2024, time.December, 31))
	testCases := []struct {
		filter sukuk.Filter
		want   string
	}{
		{sukuk.Filter{}, "All platforms"},
		{sukuk.Filter{PlatformID: "p2"}, "Beta"},
		{sukuk.Filter{PlatformID: "zz"}, "Unknown"},
		{sukuk.Filter{Range: &r}, "All platforms, investments started from 2024-01-01 to 2024-12-31"},
	}
	for _, tc := range testCases {
		if got := Scope(tc.filter, platforms); got != tc.want {
			t.Errorf("Scope(%+v) = %q, want %q", tc.filter, got, tc.want)
		}
	}
}
