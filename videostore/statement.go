package videostore

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/eirikbell/videostore/pricing"
	"github.com/pkg/errors"
)

const htmlStatementTemplate = `<h1>Rentals for <em>{{.Name}}</em></h1>
<ul>
{{range .Lines}}  <li>{{.Title}}: {{.Charge}}</li>
{{end}}</ul>
<p>You owe <em>{{.Total}}</em></p>
<p>Congratulations! You earned <em>{{.Points}}</em> frequent renter points</p>`

var htmlStatement = template.Must(template.New("statement").Parse(htmlStatementTemplate))

type statementLine struct {
	Title  string
	Charge string
}

type statementData struct {
	Name   string
	Lines  []statementLine
	Total  string
	Points int
}

func (c *Customer) statementData() (*statementData, error) {
	data := &statementData{Name: c.name}

	// Each rental is priced once so the lines always add up to the total
	total := pricing.Zero()
	for _, r := range c.rentals {
		charge, err := r.Charge()
		if err != nil {
			return nil, err
		}
		data.Lines = append(data.Lines, statementLine{Title: r.Movie().Title(), Charge: charge.String()})
		total = total.Add(charge)
	}
	data.Total = total.String()

	var err error
	data.Points, err = c.TotalPoints()
	if err != nil {
		return nil, err
	}

	return data, nil
}

// Statement plain-text report of the customer's rentals
func (c *Customer) Statement() (string, error) {
	data, err := c.statementData()
	if err != nil {
		return "", err
	}

	result := []string{fmt.Sprintf("Rental Record for %s", data.Name)}
	for _, l := range data.Lines {
		result = append(result, fmt.Sprintf("\t%s\t%s", l.Title, l.Charge))
	}
	result = append(result, fmt.Sprintf("Amount owed is %s", data.Total))
	result = append(result, fmt.Sprintf("You earned %d frequent renter points", data.Points))

	return strings.Join(result, "\n"), nil
}

// HTMLStatement the statement as an HTML fragment
func (c *Customer) HTMLStatement() (string, error) {
	data, err := c.statementData()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := htmlStatement.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "Rendering HTML statement failed")
	}
	return buf.String(), nil
}
