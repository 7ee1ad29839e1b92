// Package export writes WorkLedger data as CSV and JSON files.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/workledger"
	"github.com/etnz/workledger/date"
	"github.com/shopspring/decimal"
)

// Field is a named value of a Record.
type Field struct {
	Key   string
	Value any
}

// Record is an ordered list of fields, one CSV row.
type Record []Field

// WriteCSV writes records as CSV, the header being the keys of the first
// record. Nothing is written for an empty list.
//
// A nil value is an empty cell, a list is a quoted cell of its items joined
// by ", ", and a string holding a comma or a quote is quoted with its quotes
// doubled. Rows are separated by a newline, without a final one.
func WriteCSV(w io.Writer, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	header := make([]string, len(records[0]))
	for i, f := range records[0] {
		header[i] = f.Key
	}
	rows := [][]string{header}
	for _, r := range records {
		row := make([]string, len(header))
		for i, key := range header {
			row[i] = cell(r.get(key))
		}
		rows = append(rows, row)
	}
	return writeRows(w, rows)
}

func (r Record) get(key string) any {
	for _, f := range r {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}

func cell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []string:
		return list(v)
	case string:
		if strings.ContainsAny(v, `,"`) {
			return quote(v)
		}
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// quote returns s between quotes, with its quotes doubled.
func quote(s string) string { return `"` + strings.ReplaceAll(s, `"`, `""`) + `"` }

// list returns items joined by ", " between quotes.
func list(items []string) string { return `"` + strings.Join(items, ", ") + `"` }

func writeRows(w io.Writer, rows [][]string) error {
	bw := bufio.NewWriter(w)
	for i, row := range rows {
		if i > 0 {
			bw.WriteByte('\n')
		}
		bw.WriteString(strings.Join(row, ","))
	}
	return bw.Flush()
}

// ProjectRecords returns one generic record per project.
func ProjectRecords(projects []workledger.Project) []Record {
	records := make([]Record, 0, len(projects))
	for _, p := range projects {
		var budget any
		if p.Budget != nil {
			budget = *p.Budget
		}
		records = append(records, Record{
			{"id", p.ID},
			{"name", p.Name},
			{"description", p.Description},
			{"status", string(p.Status)},
			{"technologies", p.Technologies},
			{"assignedWorkers", p.AssignedWorkers},
			{"createdAt", p.CreatedAt},
			{"updatedAt", p.UpdatedAt},
			{"budget", budget},
			{"deadline", optionalDate(p.Deadline)},
		})
	}
	return records
}

// WorkerRecords returns one generic record per worker.
func WorkerRecords(workers []workledger.Worker) []Record {
	records := make([]Record, 0, len(workers))
	for _, w := range workers {
		records = append(records, Record{
			{"id", w.ID},
			{"name", w.Name},
			{"email", w.Email},
			{"role", w.Role},
			{"skills", w.Skills},
			{"monthlySalary", w.MonthlySalary},
			{"assignedProjects", w.AssignedProjects},
			{"joinedAt", optionalDate(w.JoinedAt)},
			{"status", string(w.Status)},
		})
	}
	return records
}

// SalaryRecords returns the salary report rows: name, role, salary and the
// number of projects of each worker.
func SalaryRecords(data []workledger.SalaryData) []Record {
	records := make([]Record, 0, len(data))
	for _, d := range data {
		records = append(records, Record{
			{"name", d.WorkerName},
			{"role", d.Role},
			{"salary", d.Salary},
			{"projects", len(d.Projects)},
		})
	}
	return records
}

func optionalDate(d date.Date) any {
	if d.IsZero() {
		return nil
	}
	return d
}

// WriteProjectsCSV writes the projects spreadsheet.
func WriteProjectsCSV(w io.Writer, projects []workledger.Project) error {
	rows := [][]string{{"ID", "Name", "Description", "Status", "Technologies", "Assigned Workers", "Created At", "Updated At", "Budget", "Deadline"}}
	for _, p := range projects {
		budget, deadline := "", ""
		if p.Budget != nil {
			budget = p.Budget.String()
		}
		if !p.Deadline.IsZero() {
			deadline = p.Deadline.String()
		}
		rows = append(rows, []string{
			p.ID,
			quote(p.Name),
			quote(p.Description),
			string(p.Status),
			list(p.Technologies),
			list(p.AssignedWorkers),
			p.CreatedAt.String(),
			p.UpdatedAt.String(),
			budget,
			deadline,
		})
	}
	return writeRows(w, rows)
}

// WriteWorkersCSV writes the workers spreadsheet.
func WriteWorkersCSV(w io.Writer, workers []workledger.Worker) error {
	rows := [][]string{{"ID", "Name", "Email", "Role", "Skills", "Monthly Salary", "Assigned Projects", "Joined At", "Status"}}
	for _, wk := range workers {
		rows = append(rows, []string{
			wk.ID,
			quote(wk.Name),
			wk.Email,
			quote(wk.Role),
			list(wk.Skills),
			wk.MonthlySalary.String(),
			list(wk.AssignedProjects),
			wk.JoinedAt.String(),
			string(wk.Status),
		})
	}
	return writeRows(w, rows)
}

// SalaryReport is the JSON salary export.
type SalaryReport struct {
	SalaryData   []workledger.SalaryData  `json:"salaryData"`
	ProjectCosts []workledger.ProjectCost `json:"projectCosts"`
	TotalCost    decimal.Decimal          `json:"totalCost"`
}

// WriteJSON writes v as JSON indented by two spaces.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
