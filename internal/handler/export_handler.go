package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"

	"go-bakery-backend/pkg/database"

	"github.com/gofiber/fiber/v2"
)

// ExportHandler dumps whole tables for the backup/report tooling. The table
// name is validated against the schema's own list before it gets anywhere
// near a query.
type ExportHandler struct {
	store *database.Store
}

func NewExportHandler(store *database.Store) *ExportHandler {
	return &ExportHandler{store: store}
}

func (h *ExportHandler) ListTables(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"tables": database.Tables()})
}

// DumpTable returns all rows of one table, as JSON by default or CSV with
// ?format=csv.
func (h *ExportHandler) DumpTable(c *fiber.Ctx) error {
	name := c.Params("table")
	rows, err := h.store.QueryTable(name)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if c.Query("format") != "csv" {
		return c.JSON(fiber.Map{"table": name, "rows": rows})
	}

	body, err := rowsToCSV(rows)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "CSV export failed"})
	}
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", name))
	return c.Send(body)
}

func rowsToCSV(rows []map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if len(rows) == 0 {
		w.Flush()
		return buf.Bytes(), w.Error()
	}

	// Map iteration order is random; sort the columns once and reuse them
	// for every row.
	columns := make([]string, 0, len(rows[0]))
	for col := range rows[0] {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	if err := w.Write(columns); err != nil {
		return nil, err
	}
	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			if row[col] == nil {
				record[i] = ""
			} else {
				record[i] = fmt.Sprintf("%v", row[col])
			}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
